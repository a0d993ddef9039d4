// Package policy holds the statechain entity's published operating
// parameters: the fee schedule, the backup-transaction locktime schedule and
// the wallet compatibility requirements every protocol message must respect.
package policy

import (
	"errors"
	"fmt"
	"sync/atomic"

	"statechain-entity/internal/config"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

var (
	// ErrUnknownNetwork means the configured network name is not one of
	// mainnet, testnet or regtest.
	ErrUnknownNetwork = errors.New("unknown bitcoin network")
	// ErrInvalidAddress means the fee address does not decode for the
	// configured network.
	ErrInvalidAddress = errors.New("invalid fee address")
	// ErrInvalidSchedule means the locktime schedule is not internally
	// consistent.
	ErrInvalidSchedule = errors.New("invalid locktime schedule")
)

// FeeInfo is the operating information returned to wallets. Field names and
// types are part of the wire contract.
type FeeInfo struct {
	// The Bitcoin address that the entity fee must be paid to.
	Address string `json:"address"`
	// The deposit fee as a proportion of the deposit amount in basis
	// points. May be negative when deposits are subsidized.
	Deposit int64 `json:"deposit"`
	// The withdrawal fee as a proportion of the deposit amount in basis
	// points.
	Withdraw uint64 `json:"withdraw"`
	// The decrementing nLocktime interval enforced for backup
	// transactions, in blocks.
	Interval uint32 `json:"interval"`
	// The initial nLocktime from the current block height for the first
	// backup transaction.
	InitLock uint32 `json:"initlock"`
	// The minimum wallet version required.
	WalletVersion string `json:"wallet_version"`
	// Message to display to all wallet users on startup.
	WalletMessage string `json:"wallet_message"`
}

// Store is a process-wide snapshot of the operating policy. Reads never
// block; Reload replaces the whole snapshot atomically rather than mutating
// fields in place.
type Store struct {
	current atomic.Pointer[FeeInfo]
}

// NewStore validates the configured policy and returns a store serving it.
// An invalid policy is a boot failure, not a runtime condition.
func NewStore(cfg config.PolicyConfig) (*Store, error) {
	info, err := validate(cfg)
	if err != nil {
		return nil, err
	}
	s := &Store{}
	s.current.Store(info)
	return s, nil
}

// Current returns the operating policy snapshot.
func (s *Store) Current() FeeInfo {
	return *s.current.Load()
}

// Reload validates a new policy and swaps it in. Concurrent readers see
// either the old snapshot or the new one, never a mix.
func (s *Store) Reload(cfg config.PolicyConfig) error {
	info, err := validate(cfg)
	if err != nil {
		return err
	}
	s.current.Store(info)
	return nil
}

func validate(cfg config.PolicyConfig) (*FeeInfo, error) {
	params, err := netParams(cfg.Network)
	if err != nil {
		return nil, err
	}
	if _, err := btcutil.DecodeAddress(cfg.Address, params); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, cfg.Address, err)
	}
	if cfg.Interval == 0 {
		return nil, fmt.Errorf("%w: interval must be positive", ErrInvalidSchedule)
	}
	if cfg.InitLock == 0 {
		return nil, fmt.Errorf("%w: initlock must be positive", ErrInvalidSchedule)
	}
	if cfg.InitLock < cfg.Interval {
		return nil, fmt.Errorf("%w: initlock %d is smaller than interval %d", ErrInvalidSchedule, cfg.InitLock, cfg.Interval)
	}
	if cfg.WalletVersion == "" {
		return nil, fmt.Errorf("%w: wallet_version is required", ErrInvalidSchedule)
	}

	return &FeeInfo{
		Address:       cfg.Address,
		Deposit:       cfg.Deposit,
		Withdraw:      cfg.Withdraw,
		Interval:      cfg.Interval,
		InitLock:      cfg.InitLock,
		WalletVersion: cfg.WalletVersion,
		WalletMessage: cfg.WalletMessage,
	}, nil
}

func netParams(name string) (*chaincfg.Params, error) {
	switch name {
	case "", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
}
