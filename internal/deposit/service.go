// Package deposit implements the session and key-share lifecycle: it
// authenticates a depositing wallet's opening message and provisions the
// session record together with its lockbox (key-share linkage) record as a
// single atomic unit.
package deposit

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"statechain-entity/internal/challenge"
	"statechain-entity/internal/config"
	"statechain-entity/internal/logger"
	"statechain-entity/internal/metrics"
	"statechain-entity/internal/storage/models"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxIDAttempts bounds identifier regeneration when a freshly drawn UUID
// collides with an existing session. With 122 bits of entropy a single
// collision is already extraordinary; repeated collisions indicate a broken
// entropy source and are surfaced instead of retried forever.
const maxIDAttempts = 3

// Service orchestrates deposit initiation against the durable store.
type Service struct {
	db              *gorm.DB
	strictProofKeys bool

	// newID is swappable in tests to force identifier collisions.
	newID func() uuid.UUID
}

// NewService creates a deposit lifecycle service on top of db.
func NewService(db *gorm.DB, cfg config.DepositConfig) *Service {
	return &Service{
		db:              db,
		strictProofKeys: cfg.StrictProofKeys,
		newID:           uuid.New,
	}
}

// InitResult is returned to the wallet after a session has been durably
// provisioned. The challenge value here is the only copy ever released.
type InitResult struct {
	ID        uuid.UUID `json:"id"`
	Challenge string    `json:"challenge"`
}

// InitiateDeposit registers a new deposit session for the given client
// identity material and reserves its key-share slot. The session row and the
// lockbox row are committed in one transaction: after a successful return
// both exist, after an error neither does. Each call creates a fresh,
// independent session; repeated calls are not deduplicated.
func (s *Service) InitiateDeposit(ctx context.Context, authToken, proofKey string) (*InitResult, error) {
	if strings.TrimSpace(authToken) == "" {
		metrics.DepositFailures.WithLabelValues("validation").Inc()
		return nil, ErrAuthRequired
	}
	if strings.TrimSpace(proofKey) == "" {
		metrics.DepositFailures.WithLabelValues("validation").Inc()
		return nil, ErrProofKeyRequired
	}
	if s.strictProofKeys {
		if err := checkProofKey(proofKey); err != nil {
			metrics.DepositFailures.WithLabelValues("validation").Inc()
			return nil, err
		}
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID()
		chal, err := challenge.New()
		if err != nil {
			metrics.DepositFailures.WithLabelValues("internal").Inc()
			return nil, err
		}

		err = s.provision(ctx, id, authToken, proofKey, chal)
		if err == nil {
			logger.Log.Infof("Provisioned deposit session %s", id)
			metrics.DepositsInitiated.Inc()
			return &InitResult{ID: id, Challenge: chal}, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.Log.Warnf("Session identifier %s already in use, regenerating (attempt %d)", id, attempt+1)
			continue
		}
		metrics.DepositFailures.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	metrics.DepositFailures.WithLabelValues("conflict").Inc()
	return nil, ErrIdentifierConflict
}

// provision writes the session and its lockbox linkage in one transaction so
// that partial state is never observable, even across a crash between the
// two inserts.
func (s *Service) provision(ctx context.Context, id uuid.UUID, authToken, proofKey, chal string) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	session := models.UserSession{
		ID:             id,
		Authentication: authToken,
		ProofKey:       proofKey,
		Challenge:      chal,
	}
	if err := tx.Create(&session).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(&models.Lockbox{ID: id}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func checkProofKey(proofKey string) error {
	raw, err := hex.DecodeString(proofKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProofKeyFormat, err)
	}
	if _, err := btcec.ParsePubKey(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrProofKeyFormat, err)
	}
	return nil
}
