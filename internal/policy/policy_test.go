package policy

import (
	"testing"

	"statechain-entity/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPolicy() config.PolicyConfig {
	return config.PolicyConfig{
		Network:       "mainnet",
		Address:       "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
		Deposit:       0,
		Withdraw:      300,
		Interval:      144,
		InitLock:      14400,
		WalletVersion: "0.4.65",
		WalletMessage: "Warning",
	}
}

func TestNewStoreServesConfiguredValues(t *testing.T) {
	s, err := NewStore(validPolicy())
	require.NoError(t, err)

	info := s.Current()
	assert.Equal(t, "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", info.Address)
	assert.Equal(t, int64(0), info.Deposit)
	assert.Equal(t, uint64(300), info.Withdraw)
	assert.Equal(t, uint32(144), info.Interval)
	assert.Equal(t, uint32(14400), info.InitLock)
	assert.Equal(t, "0.4.65", info.WalletVersion)
	assert.Equal(t, "Warning", info.WalletMessage)
}

func TestRepeatedReadsAreIdentical(t *testing.T) {
	s, err := NewStore(validPolicy())
	require.NoError(t, err)
	assert.Equal(t, s.Current(), s.Current())
}

func TestNewStoreRejectsInvalidPolicies(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.PolicyConfig)
		wantErr error
	}{
		{"zero interval", func(c *config.PolicyConfig) { c.Interval = 0 }, ErrInvalidSchedule},
		{"zero initlock", func(c *config.PolicyConfig) { c.InitLock = 0 }, ErrInvalidSchedule},
		{"initlock below interval", func(c *config.PolicyConfig) { c.InitLock = 100; c.Interval = 144 }, ErrInvalidSchedule},
		{"missing wallet version", func(c *config.PolicyConfig) { c.WalletVersion = "" }, ErrInvalidSchedule},
		{"garbage address", func(c *config.PolicyConfig) { c.Address = "not-an-address" }, ErrInvalidAddress},
		{"address for wrong network", func(c *config.PolicyConfig) { c.Network = "regtest" }, ErrInvalidAddress},
		{"unknown network", func(c *config.PolicyConfig) { c.Network = "signet" }, ErrUnknownNetwork},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validPolicy()
			tc.mutate(&cfg)
			_, err := NewStore(cfg)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestReloadSwapsSnapshotAtomically(t *testing.T) {
	s, err := NewStore(validPolicy())
	require.NoError(t, err)

	next := validPolicy()
	next.Withdraw = 500
	next.WalletMessage = "maintenance window tonight"
	require.NoError(t, s.Reload(next))

	info := s.Current()
	assert.Equal(t, uint64(500), info.Withdraw)
	assert.Equal(t, "maintenance window tonight", info.WalletMessage)
}

func TestReloadKeepsOldSnapshotOnError(t *testing.T) {
	s, err := NewStore(validPolicy())
	require.NoError(t, err)

	bad := validPolicy()
	bad.Interval = 0
	require.Error(t, s.Reload(bad))

	assert.Equal(t, uint32(144), s.Current().Interval)
}
