// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	require := require.New(t)

	cfg := DefaultConfig()
	require.Equal("Solana Bridge", cfg.Channel)
	require.Equal(48*time.Hour, cfg.ProposePeriod)
	require.Equal(72*time.Hour, cfg.ExpirePeriod)
	require.Equal(96*time.Hour, cfg.ExpireExtraPeriod)
	require.Equal(uint64(48*60*60), Seconds(cfg.ProposePeriod))
	require.NoError(cfg.Validate())
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		expectedErr error
	}{
		{
			name:   "default config valid",
			modify: func(*Config) {},
		},
		{
			name:        "empty channel",
			modify:      func(c *Config) { c.Channel = "" },
			expectedErr: ErrEmptyChannel,
		},
		{
			name:        "extra expiry shorter than expiry",
			modify:      func(c *Config) { c.ExpireExtraPeriod = c.ExpirePeriod - time.Second },
			expectedErr: ErrInvalidPeriods,
		},
		{
			name:        "zero propose period",
			modify:      func(c *Config) { c.ProposePeriod = 0 },
			expectedErr: ErrInvalidPeriods,
		},
		{
			name:        "empty rotation window",
			modify:      func(c *Config) { c.MaxActiveSinceDelay = c.MinActiveSinceDelay },
			expectedErr: ErrInvalidRotation,
		},
		{
			name:        "no proposers allowed",
			modify:      func(c *Config) { c.MaxProposers = 0 },
			expectedErr: ErrInvalidLimits,
		},
		{
			name:        "token indices exhausted",
			modify:      func(c *Config) { c.MaxTokens = 256 },
			expectedErr: ErrTooManyTokenIndices,
		},
		{
			name:        "no cache",
			modify:      func(c *Config) { c.ExecutorsCacheSize = 0 },
			expectedErr: ErrInvalidCacheSize,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultConfig()
			test.modify(&cfg)
			require.ErrorIs(t, cfg.Validate(), test.expectedErr)
		})
	}
}

func TestParseConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := ParseConfig(nil)
	require.NoError(err)
	require.Equal(DefaultConfig(), cfg)

	cfg, err = ParseConfig([]byte(`{"channel":"Lux Bridge","hubID":7,"maxTokens":16}`))
	require.NoError(err)
	require.Equal("Lux Bridge", cfg.Channel)
	require.Equal(uint8(7), cfg.HubID)
	require.Equal(16, cfg.MaxTokens)
	require.Equal(72*time.Hour, cfg.ExpirePeriod)

	_, err = ParseConfig([]byte(`{"channel":`))
	require.Error(err)
}

func TestParseYAMLConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := ParseYAMLConfig([]byte("channel: Lux Bridge\nhubID: 3\nexpirePeriod: 1h\nexpireExtraPeriod: 2h\n"))
	require.NoError(err)
	require.Equal("Lux Bridge", cfg.Channel)
	require.Equal(uint8(3), cfg.HubID)
	require.Equal(time.Hour, cfg.ExpirePeriod)
	require.Equal(2*time.Hour, cfg.ExpireExtraPeriod)
	require.NoError(cfg.Validate())
}

func TestReadFile(t *testing.T) {
	tests := []struct {
		name   string
		asYAML bool
	}{
		{name: "tunnel.yaml", asYAML: true},
		{name: "tunnel.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			cfg := DefaultConfig()
			cfg.Channel = "Test Bridge"
			cfg.ExpirePeriod = 80 * time.Hour
			data, err := cfg.Marshal(tt.asYAML)
			require.NoError(err)

			path := filepath.Join(t.TempDir(), tt.name)
			require.NoError(os.WriteFile(path, data, 0o600))

			parsed, err := ReadFile(path)
			require.NoError(err)
			require.Equal(cfg, parsed)
		})
	}
}
