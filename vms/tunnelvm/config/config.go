// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyChannel        = errors.New("bridge channel must not be empty")
	ErrInvalidPeriods      = errors.New("invalid expiry periods")
	ErrInvalidRotation     = errors.New("invalid executor rotation window")
	ErrInvalidLimits       = errors.New("invalid storage limits")
	ErrInvalidCacheSize    = errors.New("invalid executors cache size")
	ErrTooManyTokenIndices = errors.New("maxTokens must not exceed 255")
)

// Config holds the deployment parameters of a tunnel chain.
type Config struct {
	// Channel is embedded in every signing message, e.g. "[Solana Bridge]".
	Channel string `json:"channel" yaml:"channel"`
	// HubID is the chain byte this deployment answers to in request ids.
	HubID uint8 `json:"hubID" yaml:"hubID"`

	// Request time windows
	ProposePeriod        time.Duration `json:"proposePeriod" yaml:"proposePeriod"`               // Default: 48h
	CreatedTimeTolerance time.Duration `json:"createdTimeTolerance" yaml:"createdTimeTolerance"` // Default: 60s
	ExpirePeriod         time.Duration `json:"expirePeriod" yaml:"expirePeriod"`                 // Default: 72h
	ExpireExtraPeriod    time.Duration `json:"expireExtraPeriod" yaml:"expireExtraPeriod"`       // Default: 96h

	// Executor rotation window, relative to the time of the update
	MinActiveSinceDelay time.Duration `json:"minActiveSinceDelay" yaml:"minActiveSinceDelay"` // Default: 36h
	MaxActiveSinceDelay time.Duration `json:"maxActiveSinceDelay" yaml:"maxActiveSinceDelay"` // Default: 120h

	// Storage limits
	MaxProposers int `json:"maxProposers" yaml:"maxProposers"`
	MaxExecutors int `json:"maxExecutors" yaml:"maxExecutors"`
	MaxTokens    int `json:"maxTokens" yaml:"maxTokens"`

	ExecutorsCacheSize int `json:"executorsCacheSize" yaml:"executorsCacheSize"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() Config {
	return Config{
		Channel:              "Solana Bridge",
		HubID:                0xa0,
		ProposePeriod:        48 * time.Hour,
		CreatedTimeTolerance: time.Minute,
		ExpirePeriod:         72 * time.Hour,
		ExpireExtraPeriod:    96 * time.Hour,
		MinActiveSinceDelay:  36 * time.Hour,
		MaxActiveSinceDelay:  120 * time.Hour,
		MaxProposers:         256,
		MaxExecutors:         256,
		MaxTokens:            255,
		ExecutorsCacheSize:   16,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Channel == "" {
		return ErrEmptyChannel
	}
	if c.ProposePeriod <= 0 || c.ExpirePeriod <= 0 || c.CreatedTimeTolerance < 0 {
		return ErrInvalidPeriods
	}
	if c.ExpireExtraPeriod < c.ExpirePeriod {
		return fmt.Errorf("%w: expireExtraPeriod %s is shorter than expirePeriod %s",
			ErrInvalidPeriods, c.ExpireExtraPeriod, c.ExpirePeriod)
	}
	if c.MinActiveSinceDelay < 0 || c.MinActiveSinceDelay >= c.MaxActiveSinceDelay {
		return ErrInvalidRotation
	}
	if c.MaxProposers <= 0 || c.MaxExecutors <= 0 || c.MaxTokens <= 0 {
		return ErrInvalidLimits
	}
	if c.MaxTokens > 255 {
		return ErrTooManyTokenIndices
	}
	if c.ExecutorsCacheSize <= 0 {
		return ErrInvalidCacheSize
	}
	return nil
}

// Seconds converts a configured period to whole unix seconds.
func Seconds(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(d / time.Second)
}

// ParseConfig parses configuration from JSON bytes.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(data) == 0 {
		return cfg, nil
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseYAMLConfig parses configuration from YAML bytes. Durations use Go
// duration syntax, e.g. "48h".
func ParseYAMLConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(data) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ReadFile parses the config file at path. Files ending in .yaml or .yml are
// YAML, anything else is JSON.
func ReadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = ParseYAMLConfig(data)
	default:
		cfg, err = ParseConfig(data)
	}
	if err != nil {
		return Config{}, fmt.Errorf("couldn't parse %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes c as YAML when asYAML is set and as indented JSON
// otherwise. Both forms are accepted by ReadFile.
func (c *Config) Marshal(asYAML bool) ([]byte, error) {
	if asYAML {
		return yaml.Marshal(c)
	}
	return json.MarshalIndent(c, "", "  ")
}
