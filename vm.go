// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tunnel defines the lifecycle of a tunnel chain: the bridge
// authorization VM that decides which lock, unlock, mint and burn requests
// may be proposed, executed and cancelled.
package tunnel

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/database"
	"github.com/luxfi/ids"
)

// VM is a tunnel chain instance.
type VM interface {
	// Initialize opens the chain over the given database.
	Initialize(context.Context, *Config) error

	// Shutdown cleanly stops the VM
	Shutdown(context.Context) error

	// Version returns the VM version
	Version(context.Context) (string, error)

	// SetState transitions the VM to the specified state
	SetState(context.Context, State) error

	// CreateHandlers returns the HTTP handlers of the chain, keyed by path
	// suffix.
	CreateHandlers(context.Context) (map[string]http.Handler, error)
}

// Config is what the host passes to Initialize.
type Config struct {
	ChainID ids.ID
	DB      database.Database
	// GenesisBytes seeds token balances the first time the chain opens.
	GenesisBytes []byte
	// ConfigBytes, if set, replaces the factory's deployment config. JSON.
	ConfigBytes []byte
	// Registerer receives the chain's metrics. A private registry is used
	// when nil.
	Registerer prometheus.Registerer
}
