// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tunnelvm implements the tunnel chain: a bridge authorization VM
// that admits lock, unlock, mint and burn requests, executes them under an
// executor quorum and cancels them after expiry.
package tunnelvm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	lru "github.com/hashicorp/golang-lru"

	"github.com/luxfi/database"
	"github.com/luxfi/database/versiondb"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/version"

	"github.com/luxfi/tunnel"
	utilmetric "github.com/luxfi/tunnel/utils/metric"
	"github.com/luxfi/tunnel/utils/timer/mockable"
	"github.com/luxfi/tunnel/vms/tunnelvm/api"
	"github.com/luxfi/tunnel/vms/tunnelvm/config"
	"github.com/luxfi/tunnel/vms/tunnelvm/metrics"
	"github.com/luxfi/tunnel/vms/tunnelvm/state"
	"github.com/luxfi/tunnel/vms/tunnelvm/token"
	"github.com/luxfi/tunnel/vms/tunnelvm/txs"
	"github.com/luxfi/tunnel/vms/tunnelvm/txs/executor"
)

var (
	_ tunnel.VM = (*VM)(nil)
	_ api.Chain = (*VM)(nil)

	Version = &version.Semantic{
		Major: 1,
		Minor: 0,
		Patch: 0,
	}

	errNotInitialized = errors.New("vm not initialized")
	errNotAccepting   = errors.New("vm is not accepting commands")
	errInvalidState   = errors.New("invalid vm state")
)

// VM is a tunnel chain.
type VM struct {
	config.Config

	log         log.Logger
	chainID     ids.ID
	db          database.Database
	metrics     metrics.Metrics
	interceptor utilmetric.APIInterceptor
	backend     *executor.Backend

	// Decoded executor epochs shared by every state view. Entries touched by
	// a command are evicted once the command commits or aborts.
	epochCache *lru.Cache

	clock mockable.Clock

	lock   sync.RWMutex
	status tunnel.State
}

func (vm *VM) Initialize(_ context.Context, cfg *tunnel.Config) error {
	vm.lock.Lock()
	defer vm.lock.Unlock()

	if len(cfg.ConfigBytes) > 0 {
		parsed, err := config.ParseConfig(cfg.ConfigBytes)
		if err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
		vm.Config = parsed
	}
	if err := vm.Config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	genesis, err := ParseGenesis(cfg.GenesisBytes)
	if err != nil {
		return err
	}
	if err := genesis.apply(cfg.DB); err != nil {
		return fmt.Errorf("failed to apply genesis: %w", err)
	}

	registerer := cfg.Registerer
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}
	vm.metrics, err = metrics.New(registerer)
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	vm.interceptor, err = utilmetric.NewAPIInterceptor("api", registerer)
	if err != nil {
		return fmt.Errorf("failed to initialize api metrics: %w", err)
	}

	vm.epochCache, err = lru.New(vm.Config.ExecutorsCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create executors cache: %w", err)
	}

	vm.chainID = cfg.ChainID
	vm.db = cfg.DB
	vm.backend = &executor.Backend{
		Config:  &vm.Config,
		ChainID: vm.chainID,
		Clk:     &vm.clock,
		Log:     vm.log,
	}
	vm.status = tunnel.Bootstrapping

	vm.log.Info("tunnel VM initialized",
		log.Stringer("chainID", vm.chainID),
		log.Stringer("version", Version),
		log.String("channel", vm.Config.Channel),
		log.Int("hubID", int(vm.Config.HubID)),
	)
	return nil
}

func (vm *VM) SetState(_ context.Context, s tunnel.State) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %s", errInvalidState, s)
	}

	vm.lock.Lock()
	defer vm.lock.Unlock()

	if vm.db == nil {
		return errNotInitialized
	}
	vm.log.Info("tunnel VM state transition",
		log.Stringer("from", vm.status),
		log.Stringer("to", s),
	)
	vm.status = s
	return nil
}

func (vm *VM) Shutdown(context.Context) error {
	vm.lock.Lock()
	defer vm.lock.Unlock()

	if vm.db == nil {
		return nil
	}
	vm.log.Info("shutting down tunnel VM")
	vm.status = tunnel.Unknown
	vm.epochCache.Purge()
	return vm.db.Close()
}

func (*VM) Version(context.Context) (string, error) {
	return Version.String(), nil
}

func (vm *VM) CreateHandlers(context.Context) (map[string]http.Handler, error) {
	handler, err := api.NewHandler(&api.Service{
		Chain:  vm,
		Config: &vm.Config,
		Log:    vm.log,
	}, vm.interceptor)
	if err != nil {
		return nil, err
	}
	return map[string]http.Handler{
		"/rpc": handler,
	}, nil
}

// Clock is the time source commands are checked against.
func (vm *VM) Clock() *mockable.Clock {
	return &vm.clock
}

// IssueTx applies tx in its own atomic batch. The command's effects are
// committed only if every step succeeds.
func (vm *VM) IssueTx(tx *txs.Tx) error {
	vm.lock.Lock()
	defer vm.lock.Unlock()

	switch {
	case vm.db == nil:
		return errNotInitialized
	case vm.status != tunnel.NormalOp:
		return fmt.Errorf("%w: %s", errNotAccepting, vm.status)
	}

	layer := versiondb.New(vm.db)
	defer layer.Abort()

	st := state.New(layer, vm.epochCache)
	defer func() {
		for _, index := range st.ModifiedEpochs() {
			vm.epochCache.Remove(index)
		}
	}()

	start := time.Now()
	txExecutor := &executor.Executor{
		Backend: vm.backend,
		State:   st,
		Mover:   token.NewLedger(layer),
		Tx:      tx,
	}
	err := txExecutor.Apply()
	if err == nil {
		err = layer.Commit()
	}
	vm.metrics.ObserveApplyTime(time.Since(start))
	if err != nil {
		vm.reject(tx, err)
		return err
	}

	if err := vm.metrics.MarkAccepted(tx); err != nil {
		vm.log.Warn("failed to record accepted tx",
			log.Stringer("txID", tx.ID()),
			log.Err(err),
		)
	}
	return nil
}

func (vm *VM) reject(tx *txs.Tx, err error) {
	kind := executor.Classify(err)
	fields := []log.Field{
		log.Stringer("txID", tx.ID()),
		log.String("kind", string(kind)),
		log.Err(err),
	}
	if kind == executor.Bookkeeping || kind == executor.Internal {
		vm.log.Error("tx rejected", fields...)
	} else {
		vm.log.Debug("tx rejected", fields...)
	}

	if err := vm.metrics.MarkRejected(tx, string(kind)); err != nil {
		vm.log.Warn("failed to record rejected tx",
			log.Stringer("txID", tx.ID()),
			log.Err(err),
		)
	}
}

// View runs f against the committed state.
func (vm *VM) View(f func(state.State) error) error {
	vm.lock.RLock()
	defer vm.lock.RUnlock()

	if vm.db == nil {
		return errNotInitialized
	}
	return f(state.New(vm.db, vm.epochCache))
}

// Balance returns the ledger balance of owner in token.
func (vm *VM) Balance(tokenID, owner ids.ID) (uint64, error) {
	vm.lock.RLock()
	defer vm.lock.RUnlock()

	if vm.db == nil {
		return 0, errNotInitialized
	}
	return token.NewLedger(vm.db).Balance(tokenID, owner)
}
