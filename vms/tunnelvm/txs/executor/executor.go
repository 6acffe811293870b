// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package executor applies tunnel commands to state.
package executor

import (
	"errors"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/tunnel/vms/tunnelvm/executors"
	"github.com/luxfi/tunnel/vms/tunnelvm/multisig"
	"github.com/luxfi/tunnel/vms/tunnelvm/state"
	"github.com/luxfi/tunnel/vms/tunnelvm/token"
	"github.com/luxfi/tunnel/vms/tunnelvm/txs"
)

var _ txs.Visitor = (*Executor)(nil)

// Executor applies one command. State and Mover must write to the same
// atomic batch: when a visit returns an error the caller discards both.
type Executor struct {
	*Backend
	State state.State
	Mover token.Mover
	Tx    *txs.Tx
}

// Apply authenticates the command's signer and then applies the command.
func (e *Executor) Apply() error {
	if err := e.Tx.VerifyCredential(); err != nil {
		return err
	}
	return e.Tx.Unsigned.Visit(e)
}

func (e *Executor) InitializeTx(tx *txs.InitializeTx) error {
	_, err := e.State.GetBasicConfig()
	switch {
	case err == nil:
		return executors.ErrExecutorsAlreadyInitialized
	case !errors.Is(err, state.ErrNotInitialized):
		return err
	}

	epoch, err := executors.Genesis(tx.Executors, tx.Threshold, tx.ExecutorsIndex, e.Config.MaxExecutors)
	if err != nil {
		return err
	}

	cfg := state.NewBasicConfig(tx.Signer, tx.IsMint)
	cfg.ExecutorsGroupLength = tx.ExecutorsIndex + 1
	if err := e.State.PutBasicConfig(cfg); err != nil {
		return err
	}
	if err := e.State.PutEpoch(epoch); err != nil {
		return err
	}
	signer := ContractSigner(e.ChainID)
	if err := e.State.PutContractSigner(signer); err != nil {
		return err
	}

	e.Log.Info("Initialized",
		log.Stringer("admin", tx.Signer),
		log.Bool("isMint", tx.IsMint),
		log.Stringer("contractSigner", signer),
		log.Uint64("executorsIndex", epoch.Index),
		log.Uint64("threshold", epoch.Threshold),
		log.Int("executors", len(epoch.Members)),
	)
	return nil
}

func (e *Executor) TransferAdminTx(tx *txs.TransferAdminTx) error {
	cfg, err := e.adminConfig(tx.Signer)
	if err != nil {
		return err
	}
	prev := cfg.Admin
	cfg.Admin = tx.NewAdmin
	if err := e.State.PutBasicConfig(cfg); err != nil {
		return err
	}

	e.Log.Info("AdminTransferred",
		log.Stringer("prevAdmin", prev),
		log.Stringer("newAdmin", tx.NewAdmin),
	)
	return nil
}

func (e *Executor) AddProposerTx(tx *txs.AddProposerTx) error {
	cfg, err := e.adminConfig(tx.Signer)
	if err != nil {
		return err
	}
	if err := cfg.AddProposer(tx.Proposer, e.Config.MaxProposers); err != nil {
		return err
	}
	if err := e.State.PutBasicConfig(cfg); err != nil {
		return err
	}

	e.Log.Info("ProposerAdded", log.Stringer("proposer", tx.Proposer))
	return nil
}

func (e *Executor) RemoveProposerTx(tx *txs.RemoveProposerTx) error {
	cfg, err := e.adminConfig(tx.Signer)
	if err != nil {
		return err
	}
	if err := cfg.RemoveProposer(tx.Proposer); err != nil {
		return err
	}
	if err := e.State.PutBasicConfig(cfg); err != nil {
		return err
	}

	e.Log.Info("ProposerRemoved", log.Stringer("proposer", tx.Proposer))
	return nil
}

func (e *Executor) AddTokenTx(tx *txs.AddTokenTx) error {
	cfg, err := e.adminConfig(tx.Signer)
	if err != nil {
		return err
	}

	vault := tx.Vault
	if vault == ids.Empty {
		vault, err = e.State.GetContractSigner()
		if err != nil {
			return err
		}
	}
	entry := state.TokenEntry{
		Index:    tx.TokenIndex,
		Identity: tx.Token,
		Decimals: tx.Decimals,
		Vault:    vault,
	}
	if err := cfg.AddToken(entry, e.Config.MaxTokens); err != nil {
		return err
	}
	if err := e.State.PutBasicConfig(cfg); err != nil {
		return err
	}

	e.Log.Info("TokenAdded",
		log.Int("tokenIndex", int(tx.TokenIndex)),
		log.Stringer("token", tx.Token),
		log.Int("decimals", int(tx.Decimals)),
		log.Stringer("vault", vault),
	)
	return nil
}

func (e *Executor) RemoveTokenTx(tx *txs.RemoveTokenTx) error {
	cfg, err := e.adminConfig(tx.Signer)
	if err != nil {
		return err
	}
	removed, err := cfg.RemoveToken(tx.TokenIndex)
	if err != nil {
		return err
	}
	if err := e.State.PutBasicConfig(cfg); err != nil {
		return err
	}

	e.Log.Info("TokenRemoved",
		log.Int("tokenIndex", int(removed.Index)),
		log.Stringer("token", removed.Identity),
	)
	return nil
}

// UpdateExecutorsTx installs the successor of the epoch at ExecutorsIndex.
// The current epoch stops signing once the successor becomes active.
func (e *Executor) UpdateExecutorsTx(tx *txs.UpdateExecutorsTx) error {
	now := e.now()
	rotation := &executors.Rotation{
		Members:     tx.NewExecutors,
		Threshold:   tx.Threshold,
		ActiveSince: tx.ActiveSince,
	}
	if err := rotation.Verify(now, e.rotationWindow(), e.Config.MaxExecutors); err != nil {
		return err
	}

	cfg, err := e.State.GetBasicConfig()
	if err != nil {
		return err
	}
	current, err := e.epoch(cfg, tx.ExecutorsIndex)
	if err != nil {
		return err
	}
	msg := rotation.Message(e.Config.Channel, tx.ExecutorsIndex)
	if err := multisig.Verify(msg, tx.Signatures, tx.Executors, current, now); err != nil {
		return err
	}

	var pending *executors.Epoch
	nextIndex := tx.ExecutorsIndex + 1
	if nextIndex < cfg.ExecutorsGroupLength {
		pending, err = e.State.GetEpoch(nextIndex)
		if err != nil {
			return err
		}
	}
	updated, next, err := rotation.Apply(current, pending)
	if err != nil {
		return err
	}
	if err := e.State.PutEpoch(updated); err != nil {
		return err
	}
	if err := e.State.PutEpoch(next); err != nil {
		return err
	}
	if pending == nil {
		cfg.ExecutorsGroupLength = nextIndex + 1
		if err := e.State.PutBasicConfig(cfg); err != nil {
			return err
		}
	}

	e.Log.Info("ExecutorsUpdated",
		log.Uint64("index", next.Index),
		log.Uint64("threshold", next.Threshold),
		log.Uint64("activeSince", next.ActiveSince),
		log.Int("executors", len(next.Members)),
		log.Bool("overwritten", pending != nil),
	)
	return nil
}

// adminConfig loads the config and requires signer to be its admin.
func (e *Executor) adminConfig(signer ids.ID) (*state.BasicConfig, error) {
	cfg, err := e.State.GetBasicConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Admin != signer {
		return nil, ErrRequireAdminSigner
	}
	return cfg, nil
}

// epoch loads the executor epoch at index.
func (e *Executor) epoch(cfg *state.BasicConfig, index uint64) (*executors.Epoch, error) {
	if index >= cfg.ExecutorsGroupLength {
		return nil, executors.ErrInvalidExecutorsIndex
	}
	return e.State.GetEpoch(index)
}
