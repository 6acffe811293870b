// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"
	"time"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/tunnel/vms/tunnelvm/config"
	"github.com/luxfi/tunnel/vms/tunnelvm/multisig"
	"github.com/luxfi/tunnel/vms/tunnelvm/reqid"
	"github.com/luxfi/tunnel/vms/tunnelvm/state"
	"github.com/luxfi/tunnel/vms/tunnelvm/txs"

	safemath "github.com/luxfi/tunnel/utils/math"
)

func (e *Executor) ProposeLockTx(tx *txs.ProposeLockTx) error {
	cfg, err := e.modeConfig(false)
	if err != nil {
		return err
	}
	if err := tx.ReqID.AssertMintOppositeSide(e.Config.HubID); err != nil {
		return err
	}
	if tx.ReqID.Kind() != reqid.LockMint {
		return ErrNotLockMint
	}
	proposer := tx.Signer
	if err := e.checkNewRequest(state.Lock, tx.ReqID); err != nil {
		return err
	}
	if proposer == ids.Empty {
		return ErrInvalidProposer
	}
	entry, amount, err := e.tokenAmount(cfg, tx.ReqID)
	if err != nil {
		return err
	}

	if err := e.State.PutProposal(state.Lock, tx.ReqID, state.NewProposal(proposer)); err != nil {
		return err
	}
	if err := e.Mover.Transfer(entry.Identity, proposer, entry.Vault, amount); err != nil {
		return err
	}

	e.Log.Info("TokenLockProposed",
		log.Stringer("reqID", tx.ReqID),
		log.Stringer("proposer", proposer),
	)
	return nil
}

func (e *Executor) ExecuteLockTx(tx *txs.ExecuteLockTx) error {
	cfg, proposal, err := e.execute(false, state.Lock, &tx.Execution)
	if err != nil {
		return err
	}
	entry, amount, err := e.tokenAmount(cfg, tx.ReqID)
	if err != nil {
		return err
	}
	entry.LockedBalance, err = safemath.Add(entry.LockedBalance, amount)
	if err != nil {
		return reqid.ErrArithmeticOverflow
	}
	if err := e.putToken(cfg, entry); err != nil {
		return err
	}

	e.Log.Info("TokenLockExecuted",
		log.Stringer("reqID", tx.ReqID),
		log.Stringer("proposer", proposal.Identity),
	)
	return nil
}

func (e *Executor) CancelLockTx(tx *txs.CancelLockTx) error {
	cfg, proposal, err := e.cancel(false, state.Lock, &tx.Cancellation, e.Config.ExpirePeriod)
	if err != nil {
		return err
	}
	entry, amount, err := e.tokenAmount(cfg, tx.ReqID)
	if err != nil {
		return err
	}
	if err := e.Mover.Transfer(entry.Identity, entry.Vault, proposal.Identity, amount); err != nil {
		return err
	}

	e.Log.Info("TokenLockCancelled",
		log.Stringer("reqID", tx.ReqID),
		log.Stringer("proposer", proposal.Identity),
	)
	return nil
}

func (e *Executor) ProposeUnlockTx(tx *txs.ProposeUnlockTx) error {
	cfg, err := e.modeConfig(false)
	if err != nil {
		return err
	}
	if err := tx.ReqID.AssertMintOppositeSide(e.Config.HubID); err != nil {
		return err
	}
	if tx.ReqID.Kind() != reqid.BurnUnlock {
		return ErrNotBurnUnlock
	}
	if !cfg.IsProposer(tx.Signer) {
		return ErrRequireProposerSigner
	}
	if err := e.checkNewRequest(state.Unlock, tx.ReqID); err != nil {
		return err
	}
	if tx.Recipient == ids.Empty {
		return ErrInvalidRecipient
	}
	entry, amount, err := e.tokenAmount(cfg, tx.ReqID)
	if err != nil {
		return err
	}
	locked, err := safemath.Sub(entry.LockedBalance, amount)
	if err != nil {
		return fmt.Errorf("%w: token %d has %d locked, needs %d",
			ErrLockedBalanceInsufficient, entry.Index, entry.LockedBalance, amount)
	}
	entry.LockedBalance = locked
	if err := e.putToken(cfg, entry); err != nil {
		return err
	}
	if err := e.State.PutProposal(state.Unlock, tx.ReqID, state.NewProposal(tx.Recipient)); err != nil {
		return err
	}

	e.Log.Info("TokenUnlockProposed",
		log.Stringer("reqID", tx.ReqID),
		log.Stringer("recipient", tx.Recipient),
	)
	return nil
}

func (e *Executor) ExecuteUnlockTx(tx *txs.ExecuteUnlockTx) error {
	cfg, proposal, err := e.execute(false, state.Unlock, &tx.Execution)
	if err != nil {
		return err
	}
	entry, amount, err := e.tokenAmount(cfg, tx.ReqID)
	if err != nil {
		return err
	}
	if err := e.Mover.Transfer(entry.Identity, entry.Vault, proposal.Identity, amount); err != nil {
		return err
	}

	e.Log.Info("TokenUnlockExecuted",
		log.Stringer("reqID", tx.ReqID),
		log.Stringer("recipient", proposal.Identity),
	)
	return nil
}

func (e *Executor) CancelUnlockTx(tx *txs.CancelUnlockTx) error {
	cfg, proposal, err := e.cancel(false, state.Unlock, &tx.Cancellation, e.Config.ExpireExtraPeriod)
	if err != nil {
		return err
	}
	entry, amount, err := e.tokenAmount(cfg, tx.ReqID)
	if err != nil {
		return err
	}
	entry.LockedBalance, err = safemath.Add(entry.LockedBalance, amount)
	if err != nil {
		return reqid.ErrArithmeticOverflow
	}
	if err := e.putToken(cfg, entry); err != nil {
		return err
	}

	e.Log.Info("TokenUnlockCancelled",
		log.Stringer("reqID", tx.ReqID),
		log.Stringer("recipient", proposal.Identity),
	)
	return nil
}

func (e *Executor) ProposeMintTx(tx *txs.ProposeMintTx) error {
	cfg, err := e.modeConfig(true)
	if err != nil {
		return err
	}
	if err := tx.ReqID.AssertMintSide(e.Config.HubID); err != nil {
		return err
	}
	if kind := tx.ReqID.Kind(); kind != reqid.LockMint && kind != reqid.BurnMint {
		return ErrNotLockMint
	}
	if !cfg.IsProposer(tx.Signer) {
		return ErrRequireProposerSigner
	}
	if err := e.checkNewRequest(state.Mint, tx.ReqID); err != nil {
		return err
	}
	if tx.Recipient == ids.Empty {
		return ErrInvalidRecipient
	}
	if _, _, err := e.tokenAmount(cfg, tx.ReqID); err != nil {
		return err
	}
	if err := e.State.PutProposal(state.Mint, tx.ReqID, state.NewProposal(tx.Recipient)); err != nil {
		return err
	}

	e.Log.Info("TokenMintProposed",
		log.Stringer("reqID", tx.ReqID),
		log.Stringer("recipient", tx.Recipient),
	)
	return nil
}

func (e *Executor) ExecuteMintTx(tx *txs.ExecuteMintTx) error {
	cfg, proposal, err := e.execute(true, state.Mint, &tx.Execution)
	if err != nil {
		return err
	}
	entry, amount, err := e.tokenAmount(cfg, tx.ReqID)
	if err != nil {
		return err
	}
	if err := e.Mover.Mint(entry.Identity, proposal.Identity, amount); err != nil {
		return err
	}

	e.Log.Info("TokenMintExecuted",
		log.Stringer("reqID", tx.ReqID),
		log.Stringer("recipient", proposal.Identity),
	)
	return nil
}

func (e *Executor) CancelMintTx(tx *txs.CancelMintTx) error {
	// Nothing moved at propose time, so the record closes even if the token
	// has since been removed.
	_, proposal, err := e.cancel(true, state.Mint, &tx.Cancellation, e.Config.ExpireExtraPeriod)
	if err != nil {
		return err
	}

	e.Log.Info("TokenMintCancelled",
		log.Stringer("reqID", tx.ReqID),
		log.Stringer("recipient", proposal.Identity),
	)
	return nil
}

func (e *Executor) ProposeBurnTx(tx *txs.ProposeBurnTx) error {
	cfg, err := e.modeConfig(true)
	if err != nil {
		return err
	}
	switch tx.ReqID.Kind() {
	case reqid.BurnUnlock:
		err = tx.ReqID.AssertMintSide(e.Config.HubID)
	case reqid.BurnMint:
		err = tx.ReqID.AssertMintOppositeSide(e.Config.HubID)
	default:
		err = ErrNotBurnUnlock
	}
	if err != nil {
		return err
	}
	proposer := tx.Signer
	if err := e.checkNewRequest(state.Burn, tx.ReqID); err != nil {
		return err
	}
	if proposer == ids.Empty {
		return ErrInvalidProposer
	}
	entry, amount, err := e.tokenAmount(cfg, tx.ReqID)
	if err != nil {
		return err
	}

	if err := e.State.PutProposal(state.Burn, tx.ReqID, state.NewProposal(proposer)); err != nil {
		return err
	}
	if err := e.Mover.Transfer(entry.Identity, proposer, entry.Vault, amount); err != nil {
		return err
	}

	e.Log.Info("TokenBurnProposed",
		log.Stringer("reqID", tx.ReqID),
		log.Stringer("proposer", proposer),
	)
	return nil
}

func (e *Executor) ExecuteBurnTx(tx *txs.ExecuteBurnTx) error {
	cfg, proposal, err := e.execute(true, state.Burn, &tx.Execution)
	if err != nil {
		return err
	}
	entry, amount, err := e.tokenAmount(cfg, tx.ReqID)
	if err != nil {
		return err
	}
	if err := e.Mover.Burn(entry.Identity, entry.Vault, amount); err != nil {
		return err
	}

	e.Log.Info("TokenBurnExecuted",
		log.Stringer("reqID", tx.ReqID),
		log.Stringer("proposer", proposal.Identity),
	)
	return nil
}

func (e *Executor) CancelBurnTx(tx *txs.CancelBurnTx) error {
	cfg, proposal, err := e.cancel(true, state.Burn, &tx.Cancellation, e.Config.ExpirePeriod)
	if err != nil {
		return err
	}
	entry, amount, err := e.tokenAmount(cfg, tx.ReqID)
	if err != nil {
		return err
	}
	if err := e.Mover.Transfer(entry.Identity, entry.Vault, proposal.Identity, amount); err != nil {
		return err
	}

	e.Log.Info("TokenBurnCancelled",
		log.Stringer("reqID", tx.ReqID),
		log.Stringer("proposer", proposal.Identity),
	)
	return nil
}

// modeConfig loads the config and requires the chain to run in the given
// mode.
func (e *Executor) modeConfig(mint bool) (*state.BasicConfig, error) {
	cfg, err := e.State.GetBasicConfig()
	if err != nil {
		return nil, err
	}
	switch {
	case mint && !cfg.MintOrLock:
		return nil, ErrNotMintContract
	case !mint && cfg.MintOrLock:
		return nil, ErrNotLockContract
	}
	return cfg, nil
}

// checkNewRequest enforces the proposal window and that no record exists for
// id in family.
func (e *Executor) checkNewRequest(family state.Family, id reqid.ID) error {
	err := id.CheckCreatedTime(
		e.now(),
		config.Seconds(e.Config.ProposePeriod),
		config.Seconds(e.Config.CreatedTimeTolerance),
	)
	if err != nil {
		return err
	}
	proposal, err := e.State.GetProposal(family, id)
	if err != nil {
		return err
	}
	if proposal.Status != state.Empty {
		return fmt.Errorf("%w: %s %s already %s", ErrInvalidReqID, family, id, proposal.Status)
	}
	return nil
}

// tokenAmount resolves the request's token and scales its amount to the
// token's decimals.
func (e *Executor) tokenAmount(cfg *state.BasicConfig, id reqid.ID) (state.TokenEntry, uint64, error) {
	entry, err := cfg.Token(id.TokenIndex())
	if err != nil {
		return state.TokenEntry{}, 0, err
	}
	amount, err := id.Amount(entry.Decimals)
	if err != nil {
		return state.TokenEntry{}, 0, err
	}
	return entry, amount, nil
}

func (e *Executor) putToken(cfg *state.BasicConfig, entry state.TokenEntry) error {
	if err := cfg.UpdateToken(entry); err != nil {
		return err
	}
	return e.State.PutBasicConfig(cfg)
}

// openProposal returns the record of id in family, which must be proposed
// and not yet executed.
func (e *Executor) openProposal(family state.Family, id reqid.ID) (state.Proposal, error) {
	proposal, err := e.State.GetProposal(family, id)
	if err != nil {
		return state.Proposal{}, err
	}
	switch proposal.Status {
	case state.Empty:
		return state.Proposal{}, fmt.Errorf("%w: %s %s", state.ErrProposalNotFound, family, id)
	case state.Executed:
		return state.Proposal{}, fmt.Errorf("%w: %s %s already executed", ErrInvalidReqID, family, id)
	}
	return proposal, nil
}

// execute verifies the executor quorum over an open proposal and marks it
// executed. The caller applies the family's side effect.
func (e *Executor) execute(mint bool, family state.Family, exec *txs.Execution) (*state.BasicConfig, state.Proposal, error) {
	cfg, err := e.modeConfig(mint)
	if err != nil {
		return nil, state.Proposal{}, err
	}
	proposal, err := e.openProposal(family, exec.ReqID)
	if err != nil {
		return nil, state.Proposal{}, err
	}
	epoch, err := e.epoch(cfg, exec.ExecutorsIndex)
	if err != nil {
		return nil, state.Proposal{}, err
	}
	msg := exec.ReqID.SigningMessage(e.Config.Channel)
	if err := multisig.Verify(msg, exec.Signatures, exec.Executors, epoch, e.now()); err != nil {
		return nil, state.Proposal{}, err
	}
	if err := e.State.PutProposal(family, exec.ReqID, state.ExecutedProposal); err != nil {
		return nil, state.Proposal{}, err
	}
	return cfg, proposal, nil
}

// cancel closes an expired open proposal. The caller reverses the family's
// propose-time bookkeeping.
func (e *Executor) cancel(
	mint bool,
	family state.Family,
	c *txs.Cancellation,
	period time.Duration,
) (*state.BasicConfig, state.Proposal, error) {
	cfg, err := e.modeConfig(mint)
	if err != nil {
		return nil, state.Proposal{}, err
	}
	proposal, err := e.openProposal(family, c.ReqID)
	if err != nil {
		return nil, state.Proposal{}, err
	}
	expiry, err := safemath.Add(c.ReqID.CreatedTime(), config.Seconds(period))
	if err != nil {
		return nil, state.Proposal{}, reqid.ErrArithmeticOverflow
	}
	if now := e.now(); now <= expiry {
		return nil, state.Proposal{}, fmt.Errorf("%w: %d seconds left", ErrWaitUntilExpired, expiry-now+1)
	}
	if !cfg.IsProposer(c.RefundTo) {
		return nil, state.Proposal{}, ErrRequireProposerSigner
	}
	if err := e.State.DeleteProposal(family, c.ReqID); err != nil {
		return nil, state.Proposal{}, err
	}
	return cfg, proposal, nil
}
