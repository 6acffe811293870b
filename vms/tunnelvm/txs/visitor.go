// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

// Allow vm to execute custom logic against the underlying command types.
type Visitor interface {
	// Administration:
	InitializeTx(*InitializeTx) error
	TransferAdminTx(*TransferAdminTx) error
	AddProposerTx(*AddProposerTx) error
	RemoveProposerTx(*RemoveProposerTx) error
	UpdateExecutorsTx(*UpdateExecutorsTx) error
	AddTokenTx(*AddTokenTx) error
	RemoveTokenTx(*RemoveTokenTx) error

	// Lock mode:
	ProposeLockTx(*ProposeLockTx) error
	ExecuteLockTx(*ExecuteLockTx) error
	CancelLockTx(*CancelLockTx) error
	ProposeUnlockTx(*ProposeUnlockTx) error
	ExecuteUnlockTx(*ExecuteUnlockTx) error
	CancelUnlockTx(*CancelUnlockTx) error

	// Mint mode:
	ProposeMintTx(*ProposeMintTx) error
	ExecuteMintTx(*ExecuteMintTx) error
	CancelMintTx(*CancelMintTx) error
	ProposeBurnTx(*ProposeBurnTx) error
	ExecuteBurnTx(*ExecuteBurnTx) error
	CancelBurnTx(*CancelBurnTx) error
}
