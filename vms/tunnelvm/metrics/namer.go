// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import "github.com/luxfi/tunnel/vms/tunnelvm/txs"

var _ txs.Visitor = (*namer)(nil)

type namer struct {
	name string
}

func (n *namer) set(name string) error {
	n.name = name
	return nil
}

func (n *namer) InitializeTx(*txs.InitializeTx) error { return n.set("initialize") }

func (n *namer) TransferAdminTx(*txs.TransferAdminTx) error { return n.set("transfer_admin") }

func (n *namer) AddProposerTx(*txs.AddProposerTx) error { return n.set("add_proposer") }

func (n *namer) RemoveProposerTx(*txs.RemoveProposerTx) error { return n.set("remove_proposer") }

func (n *namer) UpdateExecutorsTx(*txs.UpdateExecutorsTx) error { return n.set("update_executors") }

func (n *namer) AddTokenTx(*txs.AddTokenTx) error { return n.set("add_token") }

func (n *namer) RemoveTokenTx(*txs.RemoveTokenTx) error { return n.set("remove_token") }

func (n *namer) ProposeLockTx(*txs.ProposeLockTx) error { return n.set("propose_lock") }

func (n *namer) ExecuteLockTx(*txs.ExecuteLockTx) error { return n.set("execute_lock") }

func (n *namer) CancelLockTx(*txs.CancelLockTx) error { return n.set("cancel_lock") }

func (n *namer) ProposeUnlockTx(*txs.ProposeUnlockTx) error { return n.set("propose_unlock") }

func (n *namer) ExecuteUnlockTx(*txs.ExecuteUnlockTx) error { return n.set("execute_unlock") }

func (n *namer) CancelUnlockTx(*txs.CancelUnlockTx) error { return n.set("cancel_unlock") }

func (n *namer) ProposeMintTx(*txs.ProposeMintTx) error { return n.set("propose_mint") }

func (n *namer) ExecuteMintTx(*txs.ExecuteMintTx) error { return n.set("execute_mint") }

func (n *namer) CancelMintTx(*txs.CancelMintTx) error { return n.set("cancel_mint") }

func (n *namer) ProposeBurnTx(*txs.ProposeBurnTx) error { return n.set("propose_burn") }

func (n *namer) ExecuteBurnTx(*txs.ExecuteBurnTx) error { return n.set("execute_burn") }

func (n *namer) CancelBurnTx(*txs.CancelBurnTx) error { return n.set("cancel_burn") }
