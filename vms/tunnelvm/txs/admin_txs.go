// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"

	"github.com/luxfi/tunnel/vms/tunnelvm/multisig"
)

var (
	_ Unsigned = (*InitializeTx)(nil)
	_ Unsigned = (*TransferAdminTx)(nil)
	_ Unsigned = (*AddProposerTx)(nil)
	_ Unsigned = (*RemoveProposerTx)(nil)
	_ Unsigned = (*UpdateExecutorsTx)(nil)
	_ Unsigned = (*AddTokenTx)(nil)
	_ Unsigned = (*RemoveTokenTx)(nil)
)

// InitializeTx sets up a deployment. Signer becomes the admin.
type InitializeTx struct {
	Signer ids.ID `serialize:"true" json:"signer"`
	// IsMint selects mint mode; otherwise the deployment runs in lock mode.
	IsMint         bool             `serialize:"true" json:"isMint"`
	Executors      []common.Address `serialize:"true" json:"executors"`
	Threshold      uint64           `serialize:"true" json:"threshold"`
	ExecutorsIndex uint64           `serialize:"true" json:"executorsIndex"`
}

func (tx *InitializeTx) SignedBy() ids.ID { return tx.Signer }

func (tx *InitializeTx) Visit(visitor Visitor) error {
	return visitor.InitializeTx(tx)
}

type TransferAdminTx struct {
	Signer   ids.ID `serialize:"true" json:"signer"`
	NewAdmin ids.ID `serialize:"true" json:"newAdmin"`
}

func (tx *TransferAdminTx) SignedBy() ids.ID { return tx.Signer }

func (tx *TransferAdminTx) Visit(visitor Visitor) error {
	return visitor.TransferAdminTx(tx)
}

type AddProposerTx struct {
	Signer   ids.ID `serialize:"true" json:"signer"`
	Proposer ids.ID `serialize:"true" json:"proposer"`
}

func (tx *AddProposerTx) SignedBy() ids.ID { return tx.Signer }

func (tx *AddProposerTx) Visit(visitor Visitor) error {
	return visitor.AddProposerTx(tx)
}

type RemoveProposerTx struct {
	Signer   ids.ID `serialize:"true" json:"signer"`
	Proposer ids.ID `serialize:"true" json:"proposer"`
}

func (tx *RemoveProposerTx) SignedBy() ids.ID { return tx.Signer }

func (tx *RemoveProposerTx) Visit(visitor Visitor) error {
	return visitor.RemoveProposerTx(tx)
}

// UpdateExecutorsTx announces the next executor epoch. It is authorized by a
// quorum of the epoch at ExecutorsIndex, not by Signer, who only pays for it.
type UpdateExecutorsTx struct {
	Signer       ids.ID           `serialize:"true" json:"signer"`
	NewExecutors []common.Address `serialize:"true" json:"newExecutors"`
	Threshold    uint64           `serialize:"true" json:"threshold"`
	ActiveSince  uint64           `serialize:"true" json:"activeSince"`

	Signatures     []multisig.Signature `serialize:"true" json:"signatures"`
	Executors      []common.Address     `serialize:"true" json:"executors"`
	ExecutorsIndex uint64               `serialize:"true" json:"executorsIndex"`
}

func (tx *UpdateExecutorsTx) SignedBy() ids.ID { return tx.Signer }

func (tx *UpdateExecutorsTx) Visit(visitor Visitor) error {
	return visitor.UpdateExecutorsTx(tx)
}

// AddTokenTx registers a token. A zero Vault binds the token to the
// deployment's contract signer.
type AddTokenTx struct {
	Signer     ids.ID `serialize:"true" json:"signer"`
	TokenIndex uint8  `serialize:"true" json:"tokenIndex"`
	Token      ids.ID `serialize:"true" json:"token"`
	Decimals   uint8  `serialize:"true" json:"decimals"`
	Vault      ids.ID `serialize:"true" json:"vault"`
}

func (tx *AddTokenTx) SignedBy() ids.ID { return tx.Signer }

func (tx *AddTokenTx) Visit(visitor Visitor) error {
	return visitor.AddTokenTx(tx)
}

type RemoveTokenTx struct {
	Signer     ids.ID `serialize:"true" json:"signer"`
	TokenIndex uint8  `serialize:"true" json:"tokenIndex"`
}

func (tx *RemoveTokenTx) SignedBy() ids.ID { return tx.Signer }

func (tx *RemoveTokenTx) Visit(visitor Visitor) error {
	return visitor.RemoveTokenTx(tx)
}
