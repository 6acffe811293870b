// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"

	"github.com/luxfi/tunnel/vms/tunnelvm/multisig"
	"github.com/luxfi/tunnel/vms/tunnelvm/reqid"
)

var (
	_ Unsigned = (*ProposeLockTx)(nil)
	_ Unsigned = (*ExecuteLockTx)(nil)
	_ Unsigned = (*CancelLockTx)(nil)
	_ Unsigned = (*ProposeUnlockTx)(nil)
	_ Unsigned = (*ExecuteUnlockTx)(nil)
	_ Unsigned = (*CancelUnlockTx)(nil)
	_ Unsigned = (*ProposeMintTx)(nil)
	_ Unsigned = (*ExecuteMintTx)(nil)
	_ Unsigned = (*CancelMintTx)(nil)
	_ Unsigned = (*ProposeBurnTx)(nil)
	_ Unsigned = (*ExecuteBurnTx)(nil)
	_ Unsigned = (*CancelBurnTx)(nil)
)

// Request is the part of a proposal shared by every family.
type Request struct {
	Signer ids.ID   `serialize:"true" json:"signer"`
	ReqID  reqid.ID `serialize:"true" json:"reqID"`
}

func (r *Request) SignedBy() ids.ID { return r.Signer }

// Execution carries the executor signatures over a request's signing
// message.
type Execution struct {
	Signer         ids.ID               `serialize:"true" json:"signer"`
	ReqID          reqid.ID             `serialize:"true" json:"reqID"`
	Signatures     []multisig.Signature `serialize:"true" json:"signatures"`
	Executors      []common.Address     `serialize:"true" json:"executors"`
	ExecutorsIndex uint64               `serialize:"true" json:"executorsIndex"`
}

func (e *Execution) SignedBy() ids.ID { return e.Signer }

// Cancellation closes an expired request. RefundTo must be a registered
// proposer.
type Cancellation struct {
	Signer   ids.ID   `serialize:"true" json:"signer"`
	ReqID    reqid.ID `serialize:"true" json:"reqID"`
	RefundTo ids.ID   `serialize:"true" json:"refundTo"`
}

func (c *Cancellation) SignedBy() ids.ID { return c.Signer }

// ProposeLockTx deposits the signer's tokens into the vault.
type ProposeLockTx struct {
	Request `serialize:"true"`
}

func (tx *ProposeLockTx) Visit(visitor Visitor) error {
	return visitor.ProposeLockTx(tx)
}

type ExecuteLockTx struct {
	Execution `serialize:"true"`
}

func (tx *ExecuteLockTx) Visit(visitor Visitor) error {
	return visitor.ExecuteLockTx(tx)
}

type CancelLockTx struct {
	Cancellation `serialize:"true"`
}

func (tx *CancelLockTx) Visit(visitor Visitor) error {
	return visitor.CancelLockTx(tx)
}

// ProposeUnlockTx reserves locked tokens for Recipient. Only proposers may
// issue it.
type ProposeUnlockTx struct {
	Request   `serialize:"true"`
	Recipient ids.ID `serialize:"true" json:"recipient"`
}

func (tx *ProposeUnlockTx) Visit(visitor Visitor) error {
	return visitor.ProposeUnlockTx(tx)
}

type ExecuteUnlockTx struct {
	Execution `serialize:"true"`
}

func (tx *ExecuteUnlockTx) Visit(visitor Visitor) error {
	return visitor.ExecuteUnlockTx(tx)
}

type CancelUnlockTx struct {
	Cancellation `serialize:"true"`
}

func (tx *CancelUnlockTx) Visit(visitor Visitor) error {
	return visitor.CancelUnlockTx(tx)
}

// ProposeMintTx announces a mint to Recipient. Only proposers may issue it.
type ProposeMintTx struct {
	Request   `serialize:"true"`
	Recipient ids.ID `serialize:"true" json:"recipient"`
}

func (tx *ProposeMintTx) Visit(visitor Visitor) error {
	return visitor.ProposeMintTx(tx)
}

type ExecuteMintTx struct {
	Execution `serialize:"true"`
}

func (tx *ExecuteMintTx) Visit(visitor Visitor) error {
	return visitor.ExecuteMintTx(tx)
}

type CancelMintTx struct {
	Cancellation `serialize:"true"`
}

func (tx *CancelMintTx) Visit(visitor Visitor) error {
	return visitor.CancelMintTx(tx)
}

// ProposeBurnTx deposits the signer's tokens into the vault to be burned.
type ProposeBurnTx struct {
	Request `serialize:"true"`
}

func (tx *ProposeBurnTx) Visit(visitor Visitor) error {
	return visitor.ProposeBurnTx(tx)
}

type ExecuteBurnTx struct {
	Execution `serialize:"true"`
}

func (tx *ExecuteBurnTx) Visit(visitor Visitor) error {
	return visitor.ExecuteBurnTx(tx)
}

type CancelBurnTx struct {
	Cancellation `serialize:"true"`
}

func (tx *CancelBurnTx) Visit(visitor Visitor) error {
	return visitor.CancelBurnTx(tx)
}
