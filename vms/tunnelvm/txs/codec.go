// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"math"

	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"

	"github.com/luxfi/tunnel/utils/wrappers"
)

const CodecVersion = 0

var Codec codec.Manager

func init() {
	Codec = codec.NewManager(math.MaxInt)
	lc := linearcodec.NewDefault()

	// The registration order fixes the type ids on the wire. Append only.
	errs := wrappers.Errs{}
	errs.Add(
		lc.RegisterType(&InitializeTx{}),
		lc.RegisterType(&TransferAdminTx{}),
		lc.RegisterType(&AddProposerTx{}),
		lc.RegisterType(&RemoveProposerTx{}),
		lc.RegisterType(&UpdateExecutorsTx{}),
		lc.RegisterType(&AddTokenTx{}),
		lc.RegisterType(&RemoveTokenTx{}),

		lc.RegisterType(&ProposeLockTx{}),
		lc.RegisterType(&ExecuteLockTx{}),
		lc.RegisterType(&CancelLockTx{}),
		lc.RegisterType(&ProposeUnlockTx{}),
		lc.RegisterType(&ExecuteUnlockTx{}),
		lc.RegisterType(&CancelUnlockTx{}),
		lc.RegisterType(&ProposeMintTx{}),
		lc.RegisterType(&ExecuteMintTx{}),
		lc.RegisterType(&CancelMintTx{}),
		lc.RegisterType(&ProposeBurnTx{}),
		lc.RegisterType(&ExecuteBurnTx{}),
		lc.RegisterType(&CancelBurnTx{}),

		Codec.RegisterCodec(CodecVersion, lc),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}
