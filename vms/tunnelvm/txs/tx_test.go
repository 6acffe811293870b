// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/crypto"
	"github.com/luxfi/ids"

	"github.com/luxfi/tunnel/vms/tunnelvm/multisig"
	"github.com/luxfi/tunnel/vms/tunnelvm/reqid"
)

func TestTxParse(t *testing.T) {
	id, err := reqid.FromString("112233445566018899aabbccddeeff00ffff0000000000000000000000000000")
	require.NoError(t, err)

	tests := []struct {
		name     string
		unsigned Unsigned
	}{
		{
			name: "initialize",
			unsigned: &InitializeTx{
				Signer:         ids.GenerateTestID(),
				IsMint:         true,
				Executors:      []common.Address{{0x01}, {0x02}},
				Threshold:      2,
				ExecutorsIndex: 0,
			},
		},
		{
			name: "update executors",
			unsigned: &UpdateExecutorsTx{
				Signer:         ids.GenerateTestID(),
				NewExecutors:   []common.Address{{0x03}},
				Threshold:      1,
				ActiveSince:    1_700_200_000,
				Signatures:     []multisig.Signature{{0xaa}, {0xbb}},
				Executors:      []common.Address{{0x01}, {0x02}},
				ExecutorsIndex: 4,
			},
		},
		{
			name: "add token",
			unsigned: &AddTokenTx{
				Signer:     ids.GenerateTestID(),
				TokenIndex: 3,
				Token:      ids.GenerateTestID(),
				Decimals:   9,
			},
		},
		{
			name: "propose unlock",
			unsigned: &ProposeUnlockTx{
				Request: Request{
					Signer: ids.GenerateTestID(),
					ReqID:  id,
				},
				Recipient: ids.GenerateTestID(),
			},
		},
		{
			name: "execute burn",
			unsigned: &ExecuteBurnTx{
				Execution: Execution{
					Signer:         ids.GenerateTestID(),
					ReqID:          id,
					Signatures:     []multisig.Signature{{0x01}},
					Executors:      []common.Address{{0x01}},
					ExecutorsIndex: 1,
				},
			},
		},
		{
			name: "cancel lock",
			unsigned: &CancelLockTx{
				Cancellation: Cancellation{
					Signer:   ids.GenerateTestID(),
					ReqID:    id,
					RefundTo: ids.GenerateTestID(),
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			tx, err := NewTx(tt.unsigned)
			require.NoError(err)
			require.NotEqual(ids.Empty, tx.ID())

			parsed, err := Parse(tx.Bytes())
			require.NoError(err)
			require.Equal(tx.ID(), parsed.ID())
			require.Equal(tx.Bytes(), parsed.Bytes())
			require.Equal(tt.unsigned, parsed.Unsigned)
			require.Equal(tt.unsigned.SignedBy(), parsed.Unsigned.SignedBy())
		})
	}
}

func TestTxIDsDiffer(t *testing.T) {
	require := require.New(t)

	signer := ids.GenerateTestID()
	a, err := NewTx(&AddProposerTx{Signer: signer, Proposer: ids.GenerateTestID()})
	require.NoError(err)
	b, err := NewTx(&RemoveProposerTx{Signer: signer, Proposer: ids.GenerateTestID()})
	require.NoError(err)
	require.NotEqual(a.ID(), b.ID())
}

func TestSignedTx(t *testing.T) {
	require := require.New(t)

	key, err := crypto.GenerateKey()
	require.NoError(err)
	signer := KeyIdentity(key)

	tx, err := NewSigned(&TransferAdminTx{Signer: signer, NewAdmin: ids.GenerateTestID()}, key)
	require.NoError(err)
	require.Len(tx.Creds, 1)
	require.NoError(tx.VerifyCredential())

	parsed, err := Parse(tx.Bytes())
	require.NoError(err)
	require.Equal(tx.ID(), parsed.ID())
	require.NoError(parsed.VerifyCredential())

	other, err := crypto.GenerateKey()
	require.NoError(err)
	require.NoError(parsed.Sign(other))
	require.NotEqual(tx.ID(), parsed.ID())
	require.ErrorIs(parsed.VerifyCredential(), ErrCredentialSignerMismatch)

	unsigned, err := NewTx(&TransferAdminTx{Signer: signer})
	require.NoError(err)
	require.ErrorIs(unsigned.VerifyCredential(), ErrWrongNumberOfCredentials)
}

func TestIdentity(t *testing.T) {
	require := require.New(t)

	addr := common.HexToAddress("0x00112233445566778899aabbccddeeff00112233")
	id := Identity(addr)
	require.Equal(make([]byte, 12), id[:12])
	require.Equal(addr.Bytes(), id[12:])
}

func TestNewTxNil(t *testing.T) {
	_, err := NewTx(nil)
	require.ErrorIs(t, err, ErrNilTx)
}

func TestParseGarbage(t *testing.T) {
	require := require.New(t)

	_, err := Parse(nil)
	require.Error(err) //nolint:forbidigo // codec errors are not exported

	_, err = Parse([]byte{0x00, 0x00, 0xff, 0xff, 0xff, 0xff})
	require.Error(err) //nolint:forbidigo // codec errors are not exported
}
