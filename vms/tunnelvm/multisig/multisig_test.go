// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multisig

import (
	"crypto/ecdsa"
	"encoding/hex"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/crypto"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/tunnel/vms/tunnelvm/executors"
)

func TestRecoverKnownVector(t *testing.T) {
	require := require.New(t)

	sig, err := SignatureFromString("6fd862958c41d532022e404a809e92ec699bd0739f8d782ca752b07ff978f341f43065a96dc53a21b4eb4ce96a84a7c4103e3485b0c87d868df545fcce0f3983")
	require.NoError(err)

	signer := Recover([]byte("stupid"), sig)
	require.Equal(common.HexToAddress("0x2eF8a51F8fF129DBb874A0efB021702F59C1b211"), signer)
}

func TestAddressFromPublicKey(t *testing.T) {
	require := require.New(t)

	pk, err := hex.DecodeString("045139c6f948e38d3ffa36df836016aea08f37a940a91323f2a785d17be4353e382b488d0c543c505ec40046afbb2543ba6bb56ca4e26dc6abee13e9add6b7e189")
	require.NoError(err)

	pub, err := crypto.UnmarshalPubkey(pk)
	require.NoError(err)
	require.Equal(common.HexToAddress("0x052c7707093534035fc2ed60de35e11bebb6486b"), crypto.PubkeyToAddress(*pub))
}

func TestRecoverInvalidSignature(t *testing.T) {
	var sig Signature
	require.Equal(t, common.Address{}, Recover([]byte("stupid"), sig))
}

func TestSignRecover(t *testing.T) {
	require := require.New(t)

	for i := 0; i < 16; i++ {
		key, err := crypto.GenerateKey()
		require.NoError(err)

		msg := []byte("\x19Ethereum Signed Message:\n5hello")
		sig, err := Sign(msg, key)
		require.NoError(err)
		require.Equal(crypto.PubkeyToAddress(key.PublicKey), Recover(msg, sig))
		require.NotEqual(crypto.PubkeyToAddress(key.PublicKey), Recover([]byte("other"), sig))
	}
}

func TestSignatureText(t *testing.T) {
	require := require.New(t)

	var sig Signature
	sig[0], sig[63] = 0xab, 0xcd
	text, err := sig.MarshalText()
	require.NoError(err)

	var parsed Signature
	require.NoError(parsed.UnmarshalText(text))
	require.Equal(sig, parsed)

	_, err = SignatureFromString("0xabcd")
	require.ErrorIs(err, errInvalidSignatureLength)
}

type signer struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

func newSigners(t *testing.T, n int) []signer {
	signers := make([]signer, n)
	for i := range signers {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		signers[i] = signer{key: key, addr: crypto.PubkeyToAddress(key.PublicKey)}
	}
	return signers
}

func TestVerify(t *testing.T) {
	signers := newSigners(t, 3)
	outsider := newSigners(t, 1)[0]
	msg := []byte("\x19Ethereum Signed Message:\n4test")
	epoch := &executors.Epoch{
		Threshold:   2,
		ActiveSince: 1,
		Members:     []common.Address{signers[0].addr, signers[1].addr, signers[2].addr},
	}

	sign := func(s signer, message []byte) Signature {
		sig, err := Sign(message, s.key)
		require.NoError(t, err)
		return sig
	}

	tests := []struct {
		name        string
		message     []byte
		sigs        []Signature
		claimed     []common.Address
		expectedErr error
	}{
		{
			name:    "valid quorum",
			message: msg,
			sigs:    []Signature{sign(signers[2], msg), sign(signers[0], msg)},
			claimed: []common.Address{signers[2].addr, signers[0].addr},
		},
		{
			name:        "length mismatch",
			message:     msg,
			sigs:        []Signature{sign(signers[0], msg)},
			claimed:     []common.Address{signers[0].addr, signers[1].addr},
			expectedErr: ErrArrayLengthNotEqual,
		},
		{
			name:        "below threshold",
			message:     msg,
			sigs:        []Signature{sign(signers[0], msg)},
			claimed:     []common.Address{signers[0].addr},
			expectedErr: executors.ErrNotMeetThreshold,
		},
		{
			name:        "duplicate signer",
			message:     msg,
			sigs:        []Signature{sign(signers[0], msg), sign(signers[0], msg)},
			claimed:     []common.Address{signers[0].addr, signers[0].addr},
			expectedErr: executors.ErrDuplicatedExecutors,
		},
		{
			name:        "outsider",
			message:     msg,
			sigs:        []Signature{sign(signers[0], msg), sign(outsider, msg)},
			claimed:     []common.Address{signers[0].addr, outsider.addr},
			expectedErr: executors.ErrNonExecutors,
		},
		{
			name:        "swapped signatures",
			message:     msg,
			sigs:        []Signature{sign(signers[1], msg), sign(signers[0], msg)},
			claimed:     []common.Address{signers[0].addr, signers[1].addr},
			expectedErr: ErrInvalidSignature,
		},
		{
			name:        "signature over another message",
			message:     msg,
			sigs:        []Signature{sign(signers[0], msg), sign(signers[1], []byte("other"))},
			claimed:     []common.Address{signers[0].addr, signers[1].addr},
			expectedErr: ErrInvalidSignature,
		},
		{
			name:        "empty message",
			message:     nil,
			sigs:        []Signature{sign(signers[0], nil), sign(signers[1], nil)},
			claimed:     []common.Address{signers[0].addr, signers[1].addr},
			expectedErr: ErrInvalidSignature,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Verify(test.message, test.sigs, test.claimed, epoch, 10)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestVerifyZeroAddressMember(t *testing.T) {
	signers := newSigners(t, 1)
	msg := []byte("zero")
	epoch := &executors.Epoch{
		Threshold:   2,
		ActiveSince: 1,
		Members:     []common.Address{{}, signers[0].addr},
	}
	sig, err := Sign(msg, signers[0].key)
	require.NoError(t, err)

	err = Verify(msg, []Signature{sig, {}}, []common.Address{signers[0].addr, {}}, epoch, 10)
	require.ErrorIs(t, err, ErrSignerCannotBeZeroAddress)
}
