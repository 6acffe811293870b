// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package multisig verifies executor signatures over personal-sign messages.
//
// Signatures are 64 bytes, r || s, with the recovery id carried in the top
// bit of s.
package multisig

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/crypto"

	"github.com/luxfi/tunnel/vms/tunnelvm/executors"
)

const (
	SignatureLen = 64

	recoveryBit = 0x80
	sHighByte   = 32
)

var (
	ErrArrayLengthNotEqual       = errors.New("signatures and executors length not equal")
	ErrSignerCannotBeZeroAddress = errors.New("signer cannot be zero address")
	ErrInvalidSignature          = errors.New("invalid signature")
	errInvalidSignatureLength    = errors.New("signature must be 64 bytes")
)

// Signature is a compact secp256k1 signature with the recovery id folded in.
type Signature [SignatureLen]byte

// SignatureFromString parses a hex signature with or without a 0x prefix.
func SignatureFromString(s string) (Signature, error) {
	var sig Signature
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return sig, err
	}
	if len(b) != SignatureLen {
		return sig, fmt.Errorf("%w: got %d", errInvalidSignatureLength, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

func (s Signature) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := SignatureFromString(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Recover returns the address that signed keccak256(message), or the zero
// address if recovery fails.
func Recover(message []byte, sig Signature) common.Address {
	rsv := make([]byte, SignatureLen+1)
	copy(rsv, sig[:])
	rsv[SignatureLen] = sig[sHighByte] >> 7
	rsv[sHighByte] &^= recoveryBit

	pub, err := crypto.SigToPub(crypto.Keccak256(message), rsv)
	if err != nil {
		return common.Address{}
	}
	return crypto.PubkeyToAddress(*pub)
}

// Sign signs keccak256(message) with key and folds the recovery id into s.
func Sign(message []byte, key *ecdsa.PrivateKey) (Signature, error) {
	var sig Signature
	rsv, err := crypto.Sign(crypto.Keccak256(message), key)
	if err != nil {
		return sig, err
	}
	copy(sig[:], rsv[:SignatureLen])
	sig[sHighByte] |= rsv[SignatureLen] << 7
	return sig, nil
}

// Verify checks that sigs are valid signatures of message by claimed, and
// that claimed forms a quorum of epoch at now. Every signature must verify.
func Verify(
	message []byte,
	sigs []Signature,
	claimed []common.Address,
	epoch *executors.Epoch,
	now uint64,
) error {
	if len(sigs) != len(claimed) {
		return ErrArrayLengthNotEqual
	}
	if err := epoch.VerifyQuorum(claimed, now); err != nil {
		return err
	}
	for i, signer := range claimed {
		if signer == (common.Address{}) {
			return ErrSignerCannotBeZeroAddress
		}
		if len(message) == 0 || Recover(message, sigs[i]) != signer {
			return fmt.Errorf("%w: executor %s", ErrInvalidSignature, signer)
		}
	}
	return nil
}
