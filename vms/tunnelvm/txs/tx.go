// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txs defines the commands accepted by a tunnel chain.
package txs

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/luxfi/crypto/hash"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/crypto"
	"github.com/luxfi/ids"

	"github.com/luxfi/tunnel/vms/tunnelvm/multisig"
)

var (
	ErrNilTx                     = errors.New("tx is nil")
	ErrWrongNumberOfCredentials  = errors.New("should have exactly one credential")
	ErrInvalidCredential         = errors.New("invalid credential")
	ErrCredentialSignerMismatch  = errors.New("credential does not match signer")
	errWrongCodecVersion         = errors.New("wrong codec version")
	errUnsignedBytesNotAvailable = errors.New("unsigned bytes not available")
)

// Unsigned is a command together with the identity that issued it.
type Unsigned interface {
	// SignedBy returns the identity authorizing this command.
	SignedBy() ids.ID

	// Visit calls [visitor] with this command's concrete type
	Visit(visitor Visitor) error
}

// Tx is the envelope a command travels in.
type Tx struct {
	Unsigned Unsigned `serialize:"true" json:"unsignedTx"`
	// Creds holds the signature of the unsigned bytes by the key behind
	// Unsigned.SignedBy().
	Creds []multisig.Signature `serialize:"true" json:"credentials"`

	id            ids.ID
	unsignedBytes []byte
	bytes         []byte
}

// NewTx serializes unsigned and wraps it in a Tx without credentials.
func NewTx(unsigned Unsigned) (*Tx, error) {
	if unsigned == nil {
		return nil, ErrNilTx
	}
	tx := &Tx{Unsigned: unsigned}
	return tx, tx.initialize()
}

// NewSigned wraps unsigned in a Tx signed by key.
func NewSigned(unsigned Unsigned, key *ecdsa.PrivateKey) (*Tx, error) {
	if unsigned == nil {
		return nil, ErrNilTx
	}
	tx := &Tx{Unsigned: unsigned}
	return tx, tx.Sign(key)
}

// Parse decodes a Tx from its serialized form.
func Parse(bytes []byte) (*Tx, error) {
	tx := &Tx{}
	version, err := Codec.Unmarshal(bytes, tx)
	if err != nil {
		return nil, fmt.Errorf("couldn't unmarshal tx: %w", err)
	}
	if version != CodecVersion {
		return nil, errWrongCodecVersion
	}
	if tx.Unsigned == nil {
		return nil, ErrNilTx
	}
	unsignedBytes, err := Codec.Marshal(CodecVersion, &tx.Unsigned)
	if err != nil {
		return nil, fmt.Errorf("couldn't marshal unsigned tx: %w", err)
	}
	tx.SetBytes(unsignedBytes, bytes)
	return tx, nil
}

// Sign replaces the credentials with key's signature over the unsigned bytes.
func (tx *Tx) Sign(key *ecdsa.PrivateKey) error {
	unsignedBytes, err := Codec.Marshal(CodecVersion, &tx.Unsigned)
	if err != nil {
		return fmt.Errorf("couldn't marshal unsigned tx: %w", err)
	}
	sig, err := multisig.Sign(unsignedBytes, key)
	if err != nil {
		return fmt.Errorf("couldn't sign tx: %w", err)
	}
	tx.Creds = []multisig.Signature{sig}
	return tx.initialize()
}

func (tx *Tx) initialize() error {
	unsignedBytes, err := Codec.Marshal(CodecVersion, &tx.Unsigned)
	if err != nil {
		return fmt.Errorf("couldn't marshal unsigned tx: %w", err)
	}
	signedBytes, err := Codec.Marshal(CodecVersion, tx)
	if err != nil {
		return fmt.Errorf("couldn't marshal tx: %w", err)
	}
	tx.SetBytes(unsignedBytes, signedBytes)
	return nil
}

// VerifyCredential checks that the command was signed by the identity it
// names as its signer.
func (tx *Tx) VerifyCredential() error {
	if len(tx.Creds) != 1 {
		return fmt.Errorf("%w: %d", ErrWrongNumberOfCredentials, len(tx.Creds))
	}
	if len(tx.unsignedBytes) == 0 {
		return errUnsignedBytesNotAvailable
	}
	addr := multisig.Recover(tx.unsignedBytes, tx.Creds[0])
	if addr == (common.Address{}) {
		return ErrInvalidCredential
	}
	if signer := tx.Unsigned.SignedBy(); Identity(addr) != signer {
		return fmt.Errorf("%w: signed by %s, claims %s", ErrCredentialSignerMismatch, Identity(addr), signer)
	}
	return nil
}

func (tx *Tx) SetBytes(unsignedBytes, signedBytes []byte) {
	tx.unsignedBytes = unsignedBytes
	tx.bytes = signedBytes
	tx.id = hash.ComputeHash256Array(signedBytes)
}

func (tx *Tx) ID() ids.ID {
	return tx.id
}

// Bytes returns the signed bytes of the tx.
func (tx *Tx) Bytes() []byte {
	return tx.bytes
}

// Identity is the chain identity controlled by the key behind addr: the
// address right-aligned in 32 bytes.
func Identity(addr common.Address) ids.ID {
	var id ids.ID
	copy(id[len(id)-common.AddressLength:], addr.Bytes())
	return id
}

// KeyIdentity returns the identity controlled by key.
func KeyIdentity(key *ecdsa.PrivateKey) ids.ID {
	return Identity(crypto.PubkeyToAddress(key.PublicKey))
}
