// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package reqid implements the 32-byte bridge request identifier.
//
// Layout (big-endian):
//
//	offset  width  field
//	0       1      version
//	1       5      created time (unix seconds)
//	6       1      action (low nibble selects the kind)
//	7       1      token index
//	8       8      amount at 6 decimals
//	16      1      from chain
//	17      1      to chain
//	18      14     reserved
//
// The whole 32 bytes are the replay key of a request.
package reqid

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/luxfi/tunnel/utils/wrappers"
)

const (
	Len = 32

	versionOffset     = 0
	createdTimeOffset = 1
	actionOffset      = 6
	tokenIndexOffset  = 7
	amountOffset      = 8
	fromChainOffset   = 16
	toChainOffset     = 17
	reservedOffset    = 18

	ReservedLen = Len - reservedOffset
)

var (
	ErrInvalidLength = errors.New("request id must be 32 bytes")
	errInvalidHex    = errors.New("request id is not valid hex")
)

// ID is a bridge request identifier.
type ID [Len]byte

// Fields is the decoded view of an ID.
type Fields struct {
	Version     uint8             `json:"version"`
	CreatedTime uint64            `json:"createdTime"`
	Action      uint8             `json:"action"`
	TokenIndex  uint8             `json:"tokenIndex"`
	RawAmount   uint64            `json:"rawAmount"`
	FromChain   uint8             `json:"fromChain"`
	ToChain     uint8             `json:"toChain"`
	Reserved    [ReservedLen]byte `json:"-"`
}

// ToID converts a byte slice into an ID.
func ToID(b []byte) (ID, error) {
	var id ID
	if len(b) != Len {
		return id, fmt.Errorf("%w: got %d", ErrInvalidLength, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// FromString parses a hex request id with or without a 0x prefix.
func FromString(s string) (ID, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %w", errInvalidHex, err)
	}
	return ToID(b)
}

// Hex returns the lowercase hex encoding without a prefix.
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ID) String() string {
	return "0x" + id.Hex()
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := FromString(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id ID) Version() uint8 {
	return id[versionOffset]
}

// CreatedTime returns the 40-bit creation timestamp.
func (id ID) CreatedTime() uint64 {
	p := wrappers.Packer{Bytes: id[:], Offset: createdTimeOffset}
	return p.UnpackUint40()
}

func (id ID) Action() uint8 {
	return id[actionOffset]
}

// Kind returns the operation family selected by the action's low nibble.
func (id ID) Kind() Kind {
	return Kind(id.Action() & 0x0f)
}

func (id ID) TokenIndex() uint8 {
	return id[tokenIndexOffset]
}

// RawAmount returns the amount at canonical precision.
func (id ID) RawAmount() uint64 {
	p := wrappers.Packer{Bytes: id[:], Offset: amountOffset}
	return p.UnpackLong()
}

func (id ID) FromChain() uint8 {
	return id[fromChainOffset]
}

func (id ID) ToChain() uint8 {
	return id[toChainOffset]
}

// Fields decodes every field of the id.
func (id ID) Fields() Fields {
	p := wrappers.Packer{Bytes: id[:]}
	f := Fields{
		Version:     p.UnpackByte(),
		CreatedTime: p.UnpackUint40(),
		Action:      p.UnpackByte(),
		TokenIndex:  p.UnpackByte(),
		RawAmount:   p.UnpackLong(),
		FromChain:   p.UnpackByte(),
		ToChain:     p.UnpackByte(),
	}
	copy(f.Reserved[:], p.UnpackFixedBytes(ReservedLen))
	return f
}

// Encode packs the fields back into an ID. CreatedTime must fit in 40 bits.
func (f Fields) Encode() (ID, error) {
	p := wrappers.Packer{MaxSize: Len, Bytes: make([]byte, 0, Len)}
	p.PackByte(f.Version)
	p.PackUint40(f.CreatedTime)
	p.PackByte(f.Action)
	p.PackByte(f.TokenIndex)
	p.PackLong(f.RawAmount)
	p.PackByte(f.FromChain)
	p.PackByte(f.ToChain)
	p.PackFixedBytes(f.Reserved[:])
	if p.Errored() {
		return ID{}, fmt.Errorf("couldn't encode request id: %w", p.Err)
	}
	return ToID(p.Bytes)
}
