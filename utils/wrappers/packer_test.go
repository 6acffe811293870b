// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackerUint40(t *testing.T) {
	require := require.New(t)

	p := Packer{MaxSize: Uint40Len}
	p.PackUint40(0x2233445566)
	require.NoError(p.Err)
	require.Equal([]byte{0x22, 0x33, 0x44, 0x55, 0x66}, p.Bytes)

	p = Packer{Bytes: p.Bytes}
	require.Equal(uint64(0x2233445566), p.UnpackUint40())
	require.NoError(p.Err)
}

func TestPackerUint40TooLarge(t *testing.T) {
	p := Packer{MaxSize: Uint40Len}
	p.PackUint40(MaxUint40 + 1)
	require.ErrorIs(t, p.Err, errInvalidInput)
}

func TestPackerExceedsMaxSize(t *testing.T) {
	require := require.New(t)

	p := Packer{MaxSize: 1}
	p.PackByte(1)
	require.NoError(p.Err)
	p.PackLong(2)
	require.ErrorIs(p.Err, ErrInsufficientLength)
}

func TestUnpackerInsufficientLength(t *testing.T) {
	require := require.New(t)

	p := Packer{Bytes: []byte{1, 2, 3}}
	require.Equal(byte(1), p.UnpackByte())
	require.Zero(p.UnpackLong())
	require.ErrorIs(p.Err, ErrInsufficientLength)
	require.Nil(p.UnpackFixedBytes(1))
}
