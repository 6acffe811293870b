// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	require := require.New(t)

	sum, err := Add[uint64](1, 2)
	require.NoError(err)
	require.Equal(uint64(3), sum)

	_, err = Add[uint64](math.MaxUint64, 1)
	require.ErrorIs(err, ErrOverflow)

	_, err = Add[uint8](200, 56)
	require.ErrorIs(err, ErrOverflow)
}

func TestSub(t *testing.T) {
	require := require.New(t)

	diff, err := Sub[uint64](5, 5)
	require.NoError(err)
	require.Zero(diff)

	_, err = Sub[uint64](4, 5)
	require.ErrorIs(err, ErrUnderflow)
}

func TestMul(t *testing.T) {
	require := require.New(t)

	product, err := Mul[uint64](0, math.MaxUint64)
	require.NoError(err)
	require.Zero(product)

	_, err = Mul[uint64](math.MaxUint64/2+1, 2)
	require.ErrorIs(err, ErrOverflow)
}

func TestPow10(t *testing.T) {
	tests := []struct {
		exp         uint
		expected    uint64
		expectedErr error
	}{
		{exp: 0, expected: 1},
		{exp: 3, expected: 1_000},
		{exp: 19, expected: 10_000_000_000_000_000_000},
		{exp: 20, expectedErr: ErrOverflow},
		{exp: 249, expectedErr: ErrOverflow},
	}
	for _, test := range tests {
		got, err := Pow10[uint64](test.exp)
		require.ErrorIs(t, err, test.expectedErr)
		require.Equal(t, test.expected, got)
	}
}
