// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reqid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const channel = "Solana Bridge"

func TestSigningMessage(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{
			name:     "lock-mint",
			id:       "112233445566018899aabbccddeeff004040ffffffffffffffffffffffffffff",
			expected: "\x19Ethereum Signed Message:\n111[Solana Bridge]\nSign to execute a lock-mint:\n0x112233445566018899aabbccddeeff004040ffffffffffffffffffffffffffff",
		},
		{
			name:     "burn-unlock",
			id:       "112233445566028899aabbccddeeff004040ffffffffffffffffffffffffffff",
			expected: "\x19Ethereum Signed Message:\n113[Solana Bridge]\nSign to execute a burn-unlock:\n0x112233445566028899aabbccddeeff004040ffffffffffffffffffffffffffff",
		},
		{
			name:     "burn-mint",
			id:       "112233445566038899aabbccddeeff004040ffffffffffffffffffffffffffff",
			expected: "\x19Ethereum Signed Message:\n111[Solana Bridge]\nSign to execute a burn-mint:\n0x112233445566038899aabbccddeeff004040ffffffffffffffffffffffffffff",
		},
		{
			name: "unknown action",
			id:   "112233445566048899aabbccddeeff004040ffffffffffffffffffffffffffff",
		},
		{
			name: "high nibble ignored",
			id:   "1122334455669f8899aabbccddeeff004040ffffffffffffffffffffffffffff",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			msg := mustParse(t, test.id).SigningMessage(channel)
			require.Equal(t, test.expected, string(msg))
		})
	}
}

func TestSigningMessageUsesActionLowNibble(t *testing.T) {
	id := mustParse(t, "112233445566118899aabbccddeeff004040ffffffffffffffffffffffffffff")
	require.Contains(t, string(id.SigningMessage(channel)), "\n111[Solana Bridge]\nSign to execute a lock-mint:\n")
}

func TestEthMessageLengthPrefix(t *testing.T) {
	require := require.New(t)

	require.Equal("\x19Ethereum Signed Message:\n0", string(EthMessage("")))
	require.Equal("\x19Ethereum Signed Message:\n5hello", string(EthMessage("hello")))
}

func TestCheckCreatedTime(t *testing.T) {
	const (
		created       = 1_700_000_000
		proposePeriod = 48 * 60 * 60
		tolerance     = 60
	)
	id, err := Fields{CreatedTime: created, Action: 1}.Encode()
	require.NoError(t, err)

	tests := []struct {
		name        string
		now         uint64
		expectedErr error
	}{
		{name: "at creation", now: created},
		{name: "last second of propose period", now: created + proposePeriod},
		{name: "after propose period", now: created + proposePeriod + 1, expectedErr: ErrCreatedTimeTooEarly},
		{name: "within clock tolerance", now: created - tolerance},
		{name: "beyond clock tolerance", now: created - tolerance - 1, expectedErr: ErrCreatedTimeTooLate},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := id.CheckCreatedTime(test.now, proposePeriod, tolerance)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestScaleAmount(t *testing.T) {
	tests := []struct {
		name        string
		raw         uint64
		decimals    uint8
		expected    uint64
		expectedErr error
	}{
		{name: "9 decimals", raw: 1_000000, decimals: 9, expected: 1_000000000},
		{name: "6 decimals", raw: 1_000000, decimals: 6, expected: 1_000000},
		{name: "2 decimals", raw: 1_000000, decimals: 2, expected: 100},
		{name: "2 decimals floors", raw: 1_019999, decimals: 2, expected: 101},
		{name: "floors to zero", raw: 1, decimals: 2, expectedErr: ErrAmountCannotBeZero},
		{name: "zero decimals floors to zero", raw: 999_999, decimals: 0, expectedErr: ErrAmountCannotBeZero},
		{name: "zero raw", raw: 0, decimals: 9, expectedErr: ErrAmountCannotBeZero},
		{name: "zero raw same precision", raw: 0, decimals: 6, expectedErr: ErrAmountCannotBeZero},
		{name: "multiplication overflows", raw: math.MaxUint64, decimals: 7, expectedErr: ErrArithmeticOverflow},
		{name: "factor overflows", raw: 1, decimals: 26, expectedErr: ErrArithmeticOverflow},
		{name: "largest factor", raw: 1, decimals: 25, expected: 10_000_000_000_000_000_000},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			got, err := ScaleAmount(test.raw, test.decimals)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expected, got)
		})
	}
}

func TestAmountUsesRawAmount(t *testing.T) {
	require := require.New(t)

	id, err := Fields{RawAmount: 1_000000}.Encode()
	require.NoError(err)

	amount, err := id.Amount(18)
	require.NoError(err)
	require.Equal(uint64(1_000000_000000_000000), amount)
}

func TestAssertSide(t *testing.T) {
	require := require.New(t)

	id, err := Fields{FromChain: 0x10, ToChain: 0xa0}.Encode()
	require.NoError(err)

	require.NoError(id.AssertMintSide(0xa0))
	require.ErrorIs(id.AssertMintOppositeSide(0xa0), ErrNotMintOppositeSide)
	require.NoError(id.AssertMintOppositeSide(0x10))
	require.ErrorIs(id.AssertMintSide(0x10), ErrNotMintSide)
}

func TestKindString(t *testing.T) {
	require := require.New(t)

	require.Equal("lock-mint", LockMint.String())
	require.Equal("burn-unlock", BurnUnlock.String())
	require.Equal("burn-mint", BurnMint.String())
	require.Equal("unknown", Kind(0).String())
	require.False(Kind(4).Valid())
}
