// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reqid

// Kind is the operation family encoded in the low nibble of the action byte.
type Kind uint8

const (
	LockMint   Kind = 1
	BurnUnlock Kind = 2
	BurnMint   Kind = 3
)

// String returns the name used in signing messages, or "unknown".
func (k Kind) String() string {
	switch k {
	case LockMint:
		return "lock-mint"
	case BurnUnlock:
		return "burn-unlock"
	case BurnMint:
		return "burn-mint"
	default:
		return "unknown"
	}
}

// Valid reports whether k names one of the three operation families.
func (k Kind) Valid() bool {
	return k >= LockMint && k <= BurnMint
}
