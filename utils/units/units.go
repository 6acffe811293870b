// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package units names amounts at the canonical precision request ids carry.
package units

// Decimals is the precision of every amount encoded in a request id.
const Decimals = 6

const (
	MicroToken uint64 = 1                 // smallest encodable amount
	MilliToken uint64 = 1000 * MicroToken // 0.001 token
	Token      uint64 = 1000 * MilliToken // 1 whole token
	KiloToken  uint64 = 1000 * Token
	MegaToken  uint64 = 1000 * KiloToken
)
