// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reqid

import (
	"errors"
	"strconv"

	"github.com/luxfi/tunnel/utils/units"

	safemath "github.com/luxfi/tunnel/utils/math"
)

// CanonicalDecimals is the precision amounts are encoded at.
const CanonicalDecimals = units.Decimals

// EthSignHeader prefixes every message signed by executors.
const EthSignHeader = "\x19Ethereum Signed Message:\n"

var (
	ErrCreatedTimeTooEarly  = errors.New("created time too early")
	ErrCreatedTimeTooLate   = errors.New("created time too late")
	ErrAmountCannotBeZero   = errors.New("amount cannot be zero")
	ErrArithmeticOverflow   = errors.New("arithmetic overflow")
	ErrNotMintSide          = errors.New("request is not addressed to the mint side")
	ErrNotMintOppositeSide  = errors.New("request is not sent from the mint side")
	errCreatedTimeOverflows = errors.New("created time window overflows")
)

// CheckCreatedTime fails if the request was created more than proposePeriod
// seconds before now, or more than tolerance seconds after now.
func (id ID) CheckCreatedTime(now, proposePeriod, tolerance uint64) error {
	created := id.CreatedTime()
	deadline, err := safemath.Add(created, proposePeriod)
	if err != nil {
		return errCreatedTimeOverflows
	}
	if deadline < now {
		return ErrCreatedTimeTooEarly
	}
	if latest, err := safemath.Add(now, tolerance); err == nil && created > latest {
		return ErrCreatedTimeTooLate
	}
	return nil
}

// Amount scales the raw amount from canonical precision to decimals.
// Scaling down floors; a zero result is rejected.
func (id ID) Amount(decimals uint8) (uint64, error) {
	return ScaleAmount(id.RawAmount(), decimals)
}

// ScaleAmount converts raw from CanonicalDecimals to decimals.
func ScaleAmount(raw uint64, decimals uint8) (uint64, error) {
	if raw == 0 {
		return 0, ErrAmountCannotBeZero
	}
	switch {
	case decimals > CanonicalDecimals:
		factor, err := safemath.Pow10[uint64](uint(decimals - CanonicalDecimals))
		if err != nil {
			return 0, ErrArithmeticOverflow
		}
		amount, err := safemath.Mul(raw, factor)
		if err != nil {
			return 0, ErrArithmeticOverflow
		}
		return amount, nil
	case decimals < CanonicalDecimals:
		factor, _ := safemath.Pow10[uint64](uint(CanonicalDecimals - decimals))
		amount := raw / factor
		if amount == 0 {
			return 0, ErrAmountCannotBeZero
		}
		return amount, nil
	default:
		return raw, nil
	}
}

// SigningMessage returns the personal-sign message executors sign to approve
// this request. Unknown actions yield an empty message, which never verifies.
func (id ID) SigningMessage(channel string) []byte {
	kind := id.Kind()
	if !kind.Valid() {
		return nil
	}
	body := "[" + channel + "]\nSign to execute a " + kind.String() + ":\n" + id.String()
	return EthMessage(body)
}

// EthMessage prepends the personal-sign header and the decimal byte length
// of body.
func EthMessage(body string) []byte {
	msg := make([]byte, 0, len(EthSignHeader)+3+len(body))
	msg = append(msg, EthSignHeader...)
	msg = strconv.AppendInt(msg, int64(len(body)), 10)
	return append(msg, body...)
}

// AssertMintSide requires the request to be addressed to hub.
func (id ID) AssertMintSide(hub uint8) error {
	if id.ToChain() != hub {
		return ErrNotMintSide
	}
	return nil
}

// AssertMintOppositeSide requires the request to originate from hub.
func (id ID) AssertMintOppositeSide(hub uint8) error {
	if id.FromChain() != hub {
		return ErrNotMintOppositeSide
	}
	return nil
}
