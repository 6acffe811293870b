// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"fmt"

	"github.com/luxfi/ids"
)

// Family is one of the four bridge operation families. Each family keeps its
// proposals under its own prefix.
type Family uint8

const (
	Lock Family = iota
	Unlock
	Mint
	Burn
)

func (f Family) String() string {
	switch f {
	case Lock:
		return "lock"
	case Unlock:
		return "unlock"
	case Mint:
		return "mint"
	case Burn:
		return "burn"
	default:
		return "unknown"
	}
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(name string) (Family, error) {
	for _, f := range []Family{Lock, Unlock, Mint, Burn} {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errUnknownFamily, name)
}

func (f Family) prefix() []byte {
	return []byte(f.String())
}

// Status is the lifecycle position of a proposal record.
type Status uint8

const (
	// Empty is what a missing record reads as. It is never stored.
	Empty Status = iota
	Proposed
	Executed
)

func (s Status) String() string {
	switch s {
	case Empty:
		return "empty"
	case Proposed:
		return "proposed"
	case Executed:
		return "executed"
	default:
		return "unknown"
	}
}

// Proposal is the record kept per request id. While Proposed, Identity is the
// proposer (lock, burn) or the recipient (unlock, mint).
type Proposal struct {
	Status   Status `serialize:"true" json:"status"`
	Identity ids.ID `serialize:"true" json:"identity"`
}

func NewProposal(identity ids.ID) Proposal {
	return Proposal{Status: Proposed, Identity: identity}
}

// ExecutedProposal is the terminal record written once a request executes.
var ExecutedProposal = Proposal{Status: Executed}
