// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package executors manages the epochs of external-chain executors whose
// signatures authorize bridge executions.
package executors

import (
	"bytes"
	"errors"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/math/set"
)

var (
	ErrNotMeetThreshold                   = errors.New("not meet threshold")
	ErrThresholdMustBeGreaterThanZero     = errors.New("threshold must be greater than zero")
	ErrExecutorsNotYetActive              = errors.New("executors not yet active")
	ErrExecutorsOfNextIndexIsActive       = errors.New("executors of next index is active")
	ErrDuplicatedExecutors                = errors.New("duplicated executors")
	ErrNonExecutors                       = errors.New("non executors")
	ErrStorageLimitReached                = errors.New("executors storage limit reached")
	ErrExecutorsAlreadyInitialized        = errors.New("executors already initialized")
	ErrInvalidExecutorsIndex              = errors.New("invalid executors index")
	ErrActiveSinceShouldAfter36h          = errors.New("active since should be after the minimum rotation delay")
	ErrActiveSinceShouldWithin5d          = errors.New("active since should be within the maximum rotation delay")
	ErrFailedToOverwriteExistingExecutors = errors.New("failed to overwrite existing executors")
)

// Epoch is one versioned executor set.
type Epoch struct {
	Index     uint64 `serialize:"true" json:"index"`
	Threshold uint64 `serialize:"true" json:"threshold"`
	// ActiveSince is exclusive: the epoch signs only when now > ActiveSince.
	ActiveSince uint64 `serialize:"true" json:"activeSince"`
	// InactiveAfter is zero while no successor has been announced.
	InactiveAfter uint64           `serialize:"true" json:"inactiveAfter"`
	Members       []common.Address `serialize:"true" json:"members"`
}

// Genesis builds the first epoch of a deployment. It is active immediately.
func Genesis(members []common.Address, threshold, index uint64, maxMembers int) (*Epoch, error) {
	if len(members) > maxMembers {
		return nil, ErrStorageLimitReached
	}
	if threshold > uint64(len(members)) {
		return nil, ErrNotMeetThreshold
	}
	if threshold == 0 {
		return nil, ErrThresholdMustBeGreaterThanZero
	}
	if err := checkUnique(members); err != nil {
		return nil, err
	}
	return &Epoch{
		Index:       index,
		Threshold:   threshold,
		ActiveSince: 1,
		Members:     copyMembers(members),
	}, nil
}

// Contains reports whether addr is a member of the epoch.
func (e *Epoch) Contains(addr common.Address) bool {
	for _, member := range e.Members {
		if member == addr {
			return true
		}
	}
	return false
}

// VerifyQuorum checks that claimed is a duplicate-free subset of the epoch's
// members, at least threshold long, and that the epoch is active at now.
func (e *Epoch) VerifyQuorum(claimed []common.Address, now uint64) error {
	if uint64(len(claimed)) < e.Threshold {
		return ErrNotMeetThreshold
	}
	if now <= e.ActiveSince {
		return ErrExecutorsNotYetActive
	}
	if e.InactiveAfter != 0 && now >= e.InactiveAfter {
		return ErrExecutorsOfNextIndexIsActive
	}

	seen := set.NewSet[common.Address](len(claimed))
	for _, executor := range claimed {
		if seen.Contains(executor) {
			return ErrDuplicatedExecutors
		}
		seen.Add(executor)
		if !e.Contains(executor) {
			return ErrNonExecutors
		}
	}
	return nil
}

// Active reports whether the epoch may sign at now.
func (e *Epoch) Active(now uint64) bool {
	return now > e.ActiveSince && (e.InactiveAfter == 0 || now < e.InactiveAfter)
}

// CompareMembers reports whether a is strictly greater than b. Longer lists
// are greater; equal-length lists compare by the first differing address.
func CompareMembers(a, b []common.Address) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	for i := range a {
		if c := bytes.Compare(a[i][:], b[i][:]); c != 0 {
			return c > 0
		}
	}
	return false
}

func checkUnique(members []common.Address) error {
	seen := set.NewSet[common.Address](len(members))
	for _, member := range members {
		if seen.Contains(member) {
			return ErrDuplicatedExecutors
		}
		seen.Add(member)
	}
	return nil
}

func copyMembers(members []common.Address) []common.Address {
	return append(make([]common.Address, 0, len(members)), members...)
}
