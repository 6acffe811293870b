// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executors

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/tunnel/vms/tunnelvm/reqid"
)

// Window bounds the ActiveSince of a rotation relative to the time it is
// submitted. Both bounds are exclusive.
type Window struct {
	MinDelay uint64
	MaxDelay uint64
}

// Rotation is a proposal, signed by the current epoch, to install the next
// executor set.
type Rotation struct {
	Members     []common.Address `json:"members"`
	Threshold   uint64           `json:"threshold"`
	ActiveSince uint64           `json:"activeSince"`
}

// Verify checks the proposal's parameters independently of the stored epochs.
func (r *Rotation) Verify(now uint64, window Window, maxMembers int) error {
	switch {
	case len(r.Members) > maxMembers:
		return ErrStorageLimitReached
	case r.Threshold == 0:
		return ErrThresholdMustBeGreaterThanZero
	case r.Threshold > uint64(len(r.Members)):
		return ErrNotMeetThreshold
	case r.ActiveSince <= now+window.MinDelay:
		return ErrActiveSinceShouldAfter36h
	case r.ActiveSince >= now+window.MaxDelay:
		return ErrActiveSinceShouldWithin5d
	}
	return checkUnique(r.Members)
}

// Message returns the personal-sign message the epoch at currentIndex signs
// to approve this rotation.
func (r *Rotation) Message(channel string, currentIndex uint64) []byte {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(channel)
	sb.WriteString("]\nSign to update executors to:\n")
	for _, member := range r.Members {
		sb.WriteString("0x")
		sb.WriteString(hex.EncodeToString(member[:]))
		sb.WriteString("\n")
	}
	sb.WriteString("Threshold: ")
	sb.WriteString(strconv.FormatUint(r.Threshold, 10))
	sb.WriteString("\nActive since: ")
	sb.WriteString(strconv.FormatUint(r.ActiveSince, 10))
	sb.WriteString("\nCurrent executors index: ")
	sb.WriteString(strconv.FormatUint(currentIndex, 10))
	return reqid.EthMessage(sb.String())
}

// Apply installs r as the successor of current. pending is the epoch already
// stored at current.Index+1, or nil if that slot is free. It returns the
// updated current epoch and the new successor without mutating its inputs.
// A pending epoch is only overwritten by a strictly greater member list, so
// resubmitting the same members never replaces it.
func (r *Rotation) Apply(current, pending *Epoch) (*Epoch, *Epoch, error) {
	if pending != nil {
		if r.ActiveSince < pending.ActiveSince ||
			r.Threshold < pending.Threshold ||
			!CompareMembers(r.Members, pending.Members) {
			return nil, nil, ErrFailedToOverwriteExistingExecutors
		}
	}

	updated := *current
	updated.Members = copyMembers(current.Members)
	updated.InactiveAfter = r.ActiveSince

	next := &Epoch{
		Index:       current.Index + 1,
		Threshold:   r.Threshold,
		ActiveSince: r.ActiveSince,
		Members:     copyMembers(r.Members),
	}
	return &updated, next, nil
}
