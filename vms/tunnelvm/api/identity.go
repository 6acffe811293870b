// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/luxfi/ids"
)

var errInvalidIdentity = errors.New("identity must decode to 32 bytes")

// FormatIdentity renders an account identity the way the counterparty chain
// prints public keys.
func FormatIdentity(id ids.ID) string {
	return base58.Encode(id[:])
}

// ParseIdentity is the inverse of FormatIdentity.
func ParseIdentity(s string) (ids.ID, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return ids.Empty, fmt.Errorf("couldn't parse identity %q: %w", s, err)
	}
	if len(b) != ids.IDLen {
		return ids.Empty, fmt.Errorf("%w: got %d", errInvalidIdentity, len(b))
	}
	return ids.ID(b), nil
}

func formatIdentities(list []ids.ID) []string {
	out := make([]string, len(list))
	for i, id := range list {
		out[i] = FormatIdentity(id)
	}
	return out
}
