// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mockable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClockSet(t *testing.T) {
	require := require.New(t)

	var clock Clock
	clock.SetUnix(1_700_000_000)
	require.Equal(uint64(1_700_000_000), clock.Unix())

	clock.Advance(72 * time.Hour)
	require.Equal(uint64(1_700_000_000+72*60*60), clock.Unix())

	clock.Sync()
	require.InDelta(time.Now().Unix(), int64(clock.Unix()), 5)
}

func TestClockNeverNegative(t *testing.T) {
	var clock Clock
	clock.Set(time.Unix(-10, 0))
	require.Zero(t, clock.Unix())
}
