// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	tests := []struct {
		state    State
		expected string
		valid    bool
	}{
		{state: Unknown, expected: "Unknown"},
		{state: Bootstrapping, expected: "Bootstrapping", valid: true},
		{state: NormalOp, expected: "NormalOp", valid: true},
		{state: State(7), expected: "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require := require.New(t)
			require.Equal(tt.expected, tt.state.String())
			require.Equal(tt.valid, tt.state.Valid())
		})
	}
}
