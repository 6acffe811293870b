// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	stdjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint64(t *testing.T) {
	require := require.New(t)

	b, err := stdjson.Marshal(Uint64(1_000_000_000))
	require.NoError(err)
	require.Equal(`"1000000000"`, string(b))

	var u Uint64
	require.NoError(stdjson.Unmarshal([]byte(`"42"`), &u))
	require.Equal(Uint64(42), u)

	require.NoError(stdjson.Unmarshal([]byte(`7`), &u))
	require.Equal(Uint64(7), u)

	require.NoError(u.UnmarshalJSON([]byte(Null)))
	require.Equal(Uint64(7), u)
}
