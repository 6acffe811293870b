// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configfile

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/tunnel/vms/tunnelvm/config"
)

func run(args ...string) error {
	c := Command()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)
	return c.Execute()
}

func TestInit(t *testing.T) {
	tests := []struct {
		file   string
		format string
	}{
		{file: "tunnel.yaml", format: "yaml"},
		{file: "tunnel.json", format: "json"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			require := require.New(t)

			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(run("init", "--output", path, "--format", tt.format))

			cfg, err := config.ReadFile(path)
			require.NoError(err)
			require.Equal(config.DefaultConfig(), cfg)

			require.ErrorIs(run("init", "--output", path, "--format", tt.format), errFileExists)
			require.NoError(run("init", "--output", path, "--format", tt.format, "--force"))
		})
	}
}

func TestInitUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunnel.toml")
	require.ErrorIs(t, run("init", "--output", path, "--format", "toml"), errUnknownFormat)
}
