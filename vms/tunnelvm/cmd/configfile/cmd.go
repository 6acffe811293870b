// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/luxfi/tunnel/vms/tunnelvm/config"
)

const perms = 0o644

var errFileExists = errors.New("file already exists")

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manages deployment config files",
	}
	c.AddCommand(initCommand())
	return c
}

func initCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Writes the default deployment config",
		Args:  cobra.NoArgs,
		RunE:  initFunc,
	}
	AddInitFlags(c.Flags())
	return c
}

func initFunc(c *cobra.Command, _ []string) error {
	flags, err := ParseInitFlags(c.Flags())
	if err != nil {
		return err
	}
	if !flags.Force {
		_, err := os.Stat(flags.Output)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", errFileExists, flags.Output)
		case !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}

	cfg := config.DefaultConfig()
	data, err := cfg.Marshal(flags.YAML)
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(flags.Output, data, perms); err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.OutOrStdout(), "wrote %s\n", flags.Output)
	return err
}
