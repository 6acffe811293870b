// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rotation

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/geth/common/hexutil"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "executors",
		Short: "Builds executor rotation messages",
	}
	c.AddCommand(messageCommand())
	return c
}

func messageCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "message",
		Short: "Prints the message the current executors sign to install new executors",
		Args:  cobra.NoArgs,
		RunE:  messageFunc,
	}
	AddFlags(c.Flags())
	return c
}

func messageFunc(c *cobra.Command, _ []string) error {
	config, err := ParseFlags(c.Flags())
	if err != nil {
		return err
	}
	msg := config.Rotation.Message(config.Channel, config.CurrentIndex)
	if config.Hex {
		_, err = fmt.Fprintln(c.OutOrStdout(), hexutil.Encode(msg))
	} else {
		_, err = c.OutOrStdout().Write(msg)
	}
	return err
}
