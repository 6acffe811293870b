// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package request

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/geth/common/hexutil"

	"github.com/luxfi/tunnel/vms/tunnelvm/reqid"
)

var errNoSigningMessage = errors.New("request id has no signing message")

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "reqid",
		Short: "Inspects and builds request ids",
	}
	c.AddCommand(
		decodeCommand(),
		encodeCommand(),
		messageCommand(),
	)
	return c
}

func decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <reqid>",
		Short: "Prints the fields of a request id",
		Args:  cobra.ExactArgs(1),
		RunE:  decodeFunc,
	}
}

type decoded struct {
	reqid.Fields
	Kind     string `json:"kind"`
	Reserved string `json:"reserved"`
}

func decodeFunc(c *cobra.Command, args []string) error {
	id, err := reqid.FromString(args[0])
	if err != nil {
		return err
	}
	fields := id.Fields()
	out, err := json.MarshalIndent(decoded{
		Fields:   fields,
		Kind:     id.Kind().String(),
		Reserved: hex.EncodeToString(fields.Reserved[:]),
	}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), string(out))
	return err
}

func encodeCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "encode",
		Short: "Builds a request id from its fields",
		Args:  cobra.NoArgs,
		RunE:  encodeFunc,
	}
	AddEncodeFlags(c.Flags())
	return c
}

func encodeFunc(c *cobra.Command, _ []string) error {
	fields, err := ParseEncodeFlags(c.Flags())
	if err != nil {
		return err
	}
	id, err := fields.Encode()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), id)
	return err
}

func messageCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "message <reqid>",
		Short: "Prints the message executors sign to execute a request",
		Args:  cobra.ExactArgs(1),
		RunE:  messageFunc,
	}
	AddMessageFlags(c.Flags())
	return c
}

func messageFunc(c *cobra.Command, args []string) error {
	config, err := ParseMessageFlags(c.Flags())
	if err != nil {
		return err
	}
	id, err := reqid.FromString(args[0])
	if err != nil {
		return err
	}
	msg := id.SigningMessage(config.Channel)
	if len(msg) == 0 {
		return fmt.Errorf("%w: action %#x", errNoSigningMessage, id.Action())
	}
	if config.Hex {
		_, err = fmt.Fprintln(c.OutOrStdout(), hexutil.Encode(msg))
	} else {
		_, err = c.OutOrStdout().Write(msg)
	}
	return err
}
