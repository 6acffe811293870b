// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/luxfi/tunnel/vms/tunnelvm/cmd/configfile"
	"github.com/luxfi/tunnel/vms/tunnelvm/cmd/request"
	"github.com/luxfi/tunnel/vms/tunnelvm/cmd/rotation"
	"github.com/luxfi/tunnel/vms/tunnelvm/cmd/serve"
)

func main() {
	cmd := &cobra.Command{
		Use:          "tunnel",
		Short:        "Bridge authorization chain tooling",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		request.Command(),
		rotation.Command(),
		configfile.Command(),
		serve.Command(),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "command failed %v\n", err)
		os.Exit(1)
	}
}
