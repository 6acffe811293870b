// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serve

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/database/memdb"
	"github.com/luxfi/log"

	"github.com/luxfi/tunnel"
	"github.com/luxfi/tunnel/vms/tunnelvm"
)

const (
	chainPath   = "/ext/bc/tunnel"
	metricsPath = "/ext/metrics"

	readHeaderTimeout = 10 * time.Second
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Runs a standalone tunnel chain over an in-memory database",
		Args:  cobra.NoArgs,
		RunE:  serveFunc,
	}
	AddFlags(c.Flags())
	return c
}

func serveFunc(c *cobra.Command, _ []string) error {
	config, err := ParseFlags(c.Flags())
	if err != nil {
		return err
	}

	logger := log.NewLogger("tunnel")
	factory := &tunnelvm.Factory{Config: config.Chain}
	vm, err := factory.New(logger)
	if err != nil {
		return err
	}

	ctx := c.Context()
	registry := prometheus.NewRegistry()
	err = vm.Initialize(ctx, &tunnel.Config{
		ChainID:      config.ChainID,
		DB:           memdb.New(),
		GenesisBytes: config.GenesisBytes,
		Registerer:   registry,
	})
	if err != nil {
		return err
	}
	if err := vm.SetState(ctx, tunnel.NormalOp); err != nil {
		return err
	}

	handler, err := newHandler(ctx, vm, registry, config.AllowedOrigins)
	if err != nil {
		return err
	}
	server := &http.Server{
		Addr:              config.Address,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("serving tunnel chain",
			log.String("address", config.Address),
			log.String("rpc", chainPath+"/rpc"),
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		// Close any connections still open after the timeout.
		_ = server.Close()
		return errors.Join(err, vm.Shutdown(shutdownCtx))
	})
	return g.Wait()
}

func newHandler(
	ctx context.Context,
	vm tunnel.VM,
	gatherer prometheus.Gatherer,
	allowedOrigins []string,
) (http.Handler, error) {
	handlers, err := vm.CreateHandlers(ctx)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	for path, h := range handlers {
		router.Handle(chainPath+path, h)
	}
	router.Handle(metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
	}).Handler(router), nil
}
