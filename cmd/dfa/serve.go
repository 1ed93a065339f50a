package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/dfa/pkg/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the automata of the configured store (store.backend) over HTTP:
membership queries, diagrams, definition management, Prometheus metrics and
the OpenAPI document at /openapi.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.HTTP.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		loader, closeLoader, err := openLoader(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeLoader()

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		handler := httpAdapter.NewHandler(loader,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithRegistry(reg),
		)

		logger.Info("starting dfa server", "backend", cfg.Store.Backend, "dir", cfg.Store.Dir)
		if err := httpAdapter.ListenAndServe(ctx, addr, handler, logger); err != nil {
			return err
		}
		logger.Info("dfa server stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Address to listen on (overrides http.addr)")
}
