package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the automata of the configured store as MCP tools, so AI agents can
list automata, ask for membership decisions and render diagrams.

Transports:
  stdio  JSON-RPC over standard input and output (default), for agents that
         spawn dfa as a subprocess.
  sse    Server-Sent Events on --port, for agents connecting over HTTP.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		loader, closeLoader, err := openLoader(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeLoader()

		srv := mcp.NewServer(loader, dfa.Version, logger)

		switch transport {
		case "stdio":
			// Logs go to stderr so they don't corrupt JSON-RPC on stdout.
			logger.Info("starting dfa MCP server (stdio)")
			return srv.ServeStdio()
		case "sse":
			logger.Info("starting dfa MCP server (SSE)", "port", port)
			if err := srv.ServeSSE(ctx, port); err != nil {
				return err
			}
			logger.Info("MCP server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport %q (supported: stdio, sse)", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport: stdio or sse")
	mcpCmd.Flags().Int("port", 8081, "SSE listen port")
}
