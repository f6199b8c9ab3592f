package cmd

import (
	"time"

	"github.com/mj1618/a11y-bridge/internal/server"
	"github.com/mj1618/a11y-bridge/internal/trace"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the simulator tools",
	Long: `Start a Model Context Protocol (MCP) server exposing scenario simulation,
font-scale normalization, trait encoding and content-description tools, plus
stateful simulator sessions that persist across calls.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP at /mcp, with /healthz

Examples:
  a11y-bridge serve
  a11y-bridge serve --transport streamable-http --port 8080
  a11y-bridge serve --session-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Duration("session-ttl", 30*time.Minute, "Close simulator sessions idle this long (0 keeps them until closed)")
}

func serveConfig(cmd *cobra.Command) server.Config {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	ttl, _ := cmd.Flags().GetDuration("session-ttl")
	return server.Config{
		Transport:  transport,
		Port:       port,
		SessionTTL: ttl,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := serveConfig(cmd)
	return server.New(cfg, trace.Default()).Serve(cfg)
}
