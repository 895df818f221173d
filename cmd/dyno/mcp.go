package main

import (
	"os"

	"dyno/internal/logging"
	"dyno/internal/mcp"
	"dyno/internal/version"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for conversational clients",
	Long: `Start the Model Context Protocol (MCP) server.

The MCP server lets conversational clients query dyno for modification
impact calculations. It communicates via stdio using the JSON-RPC 2.0
protocol.

The server exposes the following tools:
  - calculateModImpact: Calculate hp/torque impact of a modification set
  - getPerformanceProfile: Full profile with derived metrics and scores
  - listModifications: Browse the modification catalog
  - getVehicle: Get a vehicle's stock specification
  - classifyAspiration: Classify an engine description string
  - getStatus: Get server and catalog status

This command is typically invoked by MCP clients and not directly by
users.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Use stderr for logs since stdout is used for MCP protocol
	cfg := mustLoadConfig()
	logger := logging.NewLogger(logging.Config{
		Format: logging.JSONFormat,
		Level:  resolveLogLevel(cfg),
		Output: os.Stderr,
	})

	store, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}

	server := mcp.NewServer(version.Version, store, logger)

	if err := server.Start(); err != nil {
		logger.Error("MCP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	return nil
}
