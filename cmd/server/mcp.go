package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/deckbuilder-api/internal/handlers/mcptools"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the deck codec as MCP tools over stdio",
	Long: `Serve decode_deck, decode_team and encode_deck as MCP tools on stdin/stdout.
Logs go to stderr because stdout carries the protocol.`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg)

	deps, err := buildDependencies(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.Close(); err != nil {
			logger.Warn("failed to close redis", "error", err)
		}
	}()

	srv, err := mcptools.New(&mcptools.Config{
		Share:   deps.share,
		Version: rootCmd.Version,
	})
	if err != nil {
		return err
	}

	logger.Info("mcp server starting on stdio")
	return srv.ServeStdio()
}
