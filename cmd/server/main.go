// Package main is the entry point for the deckbuilder API binary
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/deckbuilder-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "deckbuilder-api",
	Short: "Deck builder share and codec API",
	Long: `deckbuilder-api serves spellcaster deck and team share links over HTTP,
the deck codec over gRPC and the same codec as MCP tools over stdio.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
