// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-session-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-session-api",
	Short: "RPG session gRPC server",
	Long: `rpg-session-api runs tabletop combat sessions: the session lifecycle,
the turn queue, attacks, saving throws and the session history log.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
