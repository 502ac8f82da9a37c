// Package client provides commands that drive a running session server
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-session-api/internal/dice"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	"github.com/KirkDiggler/rpg-session-api/internal/handlers/session/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// author is recorded in the session history for every mutation
	author string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the session service",
	Long:  `Client commands drive a running session server with real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&author, "author", "", "Author recorded in history (defaults to the session master)")

	// Sessions
	ClientCmd.AddCommand(createSessionCmd)
	ClientCmd.AddCommand(getSessionCmd)
	ClientCmd.AddCommand(listSessionsCmd)
	ClientCmd.AddCommand(deleteSessionCmd)
	ClientCmd.AddCommand(startSessionCmd, pauseSessionCmd, continueSessionCmd, stopSessionCmd)

	// Turn order
	ClientCmd.AddCommand(endTurnCmd)
	ClientCmd.AddCommand(postponeTurnCmd)
	ClientCmd.AddCommand(getTurnCmd)

	// Roster and combat
	ClientCmd.AddCommand(addEntityCmd)
	ClientCmd.AddCommand(removeEntityCmd)
	ClientCmd.AddCommand(attackCmd)
	ClientCmd.AddCommand(savingThrowCmd)
	ClientCmd.AddCommand(rollDiceCmd)

	// History and templates
	ClientCmd.AddCommand(historyCmd)
	ClientCmd.AddCommand(noteCmd)
	ClientCmd.AddCommand(listTemplatesCmd)
}

// createSessionClient creates a session service client
func createSessionClient() (v1alpha1.SessionServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewSessionServiceClient(conn), cleanup, nil
}

// printJSON writes v to stdout as indented JSON
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describeError unpacks the domain kind carried by a gRPC status
func describeError(action string, err error) error {
	restored := errors.FromGRPCError(err)
	if kind := errors.KindOf(restored); kind != "" {
		return fmt.Errorf("failed to %s (%s): %w", action, kind, restored)
	}
	return fmt.Errorf("failed to %s: %w", action, restored)
}

// parseSpec reads "d20+d6+3" or "2d6-1" into a dice spec
func parseSpec(s string) (dice.Spec, error) {
	spec := dice.Spec{}
	if strings.TrimSpace(s) == "" {
		return spec, nil
	}

	normalized := strings.ReplaceAll(strings.ToLower(s), "-", "+-")
	for _, term := range strings.Split(normalized, "+") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		count, die, isDie := strings.Cut(term, "d")
		if !isDie {
			var modifier int32
			if _, err := fmt.Sscanf(term, "%d", &modifier); err != nil {
				return dice.Spec{}, fmt.Errorf("invalid modifier %q", term)
			}
			spec.Modifier += modifier
			continue
		}

		n := 1
		if count != "" {
			if _, err := fmt.Sscanf(count, "%d", &n); err != nil || n < 1 {
				return dice.Spec{}, fmt.Errorf("invalid dice count in %q", term)
			}
		}
		parsed, err := dice.ParseDie(die)
		if err != nil {
			return dice.Spec{}, err
		}
		for i := 0; i < n; i++ {
			spec.Dice = append(spec.Dice, parsed)
		}
	}
	return spec, nil
}
