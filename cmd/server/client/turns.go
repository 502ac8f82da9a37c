package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/handlers/session/v1alpha1"
)

var postponePosition int

var endTurnCmd = &cobra.Command{
	Use:   "end-turn [session-id] [entity-uid]",
	Short: "End the active entity's turn",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.EndTurn(ctx, &v1alpha1.EndTurnRequest{
			SessionID: args[0],
			EntityUID: args[1],
			Author:    author,
		})
		if err != nil {
			return describeError("end turn", err)
		}

		printQueue(resp.Session.EntityTurn)
		return nil
	},
}

var postponeTurnCmd = &cobra.Command{
	Use:   "postpone [session-id] [entity-uid]",
	Short: "Move the active entity back in the queue",
	Long: `Postpone the active turn. --position is how many entries move ahead of
it, so 1 swaps it with the next entity.`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.PostponeTurn(ctx, &v1alpha1.PostponeTurnRequest{
			SessionID: args[0],
			EntityUID: args[1],
			Position:  postponePosition,
			Author:    author,
		})
		if err != nil {
			return describeError("postpone turn", err)
		}

		printQueue(resp.Session.EntityTurn)
		return nil
	},
}

var getTurnCmd = &cobra.Command{
	Use:   "turn [session-id]",
	Short: "Show the turn queue",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetTurn(ctx, &v1alpha1.GetTurnRequest{SessionID: args[0]})
		if err != nil {
			return describeError("get turn", err)
		}

		printQueue(resp.Queue)
		return nil
	},
}

func printQueue(queue []*entities.TurnEntry) {
	if len(queue) == 0 {
		fmt.Println("Turn queue is empty")
		return
	}
	fmt.Println("Turn queue:")
	for i, entry := range queue {
		marker := "  "
		if i == 0 {
			marker = "> "
		}
		line := fmt.Sprintf("%s%d. %s (%s)", marker, i+1, entry.EntityUID, entry.EntityType)
		if entry.HP != nil {
			line += fmt.Sprintf(" hp %d", *entry.HP)
		}
		fmt.Println(line)
	}
}

func init() {
	postponeTurnCmd.Flags().IntVar(&postponePosition, "position", 1, "Number of entries to move behind")
}
