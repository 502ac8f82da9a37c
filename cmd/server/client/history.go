package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-session-api/internal/handlers/session/v1alpha1"
)

var (
	historyOffset int64
	historyLimit  int64
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Show a session's history",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetHistory(ctx, &v1alpha1.GetHistoryRequest{
			SessionID: args[0],
			Offset:    historyOffset,
			Limit:     historyLimit,
		})
		if err != nil {
			return describeError("get history", err)
		}

		for _, msg := range resp.Messages {
			fmt.Printf("%s  %-12s %-10s %s\n", msg.Timestamp.Format("15:04:05"), msg.ActionType, msg.Author, msg.Msg)
		}
		return nil
	},
}

var noteCmd = &cobra.Command{
	Use:   "note [session-id] [message]",
	Short: "Write a custom message to a session's history",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if _, err := client.AppendHistory(ctx, &v1alpha1.AppendHistoryRequest{
			SessionID: args[0],
			Author:    author,
			Msg:       args[1],
		}); err != nil {
			return describeError("append history", err)
		}
		fmt.Println("Noted")
		return nil
	},
}

func init() {
	historyCmd.Flags().Int64Var(&historyOffset, "offset", 0, "Skip this many messages")
	historyCmd.Flags().Int64Var(&historyLimit, "limit", 0, "Show at most this many messages, 0 for all")
}
