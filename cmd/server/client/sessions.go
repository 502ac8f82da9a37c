package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/handlers/session/v1alpha1"
)

var (
	createMaster     string
	createCampaign   string
	createWidth      int32
	createHeight     int32
	createCharacters []string
	createNPCs       []string
	createTemplates  []string

	getWithHistory bool

	listStatus string
	listMaster string
)

var createSessionCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a session",
	Long: `Create a session in the created state. Examples:

  create "Goblin Ambush" --master dm_gary --characters char_1,char_2
  create "Cave" --master dm_gary --monsters goblin,goblin,ogre --width 40 --height 40`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		monsters := make([]*entities.Monster, 0, len(createTemplates))
		for _, key := range createTemplates {
			monsters = append(monsters, &entities.Monster{TemplateKey: key})
		}

		resp, err := client.CreateSession(ctx, &v1alpha1.CreateSessionRequest{
			Name:          args[0],
			MasterUID:     createMaster,
			CampaignName:  createCampaign,
			MapSize:       entities.MapSize{Width: createWidth, Height: createHeight},
			CharacterUIDs: createCharacters,
			NPCUIDs:       createNPCs,
			Monsters:      monsters,
		})
		if err != nil {
			return describeError("create session", err)
		}

		fmt.Printf("Created session %s\n", resp.Session.ID)
		return printJSON(resp.Session)
	},
}

var getSessionCmd = &cobra.Command{
	Use:   "get [session-id]",
	Short: "Show a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetSession(ctx, &v1alpha1.GetSessionRequest{
			SessionID:      args[0],
			IncludeHistory: getWithHistory,
		})
		if err != nil {
			return describeError("get session", err)
		}
		return printJSON(resp)
	},
}

var listSessionsCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.ListSessions(ctx, &v1alpha1.ListSessionsRequest{
			Status:    entities.SessionStatus(listStatus),
			MasterUID: listMaster,
		})
		if err != nil {
			return describeError("list sessions", err)
		}

		fmt.Printf("Found %d sessions:\n", len(resp.Sessions))
		for _, s := range resp.Sessions {
			fmt.Printf("  %s  %-8s  %s (master %s, %d in queue)\n", s.ID, s.Status, s.Name, s.MasterUID, len(s.EntityTurn))
		}
		return nil
	},
}

var deleteSessionCmd = &cobra.Command{
	Use:   "delete [session-id]",
	Short: "Delete a session and its history",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if _, err := client.DeleteSession(ctx, &v1alpha1.SessionRequest{SessionID: args[0], Author: author}); err != nil {
			return describeError("delete session", err)
		}
		fmt.Printf("Deleted session %s\n", args[0])
		return nil
	},
}

var (
	startSessionCmd    = lifecycleCmd("start", "Start a created session", v1alpha1.SessionServiceClient.StartSession)
	pauseSessionCmd    = lifecycleCmd("pause", "Pause an ongoing session", v1alpha1.SessionServiceClient.PauseSession)
	continueSessionCmd = lifecycleCmd("continue", "Resume a paused session", v1alpha1.SessionServiceClient.ContinueSession)
	stopSessionCmd     = lifecycleCmd("stop", "Stop a session", v1alpha1.SessionServiceClient.StopSession)
)

type lifecycleCall func(v1alpha1.SessionServiceClient, context.Context, *v1alpha1.SessionRequest, ...grpc.CallOption) (*v1alpha1.SessionResponse, error)

func lifecycleCmd(use, short string, call lifecycleCall) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [session-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, cleanup, err := createSessionClient()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			resp, err := call(client, ctx, &v1alpha1.SessionRequest{SessionID: args[0], Author: author})
			if err != nil {
				return describeError(use+" session", err)
			}
			fmt.Printf("Session %s is now %s\n", resp.Session.ID, resp.Session.Status)
			return nil
		},
	}
}

func init() {
	createSessionCmd.Flags().StringVar(&createMaster, "master", "", "Game master UID (required)")
	createSessionCmd.Flags().StringVar(&createCampaign, "campaign", "", "Campaign name")
	createSessionCmd.Flags().Int32Var(&createWidth, "width", 30, "Map width in grid units")
	createSessionCmd.Flags().Int32Var(&createHeight, "height", 30, "Map height in grid units")
	createSessionCmd.Flags().StringSliceVar(&createCharacters, "characters", nil, "Character UIDs")
	createSessionCmd.Flags().StringSliceVar(&createNPCs, "npcs", nil, "NPC UIDs")
	createSessionCmd.Flags().StringSliceVar(&createTemplates, "monsters", nil, "SRD monster keys to seed monsters from")
	_ = createSessionCmd.MarkFlagRequired("master")

	getSessionCmd.Flags().BoolVar(&getWithHistory, "history", false, "Include the session history")

	listSessionsCmd.Flags().StringVar(&listStatus, "status", "", "Only sessions in this status")
	listSessionsCmd.Flags().StringVar(&listMaster, "master", "", "Only sessions run by this master")
}
