package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/handlers/session/v1alpha1"
)

var (
	addTemplate string
	addName     string
	addHP       int32
	addAC       int32

	attackDice   string
	damageDice   string
	targetAC     int32
	saveDice     string
	saveDC       int32
	rollInSessID string
)

var addEntityCmd = &cobra.Command{
	Use:   "add-entity [session-id] [character|npc|monster] [uid]",
	Short: "Add an entity to a session",
	Long: `Add a character or NPC by UID, or a monster. Examples:

  add-entity ses_1 character char_3
  add-entity ses_1 monster --template goblin
  add-entity ses_1 monster --name "Cave Bear" --hp 34 --ac 11`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		req := &v1alpha1.AddEntityRequest{
			SessionID: args[0],
			Type:      entities.EntityType(args[1]),
			Author:    author,
		}
		if len(args) == 3 {
			req.UID = args[2]
		}
		if req.Type == entities.EntityTypeMonster {
			req.Monster = &entities.Monster{
				TemplateKey: addTemplate,
				Name:        addName,
				MaxHP:       addHP,
				HP:          addHP,
				ArmorClass:  addAC,
			}
		}

		resp, err := client.AddEntity(ctx, req)
		if err != nil {
			return describeError("add entity", err)
		}

		fmt.Printf("Added %s %s\n", resp.Entity.Type, resp.Entity.UID)
		return printJSON(resp.Entity)
	},
}

var removeEntityCmd = &cobra.Command{
	Use:   "remove-entity [session-id] [entity-uid]",
	Short: "Remove an entity from a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.RemoveEntity(ctx, &v1alpha1.EntityRequest{
			SessionID: args[0],
			EntityUID: args[1],
			Author:    author,
		})
		if err != nil {
			return describeError("remove entity", err)
		}

		fmt.Printf("Removed %s %s\n", resp.Entity.Type, resp.Entity.UID)
		return nil
	},
}

var attackCmd = &cobra.Command{
	Use:   "attack [session-id] [attacker-uid] [target-uid]",
	Short: "Resolve an attack",
	Long: `Roll to hit against the target's armor class and apply damage on a hit.
Examples:

  attack ses_1 char_1 monster_1 --hit d20+5 --damage d8+3
  attack ses_1 monster_1 char_1 --hit d20+4 --damage 2d6 --target-ac 16`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		attackSpec, err := parseSpec(attackDice)
		if err != nil {
			return err
		}
		damageSpec, err := parseSpec(damageDice)
		if err != nil {
			return err
		}

		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		req := &v1alpha1.AttackRequest{
			SessionID:   args[0],
			AttackerUID: args[1],
			TargetUID:   args[2],
			Attack:      attackSpec,
			Damage:      damageSpec,
			Author:      author,
		}
		if cmd.Flags().Changed("target-ac") {
			req.TargetArmorClass = &targetAC
		}

		resp, err := client.Attack(ctx, req)
		if err != nil {
			return describeError("attack", err)
		}

		fmt.Printf("Attack roll %v = %d vs AC %d\n", resp.AttackRoll.Values(), resp.AttackRoll.Total, resp.ArmorClass)
		if !resp.Hit {
			fmt.Println("Miss")
			return nil
		}
		fmt.Printf("Hit for %d damage\n", resp.DamageApplied)
		if resp.TargetHP != nil {
			fmt.Printf("Target hp %d\n", *resp.TargetHP)
		}
		if resp.Defeated {
			fmt.Println("Target defeated")
		}
		return nil
	},
}

var savingThrowCmd = &cobra.Command{
	Use:   "save [session-id] [entity-uid]",
	Short: "Roll a saving throw",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		spec, err := parseSpec(saveDice)
		if err != nil {
			return err
		}

		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.SavingThrow(ctx, &v1alpha1.SavingThrowRequest{
			SessionID:       args[0],
			EntityUID:       args[1],
			DifficultyClass: saveDC,
			Roll:            spec,
			Author:          author,
		})
		if err != nil {
			return describeError("roll saving throw", err)
		}

		outcome := "failed"
		if resp.Success {
			outcome = "succeeded"
		}
		fmt.Printf("Rolled %d vs DC %d: %s\n", resp.Roll.Total, resp.DifficultyClass, outcome)
		return nil
	},
}

var rollDiceCmd = &cobra.Command{
	Use:   "roll [dice]",
	Short: "Roll dice",
	Long: `Roll dice, optionally recording the roll in a session. Examples:

  roll d20+5
  roll 4d6 --session ses_1`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		spec, err := parseSpec(args[0])
		if err != nil {
			return err
		}

		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.RollDice(ctx, &v1alpha1.RollDiceRequest{
			SessionID: rollInSessID,
			Spec:      spec,
			Author:    author,
		})
		if err != nil {
			return describeError("roll dice", err)
		}

		fmt.Printf("Rolled %s: %v %+d = %d\n", spec, resp.Result.Values(), resp.Result.Modifier, resp.Result.Total)
		return nil
	},
}

var listTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List SRD monster templates",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createSessionClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.ListMonsterTemplates(ctx, &emptypb.Empty{})
		if err != nil {
			return describeError("list monster templates", err)
		}

		fmt.Printf("Found %d monster templates:\n", len(resp.Templates))
		for _, t := range resp.Templates {
			fmt.Printf("  %-28s %s\n", t.Key, t.Name)
		}
		return nil
	},
}

func init() {
	addEntityCmd.Flags().StringVar(&addTemplate, "template", "", "SRD monster key to seed the monster from")
	addEntityCmd.Flags().StringVar(&addName, "name", "", "Monster name")
	addEntityCmd.Flags().Int32Var(&addHP, "hp", 0, "Monster max hp")
	addEntityCmd.Flags().Int32Var(&addAC, "ac", 0, "Monster armor class")

	attackCmd.Flags().StringVar(&attackDice, "hit", "d20", "Attack roll, e.g. d20+5")
	attackCmd.Flags().StringVar(&damageDice, "damage", "", "Damage roll, e.g. 2d6+3")
	attackCmd.Flags().Int32Var(&targetAC, "target-ac", 0, "Armor class for targets without a tracked one")

	savingThrowCmd.Flags().StringVar(&saveDice, "roll", "d20", "Saving throw roll, e.g. d20+2")
	savingThrowCmd.Flags().Int32Var(&saveDC, "dc", 10, "Difficulty class")

	rollDiceCmd.Flags().StringVar(&rollInSessID, "session", "", "Session to record the roll in")
}
