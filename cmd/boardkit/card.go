// Card commands: create, update, move, delete.
package main

import (
	"github.com/spf13/cobra"

	"github.com/loomworks/boardkit/internal/printer"
	"github.com/loomworks/boardkit/pkg/types"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage cards",
}

var (
	cardCreateSpace       string
	cardCreateColumn      string
	cardCreateTitle       string
	cardCreateDescription string
	cardCreateAssignee    string
	cardCreateAs          string
)

var cardCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a card at the bottom of a column",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, engine, err := openEngine()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		draft := types.CardDraft{
			Title:       cardCreateTitle,
			Description: cardCreateDescription,
			AssigneeID:  cardCreateAssignee,
		}
		card, err := engine.CreateCard(cmd.Context(), cardCreateSpace, cardCreateColumn, draft, actor(cardCreateAs))
		if err != nil {
			exitErr(err)
		}

		if flagJSON {
			return printJSON(card)
		}
		printer.Success("created card #%d: %s", card.SequenceNumber, card.ID)
		return nil
	},
}

var (
	cardUpdateSpace       string
	cardUpdateTask        string
	cardUpdateTitle       string
	cardUpdateDescription string
	cardUpdateAssignee    string
)

var cardUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a card's title, description or assignee",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, engine, err := openEngine()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		// Only flags the caller actually set become part of the patch, so
		// an omitted flag never clears a field.
		var patch types.CardPatch
		if cmd.Flags().Changed("title") {
			patch.Title = &cardUpdateTitle
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &cardUpdateDescription
		}
		if cmd.Flags().Changed("assignee") {
			patch.AssigneeID = &cardUpdateAssignee
		}

		card, err := engine.UpdateCard(cmd.Context(), cardUpdateSpace, cardUpdateTask, patch)
		if err != nil {
			exitErr(err)
		}

		if flagJSON {
			return printJSON(card)
		}
		printer.Success("updated card %s", card.ID)
		return nil
	},
}

var (
	cardMoveSpace    string
	cardMoveTask     string
	cardMoveColumn   string
	cardMovePosition int
)

var cardMoveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move a card to a column position",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, engine, err := openEngine()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		if err := engine.MoveCard(cmd.Context(), cardMoveSpace, cardMoveTask, cardMoveColumn, cardMovePosition); err != nil {
			exitErr(err)
		}
		printer.Success("moved card %s", cardMoveTask)
		return nil
	},
}

var (
	cardDeleteSpace string
	cardDeleteTask  string
)

var cardDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a card and its backing records",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, engine, err := openEngine()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		if err := engine.DeleteCard(cmd.Context(), cardDeleteSpace, cardDeleteTask); err != nil {
			exitErr(err)
		}
		printer.Success("deleted card %s", cardDeleteTask)
		return nil
	},
}

func init() {
	cardCreateCmd.Flags().StringVar(&cardCreateSpace, "space", "", "space id (required)")
	cardCreateCmd.Flags().StringVar(&cardCreateColumn, "column", "", "destination column id (required)")
	cardCreateCmd.Flags().StringVar(&cardCreateTitle, "title", "", "card title (required)")
	cardCreateCmd.Flags().StringVar(&cardCreateDescription, "description", "", "card description")
	cardCreateCmd.Flags().StringVar(&cardCreateAssignee, "assignee", "", "assignee user id")
	cardCreateCmd.Flags().StringVar(&cardCreateAs, "as", "", "acting user id (default: config default_user)")
	cardCreateCmd.MarkFlagRequired("space")
	cardCreateCmd.MarkFlagRequired("column")
	cardCreateCmd.MarkFlagRequired("title")

	cardUpdateCmd.Flags().StringVar(&cardUpdateSpace, "space", "", "space id (required)")
	cardUpdateCmd.Flags().StringVar(&cardUpdateTask, "task", "", "task id (required)")
	cardUpdateCmd.Flags().StringVar(&cardUpdateTitle, "title", "", "new title")
	cardUpdateCmd.Flags().StringVar(&cardUpdateDescription, "description", "", "new description")
	cardUpdateCmd.Flags().StringVar(&cardUpdateAssignee, "assignee", "", "new assignee user id (empty clears)")
	cardUpdateCmd.MarkFlagRequired("space")
	cardUpdateCmd.MarkFlagRequired("task")

	cardMoveCmd.Flags().StringVar(&cardMoveSpace, "space", "", "space id (required)")
	cardMoveCmd.Flags().StringVar(&cardMoveTask, "task", "", "task id (required)")
	cardMoveCmd.Flags().StringVar(&cardMoveColumn, "column", "", "destination column id (required)")
	cardMoveCmd.Flags().IntVar(&cardMovePosition, "position", 0, "destination position (clamped to column size)")
	cardMoveCmd.MarkFlagRequired("space")
	cardMoveCmd.MarkFlagRequired("task")
	cardMoveCmd.MarkFlagRequired("column")

	cardDeleteCmd.Flags().StringVar(&cardDeleteSpace, "space", "", "space id (required)")
	cardDeleteCmd.Flags().StringVar(&cardDeleteTask, "task", "", "task id (required)")
	cardDeleteCmd.MarkFlagRequired("space")
	cardDeleteCmd.MarkFlagRequired("task")

	cardCmd.AddCommand(cardCreateCmd)
	cardCmd.AddCommand(cardUpdateCmd)
	cardCmd.AddCommand(cardMoveCmd)
	cardCmd.AddCommand(cardDeleteCmd)
}
