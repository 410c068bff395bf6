// Board command: render a space or sprint board.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loomworks/boardkit/internal/printer"
	"github.com/loomworks/boardkit/pkg/types"
)

var (
	boardShowSpace  string
	boardShowSprint string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Inspect boards",
}

var boardShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the board for a space or a sprint",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, engine, err := openEngine()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		view, err := engine.Board(cmd.Context(), boardShowSpace, boardShowSprint)
		if err != nil {
			exitErr(err)
		}

		if flagJSON {
			return printJSON(view)
		}
		renderBoard(view)
		return nil
	},
}

// renderBoard prints the board column by column, cards in position order.
// WIP limits render as occupancy, e.g. "In Progress [3/5]".
func renderBoard(view *types.Board) {
	for _, col := range view.Columns {
		if col.WIPLimit > 0 {
			printer.Heading("%s [%d/%d]", col.Name, len(col.Cards), col.WIPLimit)
		} else {
			printer.Heading("%s [%d]", col.Name, len(col.Cards))
		}
		for _, card := range col.Cards {
			line := fmt.Sprintf("  #%d %s", card.SequenceNumber, card.Title)
			if card.AssigneeName != "" {
				line += " (" + card.AssigneeName + ")"
			}
			printer.Info("%s", line)
			printer.Detail("      %s", card.ID)
		}
	}
	printer.Detail("next sequence: %d", view.NextSequence)
}

func init() {
	boardShowCmd.Flags().StringVar(&boardShowSpace, "space", "", "space id (required)")
	boardShowCmd.Flags().StringVar(&boardShowSprint, "sprint", "", "sprint id (optional, for a Scrum board)")
	boardShowCmd.MarkFlagRequired("space")

	boardCmd.AddCommand(boardShowCmd)
}
