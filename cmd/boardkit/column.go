// Column commands: add, rename, remove.
package main

import (
	"github.com/spf13/cobra"

	"github.com/loomworks/boardkit/internal/printer"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Manage board columns",
}

var (
	columnAddSpace    string
	columnAddSprint   string
	columnAddName     string
	columnAddWIPLimit int
)

var columnAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a column at the end of a board",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, engine, err := openEngine()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		col, err := engine.AddColumn(cmd.Context(), columnAddSpace, columnAddName, columnAddWIPLimit, columnAddSprint)
		if err != nil {
			exitErr(err)
		}

		if flagJSON {
			return printJSON(col)
		}
		printer.Success("added column %q: %s", col.Name, col.ColumnID)
		return nil
	},
}

var (
	columnRenameSpace  string
	columnRenameSprint string
	columnRenameID     string
	columnRenameName   string
)

var columnRenameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a column",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, engine, err := openEngine()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		if err := engine.RenameColumn(cmd.Context(), columnRenameSpace, columnRenameID, columnRenameName, columnRenameSprint); err != nil {
			exitErr(err)
		}
		printer.Success("renamed column %s to %q", columnRenameID, columnRenameName)
		return nil
	},
}

var (
	columnRemoveSpace  string
	columnRemoveSprint string
	columnRemoveID     string
	columnRemoveForce  bool
)

var columnRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a column and delete every card in it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !columnRemoveForce {
			printer.Warning("removing a column deletes all of its cards; re-run with --force to confirm")
			return nil
		}

		store, engine, err := openEngine()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		if err := engine.RemoveColumn(cmd.Context(), columnRemoveSpace, columnRemoveID, columnRemoveSprint); err != nil {
			exitErr(err)
		}
		printer.Success("removed column %s", columnRemoveID)
		return nil
	},
}

func init() {
	columnAddCmd.Flags().StringVar(&columnAddSpace, "space", "", "space id (required)")
	columnAddCmd.Flags().StringVar(&columnAddSprint, "sprint", "", "sprint id (optional, for a sprint board)")
	columnAddCmd.Flags().StringVar(&columnAddName, "name", "", "column name (required)")
	columnAddCmd.Flags().IntVar(&columnAddWIPLimit, "wip-limit", 0, "work-in-progress limit (0 = unlimited)")
	columnAddCmd.MarkFlagRequired("space")
	columnAddCmd.MarkFlagRequired("name")

	columnRenameCmd.Flags().StringVar(&columnRenameSpace, "space", "", "space id (required)")
	columnRenameCmd.Flags().StringVar(&columnRenameSprint, "sprint", "", "sprint id (optional, for a sprint board)")
	columnRenameCmd.Flags().StringVar(&columnRenameID, "column", "", "column id (required)")
	columnRenameCmd.Flags().StringVar(&columnRenameName, "name", "", "new column name (required)")
	columnRenameCmd.MarkFlagRequired("space")
	columnRenameCmd.MarkFlagRequired("column")
	columnRenameCmd.MarkFlagRequired("name")

	columnRemoveCmd.Flags().StringVar(&columnRemoveSpace, "space", "", "space id (required)")
	columnRemoveCmd.Flags().StringVar(&columnRemoveSprint, "sprint", "", "sprint id (optional, for a sprint board)")
	columnRemoveCmd.Flags().StringVar(&columnRemoveID, "column", "", "column id (required)")
	columnRemoveCmd.Flags().BoolVar(&columnRemoveForce, "force", false, "confirm deletion of the column and its cards")
	columnRemoveCmd.MarkFlagRequired("space")
	columnRemoveCmd.MarkFlagRequired("column")

	columnCmd.AddCommand(columnAddCmd)
	columnCmd.AddCommand(columnRenameCmd)
	columnCmd.AddCommand(columnRemoveCmd)
}
