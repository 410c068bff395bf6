// Sprint commands: create, list.
package main

import (
	"github.com/spf13/cobra"

	"github.com/loomworks/boardkit/internal/printer"
)

var sprintCmd = &cobra.Command{
	Use:   "sprint",
	Short: "Manage sprints",
}

var (
	sprintCreateSpace string
	sprintCreateName  string
)

var sprintCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a sprint inside a space",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		sp, err := store.CreateSprint(cmd.Context(), sprintCreateSpace, sprintCreateName)
		if err != nil {
			exitErr(err)
		}

		if flagJSON {
			return printJSON(sp)
		}
		printer.Success("created sprint %q: %s", sp.Name, sp.SprintID)
		return nil
	},
}

var sprintListSpace string

var sprintListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a space's sprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		sprints, err := store.SprintsInSpace(cmd.Context(), sprintListSpace)
		if err != nil {
			exitErr(err)
		}

		if flagJSON {
			return printJSON(sprints)
		}
		if len(sprints) == 0 {
			printer.Info("no sprints")
			return nil
		}
		for _, sp := range sprints {
			printer.Info("%s", sp.Name)
			printer.Detail("  %s", sp.SprintID)
		}
		return nil
	},
}

func init() {
	sprintCreateCmd.Flags().StringVar(&sprintCreateSpace, "space", "", "space id (required)")
	sprintCreateCmd.Flags().StringVar(&sprintCreateName, "name", "", "sprint name (required)")
	sprintCreateCmd.MarkFlagRequired("space")
	sprintCreateCmd.MarkFlagRequired("name")

	sprintListCmd.Flags().StringVar(&sprintListSpace, "space", "", "space id (required)")
	sprintListCmd.MarkFlagRequired("space")

	sprintCmd.AddCommand(sprintCreateCmd)
	sprintCmd.AddCommand(sprintListCmd)
}
