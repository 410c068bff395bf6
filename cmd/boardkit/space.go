// Space commands: create, list.
package main

import (
	"github.com/spf13/cobra"

	"github.com/loomworks/boardkit/internal/printer"
)

var spaceCmd = &cobra.Command{
	Use:   "space",
	Short: "Manage spaces",
}

var spaceCreateName string

var spaceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a space",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		sp, err := store.CreateSpace(cmd.Context(), spaceCreateName)
		if err != nil {
			exitErr(err)
		}

		if flagJSON {
			return printJSON(sp)
		}
		printer.Success("created space %q: %s", sp.Name, sp.SpaceID)
		return nil
	},
}

var spaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List spaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		spaces, err := store.Spaces(cmd.Context())
		if err != nil {
			exitErr(err)
		}

		if flagJSON {
			return printJSON(spaces)
		}
		if len(spaces) == 0 {
			printer.Info("no spaces")
			return nil
		}
		for _, sp := range spaces {
			printer.Info("%s", sp.Name)
			printer.Detail("  %s", sp.SpaceID)
		}
		return nil
	},
}

func init() {
	spaceCreateCmd.Flags().StringVar(&spaceCreateName, "name", "", "space name (required)")
	spaceCreateCmd.MarkFlagRequired("name")

	spaceCmd.AddCommand(spaceCreateCmd)
	spaceCmd.AddCommand(spaceListCmd)
}
