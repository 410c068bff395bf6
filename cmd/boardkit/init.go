// Init command for the boardkit CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/loomworks/boardkit/internal/printer"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the boardkit storage",
	Long:  `Create the data directory and database file if they do not exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			exitErr(err)
		}
		printer.Success("initialized boardkit storage in %s", dataDir)
		return nil
	},
}
