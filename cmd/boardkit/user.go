// User commands: add, list.
package main

import (
	"github.com/spf13/cobra"

	"github.com/loomworks/boardkit/internal/printer"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage directory users",
}

var userAddName string

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a user to the directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		u, err := store.CreateUser(cmd.Context(), userAddName)
		if err != nil {
			exitErr(err)
		}

		if flagJSON {
			return printJSON(u)
		}
		printer.Success("added user %q: %s", u.Name, u.UserID)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List directory users",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			exitErr(err)
		}
		defer store.Close()

		users, err := store.Users(cmd.Context())
		if err != nil {
			exitErr(err)
		}

		if flagJSON {
			return printJSON(users)
		}
		if len(users) == 0 {
			printer.Info("no users")
			return nil
		}
		for _, u := range users {
			printer.Info("%s", u.Name)
			printer.Detail("  %s", u.UserID)
		}
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userAddName, "name", "", "user name (required)")
	userAddCmd.MarkFlagRequired("name")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
}
