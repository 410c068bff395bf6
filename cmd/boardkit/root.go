// Root command for the boardkit CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/loomworks/boardkit/internal/paths"
)

// Exit codes: user errors (bad input, not found) exit 1, system errors
// (storage failures) exit 2.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configDataDir     string
	configDefaultUser string
)

var rootCmd = &cobra.Command{
	Use:     "boardkit",
	Short:   "Boardkit is a local-first Kanban/Scrum board",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDefaultUser = cfg.GetString(cfgKeyDefaultUser)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.boardkit-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(columnCmd)
	rootCmd.AddCommand(spaceCmd)
	rootCmd.AddCommand(sprintCmd)
	rootCmd.AddCommand(userCmd)
}

// resolveDataDir returns the data directory path following the precedence
// chain: --data-dir flag > config.yaml data_dir > BOARDKIT_DATA_DIR env >
// default $(CWD)/.boardkit-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > BOARDKIT_CONFIG_DIR env >
// DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
