// Shared helpers for boardkit CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/loomworks/boardkit/internal/board"
	"github.com/loomworks/boardkit/internal/printer"
	"github.com/loomworks/boardkit/internal/sqlite"
	"github.com/loomworks/boardkit/pkg/types"
)

// openStore resolves the data directory and opens the SQLite store. The
// caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store, err := sqlite.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// openEngine opens the store and wires the board engine with a stderr
// logger. Warn level by default, debug with --verbose.
func openEngine() (*sqlite.Store, *board.Engine, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return store, board.New(store, log), nil
}

// actor returns the acting user id: the --as flag when given, otherwise
// the configured default_user.
func actor(asFlag string) string {
	if asFlag != "" {
		return asFlag
	}
	return configDefaultUser
}

// exitErr prints the error and exits: not-found and validation failures
// are user errors, everything else is a system error.
func exitErr(err error) {
	printer.Errorf("%s", err)
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrTitleRequired),
		errors.Is(err, types.ErrNameRequired),
		errors.Is(err, types.ErrInvalidWIPLimit),
		errors.Is(err, types.ErrInvalidPosition):
		os.Exit(exitUserError)
	default:
		os.Exit(exitSysError)
	}
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
