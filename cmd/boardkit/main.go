// Package main provides the boardkit CLI: a local-first Kanban/Scrum
// board over the board engine and its SQLite store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
