// ABOUTME: CLI entry point for termwin
// ABOUTME: Builds the cobra command tree and maps any error to exit status 1

package main

import (
	"fmt"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	// It presets the lipgloss background so no OSC 10/11 queries are sent
	// and their replies never reach the key reader.
	_ "github.com/mauromedda/termwindows/internal/termfix"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
