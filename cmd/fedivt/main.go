// Fedivt is a Mastodon client for VT-100 family terminals.
//
// It renders a timeline browser and post composer over a slow serial
// link, spending as few bytes as possible on every screen update. The
// terminal can be the local tty or a real terminal behind a TCP serial
// bridge.
//
// Usage:
//
//	fedivt SERVER [USERNAME [PASSWORD]]
//
// See 'fedivt --help' for available flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/fedivt/internal/urls"
	"github.com/muurk/fedivt/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fedivt SERVER [USERNAME [PASSWORD]]",
	Short: "Mastodon client for VT-100 terminals",
	Long: `A Mastodon client that renders on VT-100 family terminals.

Connects to a Mastodon-compatible server and drives a terminal over the
local tty or a TCP serial bridge, painting with as few bytes as the
hardware allows.

Getting started: ` + urls.GettingStarted + `
Terminal wiring: ` + urls.TerminalSetup,
	Version: version.Version,
	Args:    cobra.RangeArgs(1, 3),
	RunE:    runSession,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fedivt %s (commit: %s)\n", version.Version, version.Commit)
	},
}
