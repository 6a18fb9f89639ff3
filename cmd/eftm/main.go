// Package main is the eftm command: the terminal shell by default, plus a
// headless memory ticker.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "1.0.0"
	commit  = "f5943bab6"
)

var globals globalOptions

var rootCmd = &cobra.Command{
	Use:           "eftm",
	Short:         "eftm: Escape From Tarkov map shell",
	Long:          `eftm is the shell of a tactical map overlay for Escape From Tarkov. Without a subcommand it opens the terminal UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

func init() {
	registerGlobalFlags(rootCmd.PersistentFlags(), &globals)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
