// Package cli implements the shipquote command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes. All observed quote outcomes (priced, rejected, malformed
// input) end the run normally; only unanticipated faults exit nonzero.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "shipquote" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shipquote",
		Short: "Package Express shipping quotes from the terminal",
		Long: "Shipquote validates a single package against the Package Express\n" +
			"weight and size limits and prices it from its dimensions and weight.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	// Global persistent flags.
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newQuoteCmd())

	return root
}

// Execute runs the root command and returns the process exit code. Errors
// reaching this point are unanticipated faults; they are reported with a
// generic message rather than a stack trace.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		return exitSysError
	}
	return exitSuccess
}
