package cmd

import (
	"github.com/spf13/cobra"

	"wsl-dev-setup/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `wsl-dev-setup`.
var rootCmd = &cobra.Command{
	Use:   "wsl-dev-setup",
	Short: "WSL development environment setup tool",

	// PersistentPreRun runs before any subcommand; initialize the logger
	// based on the debug flag here.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes flags, registers subcommands, and starts command
// execution. It's the entry point for the CLI when invoked by the user.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Errors are ignored with `_ =` since Cobra reports them itself.
	_ = rootCmd.Execute()
}
