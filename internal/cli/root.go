// Package cli implements the Cobra command hierarchy for the headson CLI
// tool. The root command defined here is the entry point for all subcommands
// and handles cross-cutting concerns like logging initialization and error
// handling.
package cli

import (
	"errors"
	"log/slog"

	"github.com/headsonhq/headson/internal/config"
	"github.com/headsonhq/headson/internal/headsonerr"
	"github.com/spf13/cobra"
)

// Process exit codes. Parse failures and internal errors exit 1; option and
// usage mistakes exit 2, matching the convention of flag parsers.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// flagValues holds the parsed global flag values, populated by config.BindFlags
// during command initialization and validated in PersistentPreRunE.
var flagValues *config.FlagValues

var rootCmd = &cobra.Command{
	Use:   "headson [file...]",
	Short: "Summarize structured documents within a character budget.",
	Long: `Headson produces a human-readable summary of a JSON, YAML, or plain-text
document that fits within a chosen character budget. The summary keeps the
document's shape -- objects, arrays, scalars, nesting -- while eliding
interior content, and stays syntactically valid in its output format.

Reads from stdin when no file is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Validate all global flags.
		if err := config.ValidateFlags(flagValues, cmd); err != nil {
			return err
		}

		// Initialize logging with validated flag values.
		level := config.ResolveLogLevel(flagValues.Verbose, flagValues.Quiet)
		format := config.ResolveLogFormat()
		config.SetupLogging(level, format)

		slog.Debug("logging initialized", "level", level, "format", format)
		return nil
	},
	// When no subcommand is given, delegate to the summarize command.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummarize(cmd, args)
	},
}

func init() {
	flagValues = config.BindFlags(rootCmd)

	// Register flag completion functions for flags with fixed valid values.
	// These enable intelligent tab completion (e.g., --format <TAB>).
	rootCmd.RegisterFlagCompletionFunc("format", completeFormat)
	rootCmd.RegisterFlagCompletionFunc("style", completeStyle)
	rootCmd.RegisterFlagCompletionFunc("skew", completeSkew)
	rootCmd.RegisterFlagCompletionFunc("input-format", completeInputFormat)
}

// completeFormat returns the valid values for the --format flag.
func completeFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"auto", "json", "yaml", "text", "pseudo", "js"}, cobra.ShellCompDirectiveNoFileComp
}

// completeStyle returns the valid values for the --style flag.
func completeStyle(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"strict", "default", "detailed"}, cobra.ShellCompDirectiveNoFileComp
}

// completeSkew returns the valid values for the --skew flag.
func completeSkew(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"balanced", "head", "tail"}, cobra.ShellCompDirectiveNoFileComp
}

// completeInputFormat returns the valid values for the --input-format flag.
func completeInputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"json", "yaml", "text"}, cobra.ShellCompDirectiveNoFileComp
}

// Execute runs the root command and returns an appropriate exit code.
// Invalid-option errors return ExitUsage (2); any other error returns
// ExitError (1). Nil returns ExitSuccess (0).
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		return extractExitCode(err)
	}
	return ExitSuccess
}

// extractExitCode determines the process exit code from an error. An
// *headsonerr.Error of kind invalid_option exits 2; everything else exits 1.
func extractExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var herr *headsonerr.Error
	if errors.As(err, &herr) && herr.Kind == headsonerr.InvalidOption {
		return ExitUsage
	}
	return ExitError
}

// RootCmd returns the root cobra.Command for use in testing and subcommand registration.
func RootCmd() *cobra.Command {
	return rootCmd
}

// GlobalFlags returns the parsed global flag values. This is available after
// PersistentPreRunE has run. Subcommands use this to access shared configuration.
func GlobalFlags() *config.FlagValues {
	return flagValues
}
