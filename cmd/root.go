// =============================================================================
// Transaction Merger - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (mergetx)
//   ├── mergeCmd   (mergetx merge [files...])
//   └── versionCmd (mergetx version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose forces the log level to trace.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mergetx",
	Short: "Transaction Merger - Merge transaction files and report totals",
	Long: `Transaction Merger reads a fixed set of comma-delimited transaction files,
merges every valid record into one collection and reports the number of
transactions, their total value and the largest single value.

Bad lines and missing files never stop a run: each one is logged as a warning
and processing continues.

Example Usage:
  mergetx merge                        # Merge the configured input files
  mergetx merge a.csv b.csv            # Merge the given files, in order
  mergetx merge --xlsx-dir ./reports   # Also export the merged records
  mergetx merge --config ./my.yaml     # Use a custom configuration file`,

	// Without a subcommand, print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// Errors are printed once by Execute.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (a missing file means defaults)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Log every severity, including the per-record import trace",
	)
}
