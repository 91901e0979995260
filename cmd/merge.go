// =============================================================================
// Transaction Merger - Merge Command
// =============================================================================
//
// This file defines the 'merge' command, which runs the whole pipeline.
//
// COMMAND USAGE:
//   mergetx merge [files...] [flags]
//
// FLAGS:
//   --xlsx-dir : Write the merged records and summary to an XLSX workbook
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Open the operational and transaction log channels
//   3. Import every input file, in order
//   4. Report count, total and max
//   5. Optionally write the workbook
//   6. Close the log channels
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/transaction-merger/internal/config"
	"github.com/ginjaninja78/transaction-merger/internal/logger"
	"github.com/ginjaninja78/transaction-merger/internal/merger"
	"github.com/ginjaninja78/transaction-merger/internal/report"
	"github.com/ginjaninja78/transaction-merger/pkg/utils"
)

// xlsxDir overrides report.xlsx_dir from the configuration.
var xlsxDir string

// mergeCmd represents the 'merge' command.
var mergeCmd = &cobra.Command{
	Use:   "merge [files...]",
	Short: "Merge transaction files and report the totals",
	Long: `The merge command imports each input file in order, skipping files that do
not exist and lines that cannot be parsed, and then reports:

  <n> transactions imported
  total value: <sum of all amounts>
  max value: <largest amount>

Files given as arguments replace the configured input_files.

File-level events are written to the console, the plain text log and the
CSV log. The per-record import trace and the summary go to the console.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(
		&xlsxDir,
		"xlsx-dir",
		"",
		"Directory to write the merged workbook to (overrides report.xlsx_dir)",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runMerge orchestrates one merge run. Only setup failures are returned;
// data-level failures are logged and do not change the exit status.
func runMerge(console io.Writer, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if len(args) > 0 {
		cfg.InputFiles = args
	}
	if xlsxDir != "" {
		cfg.Report.XLSXDir = xlsxDir
	}
	if verbose {
		cfg.Logging.Level = zerolog.LevelTraceValue
	}

	format, err := report.NewCurrencyFormatter(cfg.Report.Locale)
	if err != nil {
		return fmt.Errorf("failed to set up currency format: %w", err)
	}

	channels, err := logger.Open(cfg.Logging, console)
	if err != nil {
		return fmt.Errorf("failed to open logs: %w", err)
	}
	defer channels.Close()

	m := merger.New(cfg.CSV, channels, format)
	result := m.Run(cfg.InputFiles)
	m.Report(result.Summary)

	if cfg.Report.XLSXDir != "" {
		writeWorkbook(cfg.Report, result, format, channels)
	}

	return nil
}

// writeWorkbook exports the run to an XLSX file. Failures are logged as warnings.
func writeWorkbook(cfg config.ReportConfig, result merger.Result, format *report.CurrencyFormatter, log merger.Logger) {
	name := utils.GenerateOutputFileName(cfg.FileNameFormat, ".xlsx", time.Now())

	path, err := utils.JoinOutputPath(cfg.XLSXDir, name)
	if err == nil {
		err = report.WriteWorkbook(path, result.Records, result.Summary, format)
	}
	if err != nil {
		log.LogOperational(zerolog.WarnLevel, fmt.Sprintf("cannot write workbook to %s: %v", cfg.XLSXDir, err))
		return
	}

	log.LogOperational(zerolog.InfoLevel, "workbook written to "+filepath.Clean(path))
}
