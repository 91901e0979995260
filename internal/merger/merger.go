// =============================================================================
// Transaction Merger - Merger Module
// =============================================================================
//
// This module contains the core merge logic. It reads every configured input
// file in order, collects the records that parse successfully and reports the
// summary of the merged collection.
//
// MERGE PIPELINE:
//   1. For each input file, in order:
//      a. Open the file (a missing file is skipped with a warning)
//      b. Parse every line; a bad line is logged and skipped
//      c. Release the file handle exactly once
//   2. Summarize the merged collection
//   3. Report count, total and max on the transaction channel
//
// No failure stops the run: every failure is logged where it is detected and
// processing continues with the next line or file.
//
// =============================================================================

package merger

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/transaction-merger/internal/config"
	"github.com/ginjaninja78/transaction-merger/internal/csvparser"
	"github.com/ginjaninja78/transaction-merger/internal/transaction"
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// Logger is the two-channel event sink used during a run.
// logger.Channels implements it.
type Logger interface {
	// LogOperational records a file-level event.
	LogOperational(level zerolog.Level, msg string)

	// LogTransaction records a record-level event or a summary line.
	LogTransaction(level zerolog.Level, msg string)
}

// Formatter renders a monetary amount for the summary lines.
// report.CurrencyFormatter implements it.
type Formatter interface {
	Format(amount decimal.Decimal) string
}

// OpenFunc opens an input file for line reading.
type OpenFunc func(path string) (*csvparser.LineReader, error)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result is the outcome of a merge run.
type Result struct {
	// Records is the merged collection, in file order then line order.
	Records []transaction.Record

	// Summary is computed once from Records after all files are read.
	Summary transaction.Summary

	// Failures counts the logged failures by kind.
	Failures map[csvparser.Kind]int
}

// FailureCount returns the total number of failures of every kind.
func (r Result) FailureCount() int {
	n := 0
	for _, c := range r.Failures {
		n += c
	}
	return n
}

// =============================================================================
// MERGER STRUCTURE
// =============================================================================

// Merger imports transaction files and reports on the merged records.
type Merger struct {
	settings config.CSVSettings
	log      Logger
	format   Formatter
	open     OpenFunc

	failures map[csvparser.Kind]int
}

// Option customizes a Merger.
type Option func(*Merger)

// WithOpener replaces the function used to open input files.
func WithOpener(open OpenFunc) Option {
	return func(m *Merger) {
		m.open = open
	}
}

// New creates a Merger.
//
// PARAMETERS:
//   - settings: The delimiter and date layout for line parsing.
//   - log: The event sink for both channels.
//   - format: The currency formatter for the summary lines.
func New(settings config.CSVSettings, log Logger, format Formatter, opts ...Option) *Merger {
	m := &Merger{
		settings: settings,
		log:      log,
		format:   format,
		open:     csvparser.Open,
		failures: make(map[csvparser.Kind]int),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// =============================================================================
// MAIN PROCESSING FUNCTIONS
// =============================================================================

// Run imports every file in order and summarizes the merged collection.
func (m *Merger) Run(paths []string) Result {
	m.failures = make(map[csvparser.Kind]int)

	var records []transaction.Record
	for _, path := range paths {
		records = m.ImportFile(path, records)
	}

	result := Result{
		Records:  records,
		Summary:  transaction.Summarize(records),
		Failures: m.failures,
	}

	m.log.LogOperational(zerolog.InfoLevel, runSummary(len(paths), result))
	return result
}

// ImportFile reads one file and appends every record that parses to records.
//
// PARAMETERS:
//   - path: The input file.
//   - records: The collection to append to.
//
// RETURNS:
//   - The extended collection. If the file is missing, records is returned
//     unchanged.
//
// FAILURE HANDLING:
//   - Missing file:      warning, file skipped
//   - Bad line:          warning with file and raw line, line skipped
//   - Read error:        warning, rest of the file skipped
//   - Close error:       warning only
func (m *Merger) ImportFile(path string, records []transaction.Record) []transaction.Record {
	m.log.LogOperational(zerolog.InfoLevel, "import data from "+path)

	reader, err := m.open(path)
	if err != nil {
		m.fail(err, path)
		return records
	}
	defer func() {
		if err := reader.Close(); err != nil {
			m.fail(err, path)
		}
	}()

	for reader.Next() {
		rec, err := csvparser.ParseLine(reader.Line(), m.settings)
		if err != nil {
			m.fail(err, path)
			continue
		}
		records = append(records, rec)
		m.log.LogTransaction(zerolog.DebugLevel, "imported transaction "+rec.String())
	}

	if err := reader.Err(); err != nil {
		m.fail(err, path)
	}

	return records
}

// Report logs the summary on the transaction channel.
func (m *Merger) Report(summary transaction.Summary) {
	m.log.LogTransaction(zerolog.InfoLevel, fmt.Sprintf("%d transactions imported", summary.Count))
	m.log.LogTransaction(zerolog.InfoLevel, "total value: "+m.format.Format(summary.Total))
	m.log.LogTransaction(zerolog.InfoLevel, "max value: "+m.format.Format(summary.Max))
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// fail counts a failure and logs it as a warning on the operational channel.
func (m *Merger) fail(err error, path string) {
	kind := csvparser.KindOf(err)
	m.failures[kind]++
	m.log.LogOperational(zerolog.WarnLevel, warningFor(kind, path, lineOf(err)))
}

// warningFor renders the operational warning for a failure kind.
func warningFor(kind csvparser.Kind, path, line string) string {
	switch kind {
	case csvparser.KindFileNotFound:
		return fmt.Sprintf("file %s does not exist - skip", path)
	case csvparser.KindIO:
		return fmt.Sprintf("problem reading file %s", path)
	case csvparser.KindClose:
		return fmt.Sprintf("cannot close reader used to access %s", path)
	case csvparser.KindNumberFormat:
		return fmt.Sprintf("cannot parse amount in file %s, line: %s", path, line)
	case csvparser.KindDateFormat:
		return fmt.Sprintf("cannot parse date in file %s, line: %s", path, line)
	default:
		return fmt.Sprintf("exception reading data from file %s, line: %s", path, line)
	}
}

// lineOf returns the raw line carried by an import error, if any.
func lineOf(err error) string {
	var ie *csvparser.ImportError
	if errors.As(err, &ie) {
		return ie.Line
	}
	return ""
}

// runSummary renders the closing operational line of a run.
func runSummary(files int, result Result) string {
	msg := fmt.Sprintf("merge finished: %d file(s), %d record(s), %d failure(s)",
		files, len(result.Records), result.FailureCount())
	if len(result.Failures) == 0 {
		return msg
	}

	kinds := make([]csvparser.Kind, 0, len(result.Failures))
	for k := range result.Failures {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s: %d", k, result.Failures[k]))
	}
	return msg + " (" + strings.Join(parts, ", ") + ")"
}
