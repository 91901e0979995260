// =============================================================================
// Transaction Merger - Logging
// =============================================================================
//
// This package builds the two logging channels used during a run:
//
//   Operational channel (file-level events: opened, missing, parse/read errors)
//     ├── plain text log   (logs.txt)   "WARN - file a.csv does not exist - skip"
//     ├── structured log   (logs.csv)   "19-10-2026,WARN,file a.csv does not exist - skip"
//     └── console                       "WARN - file a.csv does not exist - skip"
//
//   Transaction channel (per-record import trace, final summary)
//     └── console
//
// Both channels are zerolog loggers. The channels are created once at startup
// with Open and released with Close.
//
// =============================================================================

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ginjaninja78/transaction-merger/internal/config"
	"github.com/ginjaninja78/transaction-merger/pkg/utils"
)

// New creates a structured logger writing to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// =============================================================================
// CHANNELS
// =============================================================================

// Channels holds the operational and transaction loggers and the files they
// write to.
type Channels struct {
	// Operational receives file-level events.
	Operational zerolog.Logger

	// Transaction receives record-level events and the summary.
	Transaction zerolog.Logger

	files  []*os.File
	closed bool
}

// Open creates both channels from the logging configuration.
//
// PARAMETERS:
//   - cfg: The logging configuration (file paths, level, console toggle).
//   - console: The console writer, normally os.Stdout. Ignored when cfg.Quiet is set.
//
// RETURNS:
//   - The channels. The caller must call Close when the run is over.
//   - An error if the level is unknown or a log file cannot be opened.
func Open(cfg config.LoggingConfig, console io.Writer) (*Channels, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	c := &Channels{}

	text, err := openAppend(cfg.TextFile)
	if err != nil {
		return nil, err
	}
	c.files = append(c.files, text)

	structured, err := openAppend(cfg.CSVFile)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.files = append(c.files, structured)

	operational := []io.Writer{NewSimpleWriter(text), NewCSVWriter(structured)}
	var transactions []io.Writer

	if !cfg.Quiet && console != nil {
		operational = append(operational, NewSimpleWriter(console))
		transactions = append(transactions, NewSimpleWriter(console))
	}

	c.Operational = New(zerolog.MultiLevelWriter(operational...)).Level(level)
	if len(transactions) == 0 {
		c.Transaction = zerolog.Nop()
	} else {
		c.Transaction = New(zerolog.MultiLevelWriter(transactions...)).Level(level)
	}

	return c, nil
}

// LogOperational records an event on the operational channel.
func (c *Channels) LogOperational(level zerolog.Level, msg string) {
	c.Operational.WithLevel(level).Msg(msg)
}

// LogTransaction records an event on the transaction channel.
func (c *Channels) LogTransaction(level zerolog.Level, msg string) {
	c.Transaction.WithLevel(level).Msg(msg)
}

// Close flushes and closes the log files. It is safe to call more than once.
func (c *Channels) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	for _, f := range c.files {
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", f.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// openAppend opens a log file in append mode, creating it and its directory.
func openAppend(path string) (*os.File, error) {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
