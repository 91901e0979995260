// =============================================================================
// Transaction Merger - CSV Parser Module
// =============================================================================
//
// This module turns delimited transaction lines into records. It provides:
//   - ParseLine: one line -> one Record, or a classified *ImportError
//   - LineReader: sequential line access to one input file with a single,
//     guaranteed release of the underlying handle
//
// LINE FORMAT:
//   description,amount,date
//   Coffee,3.50,01-02-2020
//
//   Fields are split on the configured delimiter. Quoting and escaping are not
//   supported and encoding/csv is not used: a quote in a
//   description is data, not syntax.
//
// =============================================================================

package csvparser

import (
	"fmt"
	"strings"
	"time"

	"github.com/ginjaninja78/transaction-merger/internal/config"
	"github.com/ginjaninja78/transaction-merger/internal/transaction"
	"github.com/shopspring/decimal"
)

// Field positions within a line.
const (
	fieldDescription = 0
	fieldAmount      = 1
	fieldDate        = 2

	minFields = 3
)

// =============================================================================
// LINE PARSER
// =============================================================================

// ParseLine parses a single line into a Record.
//
// PARAMETERS:
//   - line: The raw line text, without the line terminator.
//   - settings: The delimiter and date layout.
//
// RETURNS:
//   - The parsed record.
//   - An *ImportError classified as KindMalformedLine, KindNumberFormat,
//     KindDateFormat or KindUnclassified. The error carries the raw line.
//
// Fields after the third are ignored. ParseLine never panics.
func ParseLine(line string, settings config.CSVSettings) (rec transaction.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = transaction.Record{}
			err = &ImportError{Kind: KindUnclassified, Line: line, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	fields := strings.Split(line, settings.Delimiter)
	if len(fields) < minFields {
		return transaction.Record{}, &ImportError{
			Kind: KindMalformedLine,
			Line: line,
			Err:  fmt.Errorf("expected %d fields, got %d", minFields, len(fields)),
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(fields[fieldAmount]))
	if err != nil {
		return transaction.Record{}, &ImportError{Kind: KindNumberFormat, Line: line, Err: err}
	}

	date, err := time.Parse(settings.DateLayout, strings.TrimSpace(fields[fieldDate]))
	if err != nil {
		return transaction.Record{}, &ImportError{Kind: KindDateFormat, Line: line, Err: err}
	}

	return transaction.NewRecord(fields[fieldDescription], amount, date), nil
}
