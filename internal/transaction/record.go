// =============================================================================
// Transaction Merger - Transaction Types
// =============================================================================
//
// This package contains the transaction record and the summary statistics
// derived from a collection of records. Types defined here are shared by:
//   - csvparser (produces records)
//   - merger    (accumulates records and reports the summary)
//   - report    (exports records and the summary)
//
// =============================================================================

package transaction

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout used when rendering a record date (dd-MM-yyyy).
const DateLayout = "02-01-2006"

// =============================================================================
// RECORD
// =============================================================================

// Record is a single imported transaction.
// A Record is a value: it is built once by the parser and never mutated.
type Record struct {
	// Description is the merchant or description text, taken verbatim.
	Description string

	// Amount is the transaction value. Negative amounts are accepted as-is.
	Amount decimal.Decimal

	// Date is the calendar date of the transaction (midnight UTC).
	Date time.Time
}

// NewRecord builds a Record, truncating the date to its calendar day.
func NewRecord(description string, amount decimal.Decimal, date time.Time) Record {
	y, m, d := date.Date()
	return Record{
		Description: description,
		Amount:      amount,
		Date:        time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

// Equal reports whether two records hold the same three values.
func (r Record) Equal(other Record) bool {
	return r.Description == other.Description &&
		r.Amount.Equal(other.Amount) &&
		r.Date.Equal(other.Date)
}

// String renders the record for the import trace.
func (r Record) String() string {
	return fmt.Sprintf("Record{%s, %s, %s}", r.Description, r.Amount.String(), r.Date.Format(DateLayout))
}
