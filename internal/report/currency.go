// =============================================================================
// Transaction Merger - Report Module
// =============================================================================
//
// This module renders the results of a merge run:
//   - CurrencyFormatter: locale-aware currency strings for the summary lines
//   - WriteWorkbook:     an XLSX export of the merged records and the summary
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter formats amounts in the currency of a locale.
type CurrencyFormatter struct {
	tag     language.Tag
	unit    currency.Unit
	printer *message.Printer
}

// NewCurrencyFormatter creates a formatter for a BCP 47 locale such as "en-NZ".
// The currency is derived from the locale's region.
func NewCurrencyFormatter(locale string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return nil, fmt.Errorf("no currency known for locale %q", locale)
	}

	return &CurrencyFormatter{
		tag:     tag,
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Currency returns the ISO 4217 code in use, e.g. "NZD".
func (f *CurrencyFormatter) Currency() string {
	return f.unit.String()
}

// Locale returns the locale tag in use.
func (f *CurrencyFormatter) Locale() string {
	return f.tag.String()
}

// Format renders an amount with the currency symbol and the locale's digit
// grouping, rounded to the currency's standard scale.
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount.InexactFloat64())))
}
