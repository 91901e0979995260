package transaction

import "github.com/shopspring/decimal"

// Summary holds the statistics reported at the end of a run.
type Summary struct {
	// Count is the number of imported records.
	Count int

	// Total is the sum of all amounts.
	Total decimal.Decimal

	// Max is the largest amount, floored at zero.
	Max decimal.Decimal
}

// Summarize computes the summary statistics for a collection of records.
func Summarize(records []Record) Summary {
	return Summary{
		Count: len(records),
		Total: TotalValue(records),
		Max:   MaxValue(records),
	}
}

// TotalValue returns the sum of all amounts. An empty collection sums to zero.
func TotalValue(records []Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// MaxValue returns the largest amount, comparing from zero. An empty collection,
// or one holding only negative amounts, reports zero rather than the true maximum.
func MaxValue(records []Record) decimal.Decimal {
	highest := decimal.Zero
	for _, r := range records {
		if r.Amount.GreaterThan(highest) {
			highest = r.Amount
		}
	}
	return highest
}
