package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/transaction-merger/internal/transaction"
)

// Sheet names of the exported workbook.
const (
	TransactionsSheet = "Transactions"
	SummarySheet      = "Summary"
)

// WriteWorkbook writes the merged records and their summary to an XLSX file.
//
// WORKBOOK LAYOUT:
//
//	Transactions: Description | Amount | Date          (one row per record, merge order)
//	Summary:      Metric      | Value  | Formatted     (Count, Total, Max)
//
// PARAMETERS:
//   - path: The output file path. An existing file is overwritten.
//   - records: The merged records.
//   - summary: The statistics computed from records.
//   - format: The currency formatter for the Formatted column.
func WriteWorkbook(path string, records []transaction.Record, summary transaction.Summary, format *CurrencyFormatter) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), TransactionsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(TransactionsSheet, "A1", &[]interface{}{"Description", "Amount", "Date"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.Description, r.Amount.InexactFloat64(), r.Date.Format(transaction.DateLayout)}
		if err := f.SetSheetRow(TransactionsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	rows := [][]interface{}{
		{"Metric", "Value", "Formatted"},
		{"Count", summary.Count, fmt.Sprintf("%d", summary.Count)},
		{"Total", summary.Total.InexactFloat64(), format.Format(summary.Total)},
		{"Max", summary.Max.InexactFloat64(), format.Format(summary.Max)},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
