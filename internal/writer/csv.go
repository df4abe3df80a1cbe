package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/SidInNJ/statements2csv/internal/models"
	"github.com/SidInNJ/statements2csv/internal/summary"
)

// Columns is the fixed CSV column order.
var Columns = []string{"Date", "Number", "Description", "Withdrawals", "Deposits", "Balance"}

// CSVWriter renders a report as spreadsheet-friendly CSV: the sorted raw
// rows, one blank separator row, then the summary rows. Absent numeric
// fields serialize as empty strings so "no value" stays distinct from zero.
type CSVWriter struct {
	// BOM prepends a UTF-8 byte order mark so Excel opens the file with the
	// right encoding.
	BOM bool
}

// WriteToFile writes the report to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, rep *summary.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, rep)
}

// Write renders the report to out.
func (w *CSVWriter) Write(out io.Writer, rep *summary.Report) error {
	if w.BOM {
		if _, err := out.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	cw := csv.NewWriter(out)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range rep.Transactions {
		row := []string{
			t.Date,
			t.CheckNumber,
			t.Description,
			optional(t.Withdrawal),
			optional(t.Deposit),
			t.Balance.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	if len(rep.Groups) > 0 {
		if err := cw.Write(make([]string, len(Columns))); err != nil {
			return fmt.Errorf("failed to write separator row: %w", err)
		}
		for _, g := range rep.Groups {
			row := []string{
				"",
				"",
				GroupLabel(g),
				positiveOrBlank(g.Withdrawals),
				positiveOrBlank(g.Deposits),
				"",
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write summary row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// GroupLabel renders the description cell for a summary row.
func GroupLabel(g models.SummaryGroup) string {
	if g.Precedence == models.PrecedenceExact {
		return fmt.Sprintf("TOTAL for exact matches: %s (%d transactions)", g.Key, g.Count)
	}
	return fmt.Sprintf("TOTAL for partial matches: %s... (%d transactions)", g.Key, g.Count)
}

func optional(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// positiveOrBlank renders totals; a tier that never accumulated anything
// shows as blank, not 0.00.
func positiveOrBlank(d decimal.Decimal) string {
	if !d.IsPositive() {
		return ""
	}
	return d.StringFixed(2)
}
