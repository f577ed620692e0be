package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/nirbeaver/property-management/internal/transaction"
)

// WriteCSV renders the report as CSV. Sections are separated by blank rows;
// quoting follows RFC 4180 via encoding/csv, doubling embedded quotes.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Financial Report", r.GeneratedAt.Format("2006-01-02")},
		{"Period", string(r.Filter)},
		{},
		{"Financial Summary"},
		{"Metric", "Amount"},
		{"Total Income", formatAmount(r.Stats.TotalIncome)},
		{"Total Expenses", formatAmount(r.Stats.TotalExpenses)},
		{"Net Profit", formatAmount(r.Stats.NetProfit)},
		{},
		{"Property Summaries"},
		{"Property", "Income", "Expenses", "Net Profit", "Occupancy Rate"},
	}

	for _, p := range r.Properties {
		rows = append(rows, []string{
			p.PropertyName,
			formatAmount(p.Income),
			formatAmount(p.Expenses),
			formatAmount(p.NetProfit),
			fmt.Sprintf("%.1f%%", p.OccupancyRate),
		})
	}

	rows = append(rows,
		[]string{},
		[]string{"Expense Categories"},
		[]string{"Category", "Amount", "Percent"},
	)

	for _, c := range r.Categories {
		rows = append(rows, []string{
			c.Category,
			formatAmount(c.Amount),
			fmt.Sprintf("%.1f%%", c.Percent),
		})
	}

	rows = append(rows,
		[]string{},
		[]string{"Detailed Transactions"},
		[]string{"Date", "Type", "Category", "Description", "Vendor", "Amount"},
	)

	for _, tx := range r.Ledger {
		rows = append(rows, []string{
			tx.Date.Format("2006-01-02"),
			string(tx.Type),
			tx.Category,
			tx.Description,
			tx.Vendor,
			formatAmount(signedAmount(tx)),
		})
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func signedAmount(tx *transaction.Transaction) int64 {
	if tx.Type == transaction.TypeExpense {
		return -tx.Amount
	}

	return tx.Amount
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
