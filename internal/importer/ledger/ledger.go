// Package ledger parses generic transaction-ledger CSV exports. The header
// row may sit below title rows and columns may come in any order, so the
// parser hunts for the header by its column names.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nirbeaver/property-management/internal/transaction"
)

// PropertyResolver maps a property name cell to a property id.
type PropertyResolver func(name string) (uuid.UUID, bool)

// Importer parses ledger CSVs. Rows without a resolvable property get the
// fallback property.
type Importer struct {
	fallback uuid.UUID
	resolve  PropertyResolver
}

func New(fallback uuid.UUID, resolve PropertyResolver) *Importer {
	return &Importer{fallback: fallback, resolve: resolve}
}

// Recognized header names, lowercased.
const (
	colDate        = "date"
	colType        = "type"
	colCategory    = "category"
	colAmount      = "amount"
	colDescription = "description"
	colVendor      = "vendor"
	colProperty    = "property"
)

// defaultCategory labels rows whose category cell is empty.
const defaultCategory = "Other"

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02-01-2006",
	"Jan 2, 2006",
}

type columns struct {
	date, typ, category, amount, description, vendor, property int
}

func (i *Importer) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	cols := columns{date: -1, typ: -1, category: -1, amount: -1, description: -1, vendor: -1, property: -1}
	headerFound := false

	var params []transaction.CreateParams

	for _, row := range rows {
		if !headerFound {
			cols, headerFound = matchHeader(row)

			continue
		}

		p, ok := i.parseRow(row, cols)
		if !ok {
			continue
		}

		params = append(params, p)
	}

	if !headerFound {
		return nil, fmt.Errorf("no header row with date and amount columns")
	}

	return params, nil
}

// matchHeader reports whether the row is the header. Date and amount
// columns are required; the rest are optional.
func matchHeader(row []string) (columns, bool) {
	cols := columns{date: -1, typ: -1, category: -1, amount: -1, description: -1, vendor: -1, property: -1}

	for idx, cell := range row {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case colDate:
			cols.date = idx
		case colType:
			cols.typ = idx
		case colCategory:
			cols.category = idx
		case colAmount:
			cols.amount = idx
		case colDescription:
			cols.description = idx
		case colVendor:
			cols.vendor = idx
		case colProperty:
			cols.property = idx
		}
	}

	return cols, cols.date != -1 && cols.amount != -1
}

// parseRow converts one data row. Rows with an unparsable date or amount
// are skipped rather than failing the whole file; footers and subtotal
// lines are common in exports.
func (i *Importer) parseRow(row []string, cols columns) (transaction.CreateParams, bool) {
	date, ok := parseDate(cell(row, cols.date))
	if !ok {
		return transaction.CreateParams{}, false
	}

	amount, ok := parseAmount(cell(row, cols.amount))
	if !ok || amount == 0 {
		return transaction.CreateParams{}, false
	}

	typ := transaction.TypeIncome
	if amount < 0 {
		typ = transaction.TypeExpense
		amount = -amount
	}

	switch strings.ToLower(cell(row, cols.typ)) {
	case "income":
		typ = transaction.TypeIncome
	case "expense":
		typ = transaction.TypeExpense
	}

	category := cell(row, cols.category)
	if category == "" {
		category = defaultCategory
	}

	propertyID := i.fallback

	if name := cell(row, cols.property); name != "" && i.resolve != nil {
		if id, ok := i.resolve(name); ok {
			propertyID = id
		}
	}

	return transaction.CreateParams{
		PropertyID:  propertyID,
		Type:        typ,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: cell(row, cols.description),
		Vendor:      cell(row, cols.vendor),
	}, true
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount converts a money cell to cents. Currency symbols, spaces
// and thousands commas are tolerated; parentheses mark negatives the way
// accounting exports write them.
func parseAmount(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}

	negative := false

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, s)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, false
	}

	cents := d.Shift(2).Round(0).IntPart()
	if negative {
		cents = -cents
	}

	return cents, true
}
