package ledger_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbeaver/property-management/internal/importer/ledger"
	"github.com/nirbeaver/property-management/internal/transaction"
)

var (
	fallback = uuid.New()
	tiara    = uuid.New()
)

func resolve(name string) (uuid.UUID, bool) {
	if name == "Tiara" {
		return tiara, true
	}

	return uuid.Nil, false
}

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"My Ledger Export,,,,,,",
		"Date,Type,Category,Amount,Description,Vendor,Property",
		"2024-01-15,income,Rent,\"2,500.00\",January rent,,Tiara",
		"2024-01-20,expense,Maintenance,500.00,Pipe repair,ABC Plumbing,Tiara",
		"2024-01-25,,Utilities,-75.50,Water bill,,Unknown Prop",
		"Total,,,2924.50,,,",
	}, "\n")

	imp := ledger.New(fallback, resolve)

	params, err := imp.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 3)

	rent := params[0]
	assert.Equal(t, transaction.TypeIncome, rent.Type)
	assert.Equal(t, "Rent", rent.Category)
	assert.Equal(t, int64(250000), rent.Amount)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), rent.Date)
	assert.Equal(t, "January rent", rent.Description)
	assert.Equal(t, tiara, rent.PropertyID)

	repair := params[1]
	assert.Equal(t, transaction.TypeExpense, repair.Type)
	assert.Equal(t, int64(50000), repair.Amount)
	assert.Equal(t, "ABC Plumbing", repair.Vendor)

	water := params[2]
	assert.Equal(t, transaction.TypeExpense, water.Type, "negative amount implies expense")
	assert.Equal(t, int64(7550), water.Amount)
	assert.Equal(t, fallback, water.PropertyID, "unknown property falls back")
}

func TestParseHeaderVariants(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantCategory string
	}{
		{
			name:         "reordered columns",
			input:        "Amount,Date,Category\n100.00,2024-03-01,Rent\n",
			wantCategory: "Rent",
		},
		{
			name:         "mixed case header",
			input:        "DATE,AMOUNT\n2024-03-01,100.00\n",
			wantCategory: "Other",
		},
		{
			name:         "slash dates",
			input:        "Date,Amount\n03/01/2024,100.00\n",
			wantCategory: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := ledger.New(fallback, nil).Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Len(t, params, 1)
			assert.Equal(t, int64(10000), params[0].Amount)
			assert.Equal(t, tt.wantCategory, params[0].Category)
		})
	}
}

func TestParseAmountForms(t *testing.T) {
	tests := []struct {
		cell string
		want int64
		typ  transaction.Type
	}{
		{"$1,250.00", 125000, transaction.TypeIncome},
		{"(300.00)", 30000, transaction.TypeExpense},
		{"-42.10", 4210, transaction.TypeExpense},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			input := "Date,Amount\n2024-03-01,\"" + tt.cell + "\"\n"

			params, err := ledger.New(fallback, nil).Parse(strings.NewReader(input))
			require.NoError(t, err)
			require.Len(t, params, 1)
			assert.Equal(t, tt.want, params[0].Amount)
			assert.Equal(t, tt.typ, params[0].Type)
		})
	}
}

func TestParseNoHeader(t *testing.T) {
	_, err := ledger.New(fallback, nil).Parse(strings.NewReader("just,some,cells\n1,2,3\n"))
	assert.Error(t, err)
}

func TestParseSkipsBadRows(t *testing.T) {
	input := strings.Join([]string{
		"Date,Amount",
		"not-a-date,100.00",
		"2024-03-01,not-a-number",
		"2024-03-01,0",
		"2024-03-01,55.00",
	}, "\n")

	params, err := ledger.New(fallback, nil).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, int64(5500), params[0].Amount)
}
