package finance_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbeaver/property-management/internal/finance"
	"github.com/nirbeaver/property-management/internal/property"
	"github.com/nirbeaver/property-management/internal/transaction"
)

var now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func tx(propertyID uuid.UUID, typ transaction.Type, category string, amount int64, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		ID:         uuid.New(),
		PropertyID: propertyID,
		Type:       typ,
		Category:   category,
		Amount:     amount,
		Date:       date,
	}
}

func TestComputeStats(t *testing.T) {
	propA := uuid.New()
	propB := uuid.New()

	txs := []*transaction.Transaction{
		tx(propA, transaction.TypeIncome, "Rent", 300000, now),
		tx(propA, transaction.TypeExpense, "Maintenance", 15000, now),
		tx(propB, transaction.TypeIncome, "Rent", 100000, now.AddDate(-1, 0, 0)),
	}

	t.Run("sums the filtered window", func(t *testing.T) {
		stats := finance.ComputeStats(txs, finance.ThisMonth, finance.EntirePortfolio(), now)

		assert.Equal(t, int64(300000), stats.TotalIncome)
		assert.Equal(t, int64(15000), stats.TotalExpenses)
		assert.Equal(t, int64(285000), stats.NetProfit)
	})

	t.Run("net profit is income minus expenses", func(t *testing.T) {
		for _, filter := range finance.TimeFilters {
			stats := finance.ComputeStats(txs, filter, finance.EntirePortfolio(), now)
			assert.Equal(t, stats.TotalIncome-stats.TotalExpenses, stats.NetProfit, filter)
		}
	})

	t.Run("restricts to a single property", func(t *testing.T) {
		stats := finance.ComputeStats(txs, finance.AllTime, finance.SingleProperty(propB), now)

		assert.Equal(t, int64(100000), stats.TotalIncome)
		assert.Equal(t, int64(0), stats.TotalExpenses)
	})

	t.Run("compares against the previous period", func(t *testing.T) {
		history := []*transaction.Transaction{
			tx(propA, transaction.TypeIncome, "Rent", 200000, now),
			tx(propA, transaction.TypeIncome, "Rent", 100000, now.AddDate(-1, 0, 0)),
		}

		stats := finance.ComputeStats(history, finance.ThisYear, finance.EntirePortfolio(), now)

		assert.Equal(t, int64(200000), stats.TotalIncome)
		assert.InDelta(t, 100, stats.IncomeChange, 1e-9)
	})

	t.Run("zero previous baseline yields zero change", func(t *testing.T) {
		history := []*transaction.Transaction{
			tx(propA, transaction.TypeIncome, "Rent", 200000, now),
		}

		stats := finance.ComputeStats(history, finance.ThisYear, finance.EntirePortfolio(), now)

		assert.Zero(t, stats.IncomeChange)
		assert.Zero(t, stats.ExpensesChange)
		assert.Zero(t, stats.ProfitChange)
	})

	t.Run("all time has no comparison period", func(t *testing.T) {
		stats := finance.ComputeStats(txs, finance.AllTime, finance.EntirePortfolio(), now)

		assert.Equal(t, int64(400000), stats.TotalIncome)
		assert.Zero(t, stats.IncomeChange)
	})

	t.Run("last month compares against the month before", func(t *testing.T) {
		history := []*transaction.Transaction{
			tx(propA, transaction.TypeIncome, "Rent", 150000, now.AddDate(0, -1, 0)),
			tx(propA, transaction.TypeIncome, "Rent", 100000, now.AddDate(0, -2, 0)),
		}

		stats := finance.ComputeStats(history, finance.LastMonth, finance.EntirePortfolio(), now)

		assert.Equal(t, int64(150000), stats.TotalIncome)
		assert.InDelta(t, 50, stats.IncomeChange, 1e-9)
	})

	t.Run("empty input yields zero stats", func(t *testing.T) {
		stats := finance.ComputeStats(nil, finance.ThisYear, finance.EntirePortfolio(), now)

		assert.Zero(t, stats.TotalIncome)
		assert.Zero(t, stats.TotalExpenses)
		assert.Zero(t, stats.NetProfit)
	})
}

func TestSummarizeByProperty(t *testing.T) {
	prop := &property.Property{
		ID:            uuid.New(),
		Name:          "Tiara",
		Units:         10,
		OccupiedUnits: 8,
	}

	t.Run("trend always spans twelve months oldest first", func(t *testing.T) {
		summaries := finance.SummarizeByProperty([]*property.Property{prop}, nil, finance.TimeframeAll, now)

		require.Len(t, summaries, 1)
		require.Len(t, summaries[0].MonthlyTrend, 12)
		assert.Equal(t, "Jul", summaries[0].MonthlyTrend[0].Month)
		assert.Equal(t, "Jun", summaries[0].MonthlyTrend[11].Month)

		for _, point := range summaries[0].MonthlyTrend {
			assert.Zero(t, point.Income)
			assert.Zero(t, point.Expenses)
		}
	})

	t.Run("aggregates income and expenses over the timeframe", func(t *testing.T) {
		txs := []*transaction.Transaction{
			tx(prop.ID, transaction.TypeIncome, "Rent", 250000, now),
			tx(prop.ID, transaction.TypeExpense, "Maintenance", 50000, now),
			tx(prop.ID, transaction.TypeIncome, "Rent", 250000, now.AddDate(-2, 0, 0)),
		}

		summaries := finance.SummarizeByProperty([]*property.Property{prop}, txs, finance.TimeframeYear, now)

		require.Len(t, summaries, 1)
		assert.Equal(t, int64(250000), summaries[0].Income)
		assert.Equal(t, int64(50000), summaries[0].Expenses)
		assert.Equal(t, int64(200000), summaries[0].NetProfit)
		assert.InDelta(t, 80, summaries[0].OccupancyRate, 1e-9)
	})

	t.Run("trend buckets transactions by calendar month", func(t *testing.T) {
		txs := []*transaction.Transaction{
			tx(prop.ID, transaction.TypeIncome, "Rent", 250000, now),
			tx(prop.ID, transaction.TypeExpense, "Utilities", 30000, now.AddDate(0, -1, 0)),
		}

		summaries := finance.SummarizeByProperty([]*property.Property{prop}, txs, finance.TimeframeAll, now)

		require.Len(t, summaries, 1)
		trend := summaries[0].MonthlyTrend
		assert.Equal(t, int64(250000), trend[11].Income)
		assert.Equal(t, int64(30000), trend[10].Expenses)
	})

	t.Run("keeps the five largest expense categories", func(t *testing.T) {
		categories := []string{"A", "B", "C", "D", "E", "F"}

		var txs []*transaction.Transaction
		for i, category := range categories {
			txs = append(txs, tx(prop.ID, transaction.TypeExpense, category, int64((i+1)*1000), now))
		}

		summaries := finance.SummarizeByProperty([]*property.Property{prop}, txs, finance.TimeframeAll, now)

		require.Len(t, summaries, 1)
		top := summaries[0].TopExpenses
		require.Len(t, top, 5)
		assert.Equal(t, "F", top[0].Category)
		assert.Equal(t, int64(6000), top[0].Amount)
		assert.Equal(t, "B", top[4].Category)
	})

	t.Run("other properties are excluded", func(t *testing.T) {
		txs := []*transaction.Transaction{
			tx(uuid.New(), transaction.TypeIncome, "Rent", 999999, now),
		}

		summaries := finance.SummarizeByProperty([]*property.Property{prop}, txs, finance.TimeframeAll, now)

		require.Len(t, summaries, 1)
		assert.Zero(t, summaries[0].Income)
	})
}

func TestSummarizeExpensesByCategory(t *testing.T) {
	prop := uuid.New()

	t.Run("shares sum to one hundred", func(t *testing.T) {
		txs := []*transaction.Transaction{
			tx(prop, transaction.TypeExpense, "Maintenance", 75000, now),
			tx(prop, transaction.TypeExpense, "Utilities", 25000, now),
			tx(prop, transaction.TypeIncome, "Rent", 500000, now),
		}

		shares := finance.SummarizeExpensesByCategory(txs, finance.ThisYear, finance.EntirePortfolio(), now)

		require.Len(t, shares, 2)
		assert.InDelta(t, 75, shares["Maintenance"].Percent, 1e-9)
		assert.InDelta(t, 25, shares["Utilities"].Percent, 1e-9)

		var sum float64
		for _, share := range shares {
			sum += share.Percent
		}
		assert.InDelta(t, 100, sum, 1e-9)
	})

	t.Run("no expenses yields no shares", func(t *testing.T) {
		txs := []*transaction.Transaction{
			tx(prop, transaction.TypeIncome, "Rent", 500000, now),
		}

		shares := finance.SummarizeExpensesByCategory(txs, finance.ThisYear, finance.EntirePortfolio(), now)

		assert.Empty(t, shares)
	})

	t.Run("ignores expenses outside the window", func(t *testing.T) {
		txs := []*transaction.Transaction{
			tx(prop, transaction.TypeExpense, "Maintenance", 10000, now.AddDate(-3, 0, 0)),
		}

		shares := finance.SummarizeExpensesByCategory(txs, finance.ThisYear, finance.EntirePortfolio(), now)

		assert.Empty(t, shares)
	})
}
