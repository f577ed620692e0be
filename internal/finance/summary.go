package finance

import (
	"sort"
	"time"

	"github.com/nirbeaver/property-management/internal/property"
	"github.com/nirbeaver/property-management/internal/transaction"
)

// Timeframe is the rolling lookback used by per-property summaries.
type Timeframe string

const (
	TimeframeMonth   Timeframe = "month"
	TimeframeQuarter Timeframe = "quarter"
	TimeframeYear    Timeframe = "year"
	TimeframeAll     Timeframe = "all"
)

// Start returns the inclusive lower bound of the timeframe anchored at now.
// TimeframeAll reports ok=false: no lower bound applies.
func (tf Timeframe) Start(now time.Time) (time.Time, bool) {
	switch tf {
	case TimeframeMonth:
		return now.AddDate(0, -1, 0), true
	case TimeframeQuarter:
		return now.AddDate(0, -3, 0), true
	case TimeframeYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// ExpenseCategory is one expense bucket with its share of the window total.
type ExpenseCategory struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// TrendPoint is one month of income and expense history.
type TrendPoint struct {
	Month    string `json:"month"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
}

// PropertySummary aggregates one property over a timeframe.
type PropertySummary struct {
	PropertyID    string            `json:"propertyId"`
	PropertyName  string            `json:"propertyName"`
	Income        int64             `json:"income"`
	Expenses      int64             `json:"expenses"`
	NetProfit     int64             `json:"netProfit"`
	OccupancyRate float64           `json:"occupancyRate"`
	TopExpenses   []ExpenseCategory `json:"topExpenses"`
	MonthlyTrend  []TrendPoint      `json:"monthlyTrend"`
}

// maxTopExpenses bounds the per-property expense breakdown.
const maxTopExpenses = 5

// trendMonths is the fixed length of every monthly trend.
const trendMonths = 12

// SummarizeByProperty builds one summary per property over the timeframe.
// Archived properties are summarized like any other. The monthly trend
// always spans the twelve calendar months ending at now, oldest first,
// with months that saw no activity present as zero entries.
func SummarizeByProperty(properties []*property.Property, txs []*transaction.Transaction, tf Timeframe, now time.Time) []PropertySummary {
	start, bounded := tf.Start(now)

	summaries := make([]PropertySummary, 0, len(properties))

	for _, prop := range properties {
		s := PropertySummary{
			PropertyID:    prop.ID.String(),
			PropertyName:  prop.Name,
			OccupancyRate: prop.OccupancyRate(),
			MonthlyTrend:  make([]TrendPoint, trendMonths),
		}

		trendIndex := make(map[string]int, trendMonths)

		for i := 0; i < trendMonths; i++ {
			m := monthStart(now).AddDate(0, i-(trendMonths-1), 0)
			s.MonthlyTrend[i] = TrendPoint{Month: m.Format("Jan")}
			trendIndex[m.Format("2006-01")] = i
		}

		byCategory := make(map[string]int64)

		for _, tx := range txs {
			if tx.PropertyID != prop.ID {
				continue
			}

			if i, ok := trendIndex[tx.Date.Format("2006-01")]; ok {
				switch tx.Type {
				case transaction.TypeIncome:
					s.MonthlyTrend[i].Income += tx.Amount
				case transaction.TypeExpense:
					s.MonthlyTrend[i].Expenses += tx.Amount
				}
			}

			if bounded && tx.Date.Before(start) {
				continue
			}

			switch tx.Type {
			case transaction.TypeIncome:
				s.Income += tx.Amount
			case transaction.TypeExpense:
				s.Expenses += tx.Amount
				byCategory[tx.Category] += tx.Amount
			}
		}

		s.NetProfit = s.Income - s.Expenses
		s.TopExpenses = topExpenses(byCategory)

		summaries = append(summaries, s)
	}

	return summaries
}

func topExpenses(byCategory map[string]int64) []ExpenseCategory {
	out := make([]ExpenseCategory, 0, len(byCategory))

	for category, amount := range byCategory {
		out = append(out, ExpenseCategory{Category: category, Amount: amount})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}

		return out[i].Category < out[j].Category
	})

	if len(out) > maxTopExpenses {
		out = out[:maxTopExpenses]
	}

	return out
}

// CategoryShare is an expense category's total and its share of all
// expenses in the window.
type CategoryShare struct {
	Amount  int64   `json:"amount"`
	Percent float64 `json:"percent"`
}

// SummarizeExpensesByCategory totals expenses per category across the
// window and portfolio. When there are no expenses at all, every share is
// 0 rather than NaN.
func SummarizeExpensesByCategory(txs []*transaction.Transaction, filter TimeFilter, portfolio Portfolio, now time.Time) map[string]CategoryShare {
	totals := make(map[string]int64)

	var grand int64

	for _, tx := range txs {
		if tx.Type != transaction.TypeExpense {
			continue
		}

		if !portfolio.Includes(tx) || !InWindow(tx.Date, filter, now) {
			continue
		}

		totals[tx.Category] += tx.Amount
		grand += tx.Amount
	}

	shares := make(map[string]CategoryShare, len(totals))

	for category, amount := range totals {
		share := CategoryShare{Amount: amount}
		if grand > 0 {
			share.Percent = float64(amount) / float64(grand) * 100
		}

		shares[category] = share
	}

	return shares
}
