// Package finance reduces transaction slices into the summary statistics
// shown on dashboards and reports. Every function here is pure: input slices
// are already loaded, nothing is mutated, and empty input yields zero-valued
// summaries rather than an error.
package finance

import (
	"time"

	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/transaction"
)

// TimeFilter is the coarse calendar window applied to transaction dates.
type TimeFilter string

const (
	AllTime   TimeFilter = "All Time"
	ThisMonth TimeFilter = "This Month"
	LastMonth TimeFilter = "Last Month"
	ThisYear  TimeFilter = "This Year"
	LastYear  TimeFilter = "Last Year"
)

// TimeFilters lists the selectable windows in display order.
var TimeFilters = []TimeFilter{ThisMonth, LastMonth, ThisYear, LastYear, AllTime}

// Portfolio selects either the entire portfolio or a single property.
// The zero value selects everything.
type Portfolio struct {
	propertyID uuid.UUID
}

// EntirePortfolio selects all properties.
func EntirePortfolio() Portfolio {
	return Portfolio{}
}

// SingleProperty restricts aggregation to one property.
func SingleProperty(id uuid.UUID) Portfolio {
	return Portfolio{propertyID: id}
}

func (p Portfolio) Includes(tx *transaction.Transaction) bool {
	return p.propertyID == uuid.Nil || tx.PropertyID == p.propertyID
}

// Stats summarizes a filtered window plus its change against the
// immediately preceding comparable period. Amounts are cents.
type Stats struct {
	TotalIncome    int64   `json:"totalIncome"`
	TotalExpenses  int64   `json:"totalExpenses"`
	NetProfit      int64   `json:"netProfit"`
	IncomeChange   float64 `json:"incomeChange"`
	ExpensesChange float64 `json:"expensesChange"`
	ProfitChange   float64 `json:"profitChange"`
}

// ComputeStats filters transactions to the window and portfolio, sums income
// and expenses, and derives percentage change against the previous
// comparable period. A zero previous-period baseline always yields a change
// of exactly 0: the UI renders a stable "0%" instead of infinities.
func ComputeStats(txs []*transaction.Transaction, filter TimeFilter, portfolio Portfolio, now time.Time) Stats {
	var income, expenses int64

	for _, tx := range txs {
		if !portfolio.Includes(tx) || !InWindow(tx.Date, filter, now) {
			continue
		}

		switch tx.Type {
		case transaction.TypeIncome:
			income += tx.Amount
		case transaction.TypeExpense:
			expenses += tx.Amount
		}
	}

	var prevIncome, prevExpenses int64

	if prev, ok := previousWindow(filter); ok {
		for _, tx := range txs {
			if !portfolio.Includes(tx) || !InWindow(tx.Date, prev, now) {
				continue
			}

			switch tx.Type {
			case transaction.TypeIncome:
				prevIncome += tx.Amount
			case transaction.TypeExpense:
				prevExpenses += tx.Amount
			}
		}
	}

	return Stats{
		TotalIncome:    income,
		TotalExpenses:  expenses,
		NetProfit:      income - expenses,
		IncomeChange:   percentChange(income, prevIncome),
		ExpensesChange: percentChange(expenses, prevExpenses),
		ProfitChange:   percentChange(income-expenses, prevIncome-prevExpenses),
	}
}

func percentChange(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}

	return float64(current-previous) / float64(previous) * 100
}

// InWindow reports whether the date falls inside the calendar window
// anchored at now.
func InWindow(date time.Time, filter TimeFilter, now time.Time) bool {
	switch filter {
	case ThisYear:
		return date.Year() == now.Year()
	case LastYear:
		return date.Year() == now.Year()-1
	case yearBefore:
		return date.Year() == now.Year()-2
	case ThisMonth:
		return sameMonth(date, now)
	case LastMonth:
		return sameMonth(date, monthStart(now).AddDate(0, -1, 0))
	case monthBefore:
		return sameMonth(date, monthStart(now).AddDate(0, -2, 0))
	default:
		return true
	}
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// previousWindow returns the comparable preceding window. There is none for
// AllTime, so change percentages come out 0 via the zero-baseline rule.
func previousWindow(filter TimeFilter) (TimeFilter, bool) {
	switch filter {
	case ThisYear:
		return LastYear, true
	case ThisMonth:
		return LastMonth, true
	case LastYear:
		return yearBefore, true
	case LastMonth:
		return monthBefore, true
	default:
		return "", false
	}
}

// Internal windows for the period preceding "last": two years or two
// calendar months back from now. Not part of TimeFilters.
const (
	yearBefore  TimeFilter = "year-before-last"
	monthBefore TimeFilter = "month-before-last"
)
