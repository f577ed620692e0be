// Package report assembles the financial report and renders it as CSV.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/finance"
	"github.com/nirbeaver/property-management/internal/property"
	"github.com/nirbeaver/property-management/internal/transaction"
)

// Params selects the window and portfolio of a report.
type Params struct {
	Filter     finance.TimeFilter
	Timeframe  finance.Timeframe
	PropertyID *uuid.UUID
}

func (p Params) portfolio() finance.Portfolio {
	if p.PropertyID == nil {
		return finance.EntirePortfolio()
	}

	return finance.SingleProperty(*p.PropertyID)
}

// CategoryRow is one expense category line of the report.
type CategoryRow struct {
	Category string  `json:"category"`
	Amount   int64   `json:"amount"`
	Percent  float64 `json:"percent"`
}

// Report is a fully assembled financial report.
type Report struct {
	GeneratedAt time.Time                  `json:"generatedAt"`
	Filter      finance.TimeFilter         `json:"filter"`
	Stats       finance.Stats              `json:"stats"`
	Properties  []finance.PropertySummary  `json:"properties"`
	Categories  []CategoryRow              `json:"categories"`
	Ledger      []*transaction.Transaction `json:"ledger"`
}

// Service builds reports from the property and transaction services.
type Service struct {
	properties   *property.Service
	transactions *transaction.Service
}

// NewService creates a new report service.
func NewService(properties *property.Service, transactions *transaction.Service) *Service {
	return &Service{
		properties:   properties,
		transactions: transactions,
	}
}

// Build assembles the report for the given window. Archived properties are
// included so their history stays reportable. The ledger lists the filtered
// transactions newest first.
func (s *Service) Build(ctx context.Context, params Params, now time.Time) (*Report, error) {
	if params.Filter == "" {
		params.Filter = finance.AllTime
	}

	if params.Timeframe == "" {
		params.Timeframe = finance.TimeframeAll
	}

	props, err := s.properties.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}

	txs, err := s.transactions.List(ctx, transaction.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	portfolio := params.portfolio()

	r := &Report{
		GeneratedAt: now,
		Filter:      params.Filter,
		Stats:       finance.ComputeStats(txs, params.Filter, portfolio, now),
		Properties:  finance.SummarizeByProperty(reportProperties(props, params.PropertyID), txs, params.Timeframe, now),
		Categories:  categoryRows(txs, params.Filter, portfolio, now),
		Ledger:      ledger(txs, params.Filter, portfolio, now),
	}

	return r, nil
}

func reportProperties(props []*property.Property, id *uuid.UUID) []*property.Property {
	if id == nil {
		return props
	}

	for _, p := range props {
		if p.ID == *id {
			return []*property.Property{p}
		}
	}

	return nil
}

func categoryRows(txs []*transaction.Transaction, filter finance.TimeFilter, portfolio finance.Portfolio, now time.Time) []CategoryRow {
	shares := finance.SummarizeExpensesByCategory(txs, filter, portfolio, now)

	rows := make([]CategoryRow, 0, len(shares))

	for category, share := range shares {
		rows = append(rows, CategoryRow{
			Category: category,
			Amount:   share.Amount,
			Percent:  share.Percent,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}

		return rows[i].Category < rows[j].Category
	})

	return rows
}

func ledger(txs []*transaction.Transaction, filter finance.TimeFilter, portfolio finance.Portfolio, now time.Time) []*transaction.Transaction {
	out := make([]*transaction.Transaction, 0, len(txs))

	for _, tx := range txs {
		if !portfolio.Includes(tx) || !finance.InWindow(tx.Date, filter, now) {
			continue
		}

		out = append(out, tx)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out
}

// Filename returns the download name for a report generated at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("financial-report-%s.csv", now.Format("2006-01-02"))
}
