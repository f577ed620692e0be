package view

import (
	"fmt"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nirbeaver/property-management/internal/finance"
	"github.com/nirbeaver/property-management/internal/property"
	"github.com/nirbeaver/property-management/internal/transaction"
)

// DashboardModel shows portfolio financial stats for a selectable
// time filter, optionally narrowed to a single property.
type DashboardModel struct {
	CommonModel
	propertyService *property.Service
	txService       *transaction.Service

	properties []*property.Property
	txs        []*transaction.Transaction

	filterIdx    int
	portfolioIdx int // 0 is the entire portfolio, i+1 is properties[i]

	loading bool
	err     error
}

func NewDashboardModel(propSvc *property.Service, txSvc *transaction.Service) DashboardModel {
	return DashboardModel{
		propertyService: propSvc,
		txService:       txSvc,
		filterIdx:       len(finance.TimeFilters) - 1, // All Time
		loading:         true,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "Esc: back | f: period | p: property | r: refresh"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.properties = msg.properties
		m.txs = msg.txs
		return m, nil

	case RecordsChangedMsg:
		// Reload silently; the stale numbers stay on screen until the
		// fresh snapshot lands.
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "f":
			m.filterIdx = (m.filterIdx + 1) % len(finance.TimeFilters)
		case "p":
			m.portfolioIdx = (m.portfolioIdx + 1) % (len(m.properties) + 1)
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	filter := finance.TimeFilters[m.filterIdx]
	portfolio := finance.EntirePortfolio()
	portfolioLabel := "All Properties"
	if m.portfolioIdx > 0 {
		p := m.properties[m.portfolioIdx-1]
		portfolio = finance.SingleProperty(p.ID)
		portfolioLabel = p.Name
	}

	now := time.Now()
	stats := finance.ComputeStats(m.txs, filter, portfolio, now)

	header := fmt.Sprintf(
		"Period: %s | Property: %s",
		activeStyle(string(filter)),
		activeStyle(portfolioLabel),
	)

	rows := []string{
		statLine("Total Income", stats.TotalIncome, stats.IncomeChange),
		statLine("Total Expenses", stats.TotalExpenses, stats.ExpensesChange),
		statLine("Net Profit", stats.NetProfit, stats.ProfitChange),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
		m.viewCategories(filter, portfolio, now),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m DashboardModel) viewCategories(filter finance.TimeFilter, portfolio finance.Portfolio, now time.Time) string {
	shares := finance.SummarizeExpensesByCategory(m.txs, filter, portfolio, now)
	if len(shares) == 0 {
		return lipgloss.NewStyle().Faint(true).PaddingTop(1).Render("No expenses in this period.")
	}

	categories := make([]string, 0, len(shares))
	for c := range shares {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if shares[categories[i]].Amount != shares[categories[j]].Amount {
			return shares[categories[i]].Amount > shares[categories[j]].Amount
		}
		return categories[i] < categories[j]
	})

	lines := []string{"Expenses by Category:", ""}
	for _, c := range categories {
		share := shares[c]
		lines = append(lines, fmt.Sprintf("%-20s %12s  %5.1f%%", c, FormatAmount(share.Amount), share.Percent))
	}

	return lipgloss.NewStyle().PaddingTop(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func statLine(label string, amount int64, change float64) string {
	changeStr := ""
	if change != 0 {
		changeStr = lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("  (%+.1f%%)", change))
	}

	return fmt.Sprintf("%-16s %12s%s", label, FormatAmount(amount), changeStr)
}

type dashboardLoadMsg struct {
	properties []*property.Property
	txs        []*transaction.Transaction
	err        error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		properties, err := m.propertyService.List(ctx, false)
		if err != nil {
			return dashboardLoadMsg{err: err}
		}

		txs, err := m.txService.List(ctx, transaction.ListFilter{})
		if err != nil {
			return dashboardLoadMsg{err: err}
		}

		return dashboardLoadMsg{properties: properties, txs: txs}
	}
}
