package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nirbeaver/property-management/internal/finance"
	"github.com/nirbeaver/property-management/internal/report"
)

type reportState int

const (
	reportStateFilter reportState = iota
	reportStatePath
	reportStateBuilding
	reportStateResult
)

type ReportModel struct {
	CommonModel
	reportService *report.Service

	state        reportState
	err          error
	filterPicker FilterPicker
	filter       finance.TimeFilter

	form    *huh.Form
	path    string
	spinner spinner.Model
	summary string
}

func NewReportModel(svc *report.Service) ReportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ReportModel{
		reportService: svc,
		state:         reportStateFilter,
		filterPicker:  NewFilterPicker(),
		path:          "./reports",
		spinner:       s,
	}
}

func (m ReportModel) Title() string { return "Financial Reports" }

func (m ReportModel) ShortHelp() string {
	switch m.state {
	case reportStateResult:
		return "Esc: back to menu"
	case reportStateBuilding:
		return "Building report..."
	}
	return "Esc: back | Enter: confirm"
}

func (m ReportModel) Init() tea.Cmd {
	return nil
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if filterMsg, ok := msg.(FilterSelectedMsg); ok {
		m.filter = filterMsg.Filter
		m.form = m.buildPathForm()
		m.state = reportStatePath
		return m, m.form.Init()
	}

	switch m.state {
	case reportStateFilter:
		return m.updateFilter(msg)
	case reportStatePath:
		return m.updatePath(msg)
	case reportStateBuilding:
		return m.updateBuilding(msg)
	case reportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ReportModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.filterPicker, cmd = m.filterPicker.Update(msg)
	return m, cmd
}

func (m ReportModel) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = reportStateFilter
			m.filterPicker.Reset()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = reportStateBuilding
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, m.runReportCmd(m.filter, m.path))
}

func (m ReportModel) updateBuilding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(reportResultMsg); ok {
		m.state = reportStateResult
		if result.err != nil {
			m.err = result.err
		}
		m.summary = result.body
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m ReportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}
	return m, nil
}

func (m ReportModel) buildPathForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Output Path").
				Description("Directory will be created if it doesn't exist").
				Placeholder("./reports").
				Value(&m.path),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ReportModel) View() string {
	switch m.state {
	case reportStateFilter:
		return lipgloss.NewStyle().Padding(1).Render(m.filterPicker.View())

	case reportStatePath:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case reportStateBuilding:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Building financial report...", m.spinner.View()),
		)

	case reportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ReportModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Report Complete!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			m.summary,
		),
	)
}

type reportResultMsg struct {
	body string
	err  error
}

const reportTimeout = 2 * time.Minute

func (m ReportModel) runReportCmd(filter finance.TimeFilter, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()

		now := time.Now()

		r, err := m.reportService.Build(ctx, report.Params{Filter: filter}, now)
		if err != nil {
			return reportResultMsg{err: err}
		}

		if err := os.MkdirAll(path, 0o755); err != nil {
			return reportResultMsg{err: err}
		}

		filename := filepath.Join(path, report.Filename(now))
		f, err := os.Create(filename)
		if err != nil {
			return reportResultMsg{err: err}
		}
		defer f.Close()

		if err := report.WriteCSV(f, r); err != nil {
			return reportResultMsg{err: err}
		}

		return reportResultMsg{body: reportSummary(r, filename)}
	}
}

func reportSummary(r *report.Report, filename string) string {
	lines := []string{
		fmt.Sprintf("Period:         %s", r.Filter),
		fmt.Sprintf("Total Income:   %s", FormatAmount(r.Stats.TotalIncome)),
		fmt.Sprintf("Total Expenses: %s", FormatAmount(r.Stats.TotalExpenses)),
		fmt.Sprintf("Net Profit:     %s", FormatAmount(r.Stats.NetProfit)),
		fmt.Sprintf("Transactions:   %d", len(r.Ledger)),
		"",
		fmt.Sprintf("Saved to %s", filename),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
