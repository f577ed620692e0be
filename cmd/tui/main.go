package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/nirbeaver/property-management/cmd/tui/internal/view"
	"github.com/nirbeaver/property-management/internal/bus"
	"github.com/nirbeaver/property-management/internal/config"
	"github.com/nirbeaver/property-management/internal/property"
	propertyStore "github.com/nirbeaver/property-management/internal/property/store"
	"github.com/nirbeaver/property-management/internal/report"
	"github.com/nirbeaver/property-management/internal/store"
	"github.com/nirbeaver/property-management/internal/tenant"
	tenantStore "github.com/nirbeaver/property-management/internal/tenant/store"
	"github.com/nirbeaver/property-management/internal/transaction"
	txStore "github.com/nirbeaver/property-management/internal/transaction/store"
)

type model struct {
	propertyService *property.Service
	tenantService   *tenant.Service
	txService       *transaction.Service
	reportService   *report.Service

	txEvents   <-chan bus.Event
	propEvents <-chan bus.Event

	currentView View

	dashboardView    view.DashboardModel
	propertiesView   view.PropertiesModel
	tenantsView      view.TenantsModel
	transactionsView view.TransactionsModel
	reportView       view.ReportModel
}

type View int

const (
	ViewMenu         View = 0
	ViewDashboard    View = 1
	ViewProperties   View = 2
	ViewTenants      View = 3
	ViewTransactions View = 4
	ViewReports      View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	records, err := store.New(cfg.Data.Dir)
	if err != nil {
		slog.Error("failed to open record store", "error", err)
		os.Exit(1)
	}

	events := bus.New()

	propSvc := property.NewService(propertyStore.New(records), events)
	tenantSvc := tenant.NewService(tenantStore.New(records))
	txSvc := transaction.NewService(txStore.New(records), events)
	reportSvc := report.NewService(propSvc, txSvc)

	// Subscriptions live for the whole program; mutations made on one
	// screen show up on any other open screen.
	txCh, _ := events.Subscribe(bus.TopicTransactions)
	propCh, _ := events.Subscribe(bus.TopicProperties)

	return model{
		propertyService:  propSvc,
		tenantService:    tenantSvc,
		txService:        txSvc,
		reportService:    reportSvc,
		txEvents:         txCh,
		propEvents:       propCh,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(propSvc, txSvc),
		propertiesView:   view.NewPropertiesModel(propSvc),
		tenantsView:      view.NewTenantsModel(tenantSvc, propSvc),
		transactionsView: view.NewTransactionsModel(txSvc, propSvc),
		reportView:       view.NewReportModel(reportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.txEvents), waitForEvent(m.propEvents))
}

// waitForEvent blocks on a bus subscription and surfaces the next mutation
// as a message; Update re-arms it after each delivery.
func waitForEvent(ch <-chan bus.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}

		return view.RecordsChangedMsg{Topic: ev.Topic}
	}
}

func (m model) eventChan(topic string) <-chan bus.Event {
	if topic == bus.TopicProperties {
		return m.propEvents
	}

	return m.txEvents
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var rearm tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.propertyService, m.txService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewProperties
				m.propertiesView = view.NewPropertiesModel(m.propertyService)

				return m, m.propertiesView.Init()
			case "3":
				m.currentView = ViewTenants
				m.tenantsView = view.NewTenantsModel(m.tenantService, m.propertyService)

				return m, m.tenantsView.Init()
			case "4":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.txService, m.propertyService)

				return m, m.transactionsView.Init()
			case "5":
				m.currentView = ViewReports
				m.reportView = view.NewReportModel(m.reportService)

				return m, m.reportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	case view.RecordsChangedMsg:
		rearm = waitForEvent(m.eventChan(msg.Topic))
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewProperties:
		var newModel tea.Model
		newModel, cmd = m.propertiesView.Update(msg)
		m.propertiesView = newModel.(view.PropertiesModel)
	case ViewTenants:
		var newModel tea.Model
		newModel, cmd = m.tenantsView.Update(msg)
		m.tenantsView = newModel.(view.TenantsModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewReports:
		var newModel tea.Model
		newModel, cmd = m.reportView.Update(msg)
		m.reportView = newModel.(view.ReportModel)
	}

	if rearm != nil {
		return m, tea.Batch(rearm, cmd)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Property Management\n\n" +
				"1. Dashboard\n" +
				"2. Properties\n" +
				"3. Tenants\n" +
				"4. Transactions\n" +
				"5. Financial Reports\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewProperties:
		return m.propertiesView.View()
	case ViewTenants:
		return m.tenantsView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewReports:
		return m.reportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
