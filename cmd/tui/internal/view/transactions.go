package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/property"
	"github.com/nirbeaver/property-management/internal/transaction"
)

type transactionsState int

const (
	transactionsStateBrowse transactionsState = iota
	transactionsStateForm
)

type TransactionsModel struct {
	CommonModel
	txService       *transaction.Service
	propertyService *property.Service

	state         transactionsState
	table         table.Model
	txs           []*transaction.Transaction
	properties    []*property.Property
	propertyNames map[uuid.UUID]string
	form          *huh.Form
	editing       *transaction.Transaction // nil when creating

	// Filter cycling
	typeFilterIdx int
	dateFilterIdx int

	filter  transaction.ListFilter
	loading bool
	err     error
	status  string

	// Form bindings
	formProperty uuid.UUID
	formType     string
	formCategory string
	formAmount   string
	formDate     string
	formDesc     string
	formVendor   string
}

func NewTransactionsModel(txSvc *transaction.Service, propSvc *property.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Category", Width: 14},
		{Title: "Amount", Width: 10},
		{Title: "Description", Width: 30},
		{Title: "Property", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TransactionsModel{
		txService:       txSvc,
		propertyService: propSvc,
		table:           t,
		filter:          transaction.ListFilter{},
		loading:         true,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }

func (m TransactionsModel) ShortHelp() string {
	if m.state == transactionsStateForm {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | n: new | e: edit | x: delete | t: type filter | d: date filter | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transactionsLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.txs = msg.txs
		m.properties = msg.properties
		m.propertyNames = make(map[uuid.UUID]string, len(msg.properties))
		for _, p := range msg.properties {
			m.propertyNames[p.ID] = p.Name
		}
		m.err = nil
		m.refreshTable()
		return m, nil

	case transactionsSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = transactionsStateBrowse
		m.form = nil
		m.editing = nil
		m.table.Focus()
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case RecordsChangedMsg:
		// Only refresh while browsing; a reload mid-edit would
		// clobber the open form.
		if m.state == transactionsStateBrowse {
			return m, m.loadCmd()
		}
		return m, nil
	}

	switch m.state {
	case transactionsStateBrowse:
		return m.updateBrowse(msg)
	case transactionsStateForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterFormMode(nil)
		case "e":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.txs) {
				return m.enterFormMode(m.txs[idx])
			}
		case "x":
			return m, m.deleteCmd()
		case "t":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % 3
			m.applyFilter()
			return m, m.loadCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % 3
			m.applyFilter()
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TransactionsModel) enterFormMode(tx *transaction.Transaction) (tea.Model, tea.Cmd) {
	m.editing = tx
	if tx != nil {
		m.formProperty = tx.PropertyID
		m.formType = string(tx.Type)
		m.formCategory = tx.Category
		m.formAmount = FormatAmount(tx.Amount)
		m.formDate = FormatDate(tx.Date)
		m.formDesc = tx.Description
		m.formVendor = tx.Vendor
	} else {
		m.formProperty = uuid.Nil
		if len(m.properties) > 0 {
			m.formProperty = m.properties[0].ID
		}
		m.formType = string(transaction.TypeExpense)
		m.formCategory = ""
		m.formAmount = ""
		m.formDate = FormatDate(time.Now())
		m.formDesc = ""
		m.formVendor = ""
	}

	propertyOptions := make([]huh.Option[uuid.UUID], 0, len(m.properties))
	for _, p := range m.properties {
		propertyOptions = append(propertyOptions, huh.NewOption(p.Name, p.ID))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[uuid.UUID]().
				Key("property").
				Title("Property").
				Options(propertyOptions...).
				Value(&m.formProperty),

			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(huh.NewOptions(
					string(transaction.TypeIncome),
					string(transaction.TypeExpense),
				)...).
				Value(&m.formType),

			huh.NewInput().
				Key("category").
				Title("Category").
				Placeholder("Repairs").
				Value(&m.formCategory).
				Validate(requireText("category")),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("250.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					_, err := ParseAmount(s)
					return err
				}),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("2026-01-31").
				Value(&m.formDate).
				Validate(func(s string) error {
					_, err := time.Parse("2006-01-02", s)
					if err != nil {
						return fmt.Errorf("invalid date (YYYY-MM-DD)")
					}
					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),

			huh.NewInput().
				Key("vendor").
				Title("Vendor").
				Value(&m.formVendor),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = transactionsStateForm
	m.table.Blur()
	return m, m.form.Init()
}

func (m TransactionsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = transactionsStateBrowse
			m.form = nil
			m.editing = nil
			m.table.Focus()
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

	return m, m.saveCmd()
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	typeLabels := []string{"All", "Income", "Expense"}
	dateLabels := []string{"All Time", "This Month", "Last Month"}

	header := fmt.Sprintf(
		"Filter: [t] Type: %s | [d] Date: %s",
		activeStyle(typeLabels[m.typeFilterIdx]),
		activeStyle(dateLabels[m.dateFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == transactionsStateForm && m.form != nil {
		title := "New Transaction"
		if m.editing != nil {
			title = "Edit Transaction"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *TransactionsModel) applyFilter() {
	switch m.typeFilterIdx {
	case 1:
		m.filter.Type = new(transaction.TypeIncome)
	case 2:
		m.filter.Type = new(transaction.TypeExpense)
	default:
		m.filter.Type = nil
	}

	now := time.Now()
	switch m.dateFilterIdx {
	case 1:
		s := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		e := s.AddDate(0, 1, 0).Add(-time.Nanosecond)
		m.filter.StartDate = &s
		m.filter.EndDate = &e
	case 2:
		s := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		e := s.AddDate(0, 1, 0).Add(-time.Nanosecond)
		m.filter.StartDate = &s
		m.filter.EndDate = &e
	default:
		m.filter.StartDate = nil
		m.filter.EndDate = nil
	}
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		propertyName := m.propertyNames[tx.PropertyID]
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Type),
			tx.Category,
			FormatAmount(tx.Amount),
			tx.Description,
			propertyName,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type transactionsLoadMsg struct {
	txs        []*transaction.Transaction
	properties []*property.Property
	err        error
}

func (m TransactionsModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, filter)
		if err != nil {
			return transactionsLoadMsg{err: err}
		}

		properties, err := m.propertyService.List(ctx, true)
		if err != nil {
			return transactionsLoadMsg{err: err}
		}

		return transactionsLoadMsg{txs: txs, properties: properties}
	}
}

type transactionsSaveMsg struct {
	err error
}

func (m TransactionsModel) saveCmd() tea.Cmd {
	amount, err := ParseAmount(m.formAmount)
	if err != nil {
		return func() tea.Msg { return transactionsSaveMsg{err: err} }
	}

	date, err := time.Parse("2006-01-02", m.formDate)
	if err != nil {
		return func() tea.Msg { return transactionsSaveMsg{err: err} }
	}

	editing := m.editing
	propertyID := m.formProperty
	txType := transaction.Type(m.formType)
	category := m.formCategory
	desc := m.formDesc
	vendor := m.formVendor

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		if editing == nil {
			_, err := m.txService.Create(ctx, transaction.CreateParams{
				PropertyID:  propertyID,
				Type:        txType,
				Category:    category,
				Amount:      amount,
				Date:        date,
				Description: desc,
				Vendor:      vendor,
			})
			return transactionsSaveMsg{err: err}
		}

		editing.PropertyID = propertyID
		editing.Type = txType
		editing.Category = category
		editing.Amount = amount
		editing.Date = date
		editing.Description = desc
		editing.Vendor = vendor
		return transactionsSaveMsg{err: m.txService.Update(ctx, editing)}
	}
}

func (m TransactionsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	id := m.txs[idx].ID

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		return transactionsSaveMsg{err: m.txService.Delete(ctx, id)}
	}
}
