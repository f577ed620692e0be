package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/property"
	"github.com/nirbeaver/property-management/internal/tenant"
)

type tenantsState int

const (
	tenantsStateBrowse tenantsState = iota
	tenantsStateForm
)

type TenantsModel struct {
	CommonModel
	tenantService   *tenant.Service
	propertyService *property.Service

	state         tenantsState
	table         table.Model
	tenants       []*tenant.Tenant
	properties    []*property.Property
	propertyNames map[uuid.UUID]string
	form          *huh.Form
	editing       *tenant.Tenant // nil when creating

	loading bool
	err     error
	status  string

	// Form bindings
	formName     string
	formEmail    string
	formPhone    string
	formProperty uuid.UUID
	formUnit     string
	formRent     string
}

func NewTenantsModel(tenantSvc *tenant.Service, propSvc *property.Service) TenantsModel {
	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Email", Width: 26},
		{Title: "Phone", Width: 14},
		{Title: "Property", Width: 20},
		{Title: "Rent", Width: 10},
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

	return TenantsModel{
		tenantService:   tenantSvc,
		propertyService: propSvc,
		table:           t,
		loading:         true,
	}
}

func (m TenantsModel) Title() string { return "Tenants" }

func (m TenantsModel) ShortHelp() string {
	if m.state == tenantsStateForm {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | n: new | e: edit | x: delete | r: refresh"
}

func (m TenantsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TenantsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tenantsLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tenants = msg.tenants
		m.properties = msg.properties
		m.propertyNames = make(map[uuid.UUID]string, len(msg.properties))
		for _, p := range msg.properties {
			m.propertyNames[p.ID] = p.Name
		}
		m.err = nil
		m.refreshTable()
		return m, nil

	case tenantsSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = tenantsStateBrowse
		m.form = nil
		m.editing = nil
		m.table.Focus()
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case tenantsStateBrowse:
		return m.updateBrowse(msg)
	case tenantsStateForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m TenantsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if idx >= 0 && idx < len(m.tenants) {
				return m.enterFormMode(m.tenants[idx])
			}
		case "x":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TenantsModel) enterFormMode(t *tenant.Tenant) (tea.Model, tea.Cmd) {
	m.editing = t
	if t != nil {
		m.formName = t.Name
		m.formEmail = t.Email
		m.formPhone = t.Phone
		m.formProperty = uuid.Nil
		if t.PropertyID != nil {
			m.formProperty = *t.PropertyID
		}
		m.formUnit = t.UnitNumber
		m.formRent = FormatAmount(t.MonthlyRent)
	} else {
		m.formName = ""
		m.formEmail = ""
		m.formPhone = ""
		m.formProperty = uuid.Nil
		m.formUnit = ""
		m.formRent = "0.00"
	}

	propertyOptions := make([]huh.Option[uuid.UUID], 0, len(m.properties)+1)
	propertyOptions = append(propertyOptions, huh.NewOption("(none)", uuid.Nil))
	for _, p := range m.properties {
		propertyOptions = append(propertyOptions, huh.NewOption(p.Name, p.ID))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(requireText("name")),

			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&m.formEmail).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return fmt.Errorf("invalid email")
					}
					return nil
				}),

			huh.NewInput().
				Key("phone").
				Title("Phone").
				Value(&m.formPhone),

			huh.NewSelect[uuid.UUID]().
				Key("property").
				Title("Property").
				Options(propertyOptions...).
				Value(&m.formProperty),

			huh.NewInput().
				Key("unit").
				Title("Unit").
				Placeholder("2B").
				Value(&m.formUnit),

			huh.NewInput().
				Key("rent").
				Title("Monthly Rent").
				Placeholder("1500.00").
				Value(&m.formRent).
				Validate(func(s string) error {
					_, err := ParseAmount(s)
					return err
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = tenantsStateForm
	m.table.Blur()
	return m, m.form.Init()
}

func (m TenantsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = tenantsStateBrowse
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

func (m TenantsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading tenants...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == tenantsStateForm && m.form != nil {
		title := "New Tenant"
		if m.editing != nil {
			title = "Edit Tenant"
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

func (m *TenantsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.tenants))
	for _, t := range m.tenants {
		propertyName := ""
		if t.PropertyID != nil {
			propertyName = m.propertyNames[*t.PropertyID]
		}
		rows = append(rows, table.Row{
			t.Name,
			t.Email,
			t.Phone,
			propertyName,
			FormatAmount(t.MonthlyRent),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type tenantsLoadMsg struct {
	tenants    []*tenant.Tenant
	properties []*property.Property
	err        error
}

func (m TenantsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		tenants, err := m.tenantService.List(ctx)
		if err != nil {
			return tenantsLoadMsg{err: err}
		}

		properties, err := m.propertyService.List(ctx, true)
		if err != nil {
			return tenantsLoadMsg{err: err}
		}

		return tenantsLoadMsg{tenants: tenants, properties: properties}
	}
}

type tenantsSaveMsg struct {
	err error
}

func (m TenantsModel) saveCmd() tea.Cmd {
	rent, err := ParseAmount(m.formRent)
	if err != nil {
		return func() tea.Msg { return tenantsSaveMsg{err: err} }
	}

	editing := m.editing
	name := m.formName
	email := m.formEmail
	phone := m.formPhone
	unit := m.formUnit

	var propertyID *uuid.UUID
	if m.formProperty != uuid.Nil {
		propertyID = new(m.formProperty)
	}

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		if editing == nil {
			_, err := m.tenantService.Create(ctx, tenant.CreateParams{
				Name:        name,
				Email:       email,
				Phone:       phone,
				PropertyID:  propertyID,
				UnitNumber:  unit,
				MonthlyRent: rent,
			})
			return tenantsSaveMsg{err: err}
		}

		editing.Name = name
		editing.Email = email
		editing.Phone = phone
		editing.PropertyID = propertyID
		editing.UnitNumber = unit
		editing.MonthlyRent = rent
		return tenantsSaveMsg{err: m.tenantService.Update(ctx, editing)}
	}
}

func (m TenantsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.tenants) {
		return nil
	}

	id := m.tenants[idx].ID

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		return tenantsSaveMsg{err: m.tenantService.Delete(ctx, id)}
	}
}
