package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nirbeaver/property-management/internal/property"
)

type propertiesState int

const (
	propertiesStateBrowse propertiesState = iota
	propertiesStateForm
)

type PropertiesModel struct {
	CommonModel
	propertyService *property.Service

	state      propertiesState
	table      table.Model
	properties []*property.Property
	form       *huh.Form
	editing    *property.Property // nil when creating

	showArchived bool
	loading      bool
	err          error
	status       string

	// Form bindings
	formName     string
	formAddress  string
	formType     string
	formStatus   string
	formRent     string
	formUnits    string
	formOccupied string
}

func NewPropertiesModel(propSvc *property.Service) PropertiesModel {
	columns := []table.Column{
		{Title: "Name", Width: 22},
		{Title: "Address", Width: 30},
		{Title: "Status", Width: 12},
		{Title: "Rent", Width: 10},
		{Title: "Occupancy", Width: 10},
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

	return PropertiesModel{
		propertyService: propSvc,
		table:           t,
		loading:         true,
	}
}

func (m PropertiesModel) Title() string { return "Properties" }

func (m PropertiesModel) ShortHelp() string {
	if m.state == propertiesStateForm {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | n: new | e: edit | a: archive/unarchive | v: toggle archived | r: refresh"
}

func (m PropertiesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m PropertiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case propertiesLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.properties = msg.properties
		m.err = nil
		m.refreshTable()
		return m, nil

	case propertiesSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = propertiesStateBrowse
		m.form = nil
		m.editing = nil
		m.table.Focus()
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case RecordsChangedMsg:
		if m.state == propertiesStateBrowse {
			return m, m.loadCmd()
		}
		return m, nil
	}

	switch m.state {
	case propertiesStateBrowse:
		return m.updateBrowse(msg)
	case propertiesStateForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m PropertiesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if idx >= 0 && idx < len(m.properties) {
				return m.enterFormMode(m.properties[idx])
			}
		case "a":
			return m, m.archiveCmd()
		case "v":
			m.showArchived = !m.showArchived
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m PropertiesModel) enterFormMode(p *property.Property) (tea.Model, tea.Cmd) {
	m.editing = p
	if p != nil {
		m.formName = p.Name
		m.formAddress = p.Address
		m.formType = p.Type
		m.formStatus = string(p.Status)
		m.formRent = FormatAmount(p.MonthlyRent)
		m.formUnits = strconv.Itoa(p.Units)
		m.formOccupied = strconv.Itoa(p.OccupiedUnits)
	} else {
		m.formName = ""
		m.formAddress = ""
		m.formType = "House"
		m.formStatus = string(property.StatusVacant)
		m.formRent = ""
		m.formUnits = "1"
		m.formOccupied = "0"
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(requireText("name")),

			huh.NewInput().
				Key("address").
				Title("Address").
				Value(&m.formAddress).
				Validate(requireText("address")),

			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(huh.NewOptions("House", "Apartment", "Condo", "Townhouse", "Commercial")...).
				Value(&m.formType),

			huh.NewSelect[string]().
				Key("status").
				Title("Status").
				Options(huh.NewOptions(
					string(property.StatusVacant),
					string(property.StatusRented),
					string(property.StatusMaintenance),
				)...).
				Value(&m.formStatus),

			huh.NewInput().
				Key("rent").
				Title("Monthly Rent").
				Placeholder("1500.00").
				Value(&m.formRent).
				Validate(func(s string) error {
					_, err := ParseAmount(s)
					return err
				}),

			huh.NewInput().
				Key("units").
				Title("Units").
				Value(&m.formUnits).
				Validate(requireInt),

			huh.NewInput().
				Key("occupied").
				Title("Occupied Units").
				Value(&m.formOccupied).
				Validate(requireInt),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = propertiesStateForm
	m.table.Blur()
	return m, m.form.Init()
}

func (m PropertiesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = propertiesStateBrowse
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

func (m PropertiesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading properties...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	scope := "Active"
	if m.showArchived {
		scope = "All (incl. archived)"
	}

	header := fmt.Sprintf("Showing: %s", activeStyle(scope))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == propertiesStateForm && m.form != nil {
		title := "New Property"
		if m.editing != nil {
			title = "Edit Property"
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

func (m *PropertiesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.properties))
	for _, p := range m.properties {
		status := string(p.Status)
		if p.Archived {
			status += " (archived)"
		}
		rows = append(rows, table.Row{
			p.Name,
			p.Address,
			status,
			FormatAmount(p.MonthlyRent),
			fmt.Sprintf("%.0f%%", p.OccupancyRate()),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type propertiesLoadMsg struct {
	properties []*property.Property
	err        error
}

func (m PropertiesModel) loadCmd() tea.Cmd {
	includeArchived := m.showArchived

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		properties, err := m.propertyService.List(ctx, includeArchived)
		return propertiesLoadMsg{properties: properties, err: err}
	}
}

type propertiesSaveMsg struct {
	err error
}

func (m PropertiesModel) saveCmd() tea.Cmd {
	rent, err := ParseAmount(m.formRent)
	if err != nil {
		return func() tea.Msg { return propertiesSaveMsg{err: err} }
	}

	units, _ := strconv.Atoi(m.formUnits)
	occupied, _ := strconv.Atoi(m.formOccupied)

	editing := m.editing
	name := m.formName
	address := m.formAddress
	propType := m.formType
	status := property.Status(m.formStatus)

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		if editing == nil {
			_, err := m.propertyService.Create(ctx, property.CreateParams{
				Name:          name,
				Address:       address,
				Type:          propType,
				Status:        status,
				MonthlyRent:   rent,
				Units:         units,
				OccupiedUnits: occupied,
			})
			return propertiesSaveMsg{err: err}
		}

		editing.Name = name
		editing.Address = address
		editing.Type = propType
		editing.Status = status
		editing.MonthlyRent = rent
		editing.Units = units
		editing.OccupiedUnits = occupied
		return propertiesSaveMsg{err: m.propertyService.Update(ctx, editing)}
	}
}

func (m PropertiesModel) archiveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.properties) {
		return nil
	}

	p := m.properties[idx]

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		var err error
		if p.Archived {
			err = m.propertyService.Unarchive(ctx, p.ID)
		} else {
			err = m.propertyService.Archive(ctx, p.ID)
		}
		if err != nil {
			return propertiesSaveMsg{err: err}
		}

		return propertiesSaveMsg{}
	}
}

func requireText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func requireInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}
