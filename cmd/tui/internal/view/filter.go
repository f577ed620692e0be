package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nirbeaver/property-management/internal/finance"
)

// FilterSelectedMsg is emitted when the user confirms a time filter.
type FilterSelectedMsg struct {
	Filter finance.TimeFilter
}

// FilterPicker is a reusable component for selecting one of the
// predefined reporting windows.
type FilterPicker struct {
	selected int
}

func NewFilterPicker() FilterPicker {
	return FilterPicker{}
}

func (m FilterPicker) Init() tea.Cmd {
	return nil
}

// Update handles messages for the filter picker.
func (m FilterPicker) Update(msg tea.Msg) (FilterPicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < len(finance.TimeFilters)-1 {
			m.selected++
		}
	case tea.KeyEnter:
		filter := finance.TimeFilters[m.selected]
		return m, func() tea.Msg {
			return FilterSelectedMsg{Filter: filter}
		}
	}

	return m, nil
}

// View renders the filter picker.
func (m FilterPicker) View() string {
	s := "Select Period:\n\n"
	for i, f := range finance.TimeFilters {
		cursor := " "
		if m.selected == i {
			cursor = ">"
		}
		s += fmt.Sprintf("%s %s\n", cursor, f)
	}
	s += "\n(Enter to select, Esc to back)"

	return s
}

// Selected returns the currently highlighted filter.
func (m FilterPicker) Selected() finance.TimeFilter {
	return finance.TimeFilters[m.selected]
}

// Reset returns the picker to its initial selection.
func (m *FilterPicker) Reset() {
	m.selected = 0
}
