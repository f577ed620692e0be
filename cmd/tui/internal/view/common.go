package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// RecordsChangedMsg is broadcast when a collection mutates elsewhere in the
// process, so an open view can reload without a manual refresh.
type RecordsChangedMsg struct {
	Topic string
}
