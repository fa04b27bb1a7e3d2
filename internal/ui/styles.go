// Package ui provides the interactive terminal reader for the book.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across the reader views.
type Styles struct {
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	UserLabel lipgloss.Style
	BotLabel  lipgloss.Style
	Alert     lipgloss.Style
	Status    lipgloss.Style
}

// DefaultStyles returns the reader's standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")).Padding(0, 1),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7a89")).Padding(0, 1),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7a89")),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")),
		UserLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")),
		BotLabel:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		Alert:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")),
	}
}
