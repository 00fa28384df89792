// Package modal renders full-screen overlay dialogs.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind identifies which dialog is being shown.
type Kind int

const (
	None Kind = iota
	Goto
	Quit
	Help
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Body    string
	Width   int
	Height  int
	Accent  string
}

// Render centers the dialog box in the available area.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	accent := p.Accent
	if accent == "" {
		accent = "205"
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(1, 2)

	box := boxStyle.Render(p.Body)
	if p.Width <= 0 || p.Height <= 0 {
		return box
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, box)
}
