// Package layout arranges the top-level regions of the screen.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Sidebar string
	Main    string
	Footer  string
}

// Render joins the sidebar and main area side by side with the footer below.
func Render(p Props) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, p.Sidebar, p.Main)
	return lipgloss.JoinVertical(lipgloss.Left, body, p.Footer)
}
