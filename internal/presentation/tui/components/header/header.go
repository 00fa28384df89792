// Package header provides the module header component.
package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Address string
	Title   string
	Pager   string
}

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	line := fmt.Sprintf("🔗 %s", p.Address)
	if p.Pager != "" {
		line += "  " + p.Pager
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(fmt.Sprintf("%s\n🏷️  %s", line, p.Title))
}
