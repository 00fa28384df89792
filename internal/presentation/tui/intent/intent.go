// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/comix/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	PrevEntry
	NextEntry
	LatestEntry
	RandomEntry
	GotoEntry
	ToggleRecent
	OpenBrowser
	ToggleImage
	Back
	Refresh
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Prev):
		return Intent{Type: PrevEntry}
	case key.Matches(msg, keys.Next):
		return Intent{Type: NextEntry}
	case key.Matches(msg, keys.Latest):
		return Intent{Type: LatestEntry}
	case key.Matches(msg, keys.Random):
		return Intent{Type: RandomEntry}
	case key.Matches(msg, keys.Goto):
		return Intent{Type: GotoEntry}
	case key.Matches(msg, keys.Recent):
		return Intent{Type: ToggleRecent}
	case key.Matches(msg, keys.Open):
		return Intent{Type: OpenBrowser}
	case key.Matches(msg, keys.Image):
		return Intent{Type: ToggleImage}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Refresh):
		return Intent{Type: Refresh}
	default:
		return Intent{Type: None}
	}
}
