// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/comix/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	// ComicView shows the requested entry.
	ComicView Session = iota
	// RecentView focuses the recent-entries sidebar.
	RecentView
	// GotoView prompts for an entry number or fragment.
	GotoView
	// QuitView asks for quit confirmation.
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Prev    key.Binding
	Next    key.Binding
	Latest  key.Binding
	Random  key.Binding
	Goto    key.Binding
	Recent  key.Binding
	Open    key.Binding
	Image   key.Binding
	Back    key.Binding
	Quit    key.Binding
	Refresh key.Binding
	Help    key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Random, k.Latest, k.Help, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Latest, k.Random},
		{k.Goto, k.Recent, k.Up, k.Down},
		{k.Open, k.Image, k.Refresh},
		{k.Back, k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		),
		Prev: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Prev)...),
			key.WithHelp(cfg.Prev, "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Next)...),
			key.WithHelp(cfg.Next, "next"),
		),
		Latest: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Latest)...),
			key.WithHelp(cfg.Latest, "latest"),
		),
		Random: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Random)...),
			key.WithHelp(cfg.Random, "random"),
		),
		Goto: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Goto)...),
			key.WithHelp(cfg.Goto, "go to"),
		),
		Recent: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Recent)...),
			key.WithHelp(cfg.Recent, "recent"),
		),
		Open: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Open)...),
			key.WithHelp(cfg.Open, "open in browser"),
		),
		Image: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Image)...),
			key.WithHelp(cfg.Image, "image preview"),
		),
		Back: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Back)...),
			key.WithHelp(cfg.Back, "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Refresh)...),
			key.WithHelp(cfg.Refresh, "refetch"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
	}
	return out
}
