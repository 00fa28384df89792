package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/comix/internal/application/nav"
	"github.com/tesso57/comix/internal/presentation/tui/state"
)

func TestQuitDialog(t *testing.T) {
	m := sizedTestModel(&stubArchive{}, nav.Latest())

	// 1. Initial State
	if m.state.Session != state.ComicView {
		t.Error("Initial state should be ComicView")
	}

	// 2. Press 'q' -> Should go to QuitView, not quit immediately
	tm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = tm.(*Model)
	if m.state.Session != state.QuitView {
		t.Error("Should switch to QuitView on 'q'")
	}
	if cmd != nil {
		t.Error("Should not return tea.Quit command yet")
	}

	// 3. Press 'n' -> Should return to ComicView
	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = tm.(*Model)
	if m.state.Session != state.ComicView {
		t.Error("Should return to ComicView on 'n'")
	}

	// 4. Press 'q' then 'y' -> Should quit
	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = tm.(*Model)
	tm, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = tm.(*Model)
	if cmd == nil {
		t.Fatal("Should return tea.Quit command on 'y'")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Command should produce tea.QuitMsg")
	}
}

func TestQuitDialogView(t *testing.T) {
	m := sizedTestModel(&stubArchive{}, nav.Latest())

	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = tm.(*Model)

	got := m.View()
	if got == "" {
		t.Fatal("View() empty while quit dialog is open")
	}
	if !strings.Contains(got, "Are you sure you want to quit?") {
		t.Errorf("View() missing quit prompt:\n%s", got)
	}
}
