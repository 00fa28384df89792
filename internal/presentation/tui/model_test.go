package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/comix/internal/application/nav"
	"github.com/tesso57/comix/internal/domain/comic"
	"github.com/tesso57/comix/internal/domain/load"
	"github.com/tesso57/comix/internal/infrastructure/feed"
	"github.com/tesso57/comix/internal/presentation/tui/state"
	"github.com/tesso57/comix/internal/presentation/tui/update"
)

func TestNewModelStartsFetching(t *testing.T) {
	m := newTestModel(&stubArchive{}, nav.Latest())

	if m.state.Session != state.ComicView {
		t.Error("Expected initial session to be ComicView")
	}
	if !m.state.Nav.Latest.IsLoading() {
		t.Errorf("Latest = %v, want Loading", m.state.Nav.Latest)
	}
	if !m.state.Nav.Requested.IsLoading() {
		t.Errorf("Requested = %v, want Loading", m.state.Nav.Requested)
	}
	if m.Init() == nil {
		t.Error("Init() = nil, want fetch commands")
	}
}

func TestLatestFetchedRendersEntry(t *testing.T) {
	m := sizedTestModel(&stubArchive{}, nav.Latest())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m.Update(update.LatestFetchedMsg{Comic: comic.Comic{
		Number:  614,
		Title:   "Woodpecker",
		AltText: "If you don't have an extension cord.",
	}})

	got := m.View()
	if !strings.Contains(got, "Woodpecker") {
		t.Errorf("View() missing entry title:\n%s", got)
	}
	if !strings.Contains(got, "/") {
		t.Errorf("View() missing address:\n%s", got)
	}
}

func TestComicFetchError404(t *testing.T) {
	m := sizedTestModel(&stubArchive{latest: comic.Comic{Number: 700, Title: "Top"}}, nav.Latest())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(update.LatestFetchedMsg{Comic: comic.Comic{Number: 700, Title: "Top"}})

	m.state.Nav.Current = nav.Comic(9999)
	m.state.Nav.Requested = load.Failed[comic.Comic](errors.New("fetch entry: status 404"))

	got := m.View()
	if !strings.Contains(got, "Press R to retry") && !strings.Contains(got, "Error") {
		t.Errorf("View() missing error message:\n%s", got)
	}
}

func TestNotFoundRoute(t *testing.T) {
	m := sizedTestModel(&stubArchive{}, nav.Parse("/bogus"))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.state.Nav.Current.Kind != nav.RouteNotFound {
		t.Fatalf("Current.Kind = %v, want RouteNotFound", m.state.Nav.Current.Kind)
	}
	got := m.View()
	if !strings.Contains(got, "This address doesn't match any page") {
		t.Errorf("View() missing not-found message:\n%s", got)
	}
	// The not-found route formats to the root fragment; echoing it back
	// would blame an address the user never typed.
	if strings.Contains(got, `"/"`) {
		t.Errorf("View() quotes the root fragment on the not-found page:\n%s", got)
	}
}

func TestRecentFetchedPopulatesSidebar(t *testing.T) {
	m := sizedTestModel(&stubArchive{}, nav.Latest())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m.Update(update.RecentFetchedMsg{Items: []feed.Item{
		{Number: 614, Title: "Woodpecker", Published: "2009-07-24"},
		{Number: 615, Title: "Avoidance", Published: "2009-07-27"},
	}})

	if len(m.state.RecentList.Items()) != 2 {
		t.Fatalf("RecentList has %d items, want 2", len(m.state.RecentList.Items()))
	}
	got := m.View()
	if !strings.Contains(got, "Recent Entries") {
		t.Errorf("View() missing sidebar title:\n%s", got)
	}
}

func TestRecentViewSelectionNavigates(t *testing.T) {
	m := sizedTestModel(&stubArchive{latest: comic.Comic{Number: 700, Title: "Top"}}, nav.Latest())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(update.LatestFetchedMsg{Comic: comic.Comic{Number: 700, Title: "Top"}})
	m.Update(update.RecentFetchedMsg{Items: []feed.Item{
		{Number: 614, Title: "Woodpecker"},
	}})

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.state.Session != state.RecentView {
		t.Fatalf("Session = %v, want RecentView", m.state.Session)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.state.Session != state.ComicView {
		t.Errorf("Session = %v, want ComicView after selection", m.state.Session)
	}
	if m.state.Nav.Current.Kind != nav.RouteComic || m.state.Nav.Current.Number != 614 {
		t.Errorf("Current = %v, want entry 614", m.state.Nav.Current)
	}
}

func TestWindowSizeResizesLayout(t *testing.T) {
	m := newTestModel(&stubArchive{}, nav.Latest())

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.state.Width != 120 || m.state.Height != 40 {
		t.Errorf("state size = %dx%d, want 120x40", m.state.Width, m.state.Height)
	}
	if m.state.RecentList.Width() != 40 {
		t.Errorf("sidebar width = %d, want 40", m.state.RecentList.Width())
	}
}

func TestGotoModalShown(t *testing.T) {
	m := sizedTestModel(&stubArchive{}, nav.Latest())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(update.LatestFetchedMsg{Comic: comic.Comic{Number: 700, Title: "Top"}})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if m.state.Session != state.GotoView {
		t.Fatalf("Session = %v, want GotoView", m.state.Session)
	}
	got := m.View()
	if !strings.Contains(got, "Go to entry") {
		t.Errorf("View() missing goto prompt:\n%s", got)
	}
}

func TestMockedArchiveError(t *testing.T) {
	archive := &stubArchive{}
	archive.On("Latest", mock.Anything).Return(comic.Comic{}, errors.New("connection refused"))

	deps := update.Deps{Archive: archive}
	msg := update.FetchLatestCmd(deps)()
	fetched, ok := msg.(update.LatestFetchedMsg)
	if !ok {
		t.Fatalf("msg = %T, want LatestFetchedMsg", msg)
	}
	if fetched.Err == nil {
		t.Error("expected error from mocked archive")
	}
	archive.AssertExpectations(t)
}
