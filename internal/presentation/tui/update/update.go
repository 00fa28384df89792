// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/tesso57/comix/internal/application/nav"
	"github.com/tesso57/comix/internal/domain/comic"
	"github.com/tesso57/comix/internal/domain/load"
	"github.com/tesso57/comix/internal/infrastructure/feed"
	"github.com/tesso57/comix/internal/presentation/tui/intent"
	"github.com/tesso57/comix/internal/presentation/tui/presenter"
	"github.com/tesso57/comix/internal/presentation/tui/state"
)

// Archive fetches entries from the remote archive.
type Archive interface {
	Latest(ctx context.Context) (comic.Comic, error)
	ByNumber(ctx context.Context, n int) (comic.Comic, error)
}

// Deps groups external dependencies for updates.
type Deps struct {
	Archive       Archive
	FetchRecent   func(ctx context.Context) ([]feed.Item, error)
	OpenBrowser   func(string) error
	RenderPreview func(url string, width int) (string, error)
	SiteURL       string
}

// LatestFetchedMsg is emitted after fetching the most recent entry.
type LatestFetchedMsg struct {
	Comic comic.Comic
	Err   error
}

// ComicFetchedMsg is emitted after fetching one specific entry.
type ComicFetchedMsg struct {
	Number int
	Comic  comic.Comic
	Err    error
}

// RecentFetchedMsg is emitted after fetching the recent-entries feed.
type RecentFetchedMsg struct {
	Items []feed.Item
	Err   error
}

// PreviewRenderedMsg is emitted after rendering an image preview.
type PreviewRenderedMsg struct {
	Number  int
	Preview string
	Err     error
}

// FetchLatestCmd creates a command to fetch the most recent entry.
func FetchLatestCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		c, err := deps.Archive.Latest(context.Background())
		return LatestFetchedMsg{Comic: c, Err: err}
	}
}

// FetchComicCmd creates a command to fetch entry n.
func FetchComicCmd(deps Deps, n int) tea.Cmd {
	return func() tea.Msg {
		c, err := deps.Archive.ByNumber(context.Background(), n)
		return ComicFetchedMsg{Number: n, Comic: c, Err: err}
	}
}

// FetchRecentCmd creates a command to fetch the recent-entries feed.
func FetchRecentCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		items, err := deps.FetchRecent(context.Background())
		return RecentFetchedMsg{Items: items, Err: err}
	}
}

// RenderPreviewCmd creates a command to render an image preview.
func RenderPreviewCmd(deps Deps, number int, url string, width int) tea.Cmd {
	return func() tea.Msg {
		rendered, err := deps.RenderPreview(url, width)
		return PreviewRenderedMsg{Number: number, Preview: rendered, Err: err}
	}
}

// Dispatch runs one navigation event through the state machine, executes the
// resulting commands, and keeps the viewport in sync. Navigate commands are
// fed back in as route changes until the machine settles.
func Dispatch(s *state.ModelState, ev nav.Event, deps Deps) tea.Cmd {
	var cmds []tea.Cmd

	queue := []nav.Event{ev}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		model, navCmds := nav.Handle(s.Nav, next)
		s.Nav = model
		for _, c := range navCmds {
			switch c := c.(type) {
			case nav.FetchLatest:
				cmds = append(cmds, FetchLatestCmd(deps))
			case nav.FetchComic:
				cmds = append(cmds, FetchComicCmd(deps, c.Number))
			case nav.Navigate:
				queue = append(queue, nav.RouteChanged{Route: c.Route})
			}
		}
	}

	RefreshViewport(s)
	if cmd := maybePreviewCmd(s, deps); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	cmds = append(cmds, s.Spinner.Tick)
	return tea.Batch(cmds...)
}

// HandleLatestFetched feeds a latest-entry result into the state machine.
func HandleLatestFetched(s *state.ModelState, msg LatestFetchedMsg, deps Deps) tea.Cmd {
	return Dispatch(s, nav.LatestLoaded{Comic: msg.Comic, Err: msg.Err}, deps)
}

// HandleComicFetched feeds a specific-entry result into the state machine.
func HandleComicFetched(s *state.ModelState, msg ComicFetchedMsg, deps Deps) tea.Cmd {
	return Dispatch(s, nav.RequestedLoaded{Comic: msg.Comic, Err: msg.Err}, deps)
}

// HandleRecentFetched applies the recent-entries feed result.
func HandleRecentFetched(s *state.ModelState, msg RecentFetchedMsg) {
	if msg.Err != nil {
		s.Recent = load.Failed[[]feed.Item](msg.Err)
		s.Status = fmt.Sprintf("recent entries unavailable: %s", strings.TrimSpace(msg.Err.Error()))
		return
	}
	s.Recent = load.Loaded(msg.Items)
	presenter.ApplyRecentList(&s.RecentList, msg.Items)
}

// HandlePreviewRendered caches a rendered preview and refreshes the view.
func HandlePreviewRendered(s *state.ModelState, msg PreviewRenderedMsg) {
	if msg.Err != nil {
		delete(s.Previews, msg.Number)
		s.Status = fmt.Sprintf("image preview failed: %s", strings.TrimSpace(msg.Err.Error()))
		return
	}
	s.Previews[msg.Number] = msg.Preview
	RefreshViewport(s)
}

// RefreshViewport rebuilds the detail content for the currently loaded entry.
func RefreshViewport(s *state.ModelState) {
	c, ok := s.Nav.Requested.Value()
	if !ok {
		return
	}
	previewArt := ""
	if s.ShowImage {
		previewArt = s.Previews[c.Number]
	}
	s.Viewport.SetContent(presenter.Detail(presenter.DetailProps{
		Comic:   c,
		Preview: previewArt,
		Width:   detailWrapWidth(s),
		Accent:  s.Theme.Accent,
		Dim:     s.Theme.Dim,
	}))
	s.Viewport.GotoTop()
}

func maybePreviewCmd(s *state.ModelState, deps Deps) tea.Cmd {
	if !s.ShowImage || deps.RenderPreview == nil {
		return nil
	}
	c, ok := s.Nav.Requested.Value()
	if !ok || c.ImageURL == "" {
		return nil
	}
	if _, inProgress := s.Previews[c.Number]; inProgress {
		return nil
	}
	s.Previews[c.Number] = "" // marks the render as in flight
	return RenderPreviewCmd(deps, c.Number, c.ImageURL, detailWrapWidth(s))
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch s.Session {
	case state.GotoView:
		return handleGotoView(s, msg, deps)
	case state.QuitView:
		return handleQuitView(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.Quit {
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	}

	switch s.Session {
	case state.ComicView:
		return handleComicViewIntent(s, parsed, deps)
	case state.RecentView:
		return handleRecentView(s, msg, parsed, deps)
	default:
		return nil, false
	}
}

func handleComicViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.PrevEntry:
		return Dispatch(s, nav.KeyPressed{Key: nav.KeyPrev}, deps), true
	case intent.NextEntry:
		return Dispatch(s, nav.KeyPressed{Key: nav.KeyNext}, deps), true
	case intent.LatestEntry:
		return Dispatch(s, nav.KeyPressed{Key: nav.KeyLatest}, deps), true
	case intent.RandomEntry:
		return Dispatch(s, nav.KeyPressed{Key: nav.KeyRandom}, deps), true
	case intent.GotoEntry:
		s.Session = state.GotoView
		s.TextInput.Reset()
		s.TextInput.Focus()
		return textinput.Blink, true
	case intent.ToggleRecent:
		s.Session = state.RecentView
		return nil, true
	case intent.OpenBrowser:
		if c, ok := s.Nav.Requested.Value(); ok && deps.OpenBrowser != nil {
			if err := deps.OpenBrowser(c.PageURL(deps.SiteURL)); err != nil {
				s.Status = fmt.Sprintf("open browser: %s", strings.TrimSpace(err.Error()))
			}
		}
		return nil, true
	case intent.ToggleImage:
		s.ShowImage = !s.ShowImage
		RefreshViewport(s)
		if cmd := maybePreviewCmd(s, deps); cmd != nil {
			return tea.Batch(cmd, s.Spinner.Tick), true
		}
		return nil, true
	case intent.Refresh:
		// Drop the cached upper bound so both slots are refetched.
		s.Nav.Latest = load.NotRequested[comic.Comic]()
		return Dispatch(s, nav.RouteChanged{Route: s.Nav.Current}, deps), true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}
	return nil, false
}

func handleRecentView(s *state.ModelState, msg tea.KeyMsg, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	if msg.String() == "enter" {
		if item, ok := s.RecentList.SelectedItem().(*presenter.Item); ok {
			s.Session = state.ComicView
			return Dispatch(s, nav.RouteChanged{Route: nav.Comic(item.Number)}, deps), true
		}
		return nil, true
	}

	switch in.Type {
	case intent.ToggleRecent, intent.Back:
		s.Session = state.ComicView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}
	// Remaining keys drive the list itself.
	return nil, false
}

func handleGotoView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		input := s.TextInput.Value()
		s.TextInput.Reset()
		s.Session = state.ComicView
		route, ok := ParseGotoInput(input)
		if !ok {
			s.Status = fmt.Sprintf("not a valid destination: %q", strings.TrimSpace(input))
			return nil, true
		}
		return Dispatch(s, nav.RouteChanged{Route: route}, deps), true
	case "esc":
		s.TextInput.Reset()
		s.Session = state.ComicView
		return nil, true
	}

	var cmd tea.Cmd
	s.TextInput, cmd = s.TextInput.Update(msg)
	return cmd, true
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

// ParseGotoInput maps prompt input to a route: a bare entry number, the words
// "random" or "latest", or a full fragment like "/comics/614".
func ParseGotoInput(input string) (nav.Route, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nav.Route{}, false
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n <= 0 {
			return nav.Route{}, false
		}
		return nav.Comic(n), true
	}

	switch strings.ToLower(input) {
	case "random":
		return nav.Random(), true
	case "latest":
		return nav.Latest(), true
	}

	if strings.HasPrefix(input, "/") || strings.HasPrefix(input, "#") {
		route := nav.Parse(input)
		if route.Kind != nav.RouteNotFound {
			return route, true
		}
	}
	return nav.Route{}, false
}
