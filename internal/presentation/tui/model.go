package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/comix/internal/application/nav"
	"github.com/tesso57/comix/internal/application/settings"
	"github.com/tesso57/comix/internal/domain/load"
	"github.com/tesso57/comix/internal/infrastructure/feed"
	"github.com/tesso57/comix/internal/presentation/tui/preview"
	"github.com/tesso57/comix/internal/presentation/tui/state"
	"github.com/tesso57/comix/internal/presentation/tui/update"
	"github.com/tesso57/comix/internal/presentation/tui/view"
	listview "github.com/tesso57/comix/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	archive  update.Archive
	state    *state.ModelState

	// initialCmd carries the fetches triggered by the starting route so
	// Init can return them.
	initialCmd tea.Cmd
}

// NewModel creates a new application model starting at the given route.
func NewModel(cfg settings.Settings, archive update.Archive, start nav.Route) *Model {
	m := &Model{
		settings: cfg,
		archive:  archive,
		state:    newModelState(cfg),
	}
	m.initialCmd = update.Dispatch(m.state, nav.RouteChanged{Route: start}, m.deps())
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.state.Spinner.Tick, m.initialCmd}
	if m.settings.FeedURL != "" {
		m.state.Recent = load.Loading[[]feed.Item]()
		cmds = append(cmds, update.FetchRecentCmd(m.deps()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		update.UpdateSizes(m.state)
		update.RefreshViewport(m.state)
	case update.LatestFetchedMsg:
		return m, update.HandleLatestFetched(m.state, msg, m.deps())
	case update.ComicFetchedMsg:
		return m, update.HandleComicFetched(m.state, msg, m.deps())
	case update.RecentFetchedMsg:
		update.HandleRecentFetched(m.state, msg)
		update.UpdateSizes(m.state)
	case update.PreviewRenderedMsg:
		update.HandlePreviewRendered(m.state, msg)
	}

	if m.state.Loading() {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.state.Session {
	case state.RecentView:
		m.state.RecentList, cmd = m.state.RecentList.Update(msg)
		cmds = append(cmds, cmd)
	case state.ComicView:
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Archive:       m.archive,
		FetchRecent:   m.fetchRecent,
		OpenBrowser:   openBrowser,
		RenderPreview: preview.Render,
		SiteURL:       m.settings.SiteURL,
	}
}

func (m *Model) fetchRecent(ctx context.Context) ([]feed.Item, error) {
	return feed.Recent(ctx, m.settings.FeedURL, m.settings.Timeout())
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		Session:    state.ComicView,
		Nav:        nav.NewModel(cfg.Seed),
		Recent:     load.NotRequested[[]feed.Item](),
		RecentList: newRecentList(),
		TextInput:  newTextInput(),
		Viewport:   newViewport(),
		Help:       help.New(),
		Spinner:    newSpinner(cfg.Theme),
		Keys:       state.NewKeyMap(cfg.KeyMap),
		Theme:      cfg.Theme,
		Previews:   map[int]string{},
	}
	return st
}

func newRecentList() list.Model {
	l := list.New([]list.Item{}, listview.NewEntryDelegate(), 0, 0)
	l.Title = "Recent Entries"
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
	return l
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "614"
	ti.CharLimit = 32
	ti.Width = 40
	return ti
}

func newSpinner(theme settings.ThemeConfig) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}
