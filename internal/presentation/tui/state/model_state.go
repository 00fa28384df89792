package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/comix/internal/application/nav"
	"github.com/tesso57/comix/internal/application/settings"
	"github.com/tesso57/comix/internal/domain/load"
	"github.com/tesso57/comix/internal/infrastructure/feed"
)

// ModelState holds the presentation state for the TUI. Navigation data lives
// entirely in Nav; everything here is view chrome around it.
type ModelState struct {
	Session  Session
	Previous Session

	Nav    nav.Model
	Recent load.State[[]feed.Item]

	RecentList list.Model
	TextInput  textinput.Model
	Viewport   viewport.Model
	Help       help.Model
	Spinner    spinner.Model
	Keys       KeyMap
	Theme      settings.ThemeConfig

	Width  int
	Height int

	// Status is a transient one-line message shown in the footer.
	Status string

	// ShowImage toggles the inline image preview; rendered previews are
	// cached per entry number for the session.
	ShowImage bool
	Previews  map[int]string
}

// Loading reports whether any fetch relevant to the current view is in
// flight. It is derived from the load slots; there is no separate flag to
// drift out of sync.
func (s *ModelState) Loading() bool {
	return s.Nav.Requested.IsLoading() || s.Nav.Latest.IsLoading() || s.Recent.IsLoading()
}

// Address is the shareable deep-link fragment for the current route.
func (s *ModelState) Address() string {
	return nav.Format(s.Nav.Current)
}
