// Package tui provides the main user interface model and view components.
package tui

import (
	"errors"
	"fmt"

	"github.com/tesso57/comix/internal/application/nav"
	"github.com/tesso57/comix/internal/infrastructure/xkcd"
	"github.com/tesso57/comix/internal/presentation/tui/components/header"
	main_view "github.com/tesso57/comix/internal/presentation/tui/components/main"
	"github.com/tesso57/comix/internal/presentation/tui/components/modal"
	"github.com/tesso57/comix/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/comix/internal/presentation/tui/metrics"
	"github.com/tesso57/comix/internal/presentation/tui/state"
	"github.com/tesso57/comix/internal/presentation/tui/textutil"
	"github.com/tesso57/comix/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	body := m.state.RecentList.View()
	switch {
	case m.settings.FeedURL == "":
		body = "  (feed disabled)"
	case m.state.Recent.IsLoading():
		body = fmt.Sprintf("  %s fetching feed...", m.state.Spinner.View())
	case m.state.Recent.IsFailed():
		body = "  feed unavailable"
	}

	return sidebar.Props{
		View:   body,
		Width:  m.state.RecentList.Width(),
		Height: m.state.RecentList.Height(),
		Active: m.state.Session == state.RecentView,
		Title:  "Recent Entries",
		Accent: m.state.Theme.Accent,
	}
}

func (m *Model) buildHeaderProps() header.Props {
	if m.state.Session != state.ComicView && m.state.Session != state.RecentView {
		return header.Props{Visible: false}
	}

	availableWidth := m.state.Viewport.Width - metrics.HeaderWidthPadding
	props := header.Props{
		Visible: true,
		Address: m.state.Address(),
	}
	if c, ok := m.state.Nav.Requested.Value(); ok {
		props.Title = headerLine(c.DisplayTitle(), availableWidth)
		props.Pager = buildPager(m.state)
	}
	return props
}

// buildPager describes the prev/next neighbors. Both ends need loaded data:
// the current entry for its number and the latest entry for the upper bound.
func buildPager(st *state.ModelState) string {
	current, ok := st.Nav.Requested.Value()
	if !ok {
		return ""
	}
	latest, ok := st.Nav.Latest.Value()
	if !ok {
		return ""
	}

	pager := ""
	if current.Number > 1 {
		pager = fmt.Sprintf("← #%d", current.Number-1)
	}
	if current.Number < latest.Number {
		if pager != "" {
			pager += " · "
		}
		pager += fmt.Sprintf("#%d →", current.Number+1)
	}
	return pager
}

func (m *Model) buildMainProps() main_view.Props {
	var body string
	switch {
	case m.state.Nav.Current.Kind == nav.RouteNotFound:
		// The not-found route has no canonical fragment, so there is no
		// address worth echoing back.
		body = "This address doesn't match any page.\n\nTry /comics/<number>, or press L for the latest entry."
	case m.state.Nav.Requested.IsLoading():
		body = fmt.Sprintf("\n\n   %s Loading entry...", m.state.Spinner.View())
	case m.state.Nav.Requested.IsFailed():
		err, _ := m.state.Nav.Requested.Err()
		body = describeError(err, m.state.Nav.Current)
	case m.state.Nav.Requested.IsLoaded():
		body = m.state.Viewport.View()
	default:
		body = ""
	}

	headerHeight := 0
	if m.buildHeaderProps().Visible {
		headerHeight = metrics.HeaderLines
	}

	return main_view.Props{
		Width:  m.state.Viewport.Width,
		Height: m.state.Viewport.Height + headerHeight,
		Header: "", // Will be filled by Render using HeaderProps
		Body:   body,
	}
}

// describeError turns a fetch failure into a readable main-area message.
func describeError(err error, route nav.Route) string {
	var archiveErr *xkcd.Error
	if errors.As(err, &archiveErr) {
		switch archiveErr.Kind {
		case xkcd.ErrHTTP:
			if archiveErr.Status == 404 && route.Kind == nav.RouteComic {
				return fmt.Sprintf("Entry #%d does not exist.\n\nPress L for the latest entry or r for a random one.", route.Number)
			}
			return fmt.Sprintf("The archive answered with status %d.\n\nPress R to retry.", archiveErr.Status)
		case xkcd.ErrNetwork:
			return "Could not reach the archive. Check your connection.\n\nPress R to retry."
		case xkcd.ErrDecode:
			return "The archive sent a response this client could not read.\n\nPress R to retry."
		}
	}
	return fmt.Sprintf("Error: %v\n\nPress R to retry.", err)
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.GotoView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Goto,
			Body: fmt.Sprintf(
				"Go to entry (number, \"random\", \"latest\", or /comics/... ):\n\n%s\n\n(esc to cancel)",
				m.state.TextInput.View(),
			),
			Width:  m.state.Width,
			Height: m.state.Height,
			Accent: m.state.Theme.Accent,
		}
	}
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
			Accent:  m.state.Theme.Accent,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
			Accent:  m.state.Theme.Accent,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Loading(), m.state.Status, helpText)
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
