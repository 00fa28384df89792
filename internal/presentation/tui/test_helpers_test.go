package tui

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/comix/internal/application/nav"
	"github.com/tesso57/comix/internal/application/settings"
	"github.com/tesso57/comix/internal/domain/comic"
)

// stubArchive serves canned entries; set expectations via mock.Mock to
// override the map-backed fallback.
type stubArchive struct {
	mock.Mock
	latest  comic.Comic
	entries map[int]comic.Comic
}

func (s *stubArchive) Latest(ctx context.Context) (comic.Comic, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx)
		c, _ := args.Get(0).(comic.Comic)
		return c, args.Error(1)
	}
	return s.latest, nil
}

func (s *stubArchive) ByNumber(ctx context.Context, n int) (comic.Comic, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, n)
		c, _ := args.Get(0).(comic.Comic)
		return c, args.Error(1)
	}
	if c, ok := s.entries[n]; ok {
		return c, nil
	}
	return comic.Comic{}, fmt.Errorf("no entry %d", n)
}

func testSettings() settings.Settings {
	return settings.Settings{
		APIBaseURL:     "https://xkcd.com",
		SiteURL:        "https://xkcd.com",
		TimeoutSeconds: 10,
		Seed:           1,
		KeyMap: settings.KeyMapConfig{
			Up: "k,up", Down: "j,down",
			Prev: "h,left", Next: "l,right",
			Latest: "L", Random: "r", Goto: "g",
			Recent: "tab", Open: "o", Image: "i",
			Back: "esc", Quit: "q", Refresh: "R",
		},
		Theme: settings.ThemeConfig{Accent: "205", Dim: "240"},
	}
}

func newTestModel(archive *stubArchive, start nav.Route) *Model {
	return NewModel(testSettings(), archive, start)
}

func sizedTestModel(archive *stubArchive, start nav.Route) *Model {
	m := newTestModel(archive, start)
	m.state.Width = 100
	m.state.Height = 40
	return m
}
