// Command comix is a terminal browser for the xkcd archive.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/comix/internal/application/nav"
	"github.com/tesso57/comix/internal/infrastructure/config"
	"github.com/tesso57/comix/internal/infrastructure/xkcd"
	"github.com/tesso57/comix/internal/presentation/tui"
)

var cli struct {
	Config string `help:"Path to the config file." type:"path"`
	Seed   int64  `help:"Random seed for the random-entry shortcut (0 draws from the clock)."`
	Route  string `arg:"" optional:"" help:"Starting location, e.g. /comics/614, /comics/random, or a bare entry number."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("comix"),
		kong.Description("Browse the xkcd archive from your terminal."),
	)

	store, err := config.Load(cli.Config)
	if err != nil {
		kctx.FatalIfErrorf(fmt.Errorf("load config: %w", err))
	}
	cfg := store.Settings
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}

	archive := xkcd.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.Timeout()})

	start := nav.Latest()
	if cli.Route != "" {
		start = startRoute(cli.Route)
	}

	m := tui.NewModel(cfg, archive, start)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "comix: %v\n", err)
		os.Exit(1)
	}
}

// startRoute accepts either a fragment or a bare entry number.
func startRoute(arg string) nav.Route {
	if n, err := strconv.Atoi(arg); err == nil && n > 0 {
		return nav.Comic(n)
	}
	return nav.Parse(arg)
}
