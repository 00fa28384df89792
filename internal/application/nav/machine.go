package nav

import (
	"math/rand"
	"time"

	"github.com/tesso57/comix/internal/domain/comic"
	"github.com/tesso57/comix/internal/domain/load"
)

// Model is the session-wide navigation state. It owns the two async entry
// slots: Latest caches the archive's upper bound and is reused across
// navigations, Requested always tracks the entry implied by Current.
type Model struct {
	rng       *rand.Rand
	Current   Route
	Latest    load.State[comic.Comic]
	Requested load.State[comic.Comic]
}

// NewModel creates the navigation model. A positive seed makes random picks
// reproducible; zero or negative seeds draw from the clock.
func NewModel(seed int64) Model {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return Model{
		rng:       rand.New(rand.NewSource(seed)),
		Current:   Latest(),
		Latest:    load.NotRequested[comic.Comic](),
		Requested: load.NotRequested[comic.Comic](),
	}
}

// NavKey is a navigation shortcut decoupled from physical key bindings.
type NavKey int

const (
	// KeyPrev steps to the previous entry.
	KeyPrev NavKey = iota
	// KeyNext steps to the next entry.
	KeyNext
	// KeyLatest jumps to the most recent entry.
	KeyLatest
	// KeyRandom jumps to a random entry.
	KeyRandom
)

// Event is an input to the state machine.
type Event interface{ event() }

// RouteChanged signals that the address changed, whether from a deep link,
// a Navigate command, or a shortcut.
type RouteChanged struct{ Route Route }

// LatestLoaded delivers the result of a latest-entry fetch.
type LatestLoaded struct {
	Comic comic.Comic
	Err   error
}

// RequestedLoaded delivers the result of a specific-entry fetch.
type RequestedLoaded struct {
	Comic comic.Comic
	Err   error
}

// KeyPressed delivers a navigation shortcut.
type KeyPressed struct{ Key NavKey }

func (RouteChanged) event()    {}
func (LatestLoaded) event()    {}
func (RequestedLoaded) event() {}
func (KeyPressed) event()      {}

// Command is an effect requested by the state machine. The caller executes
// fetches asynchronously and feeds Navigate back in as a RouteChanged event.
type Command interface{ command() }

// FetchLatest requests the most recent entry.
type FetchLatest struct{}

// FetchComic requests entry Number.
type FetchComic struct{ Number int }

// Navigate requests a re-route, making derived navigations (random draws,
// shortcut steps) real addressable routes instead of hidden side effects.
type Navigate struct{ Route Route }

func (FetchLatest) command() {}
func (FetchComic) command()  {}
func (Navigate) command()    {}

// Handle applies one event and returns the next model plus the effects to
// run. Transitions run to completion; fetch completions arrive later as
// discrete events. Completions are applied as-is even when a newer request
// has superseded them: the last response to land in a slot wins.
func Handle(m Model, ev Event) (Model, []Command) {
	switch ev := ev.(type) {
	case RouteChanged:
		return handleRouteChanged(m, ev.Route)
	case LatestLoaded:
		return handleLatestLoaded(m, ev)
	case RequestedLoaded:
		if ev.Err != nil {
			m.Requested = load.Failed[comic.Comic](ev.Err)
		} else {
			m.Requested = load.Loaded(ev.Comic)
		}
		return m, nil
	case KeyPressed:
		return m, handleKey(m, ev.Key)
	}
	return m, nil
}

func handleRouteChanged(m Model, r Route) (Model, []Command) {
	m.Current = r

	switch r.Kind {
	case RouteLatest:
		if c, ok := m.Latest.Value(); ok {
			// The latest entry is definitionally the requested one here;
			// a refetch would be wasteful and could race.
			m.Requested = load.Loaded(c)
			return m, nil
		}
		m.Requested = load.Loading[comic.Comic]()
		if m.Latest.IsLoading() {
			return m, nil
		}
		m.Latest = load.Loading[comic.Comic]()
		return m, []Command{FetchLatest{}}

	case RouteComic:
		m.Requested = load.Loading[comic.Comic]()
		cmds := []Command{FetchComic{Number: r.Number}}
		// The latest entry bounds next/random navigation; fetch it once,
		// not on every navigation.
		if !m.Latest.IsLoaded() && !m.Latest.IsLoading() {
			m.Latest = load.Loading[comic.Comic]()
			cmds = append(cmds, FetchLatest{})
		}
		return m, cmds

	case RouteRandom:
		if c, ok := m.Latest.Value(); ok {
			return m, []Command{Navigate{Route: Comic(m.draw(c.Number))}}
		}
		if _, failed := m.Latest.Err(); failed {
			return m, []Command{Navigate{Route: Latest()}}
		}
		// Upper bound unknown: start the fetch if needed and defer the
		// draw until LatestLoaded arrives.
		m.Requested = load.Loading[comic.Comic]()
		if m.Latest.IsLoading() {
			return m, nil
		}
		m.Latest = load.Loading[comic.Comic]()
		return m, []Command{FetchLatest{}}

	default: // RouteNotFound
		m.Requested = load.NotRequested[comic.Comic]()
		return m, nil
	}
}

func handleLatestLoaded(m Model, ev LatestLoaded) (Model, []Command) {
	if ev.Err != nil {
		m.Latest = load.Failed[comic.Comic](ev.Err)
		switch m.Current.Kind {
		case RouteLatest:
			m.Requested = load.Failed[comic.Comic](ev.Err)
		case RouteRandom:
			return m, []Command{Navigate{Route: Latest()}}
		}
		return m, nil
	}

	m.Latest = load.Loaded(ev.Comic)
	switch m.Current.Kind {
	case RouteLatest:
		m.Requested = load.Loaded(ev.Comic)
	case RouteRandom:
		// This fetch was issued to resolve a pending random draw.
		return m, []Command{Navigate{Route: Comic(m.draw(ev.Comic.Number))}}
	}
	return m, nil
}

func handleKey(m Model, k NavKey) []Command {
	// Latest and Random are absolute jumps: they stay reachable whatever
	// state the requested slot is in, so a failed load is never a dead end.
	switch k {
	case KeyLatest:
		return []Command{Navigate{Route: Latest()}}
	case KeyRandom:
		return []Command{Navigate{Route: Random()}}
	}

	current, ok := m.Requested.Value()
	if !ok {
		// Stepping is relative to the current entry's number, so it is
		// ignored while that entry is loading, failed, or absent.
		return nil
	}

	switch k {
	case KeyPrev:
		if current.Number <= 1 {
			return nil
		}
		return []Command{Navigate{Route: Comic(current.Number - 1)}}
	case KeyNext:
		latest, ok := m.Latest.Value()
		if !ok || current.Number >= latest.Number {
			return nil
		}
		return []Command{Navigate{Route: Comic(current.Number + 1)}}
	}
	return nil
}

// draw picks a number in [1, upper]. upper is always positive by the time a
// draw is reachable: it comes from a loaded latest entry.
func (m Model) draw(upper int) int {
	if upper <= 1 {
		return 1
	}
	return m.rng.Intn(upper) + 1
}
