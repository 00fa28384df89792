// Package nav holds the navigation model: the route codec and the pure state
// machine that drives fetching and page transitions.
package nav

import (
	"fmt"
	"strconv"
	"strings"
)

// RouteKind discriminates the recognized navigation targets.
type RouteKind int

const (
	// RouteLatest shows the most recent entry in the archive.
	RouteLatest RouteKind = iota
	// RouteRandom resolves to a uniformly random entry.
	RouteRandom
	// RouteComic shows one specific entry by number.
	RouteComic
	// RouteNotFound is produced for unrecognized fragments.
	RouteNotFound
)

// Route is a parsed navigation target. Number is meaningful only for
// RouteComic.
type Route struct {
	Kind   RouteKind
	Number int
}

// Latest returns the route for the most recent entry.
func Latest() Route { return Route{Kind: RouteLatest} }

// Random returns the route for a random entry.
func Random() Route { return Route{Kind: RouteRandom} }

// Comic returns the route for entry n.
func Comic(n int) Route { return Route{Kind: RouteComic, Number: n} }

// NotFound returns the route for unrecognized fragments.
func NotFound() Route { return Route{Kind: RouteNotFound} }

// Parse maps a deep-link fragment to a route. Recognized shapes: "" or "/"
// for the latest entry, "/comics/random", and "/comics/<positive integer>".
// Everything else parses to NotFound. A leading "#" is tolerated so copied
// hash fragments work as-is.
func Parse(fragment string) Route {
	fragment = strings.TrimSpace(fragment)
	fragment = strings.TrimPrefix(fragment, "#")

	if fragment == "" || fragment == "/" {
		return Latest()
	}

	rest, ok := strings.CutPrefix(fragment, "/comics/")
	if !ok {
		return NotFound()
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "random" {
		return Random()
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return NotFound()
	}
	return Comic(n)
}

// Format maps a route back to its fragment. Parse(Format(r)) == r holds for
// every representable route. NotFound has no canonical fragment and is never
// navigated to; it formats as the root fragment.
func Format(r Route) string {
	switch r.Kind {
	case RouteRandom:
		return "/comics/random"
	case RouteComic:
		return fmt.Sprintf("/comics/%d", r.Number)
	default:
		return "/"
	}
}

// String implements fmt.Stringer for diagnostics.
func (r Route) String() string {
	switch r.Kind {
	case RouteLatest:
		return "latest"
	case RouteRandom:
		return "random"
	case RouteComic:
		return fmt.Sprintf("comic(%d)", r.Number)
	default:
		return "not-found"
	}
}
