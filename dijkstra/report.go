package dijkstra

import (
	"strconv"
	"strings"
)

// Report format tokens.
const (
	// Separator joins consecutive vertex names in a reported route.
	Separator = " -> "

	// Unreachable is printed in place of the Infinity distance.
	Unreachable = "unreachable"
)

// Result is the outcome of one source→destination query.
type Result struct {
	Source      string
	Destination string

	// Distance is the minimum total weight, or Infinity when unreachable.
	Distance int64

	// Path holds the vertices from Source up to, but not including,
	// Destination. It is empty when Source == Destination or when
	// Destination is unreachable.
	Path []string
}

// Reachable reports whether Destination was reached.
func (r *Result) Reachable() bool { return r.Distance != Infinity }

// Route returns the full vertex sequence Source..Destination,
// or nil if Destination is unreachable.
func (r *Result) Route() []string {
	if !r.Reachable() {
		return nil
	}
	route := make([]string, 0, len(r.Path)+1)
	route = append(route, r.Path...)

	return append(route, r.Destination)
}

// Hops returns the number of edges on the route (-1 if unreachable).
func (r *Result) Hops() int {
	if !r.Reachable() {
		return -1
	}

	return len(r.Path)
}

// String renders the human-readable report:
//
//	"123 -> 122 -> 504 -> 503 : 10"
//	"503 : 0"            (empty path)
//	"503 : unreachable"  (no route)
func (r *Result) String() string {
	var b strings.Builder
	for _, id := range r.Path {
		b.WriteString(id)
		b.WriteString(Separator)
	}
	b.WriteString(r.Destination)
	b.WriteString(" : ")
	b.WriteString(FormatDistance(r.Distance))

	return b.String()
}

// FormatDistance renders d in decimal, or Unreachable for Infinity.
func FormatDistance(d int64) string {
	if d == Infinity {
		return Unreachable
	}

	return strconv.FormatInt(d, 10)
}
