package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/waypath/core"
)

// ErrBadEdgeSpec is returned for an --edge value that is not from:to:weight.
var ErrBadEdgeSpec = errors.New("waypath: edge must be from:to:weight")

// parseEdge parses "from:to:weight". Weight must be a non-negative integer.
func parseEdge(spec string) (core.Edge, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return core.Edge{}, fmt.Errorf("%w: %q", ErrBadEdgeSpec, spec)
	}
	w, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: %q: %v", ErrBadEdgeSpec, spec, err)
	}
	if w < 0 {
		return core.Edge{}, fmt.Errorf("%w: %q: weight must be non-negative", ErrBadEdgeSpec, spec)
	}

	return core.Edge{From: parts[0], To: parts[1], Weight: w}, nil
}

// buildGraph parses every spec and adds it to a new graph.
// Later specs for the same pair overwrite earlier ones.
func buildGraph(specs []string, undirected bool) (*core.Graph, error) {
	var opts []core.GraphOption
	if undirected {
		opts = append(opts, core.WithUndirected())
	}
	g := core.NewGraph(opts...)
	for _, spec := range specs {
		e, err := parseEdge(spec)
		if err != nil {
			return nil, err
		}
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("add edge %q: %w", spec, err)
		}
	}

	return g, nil
}
