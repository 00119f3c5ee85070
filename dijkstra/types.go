// Package dijkstra defines core types and configuration options
// for the shortest-path engine on weighted directed graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– OnSettle:         hook called once per vertex when its distance becomes final.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrEmptySource       if the provided source ID is empty.
//	– ErrEmptyDestination  if the provided destination ID is empty.
//	– ErrVertexNotFound    if the source or destination vertex does not exist in the graph.
//	– ErrNegativeWeight    if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance    if MaxDistance < 0.
//	– ErrBadInfThreshold   if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the distance of a vertex that has not been reached.
// Reports render it as Unreachable rather than as a number.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyDestination indicates that the provided destination vertex ID is empty.
	ErrEmptyDestination = errors.New("dijkstra: destination vertex ID is empty")

	// ErrVertexNotFound indicates that the source or destination does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// SettleFunc observes a vertex at the moment its shortest distance is final.
type SettleFunc func(id string, dist int64)

// Options configures the behavior of a Run.
//
// MaxDistance      – vertices farther than this are neither settled nor relaxed.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is Infinity (no obstacles).
//
// OnSettle         – optional hook, nil by default.
type Options struct {
	MaxDistance      int64      // Maximum distance to explore
	InfEdgeThreshold int64      // Weight threshold above which edges are non-traversable
	OnSettle         SettleFunc // Called once per settled vertex
}

// Option represents a functional option for configuring a Run.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored
// and are reported as unreachable.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is a programming error; fail at construction.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable.
// Panics with ErrBadInfThreshold on zero or a negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle installs a hook called each time a vertex is settled,
// in settle order, with its final distance.
func WithOnSettle(fn SettleFunc) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - MaxDistance:      Infinity (explore all reachable vertices).
//   - InfEdgeThreshold: Infinity (no edges treated as impassable).
//   - OnSettle:         nil.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
