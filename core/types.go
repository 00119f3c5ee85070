// Package core defines the Graph, Vertex and Edge types and the sentinel
// errors returned by graph construction and queries.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for adjacency), so graphs can be built and read across goroutines.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. Two vertices are the
// same vertex if and only if their IDs are equal.
// Metadata stores arbitrary key-value data and is shared on clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is a snapshot of one directed connection From→To.
//
// Edges are returned by value; mutating a returned Edge does not touch the Graph.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUndirected makes AddEdge and RemoveEdge act on both directions at once.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency

	undirected bool // mirror every edge write

	vertices map[string]*Vertex // vertex ID → Vertex

	// adjacency[from][to] = weight
	adjacency map[string]map[string]int64
}

// NewGraph creates an empty directed Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]int64),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Undirected reports whether the graph mirrors edge writes.
func (g *Graph) Undirected() bool { return g.undirected }
