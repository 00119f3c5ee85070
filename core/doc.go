// Package core provides the thread-safe in-memory Graph that the shortest-path
// engine runs on: named vertices and directed, integer-weighted edges.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are identified by a non-empty string ID; identity never changes.
//   - Edges are directed: AddEdge("A","B",w) does not imply B→A.
//   - At most one edge per ordered pair. Adding the same pair again overwrites
//     its weight (last write wins).
//   - Weights are int64 and are stored as given. Non-negativity is checked by
//     the algorithms that depend on it (see package dijkstra), not here.
//   - Constant-time edge operations via nested maps: adjacency[from][to] = weight.
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muEdgeAdj)
//     to minimize lock contention under concurrency.
//
// Configuration Options (GraphOption):
//
//	– WithUndirected()
//	    Every AddEdge(from,to,w) also writes to→from with the same weight.
//	    RemoveEdge drops both directions.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1)
//	HasVertex(id string) bool                  // O(1)
//	Vertex(id string) (*Vertex, error)         // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) error  // O(1), insert or overwrite
//	RemoveEdge(from, to string) error             // O(1)
//	HasEdge(from, to string) bool                 // O(1)
//	Weight(from, to string) (int64, error)        // O(1)
//
//	// Query
//	Neighbors(id string) ([]Edge, error)       // O(d·log d), sorted by To
//	Vertices() []string                        // O(V·log V), sorted
//	Edges() []Edge                             // O(E·log E), sorted by (From, To)
//	VertexCount() int / EdgeCount() int        // O(1) / O(V)
//
//	// Cloning
//	Clone() *Graph                             // O(V+E) deep copy
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
package core
