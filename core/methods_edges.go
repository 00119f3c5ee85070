// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors() returns edges sorted by To asc.
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import "sort"

// AddEdge inserts or overwrites the directed edge from→to with the given weight.
//
// Steps:
//  1. Validate IDs.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, store adjacency[from][to] = weight (last write wins).
//  4. If the graph is undirected and from != to, store the mirror to→from.
//
// Any weight is accepted. Algorithms that require non-negative weights
// validate them before running.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	ensureBucket(g, from)
	g.adjacency[from][to] = weight
	if g.undirected && from != to {
		ensureBucket(g, to)
		g.adjacency[to][from] = weight
	}

	return nil
}

// RemoveEdge deletes the edge from→to (and its mirror in undirected graphs).
// Returns ErrEdgeNotFound if from→to does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[from], to)
	if g.undirected {
		delete(g.adjacency[to], from)
	}

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of from→to, or ErrEdgeNotFound.
func (g *Graph) Weight(from, to string) (int64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	w, ok := g.adjacency[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Neighbors returns the outgoing edges of id sorted by target ID.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if id is not in the graph.
//
// Complexity: O(d log d) for out-degree d.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	bucket := g.adjacency[id]
	out := make([]Edge, 0, len(bucket))
	for to, w := range bucket {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Edges returns every directed edge sorted by (From, To).
// Undirected graphs report both directions.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, len(g.adjacency))
	for from, bucket := range g.adjacency {
		for to, w := range bucket {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of directed edges stored.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	n := 0
	for _, bucket := range g.adjacency {
		n += len(bucket)
	}

	return n
}

// ensureBucket allocates adjacency[id] if missing. Caller holds muEdgeAdj.
func ensureBucket(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]int64)
	}
}
