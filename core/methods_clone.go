// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.
package core

// Clone returns a deep copy of the Graph: configuration, vertices and adjacency.
//
// Vertex Metadata maps are shared with the source, not copied.
// The clone is independent: later AddEdge/RemoveEdge on either graph
// does not affect the other.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var opts []GraphOption
	if g.undirected {
		opts = append(opts, WithUndirected())
	}
	clone := NewGraph(opts...)

	var id string
	var v *Vertex
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}
	var from, to string
	var bucket map[string]int64
	var w int64
	for from, bucket = range g.adjacency {
		cp := make(map[string]int64, len(bucket))
		for to, w = range bucket {
			cp[to] = w
		}
		clone.adjacency[from] = cp
	}

	return clone
}
