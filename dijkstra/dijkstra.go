// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// directed graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E), plus O(V·L) for stored paths of length L.
//
// Notes on implementation choices:
//
//   - Per-run state (distance, path, settled) lives in a Run, never on graph vertices.
//   - We scan all edges (O(E)) in NewRun to reject negative weights up front.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Ties on equal distance pop in insertion order; neighbors are relaxed in ascending ID order.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// ShortestPath computes the minimum-weight path from source to destination in g.
//
// Every call works on a fresh Run, so no reset is needed between calls.
// An unreachable destination is not an error: the Result carries Infinity
// and an empty path.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. No edge in g can have negative weight (ErrNegativeWeight).
//  3. source and destination must be non-empty (ErrEmptySource, ErrEmptyDestination).
//  4. both must exist in g (ErrVertexNotFound).
func ShortestPath(g *core.Graph, source, destination string, opts ...Option) (*Result, error) {
	r, err := NewRun(g, opts...)
	if err != nil {
		return nil, err
	}

	return r.Compute(source, destination)
}

// Distances computes shortest distances from source to every vertex of g.
// Unreachable vertices map to Infinity.
func Distances(g *core.Graph, source string, opts ...Option) (map[string]int64, error) {
	r, err := NewRun(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = r.ComputeAll(source); err != nil {
		return nil, err
	}

	return r.Distances(), nil
}

// Run is the mutable state of shortest-path computations over one graph:
// best-known distances, best-known paths, the settled set and the frontier.
//
// A Run may be reused for many queries. Compute does not clear previous
// results; call Reset (or ResetAll) between independent queries. A Run is not
// safe for concurrent use; give each goroutine its own Run over the shared graph.
type Run struct {
	g       *core.Graph         // The input graph; read-only here.
	options Options             // Configuration options.
	dist    map[string]int64    // vertex ID → best-known distance.
	path    map[string][]string // vertex ID → vertices from source up to, not including, the vertex.
	settled map[string]bool     // vertex ID → distance is final.
	pq      nodePQ              // Min-heap frontier.
	seq     uint64              // Insertion counter for tie-breaking.
}

// NewRun validates g and returns a reset Run bound to it.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrNegativeWeight (wrapped with the offending edge) if any edge is negative.
func NewRun(g *core.Graph, opts ...Option) (*Run, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}

	var e core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &Run{g: g, options: cfg}
	r.Reset()

	return r, nil
}

// Reset sets every vertex's distance to Infinity, empties every path and
// clears the settled set and the frontier.
// Vertices added to the graph since the last Reset are picked up.
func (r *Run) Reset() {
	vertices := r.g.Vertices()
	r.dist = make(map[string]int64, len(vertices))
	r.path = make(map[string][]string, len(vertices))
	r.settled = make(map[string]bool, len(vertices))
	for _, v := range vertices {
		r.dist[v] = Infinity
	}
	r.pq = r.pq[:0]
	r.seq = 0
}

// ResetAll resets every given Run. Nil entries are skipped.
func ResetAll(runs ...*Run) {
	for _, r := range runs {
		if r != nil {
			r.Reset()
		}
	}
}

// Compute runs Dijkstra from source and stops as soon as destination is settled.
//
// Precondition: the Run is fresh or was Reset since its last computation.
// Stale state from an earlier query yields wrong results; it is not detected.
func (r *Run) Compute(source, destination string) (*Result, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	if destination == "" {
		return nil, ErrEmptyDestination
	}
	if !r.g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if !r.g.HasVertex(destination) {
		return nil, fmt.Errorf("%w: destination %q", ErrVertexNotFound, destination)
	}

	if err := r.process(source, destination); err != nil {
		return nil, err
	}

	return r.Result(source, destination), nil
}

// ComputeAll runs Dijkstra from source until the frontier is empty,
// leaving final distances and paths for every reachable vertex.
func (r *Run) ComputeAll(source string) error {
	if source == "" {
		return ErrEmptySource
	}
	if !r.g.HasVertex(source) {
		return fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	return r.process(source, "")
}

// Result reports the current state for destination as reached from source.
// It does not run any computation.
func (r *Run) Result(source, destination string) *Result {
	return &Result{
		Source:      source,
		Destination: destination,
		Distance:    r.Distance(destination),
		Path:        r.Path(destination),
	}
}

// Distance returns the best-known distance to id (Infinity if unknown).
func (r *Run) Distance(id string) int64 {
	d, ok := r.dist[id]
	if !ok {
		return Infinity
	}

	return d
}

// Path returns a copy of the best-known path prefix to id: the vertices from
// the source up to, but not including, id. Empty for the source and for
// unreached vertices.
func (r *Run) Path(id string) []string {
	p := r.path[id]
	if len(p) == 0 {
		return nil
	}
	out := make([]string, len(p))
	copy(out, p)

	return out
}

// Settled reports whether id's distance is final in this Run.
func (r *Run) Settled(id string) bool { return r.settled[id] }

// Distances returns a copy of every vertex's best-known distance.
func (r *Run) Distances() map[string]int64 {
	out := make(map[string]int64, len(r.dist))
	for v, d := range r.dist {
		out[v] = d
	}

	return out
}

// process is the core loop. An empty destination disables the early exit.
//
// Loop termination conditions:
//
//   - destination is popped (its distance and path are final).
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *Run) process(source, destination string) error {
	r.dist[source] = 0
	r.pq = r.pq[:0]
	r.push(source, 0)

	var u string
	var d int64
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		d = item.dist

		// 2) Skip stale duplicates of already settled vertices.
		if r.settled[u] {
			continue
		}

		// 3) Everything left in the heap is beyond the cap.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Early exit: nothing left in the frontier can improve destination.
		if u == destination {
			r.settle(u, d)
			break
		}

		// 5) Relax all outgoing edges from u, then finalize u.
		if err := r.relax(u); err != nil {
			return err
		}
		r.settle(u, d)
	}

	return nil
}

// relax examines each edge outgoing from u and improves distances to its
// non-settled neighbors. Edges with weight ≥ InfEdgeThreshold are skipped.
//
// Assumes r.dist[u] is final before calling relax(u).
func (r *Run) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var e core.Edge
	var v string
	var w, newDist int64
	for _, e = range neighbors {
		v = e.To
		w = e.Weight

		if r.settled[v] {
			continue
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// The graph may have been written to after NewRun.
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}

		newDist = addDistance(r.dist[u], w)
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.Distance(v) {
			continue
		}

		r.dist[v] = newDist
		next := make([]string, len(r.path[u])+1)
		copy(next, r.path[u])
		next[len(next)-1] = u
		r.path[v] = next

		r.push(v, newDist)
	}

	return nil
}

func (r *Run) settle(id string, d int64) {
	r.settled[id] = true
	if r.options.OnSettle != nil {
		r.options.OnSettle(id, d)
	}
}

func (r *Run) push(id string, d int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// addDistance returns d+w, saturating at Infinity.
func addDistance(d, w int64) int64 {
	if d == Infinity || w > Infinity-d {
		return Infinity
	}

	return d + w
}

// nodeItem is a frontier entry: a vertex, the distance it was pushed with,
// and its insertion sequence number.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source at push time
	seq  uint64 // insertion order
}

// byDistanceThenSeq orders frontier entries by ascending distance; equal
// distances pop in insertion order.
func byDistanceThenSeq(a, b *nodeItem) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.seq < b.seq
}

// nodePQ is a min-heap of *nodeItem ordered by byDistanceThenSeq.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less delegates to the frontier comparator.
func (pq nodePQ) Less(i, j int) bool { return byDistanceThenSeq(pq[i], pq[j]) }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already swapped the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
