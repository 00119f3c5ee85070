// Package dijkstra computes single-source shortest paths on a core.Graph with
// non-negative integer edge weights and reports the route and total distance
// between a source and a destination.
//
// Overview:
//
//   - ShortestPath(g, src, dst) returns a *Result holding the distance and the
//     path prefix (vertices before dst). Result.String() renders the report
//     "src -> ... -> dst : distance".
//   - A Run is the explicit per-query state: distance map, path map, settled set
//     and frontier. Graph vertices are never mutated by a computation.
//   - The frontier is a container/heap min-heap with lazy decrease-key: improved
//     vertices are re-pushed and stale entries are dropped when popped.
//   - The search stops as soon as the destination is popped from the frontier.
//
// Run reuse:
//
//	run, _ := dijkstra.NewRun(g)
//	a, _ := run.Compute("123", "503")
//	run.Reset() // required before the next independent query
//	b, _ := run.Compute("122", "303")
//
// Compute never resets on its own so callers can inspect or extend a run's
// state. Forgetting Reset yields stale results. ShortestPath allocates a fresh
// Run per call and has no such obligation.
//
// Determinism:
//
//   - Neighbors are relaxed in ascending vertex ID order.
//   - Frontier entries with equal distance pop in insertion order.
//   - Among several equal-weight routes, the reported one is therefore stable,
//     but which one is chosen is not part of the contract.
//
// Unreachable destinations:
//
//   - Not an error. Result.Distance == Infinity, Result.Path is empty and the
//     report prints "dst : unreachable".
//
// Error handling (sentinel errors, wrapped with context via %w):
//
//   - ErrNilGraph, ErrEmptySource, ErrEmptyDestination, ErrVertexNotFound,
//     ErrNegativeWeight. Options panic with ErrBadMaxDistance / ErrBadInfThreshold.
//
// Thread safety:
//
//   - A Run is single-goroutine. Independent Runs over the same graph may run
//     concurrently; the graph's own locks cover the reads.
//   - Writing to the graph while a Run computes is not supported; use
//     core.Graph.Clone to give a query its own snapshot.
package dijkstra
