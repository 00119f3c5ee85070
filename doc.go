// Package waypath computes shortest routes on small, explicit, weighted
// directed graphs held entirely in memory.
//
// Under the hood, everything is organized under two subpackages:
//
//	core/       Graph, Vertex, Edge: thread-safe construction and queries
//	dijkstra/   Run, ShortestPath, Distances, Result and its text report
//
// and one command:
//
//	cmd/waypath Build a graph from --edge flags and print a route
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("123", "122", 1)
//	_ = g.AddEdge("122", "504", 5)
//	_ = g.AddEdge("504", "503", 4)
//	res, _ := dijkstra.ShortestPath(g, "123", "503")
//	fmt.Println(res) // 123 -> 122 -> 504 -> 503 : 10
package waypath
