package search

import "github.com/vinhant/Efficient-Route-Planning/graph"

// Dijkstra runs plain Dijkstra from s to t: the generalized search engine
// with the zero heuristic and no arc-flag masking. It is
// shortest_path_dijkstra from the external interface.
func Dijkstra(g *graph.Graph, s, t int) (cost *int, settled []int) {
	res := Search(g, s, &t, nil, nil)
	return res.Cost, res.Settled
}

// DijkstraAll runs plain Dijkstra from s with no target, settling every
// node reachable from s.
func DijkstraAll(g *graph.Graph, s int) Result {
	return Search(g, s, nil, nil, nil)
}
