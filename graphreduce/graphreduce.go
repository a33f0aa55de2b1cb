// Package graphreduce restricts a road-network graph to its largest
// weakly-connected component, re-densifying node indices in the process.
package graphreduce

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/vinhant/Efficient-Route-Planning/graph"
	"github.com/vinhant/Efficient-Route-Planning/search"
)

// Option configures ToLargestComponent.
type Option func(*config)

type config struct {
	log zerolog.Logger
}

// WithLogger attaches a structured logger that reports the size of the
// component chosen and how many candidate components were swept.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// ToLargestComponent runs a connected-components sweep over g (one
// all-reachable search per not-yet-visited node with at least one
// outgoing arc) and returns a new graph containing exactly the nodes of
// the largest component found, with indices rebuilt starting at 0. Arcs
// whose head also lies in the component are copied as one-way arcs, so
// every undirected edge naturally reappears as its pair of arcs. Isolated
// nodes, and every node outside the winning component, are dropped.
//
// Ties are broken by first-seen component of maximum size: the sweep
// order is the node's dense index, so this is deterministic for a given
// input graph.
func ToLargestComponent(g *graph.Graph, opts ...Option) *graph.Graph {
	cfg := config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(g.Nodes)
	visited := make([]bool, n)
	var best []int
	componentsSwept := 0

	for i := 0; i < n; i++ {
		if visited[i] || len(g.Adj[i]) == 0 {
			continue
		}
		res := search.Search(g, i, nil, nil, nil)
		componentsSwept++
		for _, s := range res.Settled {
			visited[s] = true
		}
		if len(res.Settled) > len(best) {
			best = res.Settled
		}
	}

	cfg.log.Info().
		Int("components_swept", componentsSwept).
		Int("largest_component_size", len(best)).
		Msg("graphreduce: selected largest weakly-connected component")

	sort.Ints(best)
	inComponent := make(map[int]bool, len(best))
	for _, idx := range best {
		inComponent[idx] = true
	}

	reduced := graph.New(graph.WithLogger(cfg.log))
	for _, idx := range best {
		node := g.Nodes[idx]
		reduced.AddNodeRadians(node.ID, node.Lat, node.Lng)
	}
	for _, idx := range best {
		from := g.Nodes[idx]
		for _, a := range g.Adj[idx] {
			if !inComponent[a.Head] {
				continue
			}
			head := g.Nodes[a.Head]
			reduced.AddOneWay(from.ID, head.ID, a.Cost, a.Speed)
		}
	}

	return reduced
}
