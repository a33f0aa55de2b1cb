// Package arcflags implements single-region Arc-Flags preprocessing and
// querying: a boolean marker on every arc recording whether it may lie on
// a shortest path into a precomputed rectangular region, and a query that
// masks out unflagged arcs.
package arcflags

import (
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/vinhant/Efficient-Route-Planning/graph"
	"github.com/vinhant/Efficient-Route-Planning/search"
)

// Region is an axis-aligned latitude/longitude rectangle given in
// degrees. A node is in the region iff LatMin < lat < LatMax and
// LngMin < lng < LngMax, strictly — nodes exactly on the boundary are
// excluded, matching the course corpus this algorithm is drawn from.
type Region struct {
	LatMin, LatMax float64
	LngMin, LngMax float64
}

func (r Region) contains(n graph.Node) bool {
	latMin := r.LatMin * math.Pi / 180
	latMax := r.LatMax * math.Pi / 180
	lngMin := r.LngMin * math.Pi / 180
	lngMax := r.LngMax * math.Pi / 180
	return n.Lat > latMin && n.Lat < latMax && n.Lng > lngMin && n.Lng < lngMax
}

// Option configures Precompute.
type Option func(*config)

type config struct {
	log zerolog.Logger
}

// WithLogger attaches a structured logger that reports region/boundary
// node counts and per-boundary-sweep duration.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// Precompute marks, in place, every arc of g that may lie on a shortest
// path ending at a node of region. It returns the dense indices of the
// nodes in the region. Precompute is the only operation that mutates arc
// flags; it must run before any flag-aware query.
func Precompute(g *graph.Graph, region Region, opts ...Option) []int {
	cfg := config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(g.Nodes)
	inRegion := make([]bool, n)
	var regionNodes []int
	for i, node := range g.Nodes {
		if region.contains(node) {
			inRegion[i] = true
			regionNodes = append(regionNodes, i)
		}
	}

	for u := range g.Adj {
		for i := range g.Adj[u] {
			g.Adj[u][i].Flag = false
		}
	}

	for _, u := range regionNodes {
		for i, a := range g.Adj[u] {
			if inRegion[a.Head] {
				g.Adj[u][i].Flag = true
			}
		}
	}

	boundaryNodes := 0
	sweepStart := time.Now()
	for _, u := range regionNodes {
		boundary := false
		for _, a := range g.Adj[u] {
			if !inRegion[a.Head] {
				boundary = true
				break
			}
		}
		if !boundary {
			continue
		}
		boundaryNodes++

		bStart := time.Now()
		res := search.Search(g, u, nil, nil, nil)
		for h, t := range res.Predecessor {
			for i := range g.Adj[h] {
				if g.Adj[h][i].Head == t {
					g.Adj[h][i].Flag = true
				}
			}
		}
		cfg.log.Debug().
			Int("boundary_node", u).
			Dur("elapsed", time.Since(bStart)).
			Msg("arcflags: boundary sweep complete")
	}

	cfg.log.Info().
		Int("region_nodes", len(regionNodes)).
		Int("boundary_nodes", boundaryNodes).
		Dur("sweep_elapsed", time.Since(sweepStart)).
		Msg("arcflags: precompute complete")

	sort.Ints(regionNodes)
	return regionNodes
}

// ShortestPath runs the generalized search engine from s to t with arc
// flags applied, returning the settled cost (or nil if unreachable) and
// the settled set. The precondition is that t lies in the region that
// Precompute was run against; the residual flagged graph still contains
// every shortest path into that region.
func ShortestPath(g *graph.Graph, s, t int) (cost *int, settled []int) {
	res := search.Search(g, s, &t, nil, search.FlagVisible)
	return res.Cost, res.Settled
}
