// Package alt implements ALT preprocessing and querying: A* guided by a
// lower-bound heuristic derived from precomputed landmark distances and
// the triangle inequality.
package alt

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/vinhant/Efficient-Route-Planning/graph"
	"github.com/vinhant/Efficient-Route-Planning/search"
)

// Index holds the landmarks chosen for a graph and, for each, the cost of
// the shortest path from that landmark to every node. Because the graph
// is undirected, a single row per landmark serves both "distance from"
// and "distance to" the landmark — a directed extension would need two.
type Index struct {
	Landmarks []int
	Seed      uint64
	dist      [][]int // dist[l][node]
}

// Option configures Precompute.
type Option func(*config)

type config struct {
	log zerolog.Logger
}

// WithLogger attaches a structured logger that reports per-landmark
// precompute duration and a summary line.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// selectLandmarks chooses k node indices uniformly at random, with
// replacement, from [0,n), using the given seed. Exposing the seed is
// what makes landmark selection reproducible across runs.
func selectLandmarks(n, k int, seed uint64) []int {
	src := rand.NewSource(seed)
	r := rand.New(src)
	landmarks := make([]int, k)
	for i := range landmarks {
		landmarks[i] = r.Intn(n)
	}
	return landmarks
}

// Precompute selects k landmarks at random (seeded, for reproducibility)
// and, for each, runs the generalized search engine from the landmark
// with no target and the zero heuristic to build its distance row.
//
// Precompute panics if k is 0 — NoLandmarkSelected is a contract
// violation, not a recoverable condition.
func Precompute(g *graph.Graph, k int, seed uint64, opts ...Option) *Index {
	if k <= 0 {
		panic("alt: k must be > 0")
	}
	cfg := config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(g.Nodes)
	landmarks := selectLandmarks(n, k, seed)
	dist := make([][]int, k)

	start := time.Now()
	for i, l := range landmarks {
		lStart := time.Now()
		res := search.Search(g, l, nil, nil, nil)
		dist[i] = res.G
		cfg.log.Debug().
			Int("landmark", l).
			Dur("elapsed", time.Since(lStart)).
			Msg("alt: landmark distance row precomputed")
	}
	cfg.log.Info().
		Int("landmarks", k).
		Uint64("seed", seed).
		Dur("elapsed", time.Since(start)).
		Msg("alt: precompute complete")

	return &Index{Landmarks: landmarks, Seed: seed, dist: dist}
}

// heuristic returns the ALT lower bound on the cost from u to t:
// max over landmarks l of |dist(u,l) - dist(t,l)|. It is admissible by
// the triangle inequality and consistent, so it can drive the
// generalized search engine with early exit on popping the target.
func (idx *Index) heuristic(u, t int) int {
	max := 0
	for _, row := range idx.dist {
		du, dt := row[u], row[t]
		if du == search.Unreached || dt == search.Unreached {
			continue
		}
		diff := du - dt
		if diff < 0 {
			diff = -diff
		}
		if diff > max {
			max = diff
		}
	}
	return max
}

// ShortestPath runs the generalized search engine from s to t using the
// ALT heuristic and no arc-flag masking, and returns the settled cost (or
// nil if unreachable) and the settled set.
func ShortestPath(g *graph.Graph, idx *Index, s, t int) (cost *int, settled []int) {
	if s < 0 || s >= len(g.Nodes) || t < 0 || t >= len(g.Nodes) {
		panic(fmt.Sprintf("alt: node index out of range [0,%d)", len(g.Nodes)))
	}
	res := search.Search(g, s, &t, idx.heuristic, nil)
	return res.Cost, res.Settled
}
