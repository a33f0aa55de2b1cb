// Package graph implements the in-memory road-network data structure: the
// node and arc records, their adjacency lists, intake builders, and the
// coordinate math used to derive arc costs from OSM-style node coordinates.
package graph

import (
	"math"

	"github.com/rs/zerolog"
)

// Node is an immutable road-network vertex. Lat and Lng are stored in
// radians; the conversion from degrees happens once, at intake, and
// nowhere else.
type Node struct {
	ID  uint64
	Lat float64
	Lng float64
}

// Arc is a directed half-edge in a node's adjacency list. An undirected
// edge is represented as two arcs with matching Cost and swapped
// endpoints. Flag is read by the Arc-Flags query and is otherwise unused.
type Arc struct {
	Head  int
	Cost  int
	Speed int
	Flag  bool
}

// Graph is a weighted road network addressed by dense 0-based node index.
// Nodes and the id-to-index mapping are populated during intake only; the
// adjacency table grows with every AddEdge/AddOneWay call. Arc flags are
// the sole field mutated after intake (by package arcflags).
type Graph struct {
	Nodes []Node
	Adj   [][]Arc

	index map[uint64]int
	log   zerolog.Logger
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithLogger attaches a structured logger for intake diagnostics. The
// default is a no-op logger: the library stays silent unless a caller
// opts in.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Graph) { g.log = l }
}

// New returns an empty graph ready for intake.
func New(opts ...Option) *Graph {
	g := &Graph{
		index: make(map[uint64]int),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NodeIndex returns the dense index of the node with the given external
// id, and whether it has been added.
func (g *Graph) NodeIndex(id uint64) (int, bool) {
	idx, ok := g.index[id]
	return idx, ok
}

// AddNode appends a node with coordinates given in degrees, converting to
// radians, and returns its dense index. Re-adding an id that already
// exists is a no-op that returns the existing index (OSM extracts may
// legitimately see a node referenced by more than one way).
func (g *Graph) AddNode(id uint64, latDeg, lngDeg float64) int {
	if idx, ok := g.index[id]; ok {
		return idx
	}
	idx := len(g.Nodes)
	g.Nodes = append(g.Nodes, Node{
		ID:  id,
		Lat: latDeg * math.Pi / 180,
		Lng: lngDeg * math.Pi / 180,
	})
	g.Adj = append(g.Adj, nil)
	g.index[id] = idx
	return idx
}

// AddNodeRadians is AddNode for callers that already have radian
// coordinates, such as the graph reducer (C2) copying nodes from one
// graph into another without a degrees round-trip.
func (g *Graph) AddNodeRadians(id uint64, latRad, lngRad float64) int {
	if idx, ok := g.index[id]; ok {
		return idx
	}
	idx := len(g.Nodes)
	g.Nodes = append(g.Nodes, Node{ID: id, Lat: latRad, Lng: lngRad})
	g.Adj = append(g.Adj, nil)
	g.index[id] = idx
	return idx
}

// AddEdge adds an undirected edge between the nodes with the given
// external ids, deriving its cost from their coordinates and the given
// nominal speed in km/h. Both ids must already have been added via
// AddNode; otherwise the edge is silently dropped (logged at Warn) since
// OSM extracts commonly reference nodes outside their bounding box.
// Duplicate edges are permitted. AddEdge reports whether the edge was
// added.
func (g *Graph) AddEdge(uID, vID uint64, speedKmh int) bool {
	ui, uok := g.index[uID]
	vi, vok := g.index[vID]
	if !uok || !vok {
		g.log.Warn().
			Uint64("u", uID).Uint64("v", vID).
			Bool("u_known", uok).Bool("v_known", vok).
			Msg("graph: dropping edge referencing unknown node")
		return false
	}
	cost := CostSeconds(g.Nodes[ui], g.Nodes[vi], speedKmh)
	g.Adj[ui] = append(g.Adj[ui], Arc{Head: vi, Cost: cost, Speed: speedKmh})
	g.Adj[vi] = append(g.Adj[vi], Arc{Head: ui, Cost: cost, Speed: speedKmh})
	return true
}

// AddOneWay adds a single directed arc with an explicit, already-computed
// cost. It exists for the graph reducer (C2), which copies arcs between
// components without recomputing their cost, and for callers that already
// know an arc's cost. Both ids must already have been added; otherwise
// the arc is silently dropped (logged at Warn). AddOneWay reports whether
// the arc was added.
func (g *Graph) AddOneWay(tailID, headID uint64, cost, speedKmh int) bool {
	ti, tok := g.index[tailID]
	hi, hok := g.index[headID]
	if !tok || !hok {
		g.log.Warn().
			Uint64("tail", tailID).Uint64("head", headID).
			Bool("tail_known", tok).Bool("head_known", hok).
			Msg("graph: dropping one-way arc referencing unknown node")
		return false
	}
	g.Adj[ti] = append(g.Adj[ti], Arc{Head: hi, Cost: cost, Speed: speedKmh})
	return true
}

// NodeAt returns the dense index of the node whose coordinates (given in
// degrees) exactly match lat/lng, after the same degree-to-radian
// conversion used at intake. It is an exact-match lookup, intended for
// small demo surfaces rather than hot-path use.
func (g *Graph) NodeAt(latDeg, lngDeg float64) (int, bool) {
	lat := latDeg * math.Pi / 180
	lng := lngDeg * math.Pi / 180
	for i, n := range g.Nodes {
		if n.Lat == lat && n.Lng == lng {
			return i, true
		}
	}
	return 0, false
}
