// Package osmintake is the thin seam between an external OSM node/way
// parser and the graph model: it consumes a stream of Node and Way
// events and builds a graph.Graph from them.
package osmintake

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/vinhant/Efficient-Route-Planning/graph"
)

// Event is implemented by NodeEvent and WayEvent, the two record kinds an
// external parser emits.
type Event interface {
	isEvent()
}

// NodeEvent appends a node to the graph in the order it is received.
type NodeEvent struct {
	ID              uint64
	LatDeg, LngDeg  float64
}

func (NodeEvent) isEvent() {}

// WayEvent turns each consecutive pair of node ids into one undirected
// edge, provided HighwayClass is in the speed table; otherwise the whole
// way is dropped.
type WayEvent struct {
	NodeIDs      []uint64
	HighwayClass string
}

func (WayEvent) isEvent() {}

// Source is a pulled event stream: Next returns the next event and
// whether one was available. This lets a streaming XML parser (the
// external collaborator) feed the builder without buffering its entire
// output.
type Source interface {
	Next() (Event, bool)
}

// SliceSource adapts a pre-built slice of events to the Source interface,
// for tests and small fixtures.
type SliceSource struct {
	events []Event
	pos    int
}

// NewSliceSource returns a Source that yields events in order.
func NewSliceSource(events []Event) *SliceSource {
	return &SliceSource{events: events}
}

// Next implements Source.
func (s *SliceSource) Next() (Event, bool) {
	if s.pos >= len(s.events) {
		return nil, false
	}
	e := s.events[s.pos]
	s.pos++
	return e, true
}

// Option configures BuildFromStream.
type Option func(*config)

type config struct {
	log zerolog.Logger
}

// WithLogger attaches a structured logger for intake diagnostics
// (malformed records, ways dropped for an unroutable highway class,
// edges dropped for referencing unknown nodes).
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// BuildFromStream drains src and builds a graph.Graph from its events.
// A NodeEvent with a non-numeric (NaN) coordinate is dropped and logged
// (IntakeMalformed); a WayEvent whose HighwayClass is not in the speed
// table is dropped whole; an edge referencing a node id not yet seen is
// dropped by the underlying graph.AddEdge call (UnknownNodeInWay).
// Ingestion always continues after a drop — this is a one-shot,
// non-fatal pass.
func BuildFromStream(src Source, opts ...Option) *graph.Graph {
	cfg := config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := graph.New(graph.WithLogger(cfg.log))

	for {
		ev, ok := src.Next()
		if !ok {
			break
		}
		switch e := ev.(type) {
		case NodeEvent:
			if math.IsNaN(e.LatDeg) || math.IsNaN(e.LngDeg) {
				cfg.log.Warn().
					Uint64("id", e.ID).
					Msg("osmintake: dropping node with non-numeric coordinate")
				continue
			}
			g.AddNode(e.ID, e.LatDeg, e.LngDeg)
		case WayEvent:
			speed, ok := graph.HighwaySpeed(e.HighwayClass)
			if !ok {
				cfg.log.Warn().
					Str("highway_class", e.HighwayClass).
					Msg("osmintake: dropping way with unroutable highway class")
				continue
			}
			for i := 0; i+1 < len(e.NodeIDs); i++ {
				g.AddEdge(e.NodeIDs[i], e.NodeIDs[i+1], speed)
			}
		}
	}

	return g
}
