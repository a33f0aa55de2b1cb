package osmintake_test

import (
	"math"
	"testing"

	"github.com/vinhant/Efficient-Route-Planning/osmintake"
)

func TestBuildFromStreamBuildsNodesAndEdges(t *testing.T) {
	events := []osmintake.Event{
		osmintake.NodeEvent{ID: 1, LatDeg: 40.0, LngDeg: -73.0},
		osmintake.NodeEvent{ID: 2, LatDeg: 40.01, LngDeg: -73.0},
		osmintake.WayEvent{NodeIDs: []uint64{1, 2}, HighwayClass: "residential"},
	}
	g := osmintake.BuildFromStream(osmintake.NewSliceSource(events))

	if len(g.Nodes) != 2 {
		t.Fatalf("len(Nodes) = %d, want 2", len(g.Nodes))
	}
	idx1, ok := g.NodeIndex(1)
	if !ok {
		t.Fatal("expected node 1 to be present")
	}
	if len(g.Adj[idx1]) != 1 {
		t.Fatalf("len(Adj[1]) = %d, want 1", len(g.Adj[idx1]))
	}
}

func TestBuildFromStreamDropsWayWithUnroutableHighwayClass(t *testing.T) {
	events := []osmintake.Event{
		osmintake.NodeEvent{ID: 1, LatDeg: 40.0, LngDeg: -73.0},
		osmintake.NodeEvent{ID: 2, LatDeg: 40.01, LngDeg: -73.0},
		osmintake.WayEvent{NodeIDs: []uint64{1, 2}, HighwayClass: "footway"},
	}
	g := osmintake.BuildFromStream(osmintake.NewSliceSource(events))

	idx1, _ := g.NodeIndex(1)
	if len(g.Adj[idx1]) != 0 {
		t.Fatalf("expected no arcs for a footway-only way, got %d", len(g.Adj[idx1]))
	}
}

func TestBuildFromStreamDropsNodeWithNonNumericCoordinate(t *testing.T) {
	events := []osmintake.Event{
		osmintake.NodeEvent{ID: 1, LatDeg: math.NaN(), LngDeg: -73.0},
		osmintake.NodeEvent{ID: 2, LatDeg: 40.01, LngDeg: -73.0},
	}
	g := osmintake.BuildFromStream(osmintake.NewSliceSource(events))

	if len(g.Nodes) != 1 {
		t.Fatalf("len(Nodes) = %d, want 1 (node with NaN coordinate dropped)", len(g.Nodes))
	}
	if _, ok := g.NodeIndex(1); ok {
		t.Fatal("expected node 1 (NaN coordinate) to be absent")
	}
}

func TestBuildFromStreamWayReferencingUnknownNodeIsDropped(t *testing.T) {
	events := []osmintake.Event{
		osmintake.NodeEvent{ID: 1, LatDeg: 40.0, LngDeg: -73.0},
		osmintake.WayEvent{NodeIDs: []uint64{1, 999}, HighwayClass: "residential"},
	}
	g := osmintake.BuildFromStream(osmintake.NewSliceSource(events))

	idx1, _ := g.NodeIndex(1)
	if len(g.Adj[idx1]) != 0 {
		t.Fatalf("expected the edge referencing unknown node 999 to be dropped, got %d arcs", len(g.Adj[idx1]))
	}
}

func TestBuildFromStreamMultiNodeWayAddsConsecutivePairs(t *testing.T) {
	events := []osmintake.Event{
		osmintake.NodeEvent{ID: 1, LatDeg: 40.0, LngDeg: -73.0},
		osmintake.NodeEvent{ID: 2, LatDeg: 40.01, LngDeg: -73.0},
		osmintake.NodeEvent{ID: 3, LatDeg: 40.02, LngDeg: -73.0},
		osmintake.WayEvent{NodeIDs: []uint64{1, 2, 3}, HighwayClass: "primary"},
	}
	g := osmintake.BuildFromStream(osmintake.NewSliceSource(events))

	idx1, _ := g.NodeIndex(1)
	idx2, _ := g.NodeIndex(2)
	idx3, _ := g.NodeIndex(3)
	if len(g.Adj[idx1]) != 1 {
		t.Fatalf("len(Adj[1]) = %d, want 1 (only adjacent to node 2)", len(g.Adj[idx1]))
	}
	if len(g.Adj[idx2]) != 2 {
		t.Fatalf("len(Adj[2]) = %d, want 2 (adjacent to both 1 and 3)", len(g.Adj[idx2]))
	}
	if len(g.Adj[idx3]) != 1 {
		t.Fatalf("len(Adj[3]) = %d, want 1 (only adjacent to node 2)", len(g.Adj[idx3]))
	}
}
