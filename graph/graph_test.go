package graph_test

import (
	"math"
	"testing"

	"github.com/vinhant/Efficient-Route-Planning/graph"
)

func TestAddNodeIsIdempotentByID(t *testing.T) {
	g := graph.New()
	i1 := g.AddNode(1, 10, 20)
	i2 := g.AddNode(1, 99, 99) // re-adding the same id is a no-op
	if i1 != i2 {
		t.Fatalf("re-adding id 1 got a different index: %d vs %d", i1, i2)
	}
	if len(g.Nodes) != 1 {
		t.Fatalf("want 1 node, got %d", len(g.Nodes))
	}
}

func TestAddEdgeUnknownNodeDropped(t *testing.T) {
	g := graph.New()
	g.AddNode(1, 0, 0)
	ok := g.AddEdge(1, 2, 50) // node 2 was never added
	if ok {
		t.Fatal("expected edge referencing unknown node to be dropped")
	}
	if len(g.Adj[0]) != 0 {
		t.Fatalf("expected no arcs added, got %d", len(g.Adj[0]))
	}
}

func TestAddEdgeIsUndirected(t *testing.T) {
	g := graph.New()
	g.AddNode(1, 40.0, -73.0)
	g.AddNode(2, 40.01, -73.0)
	if ok := g.AddEdge(1, 2, 50); !ok {
		t.Fatal("expected edge to be added")
	}
	if len(g.Adj[0]) != 1 || len(g.Adj[1]) != 1 {
		t.Fatalf("expected one arc per endpoint, got %d and %d", len(g.Adj[0]), len(g.Adj[1]))
	}
	if g.Adj[0][0].Cost != g.Adj[1][0].Cost {
		t.Fatalf("expected symmetric cost, got %d vs %d", g.Adj[0][0].Cost, g.Adj[1][0].Cost)
	}
}

func TestNodeAt(t *testing.T) {
	g := graph.New()
	g.AddNode(1, 40.748, -73.985)
	idx, ok := g.NodeAt(40.748, -73.985)
	if !ok || idx != 0 {
		t.Fatalf("expected exact coordinate match at index 0, got idx=%d ok=%v", idx, ok)
	}
	if _, ok := g.NodeAt(1, 1); ok {
		t.Fatal("expected no match for unrelated coordinates")
	}
}

// TestEquirectangularMetersKnownCityDistance cross-checks the
// equirectangular distance formula against a known Manhattan distance:
// two close coordinates roughly 673 m apart.
func TestEquirectangularMetersKnownCityDistance(t *testing.T) {
	a := graph.Node{Lat: 40.74853 * math.Pi / 180, Lng: -73.98566 * math.Pi / 180}
	b := graph.Node{Lat: 40.75454 * math.Pi / 180, Lng: -73.98667 * math.Pi / 180}
	got := graph.EquirectangularMeters(a, b)
	want := 673.0
	if diff := got - want; diff < -20 || diff > 20 {
		t.Fatalf("distance = %f, want within +/-20m of %f", got, want)
	}
}

// TestCostSecondsScalesWithSpeed checks that CostSeconds is the distance
// divided by speed: doubling the speed halves the cost.
func TestCostSecondsScalesWithSpeed(t *testing.T) {
	a := graph.Node{Lat: 40.74853 * math.Pi / 180, Lng: -73.98566 * math.Pi / 180}
	b := graph.Node{Lat: 40.75454 * math.Pi / 180, Lng: -73.98667 * math.Pi / 180}
	at30 := graph.CostSeconds(a, b, 30)
	at60 := graph.CostSeconds(a, b, 60)
	if diff := at30 - 2*at60; diff < -1 || diff > 1 {
		t.Fatalf("cost at 30km/h = %d, cost at 60km/h = %d, want roughly 2x", at30, at60)
	}
}

func TestHighwaySpeedTable(t *testing.T) {
	tests := []struct {
		class string
		kmh   int
		ok    bool
	}{
		{"motorway", 110, true},
		{"trunk", 110, true},
		{"primary", 70, true},
		{"secondary", 60, true},
		{"tertiary", 50, true},
		{"motorway_link", 50, true},
		{"road", 40, true},
		{"unclassified", 40, true},
		{"residential", 30, true},
		{"unsurfaced", 30, true},
		{"living_street", 10, true},
		{"service", 5, true},
		{"footway", 0, false},
		{"cycleway", 0, false},
	}
	for _, tt := range tests {
		kmh, ok := graph.HighwaySpeed(tt.class)
		if ok != tt.ok || (ok && kmh != tt.kmh) {
			t.Errorf("HighwaySpeed(%q) = %d,%v; want %d,%v", tt.class, kmh, ok, tt.kmh, tt.ok)
		}
	}
}
