// Package fixtures centralizes the small graphs shared by this module's
// tests, the way gonum's graph/path/internal/testgraphs centralizes
// fixtures for gonum's own path tests.
package fixtures

import "github.com/vinhant/Efficient-Route-Planning/graph"

// SevenNode builds the 7-node fixture used throughout the test suite:
// nodes 111, 222, 333, 444, 555, 666, 777 (dense indices 0..6 in that
// insertion order) with undirected edges
// (111,222,3) (111,333,1) (222,333,1) (222,555,3) (444,555,5) (666,777,5).
// Coordinates are placeholders (costs are given directly, via AddOneWay
// both ways, rather than derived from coordinates) so every test that
// only cares about graph topology can share one builder.
func SevenNode() *graph.Graph {
	g := graph.New()
	ids := []uint64{111, 222, 333, 444, 555, 666, 777}
	for i, id := range ids {
		g.AddNode(id, float64(i), 0)
	}
	edge := func(u, v uint64, cost int) {
		g.AddOneWay(u, v, cost, 0)
		g.AddOneWay(v, u, cost, 0)
	}
	edge(111, 222, 3)
	edge(111, 333, 1)
	edge(222, 333, 1)
	edge(222, 555, 3)
	edge(444, 555, 5)
	edge(666, 777, 5)
	return g
}

// IndexOf is a small convenience for tests: it panics if id was not
// added, since every fixture test already knows its ids are present.
func IndexOf(g *graph.Graph, id uint64) int {
	idx, ok := g.NodeIndex(id)
	if !ok {
		panic("fixtures: unknown id")
	}
	return idx
}

// SevenNodeGeo is SevenNode with real (if arbitrary) lat/lng coordinates
// placing 444 and 555 together, away from every other node, so a region
// test can select {444,555} cleanly and exercise the boundary-node sweep
// from 555 (the one region node with a neighbour, 222, outside the region).
func SevenNodeGeo() *graph.Graph {
	g := graph.New()
	type pos struct {
		id       uint64
		lat, lng float64
	}
	nodes := []pos{
		{111, 0.0, 0.0},
		{222, 0.001, 0.0},
		{333, 0.0, 0.001},
		{444, 1.0, 1.0},
		{555, 1.0, 1.001},
		{666, 5.0, 5.0},
		{777, 5.0, 5.001},
	}
	for _, p := range nodes {
		g.AddNode(p.id, p.lat, p.lng)
	}
	edge := func(u, v uint64, cost int) {
		g.AddOneWay(u, v, cost, 0)
		g.AddOneWay(v, u, cost, 0)
	}
	edge(111, 222, 3)
	edge(111, 333, 1)
	edge(222, 333, 1)
	edge(222, 555, 3)
	edge(444, 555, 5)
	edge(666, 777, 5)
	return g
}
