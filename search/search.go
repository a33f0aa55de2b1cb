// Package search implements the single generalized Dijkstra/A* routine
// that the Dijkstra, ALT and Arc-Flags algorithms all drive through a
// pluggable heuristic and an arc-visibility predicate, instead of each
// algorithm carrying its own copy of the relaxation loop.
package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/vinhant/Efficient-Route-Planning/graph"
)

// Unreached is the sentinel value left in a Result's G slice for node
// indices the search never relaxed.
const Unreached = math.MaxInt

// Heuristic estimates the remaining cost from u to t. It must be
// admissible (never overestimate) and, for the early-exit on popping the
// target to be correct, consistent: h(u,t) <= c(u,v) + h(v,t) for every
// arc u->v. The zero heuristic (plain Dijkstra) and the ALT heuristic
// both satisfy this.
type Heuristic func(u, t int) int

// ZeroHeuristic is the admissible, consistent heuristic used by plain
// Dijkstra: it never gives A* anything to prune on.
func ZeroHeuristic(int, int) int { return 0 }

// ArcVisible reports whether the arc a, outgoing from node u, may be
// relaxed. The default (a nil ArcVisible passed to Search) makes every
// arc visible. Arc-Flags supplies FlagVisible to mask out arcs whose flag
// is false.
type ArcVisible func(u int, a graph.Arc) bool

// FlagVisible is the ArcVisible predicate used by Arc-Flags queries: an
// arc is visible only if its flag has been set true by arcflags.Precompute.
func FlagVisible(_ int, a graph.Arc) bool { return a.Flag }

// Result is the outcome of a single Search call.
type Result struct {
	// Cost is the settled distance to the target, or nil if the target
	// was not supplied or was unreachable.
	Cost *int

	// Settled holds the node indices removed from the frontier, in the
	// order they were settled.
	Settled []int

	// Predecessor maps a relaxed node to the node it was relaxed from.
	// The source has no entry.
	Predecessor map[int]int

	// G holds the tentative cost to each node, indexed by node; entries
	// for nodes never relaxed are left at Unreached.
	G []int

	// FilteredArcs counts arcs skipped because ArcVisible returned false.
	FilteredArcs int
}

type heapEntry struct {
	node int
	g    int
	f    int
}

type frontier []heapEntry

func (q frontier) Len() int { return len(q) }
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].node < q[j].node
}
func (q frontier) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *frontier) Push(x any)        { *q = append(*q, x.(heapEntry)) }
func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// Search runs the generalized Dijkstra/A* routine from source. If target
// is non-nil, the search terminates as soon as *target is popped (settled)
// and Result.Cost holds its distance; otherwise the search settles every
// node reachable from source and Result.Cost is nil. If heuristic is nil,
// the zero heuristic is used. If visible is nil, every arc is visible.
//
// Search panics if source or *target is not a valid dense node index —
// that is a contract violation, not a recoverable condition.
func Search(g *graph.Graph, source int, target *int, heuristic Heuristic, visible ArcVisible) Result {
	n := len(g.Nodes)
	if source < 0 || source >= n {
		panic(fmt.Sprintf("search: node index %d out of range [0,%d)", source, n))
	}
	if target != nil && (*target < 0 || *target >= n) {
		panic(fmt.Sprintf("search: node index %d out of range [0,%d)", *target, n))
	}
	if heuristic == nil {
		heuristic = ZeroHeuristic
	}
	h := func(u int) int {
		if target == nil {
			return 0
		}
		return heuristic(u, *target)
	}

	gScore := make([]int, n)
	for i := range gScore {
		gScore[i] = Unreached
	}
	gScore[source] = 0

	predecessor := make(map[int]int)
	settledSet := make(map[int]struct{})
	var settled []int

	q := &frontier{{node: source, g: 0, f: h(source)}}
	heap.Init(q)

	result := Result{Predecessor: predecessor, G: gScore}

	for q.Len() != 0 {
		cur := heap.Pop(q).(heapEntry)
		if cur.g > gScore[cur.node] {
			// Stale heap entry: a cheaper path to this node was found
			// and pushed after this entry. Lazy deletion.
			continue
		}

		settledSet[cur.node] = struct{}{}
		settled = append(settled, cur.node)

		if target != nil && cur.node == *target {
			cost := gScore[cur.node]
			result.Cost = &cost
			break
		}

		for _, a := range g.Adj[cur.node] {
			if _, done := settledSet[a.Head]; done {
				continue
			}
			if visible != nil && !visible(cur.node, a) {
				result.FilteredArcs++
				continue
			}
			joint := cur.g + a.Cost
			if joint < gScore[a.Head] {
				gScore[a.Head] = joint
				predecessor[a.Head] = cur.node
				heap.Push(q, heapEntry{node: a.Head, g: joint, f: joint + h(a.Head)})
			}
		}
	}

	result.Settled = settled
	return result
}
