// Package pcstable: stable skeleton discovery.
//
// The "stable" property: every round ℓ reads a snapshot of the adjacency
// taken before any removal of that round, so candidate conditioning sets —
// and therefore the surviving edges — are a pure function of the snapshot,
// not of edge-processing order. Separating-set search enumerates candidate
// sets in a canonical order (ascending subset positions over the ascending
// snapshot adjacency, x-side before y-side), shared by the sequential and
// parallel variants.
package pcstable

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/causal/cit"
	"github.com/katalvlaran/causal/graph"
)

// Skeleton prunes the initial undirected graph with the stable PC search.
// pk may be nil (unconstrained). Returns the pruned graph and the
// separating sets; a failing test aborts the run with ErrTestFailed.
//
// Edges forbidden by pk in both directions (and not required) are removed
// before round 0 without recording a separating set; required edges are
// never tested for removal.
//
// Complexity: worst case O(n² · C(n, ℓmax) ) independence tests.
func Skeleton(test cit.Test, pk PriorKnowledge, initial *graph.Graph, opts ...Option) (*graph.Graph, SepSets, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, nil, err
	}

	return skeletonRun(test, pk, initial, o, false)
}

// skeletonRun drives both the sequential and the parallel variant; the two
// differ only in how a round's edge decisions are computed, never in what
// they observe or in the order removals are applied.
func skeletonRun(test cit.Test, pk PriorKnowledge, initial *graph.Graph, o options, parallel bool) (*graph.Graph, SepSets, error) {
	if test == nil {
		return nil, nil, ErrNilTest
	}
	if initial == nil {
		return nil, nil, ErrNilGraph
	}
	if pk == nil {
		pk = noKnowledge{}
	}
	if len(initial.DirectedEdges()) > 0 {
		return nil, nil, ErrDirectedInput
	}
	if err := labelsMatch(test.Labels(), initial.Labels()); err != nil {
		return nil, nil, err
	}

	g := initial.Clone()
	sep := make(SepSets)
	pruneForbidden(g, pk)

	for level := 0; ; level++ {
		select {
		case <-o.ctx.Done():
			return nil, nil, o.ctx.Err()
		default:
		}

		snap := snapshotAdjacency(g)
		edges := testableEdges(g, snap, level)
		if len(edges) == 0 {
			break
		}
		o.onRound(level)

		var (
			decisions []decision
			err       error
		)
		if parallel {
			decisions, err = parRoundDecisions(test, pk, snap, edges, level, o)
		} else {
			decisions, err = roundDecisions(test, pk, snap, edges, level)
		}
		if err != nil {
			return nil, nil, err
		}

		applyDecisions(g, sep, edges, decisions, o)
	}

	return g, sep, nil
}

// decision is one edge's outcome for the current round.
type decision struct {
	remove bool
	sep    []int
}

// roundDecisions evaluates a round's edges sequentially against the shared
// snapshot.
func roundDecisions(test cit.Test, pk PriorKnowledge, snap [][]int, edges []graph.Edge, level int) ([]decision, error) {
	decisions := make([]decision, len(edges))
	for i, e := range edges {
		if pk.IsRequired(e.X, e.Y) || pk.IsRequired(e.Y, e.X) {
			continue
		}
		z, removed, err := findSepSet(test, snap, e.X, e.Y, level)
		if err != nil {
			return nil, err
		}
		decisions[i] = decision{remove: removed, sep: z}
	}

	return decisions, nil
}

// applyDecisions removes the round's separated edges in canonical edge
// order, records their separating sets, and fires the removal hook.
// Single-threaded by contract: in the parallel variant it runs only after
// the join barrier.
func applyDecisions(g *graph.Graph, sep SepSets, edges []graph.Edge, decisions []decision, o options) {
	for i, e := range edges {
		if !decisions[i].remove {
			continue
		}
		g.DelEdge(e.X, e.Y)
		sep.Put(e.X, e.Y, decisions[i].sep)
		o.onEdgeRemoved(e.X, e.Y, decisions[i].sep)
	}
}

// findSepSet searches the canonical enumeration of size-level conditioning
// sets for one under which x ⟂ y. Candidates come from the snapshot
// adjacency of x (minus y), then of y (minus x). The first satisfying set
// wins.
func findSepSet(test cit.Test, snap [][]int, x, y, level int) ([]int, bool, error) {
	if level == 0 {
		indep, err := test.Call(x, y, nil)
		if err != nil {
			return nil, false, fmt.Errorf("%w: (%d,%d|∅): %v", ErrTestFailed, x, y, err)
		}

		return []int{}, indep, nil
	}

	for _, side := range [2][2]int{{x, y}, {y, x}} {
		cand := exclude(snap[side[0]], side[1])
		if len(cand) < level {
			continue
		}
		gen := combin.NewCombinationGenerator(len(cand), level)
		comb := make([]int, level)
		for gen.Next() {
			gen.Combination(comb)
			z := make([]int, level)
			for i, c := range comb {
				z[i] = cand[c]
			}
			indep, err := test.Call(x, y, z)
			if err != nil {
				return nil, false, fmt.Errorf("%w: (%d,%d|%v): %v", ErrTestFailed, x, y, z, err)
			}
			if indep {
				return z, true, nil
			}
		}
	}

	return nil, false, nil
}

// snapshotAdjacency captures every vertex's undirected adjacency before a
// round mutates the graph.
func snapshotAdjacency(g *graph.Graph) [][]int {
	snap := make([][]int, g.Order())
	for v := range snap {
		snap[v] = g.Neighbors(v)
	}

	return snap
}

// testableEdges lists the edges still worth testing at this level: at
// least one endpoint must offer level candidates besides the partner.
// Adjacency only shrinks between rounds, so an empty list terminates the
// search.
func testableEdges(g *graph.Graph, snap [][]int, level int) []graph.Edge {
	var out []graph.Edge
	for _, e := range g.UndirectedEdges() {
		if len(snap[e.X])-1 >= level || len(snap[e.Y])-1 >= level {
			out = append(out, e)
		}
	}

	return out
}

// pruneForbidden removes edges forbidden in both directions (and not
// required) before the search starts. No separating set is recorded;
// collider detection only consults pairs that were statistically separated.
func pruneForbidden(g *graph.Graph, pk PriorKnowledge) {
	for _, e := range g.UndirectedEdges() {
		if pk.IsRequired(e.X, e.Y) || pk.IsRequired(e.Y, e.X) {
			continue
		}
		if pk.IsForbidden(e.X, e.Y) && pk.IsForbidden(e.Y, e.X) {
			g.DelEdge(e.X, e.Y)
		}
	}
}

// exclude returns vs without the single value x, preserving order.
func exclude(vs []int, x int) []int {
	out := make([]int, 0, len(vs))
	for _, v := range vs {
		if v != x {
			out = append(out, v)
		}
	}

	return out
}

// labelsMatch verifies index-by-index label agreement between test and graph.
func labelsMatch(testLabels, graphLabels []string) error {
	if len(testLabels) != len(graphLabels) {
		return fmt.Errorf("%w: %d vs %d variables", ErrLabelMismatch, len(testLabels), len(graphLabels))
	}
	for i, l := range testLabels {
		if graphLabels[i] != l {
			return fmt.Errorf("%w: index %d: %q vs %q", ErrLabelMismatch, i, l, graphLabels[i])
		}
	}

	return nil
}
