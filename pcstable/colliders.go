// Package pcstable: collider (v-structure) detection.
package pcstable

import "github.com/katalvlaran/causal/graph"

// OrientColliders turns the pruned skeleton into a partially oriented
// graph: required directed edges are applied first, then every unshielded
// triple x — z — y whose separating set excludes z is oriented x→z←y.
//
// Triples are scanned in canonical order (z ascending, then the pair
// ascending). The first successful orientation of an edge wins; a later
// triple that needs the opposite direction records a Conflict instead of
// reversing it. Orientations blocked by prior knowledge or by the
// acyclicity guard are likewise recorded, never silently dropped.
//
// g is mutated in place; pk may be nil.
func OrientColliders(g *graph.Graph, sep SepSets, pk PriorKnowledge) ([]Conflict, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if pk == nil {
		pk = noKnowledge{}
	}

	conflicts := orientRequired(g, pk)

	n := g.Order()
	for z := 0; z < n; z++ {
		adj := g.Adjacents(z)
		for i := 0; i < len(adj); i++ {
			for j := i + 1; j < len(adj); j++ {
				x, y := adj[i], adj[j]
				if g.IsAdjacent(x, y) {
					continue // shielded
				}
				zset, ok := sep.Get(x, y)
				if !ok || containsVertex(zset, z) {
					continue // z separated the pair, or the pair was pruned a priori
				}
				conflicts = tryOrient(g, pk, x, z, conflicts)
				conflicts = tryOrient(g, pk, y, z, conflicts)
			}
		}
	}

	return conflicts, nil
}

// orientRequired applies prior-knowledge required directions to surviving
// undirected edges, in the oracle's sorted order. A required edge that is
// already directed the other way, or whose direction would close a cycle,
// becomes a Conflict.
func orientRequired(g *graph.Graph, pk PriorKnowledge) []Conflict {
	var conflicts []Conflict
	for _, p := range pk.RequiredEdges() {
		a, b := p[0], p[1]
		switch {
		case g.IsDirected(a, b):
			// already satisfied
		case g.IsDirected(b, a):
			conflicts = append(conflicts, Conflict{From: a, To: b, Reason: "required direction contradicts existing orientation"})
		case !g.IsUndirected(a, b):
			conflicts = append(conflicts, Conflict{From: a, To: b, Reason: "required edge absent from skeleton"})
		case g.WouldCycle(a, b):
			conflicts = append(conflicts, Conflict{From: a, To: b, Reason: "required direction would close a directed cycle"})
		default:
			_ = g.Orient(a, b) // preconditions verified above
		}
	}

	return conflicts
}

// tryOrient attempts the orientation a→b under the shared safety checks,
// appending a Conflict when the orientation cannot be applied.
// An edge already directed a→b is a no-op, not a conflict.
func tryOrient(g *graph.Graph, pk PriorKnowledge, a, b int, conflicts []Conflict) []Conflict {
	switch {
	case g.IsDirected(a, b):
		return conflicts
	case g.IsDirected(b, a):
		return append(conflicts, Conflict{From: a, To: b, Reason: "edge already oriented the other way by an earlier triple"})
	case !g.IsUndirected(a, b):
		return append(conflicts, Conflict{From: a, To: b, Reason: "edge no longer present"})
	case pk.IsRequired(b, a):
		return append(conflicts, Conflict{From: a, To: b, Reason: "opposite direction required by prior knowledge"})
	case pk.IsForbidden(a, b):
		return append(conflicts, Conflict{From: a, To: b, Reason: "direction forbidden by prior knowledge"})
	case g.WouldCycle(a, b):
		return append(conflicts, Conflict{From: a, To: b, Reason: "orientation would close a directed cycle"})
	default:
		_ = g.Orient(a, b) // preconditions verified above

		return conflicts
	}
}

// containsVertex reports membership of v in vs.
func containsVertex(vs []int, v int) bool {
	for _, w := range vs {
		if w == v {
			return true
		}
	}

	return false
}
