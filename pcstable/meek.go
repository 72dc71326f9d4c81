// Package pcstable: Meek's orientation-propagation rules.
//
// The four local rules, applied to a fixpoint over the undirected edges:
//
//	R1: c→a, a—b, c and b non-adjacent            ⇒ a→b (no new collider)
//	R2: a→c→b, a—b                                ⇒ a→b (no cycle)
//	R3: a—b, a—c, a—d, c→b, d→b, c,d non-adjacent ⇒ a→b
//	R4: a—b, a—c, c→d, d→b                        ⇒ a→b (optional)
//
// Every orientation passes the shared prior-knowledge and acyclicity
// checks before it is written; a blocked rule simply does not fire.
package pcstable

import "github.com/katalvlaran/causal/graph"

// MaxRule is the highest Meek rule index.
const MaxRule = 4

// MeekProcedure propagates orientations with rules R1–R3 (plus R4 when
// WithRuleFour is supplied) until no rule fires. The directed subgraph
// stays acyclic throughout; re-running on the output changes nothing.
func MeekProcedure(g *graph.Graph, pk PriorKnowledge, opts ...Option) error {
	o, err := gatherOptions(opts)
	if err != nil {
		return err
	}
	maxRule := 3
	if o.ruleFour {
		maxRule = MaxRule
	}

	return meekFixpoint(maxRule, g, pk, o)
}

// MeekProcedureUntil propagates with rules R1..k only (k ∈ [1, 4]).
// Stopping early still returns a consistent graph: the loop always runs to
// its fixpoint under the enabled rules, never mid-pass.
func MeekProcedureUntil(k int, g *graph.Graph, pk PriorKnowledge, opts ...Option) error {
	o, err := gatherOptions(opts)
	if err != nil {
		return err
	}
	if k < 1 || k > MaxRule {
		return ErrBadRule
	}

	return meekFixpoint(k, g, pk, o)
}

// meekFixpoint scans the undirected edges in canonical order and applies
// the first matching enabled rule, repeating until a full pass is quiet.
func meekFixpoint(maxRule int, g *graph.Graph, pk PriorKnowledge, o options) error {
	if g == nil {
		return ErrNilGraph
	}
	if pk == nil {
		pk = noKnowledge{}
	}

	for changed := true; changed; {
		select {
		case <-o.ctx.Done():
			return o.ctx.Err()
		default:
		}

		changed = false
		for _, e := range g.UndirectedEdges() {
			if !g.IsUndirected(e.X, e.Y) {
				continue // oriented earlier in this pass
			}
			if applyFirstRule(g, pk, maxRule, e.X, e.Y) || applyFirstRule(g, pk, maxRule, e.Y, e.X) {
				changed = true
			}
		}
	}

	return nil
}

// applyFirstRule tries to orient a→b with the first enabled rule whose
// pattern matches, then vets the orientation. Returns whether the edge was
// oriented.
func applyFirstRule(g *graph.Graph, pk PriorKnowledge, maxRule, a, b int) bool {
	matched := ruleOne(g, a, b) ||
		(maxRule >= 2 && ruleTwo(g, a, b)) ||
		(maxRule >= 3 && ruleThree(g, a, b)) ||
		(maxRule >= 4 && ruleFour(g, a, b))
	if !matched {
		return false
	}

	return orientChecked(g, pk, a, b)
}

// orientChecked writes a→b unless prior knowledge or acyclicity blocks it.
// A required a→b short-circuits the forbidden check in its favor.
func orientChecked(g *graph.Graph, pk PriorKnowledge, a, b int) bool {
	if !pk.IsRequired(a, b) {
		if pk.IsForbidden(a, b) || pk.IsRequired(b, a) {
			return false
		}
	}
	if g.WouldCycle(a, b) {
		return false
	}
	_ = g.Orient(a, b) // edge is undirected here by the caller's scan

	return true
}

// ruleOne: some parent c of a is not adjacent to b; leaving a—b undirected
// would allow the new collider c→a←b.
func ruleOne(g *graph.Graph, a, b int) bool {
	for _, c := range g.Parents(a) {
		if c != b && !g.IsAdjacent(c, b) {
			return true
		}
	}

	return false
}

// ruleTwo: a directed path a→c→b exists, so b→a would close a cycle.
func ruleTwo(g *graph.Graph, a, b int) bool {
	for _, c := range g.Children(a) {
		if g.IsDirected(c, b) {
			return true
		}
	}

	return false
}

// ruleThree: two non-adjacent undirected neighbors of a both point into b.
func ruleThree(g *graph.Graph, a, b int) bool {
	var into []int
	for _, c := range g.Neighbors(a) {
		if c != b && g.IsDirected(c, b) {
			into = append(into, c)
		}
	}
	for i := 0; i < len(into); i++ {
		for j := i + 1; j < len(into); j++ {
			if !g.IsAdjacent(into[i], into[j]) {
				return true
			}
		}
	}

	return false
}

// ruleFour: an undirected neighbor c of a starts a directed chain c→d→b.
func ruleFour(g *graph.Graph, a, b int) bool {
	for _, c := range g.Neighbors(a) {
		if c == b {
			continue
		}
		for _, d := range g.Children(c) {
			if d != a && d != b && g.IsDirected(d, b) {
				return true
			}
		}
	}

	return false
}
