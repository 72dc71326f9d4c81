package pcstable_test

import (
	"testing"

	"github.com/katalvlaran/causal/graph"
	"github.com/katalvlaran/causal/knowledge"
	"github.com/katalvlaran/causal/pcstable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMeek_RuleOne: c→a with a—b and c ∦ b orients a→b.
func TestMeek_RuleOne(t *testing.T) {
	g, err := graph.New([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.NoError(t, g.AddDirected(2, 0)) // c→a
	require.NoError(t, g.AddUndirected(0, 1))

	require.NoError(t, pcstable.MeekProcedure(g, nil))
	assert.True(t, g.IsDirected(0, 1), "R1 avoids the new collider c→a←b")
}

// TestMeek_RuleOneShielded: an adjacent c—b shields the triple; nothing fires.
func TestMeek_RuleOneShielded(t *testing.T) {
	g, err := graph.New([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.NoError(t, g.AddDirected(2, 0))
	require.NoError(t, g.AddUndirected(0, 1))
	require.NoError(t, g.AddUndirected(1, 2))

	require.NoError(t, pcstable.MeekProcedure(g, nil))
	assert.True(t, g.IsUndirected(0, 1), "shielded triple: R1 must not fire")
}

// TestMeek_RuleTwo: a→c→b with a—b orients a→b.
func TestMeek_RuleTwo(t *testing.T) {
	g, err := graph.New([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.NoError(t, g.AddDirected(0, 2)) // a→c
	require.NoError(t, g.AddDirected(2, 1)) // c→b
	require.NoError(t, g.AddUndirected(0, 1))

	require.NoError(t, pcstable.MeekProcedure(g, nil))
	assert.True(t, g.IsDirected(0, 1), "R2 avoids the cycle b→a→c→b")
}

// TestMeek_RuleThree: two non-adjacent undirected neighbors of a pointing
// into b orient a→b.
func TestMeek_RuleThree(t *testing.T) {
	g, err := graph.New([]string{"a", "b", "c", "d"})
	require.NoError(t, err)
	require.NoError(t, g.AddUndirected(0, 1)) // a—b
	require.NoError(t, g.AddUndirected(0, 2)) // a—c
	require.NoError(t, g.AddUndirected(0, 3)) // a—d
	require.NoError(t, g.AddDirected(2, 1))   // c→b
	require.NoError(t, g.AddDirected(3, 1))   // d→b

	require.NoError(t, pcstable.MeekProcedure(g, nil))
	assert.True(t, g.IsDirected(0, 1), "R3 fires for the unshielded pair c, d")
	assert.True(t, g.IsUndirected(0, 2), "R3 orients only a→b")
	assert.True(t, g.IsUndirected(0, 3))
}

// TestMeek_RuleFourOptIn: R4 fires only under WithRuleFour.
func TestMeek_RuleFourOptIn(t *testing.T) {
	build := func(t *testing.T) *graph.Graph {
		t.Helper()
		g, err := graph.New([]string{"a", "b", "c", "d"})
		require.NoError(t, err)
		require.NoError(t, g.AddUndirected(0, 1)) // a—b
		require.NoError(t, g.AddUndirected(0, 2)) // a—c
		require.NoError(t, g.AddUndirected(0, 3)) // a—d
		require.NoError(t, g.AddDirected(2, 3))   // c→d
		require.NoError(t, g.AddDirected(3, 1))   // d→b

		return g
	}

	off := build(t)
	require.NoError(t, pcstable.MeekProcedure(off, nil))
	assert.True(t, off.IsUndirected(0, 1), "R4 disabled by default")

	on := build(t)
	require.NoError(t, pcstable.MeekProcedure(on, nil, pcstable.WithRuleFour()))
	assert.True(t, on.IsDirected(0, 1), "R4 fires when enabled")
}

// TestMeek_UntilK stops the rule set early but still reaches a fixpoint.
func TestMeek_UntilK(t *testing.T) {
	build := func(t *testing.T) *graph.Graph {
		t.Helper()
		g, err := graph.New([]string{"a", "b", "c"})
		require.NoError(t, err)
		require.NoError(t, g.AddDirected(0, 2)) // a→c
		require.NoError(t, g.AddDirected(2, 1)) // c→b
		require.NoError(t, g.AddUndirected(0, 1))

		return g
	}

	r1only := build(t)
	require.NoError(t, pcstable.MeekProcedureUntil(1, r1only, nil))
	assert.True(t, r1only.IsUndirected(0, 1), "R2 pattern untouched at k=1")
	assert.True(t, r1only.IsAcyclic(), "intermediate result stays consistent")

	r2 := build(t)
	require.NoError(t, pcstable.MeekProcedureUntil(2, r2, nil))
	assert.True(t, r2.IsDirected(0, 1))

	assert.ErrorIs(t, pcstable.MeekProcedureUntil(0, build(t), nil), pcstable.ErrBadRule)
	assert.ErrorIs(t, pcstable.MeekProcedureUntil(5, build(t), nil), pcstable.ErrBadRule)
}

// TestMeek_ForbiddenBlocks: prior knowledge vetoes a rule's orientation.
func TestMeek_ForbiddenBlocks(t *testing.T) {
	labels := []string{"a", "b", "c"}
	g, err := graph.New(labels)
	require.NoError(t, err)
	require.NoError(t, g.AddDirected(2, 0))
	require.NoError(t, g.AddUndirected(0, 1))
	pk, err := knowledge.New(labels, knowledge.WithForbidden("a", "b"))
	require.NoError(t, err)

	require.NoError(t, pcstable.MeekProcedure(g, pk))
	assert.True(t, g.IsUndirected(0, 1), "forbidden direction is never written")
}

// TestMeek_Idempotent: re-running on the fixpoint changes nothing.
func TestMeek_Idempotent(t *testing.T) {
	g, err := graph.New([]string{"a", "b", "c", "d"})
	require.NoError(t, err)
	require.NoError(t, g.AddDirected(2, 0))
	require.NoError(t, g.AddUndirected(0, 1))
	require.NoError(t, g.AddUndirected(1, 3))

	require.NoError(t, pcstable.MeekProcedure(g, nil))
	snapshot := g.Clone()
	require.NoError(t, pcstable.MeekProcedure(g, nil))
	assert.True(t, g.Equal(snapshot), "fixpoint must be stable")
	assert.True(t, g.IsAcyclic())
}

// TestMeek_NilGraph rejects nil input.
func TestMeek_NilGraph(t *testing.T) {
	assert.ErrorIs(t, pcstable.MeekProcedure(nil, nil), pcstable.ErrNilGraph)
}
