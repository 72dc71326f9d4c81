package pcstable_test

import (
	"testing"

	"github.com/katalvlaran/causal/cit"
	"github.com/katalvlaran/causal/knowledge"
	"github.com/katalvlaran/causal/pcstable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asiaLabels is the 8-variable asia benchmark network, index order sorted.
var asiaLabels = []string{"asia", "bronc", "dysp", "either", "lung", "smoke", "tub", "xray"}

// asiaEdges is the ground-truth DAG of the asia network.
var asiaEdges = [][2]string{
	{"asia", "tub"},
	{"smoke", "lung"},
	{"smoke", "bronc"},
	{"tub", "either"},
	{"lung", "either"},
	{"either", "xray"},
	{"either", "dysp"},
	{"bronc", "dysp"},
}

// asiaOracle builds the exact d-separation test over the asia DAG.
func asiaOracle(t *testing.T) *cit.Oracle {
	t.Helper()

	return mustOracle(t, asiaLabels, asiaEdges)
}

// idx resolves a label against the result graph.
func idx(t *testing.T, r *pcstable.Result, label string) int {
	t.Helper()
	i, err := r.Graph.Index(label)
	require.NoError(t, err)

	return i
}

// TestPCStable_AsiaOracle recovers the exact Markov equivalence class of
// the asia network: five compelled arrows, three reversible edges.
func TestPCStable_AsiaOracle(t *testing.T) {
	pc, err := pcstable.New(asiaOracle(t))
	require.NoError(t, err)

	r, err := pc.Call()
	require.NoError(t, err)
	require.Empty(t, r.Conflicts)

	g := r.Graph
	assert.Equal(t, 8, g.EdgeCount(), "true skeleton has 8 edges")

	directed := [][2]string{
		{"tub", "either"},
		{"lung", "either"},
		{"either", "xray"},
		{"either", "dysp"},
		{"bronc", "dysp"},
	}
	for _, e := range directed {
		x, y := idx(t, r, e[0]), idx(t, r, e[1])
		assert.True(t, g.IsDirected(x, y), "%s→%s must be compelled", e[0], e[1])
	}

	undirected := [][2]string{{"asia", "tub"}, {"smoke", "lung"}, {"smoke", "bronc"}}
	for _, e := range undirected {
		x, y := idx(t, r, e[0]), idx(t, r, e[1])
		assert.True(t, g.IsUndirected(x, y), "%s—%s is reversible in the class", e[0], e[1])
	}

	assert.True(t, g.IsAcyclic(), "directed subgraph of a CPDAG is acyclic")
}

// TestPCStable_CallSkeleton exposes the pruning phase alone.
func TestPCStable_CallSkeleton(t *testing.T) {
	pc, err := pcstable.New(asiaOracle(t))
	require.NoError(t, err)

	g, sep, err := pc.CallSkeleton()
	require.NoError(t, err)

	assert.Equal(t, 8, g.EdgeCount())
	assert.Empty(t, g.DirectedEdges(), "skeleton is fully undirected")
	assert.Equal(t, 28-8, len(sep.Pairs()), "every removed pair has a separating set")
}

// TestPCStable_ParCallIdentical: parallel and sequential runs agree
// bit-for-bit at every worker count.
func TestPCStable_ParCallIdentical(t *testing.T) {
	sequential, err := pcstable.New(asiaOracle(t))
	require.NoError(t, err)
	want, err := sequential.Call()
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 3, 4, 7} {
		parallel, err := pcstable.New(asiaOracle(t), pcstable.WithWorkers(workers))
		require.NoError(t, err)
		got, err := parallel.ParCall()
		require.NoError(t, err)

		assert.True(t, want.Graph.Equal(got.Graph), "workers=%d: CPDAGs differ", workers)
		assert.Equal(t, want.SepSets, got.SepSets, "workers=%d: separating sets differ", workers)
		assert.Equal(t, want.Conflicts, got.Conflicts, "workers=%d", workers)
	}
}

// TestPCStable_CallTwiceIdentical: repeated sequential runs are stable.
func TestPCStable_CallTwiceIdentical(t *testing.T) {
	pc, err := pcstable.New(asiaOracle(t))
	require.NoError(t, err)

	first, err := pc.Call()
	require.NoError(t, err)
	second, err := pc.Call()
	require.NoError(t, err)

	assert.True(t, first.Graph.Equal(second.Graph))
	assert.Equal(t, first.SepSets, second.SepSets)
}

// TestPCStable_RequiredDirectionsOriented: required edges come out present
// and directed as required, here the reversible smoke edges of asia.
func TestPCStable_RequiredDirectionsOriented(t *testing.T) {
	pk, err := knowledge.New(asiaLabels,
		knowledge.WithRequired("smoke", "lung"),
		knowledge.WithRequired("smoke", "bronc"))
	require.NoError(t, err)

	pc, err := pcstable.New(asiaOracle(t), pcstable.WithPriorKnowledge(pk))
	require.NoError(t, err)
	r, err := pc.Call()
	require.NoError(t, err)
	require.Empty(t, r.Conflicts)

	assert.True(t, r.Graph.IsDirected(idx(t, r, "smoke"), idx(t, r, "lung")))
	assert.True(t, r.Graph.IsDirected(idx(t, r, "smoke"), idx(t, r, "bronc")))
	assert.True(t, r.Graph.IsDirected(idx(t, r, "either"), idx(t, r, "xray")))
	assert.True(t, r.Graph.IsAcyclic())
}

// TestPCStable_TemporalKnowledgeRespected: no directed edge in the output
// may point backwards in time.
func TestPCStable_TemporalKnowledgeRespected(t *testing.T) {
	pk, err := knowledge.New(asiaLabels,
		knowledge.WithTemporalOrder(
			[]string{"asia", "smoke"},
			[]string{"bronc", "lung", "tub"},
			[]string{"either"},
			[]string{"dysp", "xray"}))
	require.NoError(t, err)

	pc, err := pcstable.New(asiaOracle(t), pcstable.WithPriorKnowledge(pk))
	require.NoError(t, err)
	r, err := pc.Call()
	require.NoError(t, err)

	for _, e := range r.Graph.DirectedEdges() {
		assert.False(t, pk.IsForbidden(e.X, e.Y),
			"edge %s→%s violates the temporal order", r.Graph.Label(e.X), r.Graph.Label(e.Y))
	}
}

// TestPCStable_CallUntil: early Meek stops still return consistent graphs.
func TestPCStable_CallUntil(t *testing.T) {
	pc, err := pcstable.New(asiaOracle(t))
	require.NoError(t, err)

	partial, err := pc.CallUntil(1)
	require.NoError(t, err)
	full, err := pc.Call()
	require.NoError(t, err)

	assert.True(t, partial.Graph.IsAcyclic())
	// every arrow of the partial result survives into the full CPDAG
	for _, e := range partial.Graph.DirectedEdges() {
		assert.True(t, full.Graph.IsDirected(e.X, e.Y))
	}

	_, err = pc.CallUntil(0)
	assert.ErrorIs(t, err, pcstable.ErrBadRule)
}

// TestPCStable_NewValidation covers construction errors.
func TestPCStable_NewValidation(t *testing.T) {
	_, err := pcstable.New(nil)
	assert.ErrorIs(t, err, pcstable.ErrNilTest)

	_, err = pcstable.New(asiaOracle(t), pcstable.WithWorkers(-2))
	assert.ErrorIs(t, err, pcstable.ErrOptionViolation)
}
