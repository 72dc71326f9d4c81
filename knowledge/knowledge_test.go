package knowledge_test

import (
	"testing"

	"github.com/katalvlaran/causal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers the construction-time error taxonomy.
func TestNew_Validation(t *testing.T) {
	_, err := knowledge.New(nil)
	assert.ErrorIs(t, err, knowledge.ErrNoLabels)

	_, err = knowledge.New([]string{"a", "b", "a"})
	assert.ErrorIs(t, err, knowledge.ErrDuplicateLabel)

	_, err = knowledge.New([]string{"a", "b"}, knowledge.WithForbidden("a", "z"))
	assert.ErrorIs(t, err, knowledge.ErrUnknownLabel)

	_, err = knowledge.New([]string{"a", "b"}, knowledge.WithRequired("a", "a"))
	assert.ErrorIs(t, err, knowledge.ErrSelfConstraint)

	_, err = knowledge.New([]string{"a", "b"},
		knowledge.WithForbidden("a", "b"),
		knowledge.WithRequired("a", "b"))
	assert.ErrorIs(t, err, knowledge.ErrOverlap)

	_, err = knowledge.New([]string{"a", "b", "c"},
		knowledge.WithTemporalOrder([]string{"a"}, []string{"a", "b"}))
	assert.ErrorIs(t, err, knowledge.ErrTierOverlap)
}

// TestQueries verifies the ordered-pair semantics of both oracles.
func TestQueries(t *testing.T) {
	k, err := knowledge.New([]string{"a", "b", "c"},
		knowledge.WithForbidden("b", "a"),
		knowledge.WithRequired("a", "c"))
	require.NoError(t, err)

	assert.True(t, k.IsForbidden(1, 0))
	assert.False(t, k.IsForbidden(0, 1), "forbidden is direction-specific")
	assert.True(t, k.IsRequired(0, 2))
	assert.False(t, k.IsRequired(2, 0))

	assert.Equal(t, [][2]int{{1, 0}}, k.ForbiddenEdges())
	assert.Equal(t, [][2]int{{0, 2}}, k.RequiredEdges())
	assert.Equal(t, []string{"a", "b", "c"}, k.Labels())
}

// TestTemporalOrder materializes later→earlier pairs as forbidden.
func TestTemporalOrder(t *testing.T) {
	k, err := knowledge.New([]string{"a", "b", "c", "d"},
		knowledge.WithTemporalOrder([]string{"a"}, []string{"b", "c"}, []string{"d"}))
	require.NoError(t, err)

	// every edge pointing backwards in time is forbidden
	assert.True(t, k.IsForbidden(1, 0), "b→a crosses into an earlier tier")
	assert.True(t, k.IsForbidden(3, 0), "d→a crosses two tiers back")
	assert.True(t, k.IsForbidden(3, 2), "d→c crosses one tier back")
	assert.False(t, k.IsForbidden(0, 3), "forward in time is allowed")
	assert.False(t, k.IsForbidden(1, 2), "within a tier is unconstrained")

	assert.Equal(t, [][]int{{0}, {1, 2}, {3}}, k.Tiers())
}

// TestTemporalRequiredClash: a required edge against time fails construction.
func TestTemporalRequiredClash(t *testing.T) {
	_, err := knowledge.New([]string{"a", "b"},
		knowledge.WithRequired("b", "a"),
		knowledge.WithTemporalOrder([]string{"a"}, []string{"b"}))
	assert.ErrorIs(t, err, knowledge.ErrOverlap)
}

// TestEmpty builds an unconstrained oracle.
func TestEmpty(t *testing.T) {
	k, err := knowledge.Empty([]string{"x", "y"})
	require.NoError(t, err)
	assert.False(t, k.IsForbidden(0, 1))
	assert.False(t, k.IsRequired(0, 1))
	assert.Empty(t, k.ForbiddenEdges())
	assert.Empty(t, k.Tiers())
}
