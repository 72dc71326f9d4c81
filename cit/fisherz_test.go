package cit_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/causal/cit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gaussianRows samples a linear chain a → b → c plus independent noise d.
func gaussianRows(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		a := rng.NormFloat64()
		b := 0.8*a + 0.6*rng.NormFloat64()
		c := 0.8*b + 0.6*rng.NormFloat64()
		d := rng.NormFloat64()
		rows[i] = []float64{a, b, c, d}
	}

	return rows
}

// TestFisherZ_Construction covers the construction error taxonomy.
func TestFisherZ_Construction(t *testing.T) {
	_, err := cit.NewFisherZ(nil, nil)
	assert.ErrorIs(t, err, cit.ErrNoVariables)

	_, err = cit.NewFisherZ([]string{"a", "b"}, [][]float64{{1, 2}})
	assert.ErrorIs(t, err, cit.ErrInsufficientSamples)

	_, err = cit.NewFisherZ([]string{"a", "b"},
		[][]float64{{1, 2}, {1, 2}, {1, 2}, {1, 2}, {1}})
	assert.ErrorIs(t, err, cit.ErrBadShape)

	_, err = cit.NewFisherZ([]string{"a", "b"}, gaussianRows(10, 1), cit.WithPearson())
	assert.ErrorIs(t, err, cit.ErrOptionViolation)
}

// TestFisherZ_Verdicts: marginal dependence along the chain, conditional
// independence given the middle variable, plain independence for noise.
func TestFisherZ_Verdicts(t *testing.T) {
	test, err := cit.NewFisherZ([]string{"a", "b", "c", "d"}, gaussianRows(2000, 7))
	require.NoError(t, err)

	dep, err := test.Call(0, 2, nil) // a and c correlate through b
	require.NoError(t, err)
	assert.False(t, dep, "a ⟂ c must be rejected")

	indep, err := test.Call(0, 2, []int{1}) // a ⟂ c | b in a chain
	require.NoError(t, err)
	assert.True(t, indep, "a ⟂ c | b must hold")

	indep, err = test.Call(0, 3, nil) // d is detached
	require.NoError(t, err)
	assert.True(t, indep, "a ⟂ d must hold")
}

// TestFisherZ_Singular: a constant column makes the submatrix singular and
// must surface ErrSingular, never a silent verdict.
func TestFisherZ_Singular(t *testing.T) {
	rows := make([][]float64, 50)
	rng := rand.New(rand.NewSource(9))
	for i := range rows {
		v := rng.NormFloat64()
		rows[i] = []float64{v, v, rng.NormFloat64()} // a and b perfectly collinear
	}
	test, err := cit.NewFisherZ([]string{"a", "b", "c"}, rows)
	require.NoError(t, err)

	_, _, _, err = test.Eval(0, 2, []int{1})
	assert.ErrorIs(t, err, cit.ErrSingular)
	_, err = test.Call(0, 2, []int{1})
	assert.ErrorIs(t, err, cit.ErrSingular)
}

// TestFisherZ_ConditioningTooLarge: |z| bounded by the sample count.
func TestFisherZ_ConditioningTooLarge(t *testing.T) {
	test, err := cit.NewFisherZ([]string{"a", "b", "c", "d"}, gaussianRows(6, 3))
	require.NoError(t, err)

	_, _, _, err = test.Eval(0, 1, []int{2, 3})
	assert.ErrorIs(t, err, cit.ErrInsufficientSamples)
}
