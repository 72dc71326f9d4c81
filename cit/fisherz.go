// Package cit: Fisher-z conditional-independence test for Gaussian data.
package cit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// FisherZ tests conditional independence of jointly Gaussian variables via
// the partial correlation of (x, y) given z, read off the inverse of the
// conditioned covariance submatrix, then Fisher z-transformed.
//
// The covariance matrix is computed once at construction and never
// mutated, so the test is safe for concurrent use.
type FisherZ struct {
	labels []string
	cov    *mat.SymDense
	rows   int
	alpha  float64
}

// NewFisherZ builds the test from variable labels and row-major samples
// (samples[r][v] in the input label order; columns are re-indexed to
// sorted order internally). The covariance matrix is estimated with
// gonum's stat.CovarianceMatrix.
//
// Returns ErrNoVariables, ErrBadShape, ErrInsufficientSamples (fewer than
// 5 rows; Eval additionally requires rows > |z|+3 per call), ErrBadAlpha,
// or ErrOptionViolation (WithPearson has no meaning here).
// Complexity: O(rows·vars²).
func NewFisherZ(labels []string, samples [][]float64, opts ...Option) (*FisherZ, error) {
	o, err := gather(opts)
	if err != nil {
		return nil, err
	}
	if o.pearson {
		return nil, fmt.Errorf("%w: WithPearson applies only to ChiSquared", ErrOptionViolation)
	}
	if len(labels) == 0 {
		return nil, ErrNoVariables
	}

	sorted, perm, err := sortedPerm(labels)
	if err != nil {
		return nil, err
	}
	d := len(sorted)
	if len(samples) < 5 {
		return nil, fmt.Errorf("%w: %d rows", ErrInsufficientSamples, len(samples))
	}

	data := mat.NewDense(len(samples), d, nil)
	for r, row := range samples {
		if len(row) != d {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrBadShape, r, len(row), d)
		}
		for v := 0; v < d; v++ {
			data.Set(r, v, row[perm[v]])
		}
	}

	cov := mat.NewSymDense(d, nil)
	stat.CovarianceMatrix(cov, data, nil)

	return &FisherZ{
		labels: sorted,
		cov:    cov,
		rows:   len(samples),
		alpha:  o.alpha,
	}, nil
}

// Labels returns the variable names in index order.
func (t *FisherZ) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)

	return out
}

// Eval computes the Fisher z statistic for x ⟂ y | z.
// The reported dof is the z-scale factor n−|z|−3. A singular conditioned
// submatrix yields ErrSingular; too few rows yield ErrInsufficientSamples.
// Complexity: O((|z|+2)³) for the inversion.
func (t *FisherZ) Eval(x, y int, z []int) (dof, stat, p float64, err error) {
	checkIndices(len(t.labels), x, y, z)

	scale := t.rows - len(z) - 3
	if scale <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: %d rows, |z|=%d", ErrInsufficientSamples, t.rows, len(z))
	}

	// covariance restricted to (x, y, z...)
	idx := make([]int, 0, len(z)+2)
	idx = append(idx, x, y)
	idx = append(idx, z...)
	k := len(idx)
	sub := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			sub.SetSym(i, j, t.cov.At(idx[i], idx[j]))
		}
	}

	var inv mat.Dense
	if invErr := inv.Inverse(sub); invErr != nil {
		return 0, 0, 0, fmt.Errorf("%w: %s,%s|%d vars: %v",
			ErrSingular, t.labels[x], t.labels[y], len(z), invErr)
	}

	r := -inv.At(0, 1) / math.Sqrt(inv.At(0, 0)*inv.At(1, 1))
	// guard the transform against |r| rounding onto 1
	const rMax = 1 - 1e-12
	if r > rMax {
		r = rMax
	} else if r < -rMax {
		r = -rMax
	}

	dof = float64(scale)
	stat = 0.5 * math.Log((1+r)/(1-r)) * math.Sqrt(dof)
	p = 2 * distuv.UnitNormal.Survival(math.Abs(stat))

	return dof, stat, p, nil
}

// Call reports whether independence is not rejected at α.
func (t *FisherZ) Call(x, y int, z []int) (bool, error) {
	_, _, p, err := t.Eval(x, y, z)
	if err != nil {
		return false, err
	}

	return p > t.alpha, nil
}

// WithSignificanceLevel returns a copy of the test at a new α.
func (t *FisherZ) WithSignificanceLevel(alpha float64) (Test, error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, fmt.Errorf("%w: alpha=%v", ErrBadAlpha, alpha)
	}
	clone := *t
	clone.alpha = alpha

	return &clone, nil
}
