// Package cit: χ²-family conditional-independence test for categorical data.
package cit

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquared tests conditional independence of categorical variables with
// the G² likelihood-ratio statistic (default) or the Pearson χ² statistic.
//
// Samples are stored column-major in sorted-label order and never mutated,
// so the test is safe for concurrent use.
type ChiSquared struct {
	labels  []string
	cards   []int   // per-variable cardinality, index order
	columns [][]int // columns[v][row] = observed category of variable v
	rows    int
	alpha   float64
	pearson bool
}

// NewChiSquared builds the test from variable labels, per-variable
// cardinalities, and row-major samples (samples[r][v] in the *input* label
// order; columns are re-indexed to sorted order internally).
//
// Returns ErrNoVariables, ErrBadShape (length mismatches, ragged rows),
// ErrBadCardinality (value outside [0, card)), ErrBadAlpha, or
// ErrOptionViolation. Complexity: O(rows·vars).
func NewChiSquared(labels []string, cards []int, samples [][]int, opts ...Option) (*ChiSquared, error) {
	o, err := gather(opts)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, ErrNoVariables
	}
	if len(cards) != len(labels) {
		return nil, fmt.Errorf("%w: %d labels vs %d cardinalities", ErrBadShape, len(labels), len(cards))
	}

	sorted, perm, err := sortedPerm(labels)
	if err != nil {
		return nil, err
	}

	d := len(sorted)
	t := &ChiSquared{
		labels:  sorted,
		cards:   make([]int, d),
		columns: make([][]int, d),
		rows:    len(samples),
		alpha:   o.alpha,
		pearson: o.pearson,
	}
	for v := 0; v < d; v++ {
		t.cards[v] = cards[perm[v]]
		if t.cards[v] < 2 {
			return nil, fmt.Errorf("%w: variable %q has cardinality %d", ErrBadCardinality, sorted[v], t.cards[v])
		}
		t.columns[v] = make([]int, len(samples))
	}
	for r, row := range samples {
		if len(row) != d {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrBadShape, r, len(row), d)
		}
		for v := 0; v < d; v++ {
			val := row[perm[v]]
			if val < 0 || val >= t.cards[v] {
				return nil, fmt.Errorf("%w: row %d, variable %q: %d", ErrBadCardinality, r, sorted[v], val)
			}
			t.columns[v][r] = val
		}
	}

	return t, nil
}

// Labels returns the variable names in index order.
func (t *ChiSquared) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)

	return out
}

// Eval computes the statistic for x ⟂ y | z over the conditional
// contingency table. The degrees of freedom are
// (cx−1)(cy−1)·∏ card(z), clamped to at least 1.
// Complexity: O(rows + table cells).
func (t *ChiSquared) Eval(x, y int, z []int) (dof, stat, p float64, err error) {
	t.checkIndices(x, y, z)

	cx, cy := t.cards[x], t.cards[y]
	cz := 1
	for _, v := range z {
		cz *= t.cards[v]
	}

	// observed counts: obs[(zi*cx + a)*cy + b]
	obs := make([]float64, cz*cx*cy)
	for r := 0; r < t.rows; r++ {
		zi := 0
		for _, v := range z {
			zi = zi*t.cards[v] + t.columns[v][r]
		}
		obs[(zi*cx+t.columns[x][r])*cy+t.columns[y][r]]++
	}

	rowSum := make([]float64, cx)
	colSum := make([]float64, cy)
	for zi := 0; zi < cz; zi++ {
		base := zi * cx * cy
		total := 0.0
		for a := 0; a < cx; a++ {
			rowSum[a] = 0
		}
		for b := 0; b < cy; b++ {
			colSum[b] = 0
		}
		for a := 0; a < cx; a++ {
			for b := 0; b < cy; b++ {
				n := obs[base+a*cy+b]
				rowSum[a] += n
				colSum[b] += n
				total += n
			}
		}
		if total == 0 {
			continue // unobserved conditioning configuration
		}
		for a := 0; a < cx; a++ {
			for b := 0; b < cy; b++ {
				expected := rowSum[a] * colSum[b] / total
				n := obs[base+a*cy+b]
				if t.pearson {
					if expected > 0 {
						diff := n - expected
						stat += diff * diff / expected
					}
				} else if n > 0 {
					stat += 2 * n * math.Log(n/expected)
				}
			}
		}
	}

	dof = float64((cx - 1) * (cy - 1) * cz)
	if dof < 1 {
		dof = 1
	}
	p = distuv.ChiSquared{K: dof}.Survival(stat)

	return dof, stat, p, nil
}

// Call reports whether independence is not rejected at α.
func (t *ChiSquared) Call(x, y int, z []int) (bool, error) {
	_, _, p, err := t.Eval(x, y, z)
	if err != nil {
		return false, err
	}

	return p > t.alpha, nil
}

// WithSignificanceLevel returns a copy of the test at a new α.
func (t *ChiSquared) WithSignificanceLevel(alpha float64) (Test, error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, fmt.Errorf("%w: alpha=%v", ErrBadAlpha, alpha)
	}
	clone := *t
	clone.alpha = alpha

	return &clone, nil
}

// checkIndices panics on out-of-range or overlapping indices: these are
// programmer errors, not data conditions.
func (t *ChiSquared) checkIndices(x, y int, z []int) {
	checkIndices(len(t.labels), x, y, z)
}

// sortedPerm sorts labels ascending and returns, per new index, the old
// column position. Duplicate labels are a shape error.
func sortedPerm(labels []string) ([]string, []int, error) {
	perm := make([]int, len(labels))
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(i, j int) bool { return labels[perm[i]] < labels[perm[j]] })

	sorted := make([]string, len(labels))
	for i, old := range perm {
		sorted[i] = labels[old]
		if i > 0 && sorted[i] == sorted[i-1] {
			return nil, nil, fmt.Errorf("%w: duplicate label %q", ErrBadShape, sorted[i])
		}
	}

	return sorted, perm, nil
}

// checkIndices validates x, y, z against the variable count.
func checkIndices(n, x, y int, z []int) {
	if x < 0 || x >= n || y < 0 || y >= n {
		panic(fmt.Sprintf("cit: variable index out of range [0,%d)", n))
	}
	if x == y {
		panic("cit: x and y must differ")
	}
	for _, v := range z {
		if v < 0 || v >= n {
			panic(fmt.Sprintf("cit: conditioning index out of range [0,%d)", n))
		}
		if v == x || v == y {
			panic("cit: conditioning set overlaps the tested pair")
		}
	}
}
