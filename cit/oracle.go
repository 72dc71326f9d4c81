// Package cit: exact d-separation oracle over a known DAG.
package cit

import (
	"fmt"

	"github.com/katalvlaran/causal/graph"
)

// Oracle answers independence queries exactly by d-separation against a
// ground-truth DAG. It is the reference implementation of the Test
// contract: with an Oracle, constraint-based discovery recovers the DAG's
// Markov equivalence class precisely.
//
// The oracle reads the DAG but never mutates it; concurrent Call/Eval are
// safe as long as nothing else mutates the graph.
type Oracle struct {
	dag   *graph.Graph
	alpha float64
}

// NewOracle wraps a fully directed acyclic graph.
// Returns ErrNotDAG when g carries undirected edges or a directed cycle.
func NewOracle(g *graph.Graph, opts ...Option) (*Oracle, error) {
	o, err := gather(opts)
	if err != nil {
		return nil, err
	}
	if o.pearson {
		return nil, fmt.Errorf("%w: WithPearson applies only to ChiSquared", ErrOptionViolation)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(g.UndirectedEdges()) > 0 {
		return nil, fmt.Errorf("%w: undirected edges present", ErrNotDAG)
	}
	if !g.IsAcyclic() {
		return nil, fmt.Errorf("%w: directed cycle present", ErrNotDAG)
	}

	return &Oracle{dag: g, alpha: o.alpha}, nil
}

// Labels returns the variable names in index order.
func (t *Oracle) Labels() []string { return t.dag.Labels() }

// Eval reports d-separation as a degenerate statistic: p = 1 when x and y
// are d-separated given z, p = 0 otherwise; stat is the complementary
// indicator and dof is always 0.
func (t *Oracle) Eval(x, y int, z []int) (dof, stat, p float64, err error) {
	checkIndices(t.dag.Order(), x, y, z)
	if t.dSeparated(x, y, z) {
		return 0, 0, 1, nil
	}

	return 0, 1, 0, nil
}

// Call reports whether x and y are d-separated given z.
func (t *Oracle) Call(x, y int, z []int) (bool, error) {
	_, _, p, err := t.Eval(x, y, z)
	if err != nil {
		return false, err
	}

	return p > t.alpha, nil
}

// WithSignificanceLevel returns a copy at a new α. The verdict is exact,
// so α only has to sit inside (0, 1).
func (t *Oracle) WithSignificanceLevel(alpha float64) (Test, error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, fmt.Errorf("%w: alpha=%v", ErrBadAlpha, alpha)
	}
	clone := *t
	clone.alpha = alpha

	return &clone, nil
}

// dSeparated implements the ancestral-moral-graph criterion:
// restrict the DAG to ancestors of {x, y} ∪ z, moralize (connect co-parents,
// drop directions), delete z, and test whether x still reaches y.
func (t *Oracle) dSeparated(x, y int, z []int) bool {
	n := t.dag.Order()

	// ancestors of {x, y} ∪ z, inclusive
	anc := make([]bool, n)
	stack := append([]int{x, y}, z...)
	for _, v := range stack {
		anc[v] = true
	}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range t.dag.Parents(v) {
			if !anc[p] {
				anc[p] = true
				stack = append(stack, p)
			}
		}
	}

	// moralized undirected adjacency within the ancestral set
	adj := make([][]bool, n)
	for v := range adj {
		adj[v] = make([]bool, n)
	}
	connect := func(a, b int) {
		adj[a][b] = true
		adj[b][a] = true
	}
	for v := 0; v < n; v++ {
		if !anc[v] {
			continue
		}
		parents := t.dag.Parents(v)
		for _, p := range parents {
			if anc[p] {
				connect(p, v)
			}
		}
		for i := 0; i < len(parents); i++ {
			for j := i + 1; j < len(parents); j++ {
				if anc[parents[i]] && anc[parents[j]] {
					connect(parents[i], parents[j])
				}
			}
		}
	}

	// delete the conditioning set, then search x → y
	blocked := make([]bool, n)
	for _, v := range z {
		blocked[v] = true
	}
	seen := make([]bool, n)
	seen[x] = true
	stack = []int{x}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v == y {
			return false // connected ⇒ dependent
		}
		for w := 0; w < n; w++ {
			if adj[v][w] && anc[w] && !blocked[w] && !seen[w] {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}

	return true
}
