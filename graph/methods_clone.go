// Package graph: copying and comparison.
package graph

import "strings"

// Clone returns an independent deep copy of g.
// The label slice and index map are shared structurally only through fresh
// allocations; mutating the clone never affects the original.
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	labels := make([]string, len(g.labels))
	copy(labels, g.labels)
	index := make(map[string]int, len(g.index))
	for l, i := range g.index {
		index[l] = i
	}
	marks := make([]Mark, len(g.marks))
	copy(marks, g.marks)

	return &Graph{labels: labels, index: index, marks: marks}
}

// Equal reports whether g and other share the same labels and the same
// marks cell-for-cell. Complexity: O(n²).
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || len(g.labels) != len(other.labels) {
		return false
	}
	for i, l := range g.labels {
		if other.labels[i] != l {
			return false
		}
	}
	for i, m := range g.marks {
		if other.marks[i] != m {
			return false
		}
	}

	return true
}

// String renders a diagnostic listing: one line per edge, undirected as
// "a — b", directed as "a → b", in deterministic (X, Y) order.
func (g *Graph) String() string {
	var b strings.Builder
	for _, e := range g.Edges() {
		b.WriteString(g.labels[e.X])
		if e.Directed {
			b.WriteString(" → ")
		} else {
			b.WriteString(" — ")
		}
		b.WriteString(g.labels[e.Y])
		b.WriteByte('\n')
	}

	return b.String()
}
