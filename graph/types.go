// Package graph: central types, sentinel errors, and constructors.
//
// This file declares Mark, Edge, Graph, and the New/Complete constructors.
// Query and mutation methods live in methods_edges.go, methods_adjacent.go,
// methods_order.go, and methods_clone.go.
package graph

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph operations.
var (
	// ErrNoLabels is returned when a constructor receives an empty label set.
	ErrNoLabels = errors.New("graph: no vertex labels provided")

	// ErrDuplicateLabel is returned when a constructor receives the same label twice.
	ErrDuplicateLabel = errors.New("graph: duplicate vertex label")

	// ErrUnknownLabel indicates a label lookup for a vertex that does not exist.
	ErrUnknownLabel = errors.New("graph: unknown vertex label")

	// ErrSelfLoop indicates an attempted edge from a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrEdgeExists indicates an edge addition between already-connected vertices.
	ErrEdgeExists = errors.New("graph: edge already exists")

	// ErrEdgeNotFound indicates an operation on a missing edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNotUndirected indicates an orientation attempt on a non-undirected edge.
	ErrNotUndirected = errors.New("graph: edge is not undirected")

	// ErrCyclic is returned by TopologicalOrder when the directed subgraph
	// contains a cycle.
	ErrCyclic = errors.New("graph: directed subgraph is cyclic")
)

// Mark describes the connection stored from one vertex toward another.
type Mark uint8

const (
	// None means no edge connects the pair in this direction.
	None Mark = iota

	// Undirected marks a symmetric edge; both cells of the pair carry it.
	Undirected

	// Directed marks a tail→head edge; only the tail's cell carries it.
	Directed
)

// String returns a short human-readable name for the mark.
func (m Mark) String() string {
	switch m {
	case Undirected:
		return "undirected"
	case Directed:
		return "directed"
	default:
		return "none"
	}
}

// Edge is a single connection reported by edge listings.
//
// For undirected edges X < Y holds; for directed edges X is the tail and
// Y is the head.
type Edge struct {
	X, Y     int
	Directed bool
}

// Graph is a mixed graph over a fixed, densely indexed vertex set.
//
// The zero value is not usable; construct with New or Complete.
// Graph is not safe for concurrent mutation; concurrent readers are safe.
type Graph struct {
	labels []string       // index → label, sorted ascending
	index  map[string]int // label → index
	marks  []Mark         // row-major n×n adjacency marks
}

// New builds an edgeless graph over the given labels.
// Labels are sorted ascending before index assignment, so index layout is a
// pure function of the label set. Returns ErrNoLabels on an empty set and
// ErrDuplicateLabel on repeated labels.
// Complexity: O(n log n + n²).
func New(labels []string) (*Graph, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.Strings(sorted)

	index := make(map[string]int, len(sorted))
	for i, l := range sorted {
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		index[l] = i
	}

	return &Graph{
		labels: sorted,
		index:  index,
		marks:  make([]Mark, len(sorted)*len(sorted)),
	}, nil
}

// Complete builds the complete undirected graph over the given labels.
// Complexity: O(n²).
func Complete(labels []string) (*Graph, error) {
	g, err := New(labels)
	if err != nil {
		return nil, err
	}
	n := g.Order()
	for x := 0; x < n; x++ {
		for y := x + 1; y < n; y++ {
			g.marks[x*n+y] = Undirected
			g.marks[y*n+x] = Undirected
		}
	}

	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.labels) }

// Labels returns a copy of the vertex labels in index order.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// Label returns the label of vertex x. Panics on an out-of-range index.
func (g *Graph) Label(x int) string {
	g.check(x)

	return g.labels[x]
}

// Index resolves a label to its vertex index.
// Returns ErrUnknownLabel when the label is absent.
func (g *Graph) Index(label string) (int, error) {
	i, ok := g.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}

	return i, nil
}

// check panics when x is outside [0, Order). Out-of-range indices indicate a
// programming error by the caller, never a data condition.
func (g *Graph) check(x int) {
	if x < 0 || x >= len(g.labels) {
		panic(fmt.Sprintf("graph: vertex index %d out of range [0,%d)", x, len(g.labels)))
	}
}
