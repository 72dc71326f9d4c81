// Package graph: edge queries and mutations.
//
// Determinism:
//   - Edges, UndirectedEdges, DirectedEdges scan rows ascending, columns
//     ascending, so listings are totally ordered by (X, Y).
package graph

import "fmt"

// Mark returns the mark stored from x toward y.
// Undirected edges report Undirected from both sides; a directed edge
// reports Directed only from its tail. Panics on out-of-range indices.
// Complexity: O(1).
func (g *Graph) Mark(x, y int) Mark {
	g.check(x)
	g.check(y)

	return g.marks[x*len(g.labels)+y]
}

// HasEdge reports whether an edge runs from x toward y: true for an
// undirected edge in either reading, true for a directed edge only when x
// is the tail. Complexity: O(1).
func (g *Graph) HasEdge(x, y int) bool {
	return g.Mark(x, y) != None
}

// IsAdjacent reports whether any edge, in any direction, connects x and y.
// Symmetric by construction. Complexity: O(1).
func (g *Graph) IsAdjacent(x, y int) bool {
	return g.Mark(x, y) != None || g.Mark(y, x) != None
}

// IsUndirected reports whether x and y share an undirected edge.
func (g *Graph) IsUndirected(x, y int) bool {
	return g.Mark(x, y) == Undirected
}

// IsDirected reports whether a directed edge x→y exists.
func (g *Graph) IsDirected(x, y int) bool {
	return g.Mark(x, y) == Directed
}

// AddUndirected inserts the undirected edge x—y.
// Returns ErrSelfLoop when x == y and ErrEdgeExists when any edge already
// connects the pair. Complexity: O(1).
func (g *Graph) AddUndirected(x, y int) error {
	if err := g.insertable(x, y); err != nil {
		return err
	}
	n := len(g.labels)
	g.marks[x*n+y] = Undirected
	g.marks[y*n+x] = Undirected

	return nil
}

// AddDirected inserts the directed edge x→y.
// Returns ErrSelfLoop when x == y and ErrEdgeExists when any edge already
// connects the pair. Complexity: O(1).
func (g *Graph) AddDirected(x, y int) error {
	if err := g.insertable(x, y); err != nil {
		return err
	}
	n := len(g.labels)
	g.marks[x*n+y] = Directed
	g.marks[y*n+x] = None

	return nil
}

// Orient replaces the undirected edge x—y with the directed edge x→y.
// Returns ErrEdgeNotFound when the pair is not connected and
// ErrNotUndirected when the pair is connected by a directed edge.
// Complexity: O(1).
func (g *Graph) Orient(x, y int) error {
	switch g.Mark(x, y) {
	case Undirected:
		n := len(g.labels)
		g.marks[x*n+y] = Directed
		g.marks[y*n+x] = None

		return nil
	case Directed:
		return fmt.Errorf("%w: %s→%s already directed", ErrNotUndirected, g.labels[x], g.labels[y])
	default:
		if g.Mark(y, x) == Directed {
			return fmt.Errorf("%w: %s→%s directed the other way", ErrNotUndirected, g.labels[x], g.labels[y])
		}

		return fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, g.labels[x], g.labels[y])
	}
}

// DelEdge removes whatever edge connects x and y (either direction).
// Reports whether an edge was present. Complexity: O(1).
func (g *Graph) DelEdge(x, y int) bool {
	g.check(x)
	g.check(y)
	n := len(g.labels)
	present := g.marks[x*n+y] != None || g.marks[y*n+x] != None
	g.marks[x*n+y] = None
	g.marks[y*n+x] = None

	return present
}

// EdgeCount returns the total number of edges (each undirected edge counted once).
// Complexity: O(n²).
func (g *Graph) EdgeCount() int {
	count := 0
	n := len(g.labels)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			switch g.marks[x*n+y] {
			case Directed:
				count++
			case Undirected:
				if x < y { // count the symmetric pair once
					count++
				}
			}
		}
	}

	return count
}

// Edges lists every edge: undirected edges with X < Y, directed edges as
// (tail, head). Ordered by (X, Y) ascending. Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	var out []Edge
	n := len(g.labels)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			switch g.marks[x*n+y] {
			case Directed:
				out = append(out, Edge{X: x, Y: y, Directed: true})
			case Undirected:
				if x < y {
					out = append(out, Edge{X: x, Y: y})
				}
			}
		}
	}

	return out
}

// UndirectedEdges lists the undirected edges with X < Y, ordered ascending.
func (g *Graph) UndirectedEdges() []Edge {
	var out []Edge
	n := len(g.labels)
	for x := 0; x < n; x++ {
		for y := x + 1; y < n; y++ {
			if g.marks[x*n+y] == Undirected {
				out = append(out, Edge{X: x, Y: y})
			}
		}
	}

	return out
}

// DirectedEdges lists the directed edges as (tail, head), ordered ascending.
func (g *Graph) DirectedEdges() []Edge {
	var out []Edge
	n := len(g.labels)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if g.marks[x*n+y] == Directed {
				out = append(out, Edge{X: x, Y: y, Directed: true})
			}
		}
	}

	return out
}

// insertable validates an edge insertion between x and y.
func (g *Graph) insertable(x, y int) error {
	g.check(x)
	g.check(y)
	if x == y {
		return fmt.Errorf("%w: %s", ErrSelfLoop, g.labels[x])
	}
	if g.IsAdjacent(x, y) {
		return fmt.Errorf("%w: %s and %s", ErrEdgeExists, g.labels[x], g.labels[y])
	}

	return nil
}
