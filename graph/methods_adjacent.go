// Package graph: neighborhood queries.
//
// All listings return vertex indices in ascending order; callers may rely
// on that order for deterministic iteration.
package graph

// Adjacents returns every vertex connected to x by any edge, in any
// direction. Ascending order. Complexity: O(n).
func (g *Graph) Adjacents(x int) []int {
	g.check(x)
	var out []int
	n := len(g.labels)
	for y := 0; y < n; y++ {
		if y != x && (g.marks[x*n+y] != None || g.marks[y*n+x] != None) {
			out = append(out, y)
		}
	}

	return out
}

// Neighbors returns the vertices connected to x by an undirected edge.
// Ascending order. Complexity: O(n).
func (g *Graph) Neighbors(x int) []int {
	g.check(x)
	var out []int
	n := len(g.labels)
	for y := 0; y < n; y++ {
		if g.marks[x*n+y] == Undirected {
			out = append(out, y)
		}
	}

	return out
}

// Parents returns the tails of directed edges into x. Ascending order.
// Complexity: O(n).
func (g *Graph) Parents(x int) []int {
	g.check(x)
	var out []int
	n := len(g.labels)
	for y := 0; y < n; y++ {
		if g.marks[y*n+x] == Directed {
			out = append(out, y)
		}
	}

	return out
}

// Children returns the heads of directed edges out of x. Ascending order.
// Complexity: O(n).
func (g *Graph) Children(x int) []int {
	g.check(x)
	var out []int
	n := len(g.labels)
	for y := 0; y < n; y++ {
		if g.marks[x*n+y] == Directed {
			out = append(out, y)
		}
	}

	return out
}

// Degree returns the number of vertices adjacent to x. Complexity: O(n).
func (g *Graph) Degree(x int) int {
	return len(g.Adjacents(x))
}
