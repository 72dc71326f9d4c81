// Package graph: acyclicity and topological-order queries over the
// directed subgraph. Undirected edges are ignored here; orientation code
// uses WouldCycle as its safety guard before every Orient call.
package graph

// TopologicalOrder returns a topological order of the directed subgraph
// (Kahn's algorithm). Vertices with equal precedence appear in ascending
// index order, so the result is deterministic. Returns ErrCyclic when the
// directed subgraph contains a cycle. Complexity: O(V² ).
func (g *Graph) TopologicalOrder() ([]int, error) {
	n := len(g.labels)
	indeg := make([]int, n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if g.marks[x*n+y] == Directed {
				indeg[y]++
			}
		}
	}

	order := make([]int, 0, n)
	ready := make([]bool, n)
	for placed := 0; placed < n; placed++ {
		// pick the smallest unplaced vertex with zero remaining in-degree
		next := -1
		for v := 0; v < n; v++ {
			if !ready[v] && indeg[v] == 0 {
				next = v
				break
			}
		}
		if next == -1 {
			return nil, ErrCyclic
		}
		ready[next] = true
		order = append(order, next)
		for _, c := range g.Children(next) {
			indeg[c]--
		}
	}

	return order, nil
}

// IsAcyclic reports whether the directed subgraph is acyclic.
func (g *Graph) IsAcyclic() bool {
	_, err := g.TopologicalOrder()

	return err == nil
}

// WouldCycle reports whether adding (or orienting) the directed edge x→y
// would close a directed cycle, i.e. whether a directed path y⇝x already
// exists. Complexity: O(V+E).
func (g *Graph) WouldCycle(x, y int) bool {
	g.check(x)
	g.check(y)
	if x == y {
		return true
	}
	// DFS along directed edges from y, looking for x.
	seen := make([]bool, len(g.labels))
	stack := []int{y}
	seen[y] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v == x {
			return true
		}
		for _, c := range g.Children(v) {
			if !seen[c] {
				seen[c] = true
				stack = append(stack, c)
			}
		}
	}

	return false
}
