// Package graph provides the mixed (directed + undirected) graph used by
// constraint-based structure discovery.
//
// 🚀 What is graph?
//
//	A dense, index-addressed graph over a fixed vertex set:
//	  • Vertices are integer indices 0..n-1 assigned from the sorted label
//	    set, so the same variable names always produce the same indices.
//	  • Every edge carries a Mark: Undirected (symmetric) or Directed
//	    (asymmetric, stored from tail to head).
//	  • The vertex set is immutable after construction; algorithms only
//	    add, orient, and delete edges.
//
// ✨ Key guarantees:
//
//   - Deterministic iteration – Adjacents, Neighbors, Parents, Children and
//     all edge listings return ascending index order
//   - Cheap structural queries – adjacency is a flat n×n mark matrix
//   - Safety hooks for orientation – WouldCycle reports whether directing
//     an edge would close a directed cycle, TopologicalOrder validates the
//     directed subgraph
//
// Out-of-range vertex indices are programmer errors and panic; label
// lookups return sentinel errors.
//
// Complexity: edge queries O(1); neighborhood listings O(n);
// TopologicalOrder and WouldCycle O(V+E).
package graph
