// Package causal discovers causal structure from tabular observations —
// constraint-based search that turns a conditional-independence pattern
// into a partially directed acyclic graph (CPDAG).
//
// 🚀 What is causal?
//
//	An in-memory implementation of the PC-Stable algorithm with its full
//	orientation phase, built from four small packages:
//		• graph/     — mixed (directed + undirected) graph over dense indices
//		• knowledge/ — prior-knowledge constraints (forbidden / required / temporal)
//		• cit/       — conditional-independence tests (χ², Fisher-z, d-separation oracle)
//		• pcstable/  — skeleton discovery, collider detection, Meek rules, driver
//
// ✨ Why choose causal?
//
//   - Deterministic – the stable skeleton variant snapshots adjacency per
//     round, so results never depend on edge-processing order
//   - Parallel without surprises – ParCall reproduces Call bit-for-bit at
//     any worker count
//   - Pluggable – any statistic satisfying cit.Test drives the search
//   - Constrained – forbidden/required edges and temporal tiers are honored
//     during pruning and orientation alike
//
// Quick sketch of the pipeline:
//
//	complete graph ──skeleton──▶ pruned graph + separating sets
//	               ──colliders─▶ v-structures
//	               ──Meek R1–R4▶ CPDAG
//
// See pcstable's example tests for end-to-end usage.
//
//	go get github.com/katalvlaran/causal
package causal
