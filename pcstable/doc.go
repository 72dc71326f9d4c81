// Package pcstable implements constraint-based causal structure discovery:
// the PC-Stable algorithm with collider detection and Meek's orientation
// rules, producing a CPDAG over the variables of a conditional-independence
// test.
//
// 🚀 Pipeline:
//
//	complete undirected graph
//	  → Skeleton / ParSkeleton   (stable edge pruning, separating sets)
//	  → OrientColliders          (v-structure detection + required edges)
//	  → MeekProcedure            (rules R1–R3, optional R4, to fixpoint)
//	  → CPDAG
//
// ✨ Guarantees:
//
//   - Stable: each pruning round reads a pre-round adjacency snapshot, so
//     results never depend on the order edges are processed within a round
//   - Deterministic parallelism: ParSkeleton buffers removal decisions and
//     applies them after a join barrier in canonical edge order, so ParCall
//     reproduces Call bit-for-bit at any worker count
//   - Safe orientation: every directed edge is vetted against prior
//     knowledge and an acyclicity guard before it is written
//   - Failure transparency: a failing independence test aborts the run;
//     there is no best-effort skeleton
//
// ⚙️ Usage:
//
//	test, _ := cit.NewChiSquared(labels, cards, rows)
//	pc, _ := pcstable.New(test, pcstable.WithWorkers(8))
//	result, err := pc.ParCall()
//	// result.Graph is the CPDAG, result.SepSets the separating sets
//
// See example_test.go for complete programs.
package pcstable
