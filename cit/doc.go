// Package cit defines the conditional-independence test contract consumed
// by constraint-based structure discovery, together with three concrete
// implementations:
//
//   - ChiSquared — categorical data; G² (default) or Pearson χ² statistic
//     over marginal/conditional contingency tables
//   - FisherZ    — Gaussian data; partial correlation through the inverse
//     of the conditioned covariance submatrix, Fisher z-transform
//   - Oracle     — exact d-separation against a known DAG, for tests and
//     for callers with a ground-truth structure
//
// Indexing convention: variables are indexed by *sorted* label order, the
// same deterministic assignment the graph package uses, so a vertex index
// is valid across the whole pipeline. Constructors reorder their input
// columns accordingly.
//
// Concurrency: every implementation here is read-only over its backing
// data after construction, so Eval and Call are safe to invoke from any
// number of goroutines without external synchronization. Custom
// implementations of Test must preserve that property.
//
// Decision convention: Call returns true when independence is *not*
// rejected at the configured significance level α, i.e. p > α.
package cit
