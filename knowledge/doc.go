// Package knowledge models prior knowledge for constraint-based structure
// discovery: edges that must not appear, edges that must appear, and an
// optional temporal partial order over the variables.
//
// A Knowledge value is built once from labeled ordered pairs, validated at
// construction (unknown labels, forbidden/required overlap, ambiguous
// temporal tiers all fail construction), and is immutable afterwards — it
// may be shared read-only across any number of goroutines.
//
// Temporal tiers are a compact way to forbid whole families of edges: a
// directed edge from a later tier into an earlier tier is forbidden.
// Tier-implied constraints are materialized at construction, so IsForbidden
// and IsRequired are O(1) lookups.
package knowledge
