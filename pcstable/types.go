// Package pcstable: sentinel errors, functional options, the prior-knowledge
// contract, the separating-set table, and result types.
package pcstable

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/katalvlaran/causal/graph"
)

// Sentinel errors for discovery runs.
var (
	// ErrNilTest is returned when a nil independence test is supplied.
	ErrNilTest = errors.New("pcstable: independence test is nil")

	// ErrNilGraph is returned when a nil graph is supplied.
	ErrNilGraph = errors.New("pcstable: graph is nil")

	// ErrLabelMismatch indicates the graph's labels differ from the test's.
	ErrLabelMismatch = errors.New("pcstable: graph labels do not match test labels")

	// ErrDirectedInput indicates skeleton discovery received a graph that
	// already carries directed edges.
	ErrDirectedInput = errors.New("pcstable: skeleton input must be undirected")

	// ErrTestFailed wraps an independence-test evaluation failure; the run
	// is aborted, never patched with a default verdict.
	ErrTestFailed = errors.New("pcstable: independence test failed")

	// ErrBadRule indicates a Meek rule index outside [1, 4].
	ErrBadRule = errors.New("pcstable: rule index outside [1,4]")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pcstable: invalid option supplied")
)

// PriorKnowledge is the constraint oracle consulted during pruning and
// orientation. knowledge.Knowledge satisfies it; implementations must be
// safe for concurrent readers.
type PriorKnowledge interface {
	// IsForbidden reports whether the directed edge x→y must not appear.
	IsForbidden(x, y int) bool

	// IsRequired reports whether the directed edge x→y must appear.
	IsRequired(x, y int) bool

	// RequiredEdges lists the required ordered pairs, sorted ascending.
	RequiredEdges() [][2]int
}

// noKnowledge is the unconstrained oracle used when none is supplied.
type noKnowledge struct{}

func (noKnowledge) IsForbidden(int, int) bool { return false }
func (noKnowledge) IsRequired(int, int) bool  { return false }
func (noKnowledge) RequiredEdges() [][2]int   { return nil }

// SepSets maps an unordered vertex pair (key ordered ascending) to the
// conditioning set that separated it. Written once by skeleton discovery,
// read once by collider detection.
type SepSets map[[2]int][]int

// pairKey canonicalizes an unordered pair.
func pairKey(x, y int) [2]int {
	if x > y {
		x, y = y, x
	}

	return [2]int{x, y}
}

// Put records the separating set for the pair {x, y}.
func (s SepSets) Put(x, y int, z []int) { s[pairKey(x, y)] = z }

// Get returns the separating set for {x, y} and whether one was recorded.
func (s SepSets) Get(x, y int) ([]int, bool) {
	z, ok := s[pairKey(x, y)]

	return z, ok
}

// Has reports whether a separating set was recorded for {x, y}.
func (s SepSets) Has(x, y int) bool {
	_, ok := s[pairKey(x, y)]

	return ok
}

// Pairs lists the recorded pairs in ascending order.
func (s SepSets) Pairs() [][2]int {
	out := make([][2]int, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}

// Conflict records an orientation that collider detection or required-edge
// application wanted but could not apply. Conflicts are reported, never
// silently dropped.
type Conflict struct {
	// From, To is the attempted orientation From→To.
	From, To int

	// Reason is a short human-readable explanation.
	Reason string
}

// Result is the outcome of a full discovery run.
type Result struct {
	// Graph is the CPDAG: the pruned skeleton with collider and Meek
	// orientations applied.
	Graph *graph.Graph

	// SepSets holds the separating set recorded for each removed edge.
	SepSets SepSets

	// Conflicts lists orientations blocked by prior knowledge, by an
	// earlier contradictory orientation, or by the acyclicity guard.
	Conflicts []Conflict
}

// Option configures discovery via functional arguments. Invalid options
// are recorded and surfaced as ErrOptionViolation when the entry point runs.
type Option func(*options)

type options struct {
	ctx           context.Context
	workers       int
	ruleFour      bool
	pk            PriorKnowledge
	onRound       func(level int)
	onEdgeRemoved func(x, y int, sep []int)
	err           error
}

func defaultOptions() options {
	return options{
		ctx:           context.Background(),
		workers:       runtime.NumCPU(),
		pk:            noKnowledge{},
		onRound:       func(int) {},
		onEdgeRemoved: func(int, int, []int) {},
	}
}

// gatherOptions applies opts over defaults and surfaces recorded violations.
func gatherOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithContext sets a context checked once per pruning round and per Meek pass.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithWorkers sets the goroutine count for ParSkeleton/ParCall.
//
//	n ≥ 1: use n workers
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

// WithPriorKnowledge supplies the constraint oracle consulted during
// pruning and orientation.
func WithPriorKnowledge(pk PriorKnowledge) Option {
	return func(o *options) {
		if pk != nil {
			o.pk = pk
		}
	}
}

// WithRuleFour enables Meek's optional fourth rule.
func WithRuleFour() Option {
	return func(o *options) { o.ruleFour = true }
}

// WithOnRound registers a hook fired at the start of each pruning round
// with the conditioning-set size for that round.
func WithOnRound(fn func(level int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onRound = fn
		}
	}
}

// WithOnEdgeRemoved registers a hook fired after an edge removal is applied,
// with the pair and its separating set.
func WithOnEdgeRemoved(fn func(x, y int, sep []int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onEdgeRemoved = fn
		}
	}
}
