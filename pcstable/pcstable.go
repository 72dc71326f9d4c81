// Package pcstable: the PC-Stable driver wiring skeleton discovery and the
// orientation engine together.
package pcstable

import (
	"github.com/katalvlaran/causal/cit"
	"github.com/katalvlaran/causal/graph"
)

// PCStable runs the full discovery pipeline over the variables of a
// conditional-independence test. Construct with New; a PCStable value is
// immutable and may be reused for any number of runs.
type PCStable struct {
	test cit.Test
	o    options
}

// New builds a driver around the given test. Options: WithPriorKnowledge,
// WithWorkers, WithRuleFour, WithContext, and the observation hooks.
// Returns ErrNilTest or ErrOptionViolation.
func New(test cit.Test, opts ...Option) (*PCStable, error) {
	if test == nil {
		return nil, ErrNilTest
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return &PCStable{test: test, o: o}, nil
}

// Call runs skeleton discovery, collider detection, and Meek propagation
// sequentially, returning the CPDAG.
func (p *PCStable) Call() (*Result, error) {
	return p.run(false, 0)
}

// ParCall runs skeleton discovery on WithWorkers goroutines, then the
// inherently sequential orientation phases single-threaded. The result is
// bit-identical to Call's for any worker count.
func (p *PCStable) ParCall() (*Result, error) {
	return p.run(true, 0)
}

// CallUntil stops orientation after Meek rules R1..k (k ∈ [1, 4]). The
// returned graph is a consistent intermediate: acyclic and
// constraint-respecting, at the fixpoint of the enabled rules.
func (p *PCStable) CallUntil(k int) (*Result, error) {
	if k < 1 || k > MaxRule {
		return nil, ErrBadRule
	}

	return p.run(false, k)
}

// CallSkeleton runs only the pruning phase, for callers that compare
// skeletons directly.
func (p *PCStable) CallSkeleton() (*graph.Graph, SepSets, error) {
	initial, err := graph.Complete(p.test.Labels())
	if err != nil {
		return nil, nil, err
	}

	return skeletonRun(p.test, p.o.pk, initial, p.o, false)
}

// run executes the three phases. maxRule == 0 means the full procedure
// (R1–R3, plus R4 when enabled).
func (p *PCStable) run(parallel bool, maxRule int) (*Result, error) {
	initial, err := graph.Complete(p.test.Labels())
	if err != nil {
		return nil, err
	}

	g, sep, err := skeletonRun(p.test, p.o.pk, initial, p.o, parallel)
	if err != nil {
		return nil, err
	}

	conflicts, err := OrientColliders(g, sep, p.o.pk)
	if err != nil {
		return nil, err
	}

	if maxRule == 0 {
		maxRule = 3
		if p.o.ruleFour {
			maxRule = MaxRule
		}
	}
	if err := meekFixpoint(maxRule, g, p.o.pk, p.o); err != nil {
		return nil, err
	}

	return &Result{Graph: g, SepSets: sep, Conflicts: conflicts}, nil
}
