// Package cit: the Test contract, sentinel errors, and shared options.
package cit

import (
	"errors"
	"fmt"
)

// Sentinel errors for test construction and evaluation.
var (
	// ErrNoVariables is returned when a constructor receives no labels.
	ErrNoVariables = errors.New("cit: no variables provided")

	// ErrBadAlpha indicates a significance level outside (0, 1).
	ErrBadAlpha = errors.New("cit: significance level outside (0,1)")

	// ErrBadShape indicates sample rows inconsistent with the variable set.
	ErrBadShape = errors.New("cit: sample shape mismatch")

	// ErrBadCardinality indicates a categorical value outside its declared range.
	ErrBadCardinality = errors.New("cit: categorical value out of range")

	// ErrSingular indicates a covariance submatrix that cannot be inverted.
	// It is an evaluation failure, never a silent independence verdict.
	ErrSingular = errors.New("cit: singular covariance submatrix")

	// ErrInsufficientSamples indicates too few rows for the requested
	// conditioning-set size.
	ErrInsufficientSamples = errors.New("cit: not enough samples for conditioning set")

	// ErrGraphNil indicates a nil graph passed to NewOracle.
	ErrGraphNil = errors.New("cit: oracle graph is nil")

	// ErrNotDAG indicates an Oracle built on a graph that is not a DAG.
	ErrNotDAG = errors.New("cit: oracle graph is not a directed acyclic graph")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("cit: invalid option supplied")
)

// DefaultAlpha is the significance level used when no option overrides it.
const DefaultAlpha = 0.05

// Test is the conditional-independence contract the discovery engine
// consumes. x, y, and the members of z are vertex indices under the sorted
// label order; z must not contain x or y (programmer error, panics).
//
// Implementations must be safe for concurrent Eval/Call.
type Test interface {
	// Labels returns the variable names in index order (sorted ascending).
	Labels() []string

	// Eval computes the raw decision inputs for x ⟂ y | z: the degrees of
	// freedom (or an implementation-specific analogue), the statistic, and
	// the p-value. Evaluation failures are returned as errors.
	Eval(x, y int, z []int) (dof, stat, p float64, err error)

	// Call reports whether independence is NOT rejected at the configured
	// significance level (p > α).
	Call(x, y int, z []int) (bool, error)

	// WithSignificanceLevel returns a copy of the test with a new α.
	// Returns ErrBadAlpha when alpha is outside (0, 1).
	WithSignificanceLevel(alpha float64) (Test, error)
}

// Option configures a concrete test at construction time.
type Option func(*options)

type options struct {
	alpha   float64
	pearson bool
	err     error
}

func defaultOptions() options {
	return options{alpha: DefaultAlpha}
}

// WithSignificance sets the significance level α ∈ (0, 1).
func WithSignificance(alpha float64) Option {
	return func(o *options) {
		if alpha <= 0 || alpha >= 1 {
			o.err = fmt.Errorf("%w: alpha=%v", ErrBadAlpha, alpha)
			return
		}
		o.alpha = alpha
	}
}

// WithPearson selects the Pearson χ² statistic instead of the default G²
// likelihood-ratio statistic. Only ChiSquared honors it; other constructors
// reject it as an option violation.
func WithPearson() Option {
	return func(o *options) { o.pearson = true }
}

// gather applies opts over defaults and surfaces recorded violations.
func gather(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
