// Package knowledge: types, sentinel errors, construction, and queries.
package knowledge

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for knowledge construction.
var (
	// ErrNoLabels is returned when New receives an empty label set.
	ErrNoLabels = errors.New("knowledge: no vertex labels provided")

	// ErrDuplicateLabel indicates the same label appears twice in the set.
	ErrDuplicateLabel = errors.New("knowledge: duplicate vertex label")

	// ErrUnknownLabel indicates a constraint referencing a label outside the set.
	ErrUnknownLabel = errors.New("knowledge: unknown label in constraint")

	// ErrSelfConstraint indicates a constraint from a variable to itself.
	ErrSelfConstraint = errors.New("knowledge: constraint endpoints are equal")

	// ErrOverlap indicates the same ordered pair is both forbidden and required.
	ErrOverlap = errors.New("knowledge: forbidden and required sets overlap")

	// ErrTierOverlap indicates a label assigned to more than one temporal tier.
	ErrTierOverlap = errors.New("knowledge: label appears in multiple temporal tiers")
)

// pair is an ordered vertex-index pair (from, to).
type pair [2]int

// Knowledge is an immutable constraint oracle over a fixed label set.
// Construct with New (or Empty); all query methods are safe for concurrent
// use.
type Knowledge struct {
	labels    []string
	index     map[string]int
	forbidden map[pair]struct{}
	required  map[pair]struct{}
	tiers     [][]int // temporal groups, earliest first, indices ascending
}

// Option configures a Knowledge under construction. Invalid options are
// reported by New, never silently dropped.
type Option func(*builder)

// builder accumulates labeled constraints until New validates them.
type builder struct {
	forbidden [][2]string
	required  [][2]string
	tiers     [][]string
}

// WithForbidden forbids the directed edge from→to.
func WithForbidden(from, to string) Option {
	return func(b *builder) { b.forbidden = append(b.forbidden, [2]string{from, to}) }
}

// WithRequired requires the directed edge from→to.
func WithRequired(from, to string) Option {
	return func(b *builder) { b.required = append(b.required, [2]string{from, to}) }
}

// WithTemporalOrder declares temporal tiers, earliest first. Every directed
// edge from a later tier into an earlier tier becomes forbidden.
func WithTemporalOrder(tiers ...[]string) Option {
	return func(b *builder) { b.tiers = append(b.tiers, tiers...) }
}

// New validates the options against the label set and builds the oracle.
// Returns ErrNoLabels, ErrDuplicateLabel, ErrUnknownLabel,
// ErrSelfConstraint, ErrTierOverlap, or ErrOverlap on invalid input.
// Complexity: O(constraints + n² across tiers).
func New(labels []string, opts ...Option) (*Knowledge, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.Strings(sorted)
	index := make(map[string]int, len(sorted))
	for i, l := range sorted {
		if i > 0 && sorted[i-1] == l {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		index[l] = i
	}

	var b builder
	for _, opt := range opts {
		opt(&b)
	}

	k := &Knowledge{
		labels:    sorted,
		index:     index,
		forbidden: make(map[pair]struct{}),
		required:  make(map[pair]struct{}),
	}

	for _, fr := range b.required {
		p, err := k.resolve(fr[0], fr[1])
		if err != nil {
			return nil, err
		}
		k.required[p] = struct{}{}
	}
	for _, fb := range b.forbidden {
		p, err := k.resolve(fb[0], fb[1])
		if err != nil {
			return nil, err
		}
		k.forbidden[p] = struct{}{}
	}

	if err := k.applyTiers(b.tiers); err != nil {
		return nil, err
	}

	// forbidden and required must be disjoint, including tier-implied pairs
	for p := range k.forbidden {
		if _, clash := k.required[p]; clash {
			return nil, fmt.Errorf("%w: %s→%s", ErrOverlap, k.labels[p[0]], k.labels[p[1]])
		}
	}

	return k, nil
}

// Empty returns a Knowledge with no constraints over the given labels.
// It never fails for a non-empty, duplicate-free label set; invalid label
// sets still surface the usual sentinels.
func Empty(labels []string) (*Knowledge, error) {
	return New(labels)
}

// resolve maps a labeled ordered pair to indices, validating both labels.
func (k *Knowledge) resolve(from, to string) (pair, error) {
	x, ok := k.index[from]
	if !ok {
		return pair{}, fmt.Errorf("%w: %q", ErrUnknownLabel, from)
	}
	y, ok := k.index[to]
	if !ok {
		return pair{}, fmt.Errorf("%w: %q", ErrUnknownLabel, to)
	}
	if x == y {
		return pair{}, fmt.Errorf("%w: %q", ErrSelfConstraint, from)
	}

	return pair{x, y}, nil
}

// applyTiers resolves tier labels, rejects double membership, and
// materializes later→earlier pairs into the forbidden set.
func (k *Knowledge) applyTiers(tiers [][]string) error {
	assigned := make(map[int]int) // vertex → tier position
	for tierNo, tier := range tiers {
		group := make([]int, 0, len(tier))
		for _, l := range tier {
			v, ok := k.index[l]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownLabel, l)
			}
			if prev, dup := assigned[v]; dup && prev != tierNo {
				return fmt.Errorf("%w: %q", ErrTierOverlap, l)
			}
			assigned[v] = tierNo
			group = append(group, v)
		}
		sort.Ints(group)
		k.tiers = append(k.tiers, group)
	}

	// later tier → earlier tier is forbidden
	for late := 1; late < len(k.tiers); late++ {
		for early := 0; early < late; early++ {
			for _, from := range k.tiers[late] {
				for _, to := range k.tiers[early] {
					k.forbidden[pair{from, to}] = struct{}{}
				}
			}
		}
	}

	return nil
}

// Labels returns the label set in index order.
func (k *Knowledge) Labels() []string {
	out := make([]string, len(k.labels))
	copy(out, k.labels)

	return out
}

// IsForbidden reports whether the directed edge x→y is forbidden.
func (k *Knowledge) IsForbidden(x, y int) bool {
	_, ok := k.forbidden[pair{x, y}]

	return ok
}

// IsRequired reports whether the directed edge x→y is required.
func (k *Knowledge) IsRequired(x, y int) bool {
	_, ok := k.required[pair{x, y}]

	return ok
}

// ForbiddenEdges lists the forbidden ordered pairs, sorted ascending.
func (k *Knowledge) ForbiddenEdges() [][2]int { return sortedPairs(k.forbidden) }

// RequiredEdges lists the required ordered pairs, sorted ascending.
func (k *Knowledge) RequiredEdges() [][2]int { return sortedPairs(k.required) }

// Tiers returns the temporal groups (earliest first) as ascending index
// slices; empty when no temporal order was declared.
func (k *Knowledge) Tiers() [][]int {
	out := make([][]int, len(k.tiers))
	for i, tier := range k.tiers {
		out[i] = append([]int(nil), tier...)
	}

	return out
}

func sortedPairs(set map[pair]struct{}) [][2]int {
	out := make([][2]int, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}
