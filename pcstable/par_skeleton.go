// Package pcstable: parallel skeleton discovery.
//
// Within a round the independence tests for distinct edges only read the
// shared pre-round snapshot, so they are embarrassingly parallel. Workers
// write buffered decisions into disjoint slice slots; removals are applied
// by a single goroutine after the join barrier, in canonical edge order.
// This is a fork-join map/apply split, not a lock-per-edge scheme, and it
// is what makes ParSkeleton reproduce Skeleton bit-for-bit.
package pcstable

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/causal/cit"
	"github.com/katalvlaran/causal/graph"
)

// ParSkeleton prunes the initial undirected graph exactly like Skeleton,
// evaluating each round's independence tests on WithWorkers goroutines.
// The result is identical to Skeleton's for any worker count.
func ParSkeleton(test cit.Test, pk PriorKnowledge, initial *graph.Graph, opts ...Option) (*graph.Graph, SepSets, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, nil, err
	}

	return skeletonRun(test, pk, initial, o, true)
}

// parRoundDecisions is the parallel map step of one round: edges are
// strided across workers, each worker testing its share against the shared
// immutable snapshot and test. Decision slots are disjoint, so no locking
// is needed; the first test failure cancels the group and aborts the run.
func parRoundDecisions(test cit.Test, pk PriorKnowledge, snap [][]int, edges []graph.Edge, level int, o options) ([]decision, error) {
	workers := o.workers
	if workers > len(edges) {
		workers = len(edges)
	}

	decisions := make([]decision, len(edges))
	eg, ctx := errgroup.WithContext(o.ctx)
	for w := 0; w < workers; w++ {
		start := w
		eg.Go(func() error {
			for i := start; i < len(edges); i += workers {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				e := edges[i]
				if pk.IsRequired(e.X, e.Y) || pk.IsRequired(e.Y, e.X) {
					continue
				}
				z, removed, err := findSepSet(test, snap, e.X, e.Y, level)
				if err != nil {
					return err
				}
				decisions[i] = decision{remove: removed, sep: z}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return decisions, nil
}
