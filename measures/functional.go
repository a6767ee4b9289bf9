package measures

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"infodist/dist"
	"infodist/internal/logging"
	"infodist/internal/mathx"
	"infodist/partition"
)

// AddPartition returns d extended with one trailing variable whose value
// for each outcome is the canonical index of the partition block holding
// that outcome. The partition must be over exactly d's outcome indices;
// anything else is rejected rather than silently mislabeling.
func AddPartition(d *dist.Distribution, part *partition.Partition) (*dist.Distribution, error) {
	if part.N() != d.NumOutcomes() {
		return nil, fmt.Errorf("partition is over %d indices but distribution has %d outcomes", part.N(), d.NumOutcomes())
	}
	labels := make([]string, d.NumOutcomes())
	for bi, block := range part.Blocks() {
		for _, i := range block {
			labels[i] = strconv.Itoa(bi)
		}
	}
	return d.InsertFunction(func(o dist.Outcome) string {
		i, _ := d.Lookup(o)
		return labels[i]
	})
}

// FunctionalMarkovChain finds the lowest-entropy variable W, deterministic
// in the joint outcome, such that the rvs groups are independent given
// crvs and W, and returns d with W appended as the final variable.
//
// The search walks the partition lattice of the outcome set from the
// finest partition toward coarser ones, merging two blocks per step.
// Infeasible partitions (residual dual total correlation away from zero)
// are dead ends; feasible ones update the best candidate and are
// expanded. When a candidate's entropy reaches the dual total correlation
// of the original variables, no variable can do better and the search
// stops early. The early exit takes hitting that floor as proof of global
// optimality; this is an assumption tied to the block-size expansion
// order below, not a proven property of arbitrary orders.
//
// State count is Bell-number in the outcome count, so only small sample
// spaces are practical; ctx is checked once per queue pop and is the
// only way to bound runtime.
func FunctionalMarkovChain(ctx context.Context, d *dist.Distribution, rvs [][]int, crvs []int) (*dist.Distribution, error) {
	rvs, crvs, err := dist.NormalizeRVs(d, rvs, crvs)
	if err != nil {
		return nil, err
	}
	logger := logging.New("fci")

	// Index of the functional variable once appended.
	w := []int{d.NumVars()}
	wcrvs := append(append([]int(nil), crvs...), w...)

	// Entropy floor: the target correlation when conditioning on the
	// original variables directly.
	optimalB, err := DualTotalCorrelation(d, rvs, crvs)
	if err != nil {
		return nil, err
	}

	part := partition.Finest(d.NumOutcomes())
	best, err := AddPartition(d, part)
	if err != nil {
		return nil, err
	}
	bestH, err := Entropy(best, w)
	if err != nil {
		return nil, err
	}
	logger.Debug("search start", "outcomes", d.NumOutcomes(), "optimal_b", optimalB, "initial_h", bestH)

	queue := []*partition.Partition{part}
	checked := make(map[string]bool)

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		part, queue = queue[0], queue[1:]
		checked[part.Key()] = true

		cand, err := AddPartition(d, part)
		if err != nil {
			return nil, err
		}
		b, err := DualTotalCorrelation(cand, rvs, wcrvs)
		if err != nil {
			return nil, err
		}
		if !mathx.Close(b, 0) {
			continue
		}

		h, err := Entropy(cand, w)
		if err != nil {
			return nil, err
		}
		if h <= bestH {
			bestH, best = h, cand
			logger.Debug("new best", "entropy", h, "blocks", part.NumBlocks())
		}
		if mathx.Close(h, optimalB) {
			logger.Debug("entropy floor reached", "entropy", h)
			return best, nil
		}

		// Successors: every unordered pair of blocks merged, minus
		// already-checked partitions, ordered by ascending block-size
		// multiset.
		var next []*partition.Partition
		for a := 0; a < part.NumBlocks(); a++ {
			for c := a + 1; c < part.NumBlocks(); c++ {
				np := part.Merge(a, c)
				if !checked[np.Key()] {
					next = append(next, np)
				}
			}
		}
		sort.SliceStable(next, func(i, j int) bool {
			return lessInts(next[i].BlockSizes(), next[j].BlockSizes())
		})
		// Prepend one at a time, deque.extendleft style: the last sorted
		// successor ends up at the head of the queue.
		grown := make([]*partition.Partition, 0, len(next)+len(queue))
		for i := len(next) - 1; i >= 0; i-- {
			grown = append(grown, next[i])
		}
		queue = append(grown, queue...)
	}

	logger.Debug("lattice exhausted", "entropy", bestH)
	return best, nil
}

// FunctionalCommonInformation returns the entropy, in bits, of the
// functional variable discovered by FunctionalMarkovChain.
func FunctionalCommonInformation(ctx context.Context, d *dist.Distribution, rvs [][]int, crvs []int) (float64, error) {
	dd, err := FunctionalMarkovChain(ctx, d, rvs, crvs)
	if err != nil {
		return 0, err
	}
	return Entropy(dd, []int{d.NumVars()})
}

// lessInts compares two int slices lexicographically.
func lessInts(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
