package measures

import (
	"infodist/dist"
	"infodist/internal/mathx"
	"infodist/partition"
)

// FunctionalMarkovChainNaive enumerates every partition of the outcome
// set and returns the feasible one of least entropy. It is a reference
// implementation for cross-checking the lattice search on tiny
// distributions; the enumeration is Bell-number sized and must not be
// used in production paths.
func FunctionalMarkovChainNaive(d *dist.Distribution, rvs [][]int, crvs []int) (*dist.Distribution, error) {
	rvs, crvs, err := dist.NormalizeRVs(d, rvs, crvs)
	if err != nil {
		return nil, err
	}
	w := []int{d.NumVars()}
	wcrvs := append(append([]int(nil), crvs...), w...)

	var (
		best  *dist.Distribution
		bestH float64
	)
	for _, part := range partition.Enumerate(d.NumOutcomes()) {
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
		// The finest partition is always feasible, so best is set on
		// some iteration.
		if best == nil || h < bestH {
			best, bestH = cand, h
		}
	}
	return best, nil
}
