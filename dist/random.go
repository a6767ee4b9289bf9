package dist

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
)

// Random builds a distribution over the full product space of nVars
// variables with nSymbols symbols each, with the mass vector drawn
// uniformly from the probability simplex. Symbols are "0", "1", ....
//
// Intended for tests and for generating CLI inputs; the product space
// grows as nSymbols^nVars, so keep both small.
func Random(nVars, nSymbols int, r *rand.Rand) (*Distribution, error) {
	if nVars < 1 || nSymbols < 2 {
		return nil, fmt.Errorf("need nVars >= 1 and nSymbols >= 2, got %d and %d", nVars, nSymbols)
	}

	n := 1
	for i := 0; i < nVars; i++ {
		n *= nSymbols
	}

	outcomes := make([]Outcome, n)
	for i := 0; i < n; i++ {
		o := make(Outcome, nVars)
		rem := i
		for v := nVars - 1; v >= 0; v-- {
			o[v] = strconv.Itoa(rem % nSymbols)
			rem /= nSymbols
		}
		outcomes[i] = o
	}

	// Exponential draws normalized to 1 sample the simplex uniformly.
	pmf := make([]float64, n)
	total := 0.0
	for i := range pmf {
		pmf[i] = -math.Log(1 - r.Float64())
		total += pmf[i]
	}
	for i := range pmf {
		pmf[i] /= total
	}

	return New(outcomes, pmf)
}
