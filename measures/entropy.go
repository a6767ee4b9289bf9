// Package measures implements information measures over dist.Distribution
// values: Shannon entropy, the correlation family (total, dual total,
// coinformation), and the common-information family (Gács–Körner, minimal
// sufficient statistic, and the partition-search functional common
// information).
//
// All quantities are in bits. Variable selections follow dist.NormalizeRVs
// conventions: rvs is a list of variable groups (nil means one group per
// declared variable), crvs is a flat conditioning set (nil means none).
package measures

import (
	"math"

	"infodist/dist"
)

// Entropy returns the joint Shannon entropy H(vars) in bits. A nil vars
// selects every declared variable.
func Entropy(d *dist.Distribution, vars []int) (float64, error) {
	if vars == nil {
		vars = allVars(d)
	}
	m, err := d.Marginal(vars)
	if err != nil {
		return 0, err
	}
	return entropyOf(m.PMF()), nil
}

// ConditionalEntropy returns H(vars | given) = H(vars ∪ given) − H(given).
// An empty given reduces to Entropy.
func ConditionalEntropy(d *dist.Distribution, vars, given []int) (float64, error) {
	if vars == nil {
		vars = allVars(d)
	}
	if len(given) == 0 {
		return Entropy(d, vars)
	}
	joint, err := Entropy(d, union(vars, given))
	if err != nil {
		return 0, err
	}
	cond, err := Entropy(d, given)
	if err != nil {
		return 0, err
	}
	return joint - cond, nil
}

// entropyOf computes -Σ p·log2(p) over a mass vector, skipping zero mass.
func entropyOf(pmf []float64) float64 {
	h := 0.0
	for _, p := range pmf {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

func allVars(d *dist.Distribution) []int {
	vars := make([]int, d.NumVars())
	for i := range vars {
		vars[i] = i
	}
	return vars
}

// union concatenates index sets, dropping repeats while preserving first
// appearance order.
func union(sets ...[]int) []int {
	var out []int
	seen := make(map[int]bool)
	for _, set := range sets {
		for _, v := range set {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func flatten(groups [][]int) []int {
	return union(groups...)
}
