package measures

import "infodist/dist"

// TotalCorrelation returns T(G1;…;Gk | Z) = Σᵢ H(Gᵢ|Z) − H(G1..Gk|Z),
// the multi-information of the groups given the conditioning set.
func TotalCorrelation(d *dist.Distribution, rvs [][]int, crvs []int) (float64, error) {
	rvs, crvs, err := dist.NormalizeRVs(d, rvs, crvs)
	if err != nil {
		return 0, err
	}
	joint, err := ConditionalEntropy(d, flatten(rvs), crvs)
	if err != nil {
		return 0, err
	}
	t := -joint
	for _, g := range rvs {
		h, err := ConditionalEntropy(d, g, crvs)
		if err != nil {
			return 0, err
		}
		t += h
	}
	return t, nil
}

// DualTotalCorrelation returns the binding information
//
//	B(G1;…;Gk | Z) = H(G1..Gk | Z) − Σᵢ H(Gᵢ | G₍≠ᵢ₎, Z)
//
// which is zero exactly when the groups are conditionally independent
// given Z (up to floating-point noise; compare with mathx.Close).
func DualTotalCorrelation(d *dist.Distribution, rvs [][]int, crvs []int) (float64, error) {
	rvs, crvs, err := dist.NormalizeRVs(d, rvs, crvs)
	if err != nil {
		return 0, err
	}
	b, err := ConditionalEntropy(d, flatten(rvs), crvs)
	if err != nil {
		return 0, err
	}
	for i, g := range rvs {
		rest := make([][]int, 0, len(rvs)-1)
		rest = append(rest, rvs[:i]...)
		rest = append(rest, rvs[i+1:]...)
		h, err := ConditionalEntropy(d, g, union(flatten(rest), crvs))
		if err != nil {
			return 0, err
		}
		b -= h
	}
	return b, nil
}

// Coinformation returns the k-way interaction information
//
//	I(G1;…;Gk | Z) = −Σ_{S⊆{1..k}} (−1)^|S| H(G_S | Z)
//
// by inclusion–exclusion over group subsets. Negative values are normal
// for k ≥ 3 (the XOR distribution gives −1 bit).
func Coinformation(d *dist.Distribution, rvs [][]int, crvs []int) (float64, error) {
	rvs, crvs, err := dist.NormalizeRVs(d, rvs, crvs)
	if err != nil {
		return 0, err
	}
	k := len(rvs)
	co := 0.0
	for mask := 1; mask < 1<<k; mask++ {
		var sel [][]int
		bits := 0
		for i := 0; i < k; i++ {
			if mask&(1<<i) != 0 {
				sel = append(sel, rvs[i])
				bits++
			}
		}
		h, err := ConditionalEntropy(d, flatten(sel), crvs)
		if err != nil {
			return 0, err
		}
		if bits%2 == 1 {
			co += h
		} else {
			co -= h
		}
	}
	return co, nil
}
