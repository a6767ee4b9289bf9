package dist

import "fmt"

// NormalizeRVs fills defaults and validates the variable selections used by
// the multivariate measures. A nil rvs becomes one group per declared
// variable; a nil crvs becomes empty. Each group must be non-empty with
// distinct, in-range indices; crvs must not overlap any group.
//
// The returned slices are copies and safe to modify.
func NormalizeRVs(d *Distribution, rvs [][]int, crvs []int) ([][]int, []int, error) {
	if rvs == nil {
		rvs = make([][]int, d.NumVars())
		for i := range rvs {
			rvs[i] = []int{i}
		}
	}
	if len(rvs) == 0 {
		return nil, nil, fmt.Errorf("rvs must contain at least one group")
	}

	norm := make([][]int, len(rvs))
	inGroup := make(map[int]bool)
	for gi, group := range rvs {
		if len(group) == 0 {
			return nil, nil, fmt.Errorf("rvs group %d is empty", gi)
		}
		seen := make(map[int]bool, len(group))
		for _, v := range group {
			if v < 0 || v >= d.NumVars() {
				return nil, nil, fmt.Errorf("rvs group %d: variable index %d out of range [0,%d)", gi, v, d.NumVars())
			}
			if seen[v] {
				return nil, nil, fmt.Errorf("rvs group %d: variable index %d repeated", gi, v)
			}
			seen[v] = true
			inGroup[v] = true
		}
		norm[gi] = append([]int(nil), group...)
	}

	ncrvs := make([]int, 0, len(crvs))
	seen := make(map[int]bool, len(crvs))
	for _, v := range crvs {
		if v < 0 || v >= d.NumVars() {
			return nil, nil, fmt.Errorf("crvs: variable index %d out of range [0,%d)", v, d.NumVars())
		}
		if seen[v] {
			return nil, nil, fmt.Errorf("crvs: variable index %d repeated", v)
		}
		if inGroup[v] {
			return nil, nil, fmt.Errorf("variable index %d appears in both rvs and crvs", v)
		}
		seen[v] = true
		ncrvs = append(ncrvs, v)
	}

	return norm, ncrvs, nil
}
