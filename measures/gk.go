package measures

import "infodist/dist"

// GKCommonInformation returns the Gács–Körner common information
// K(G1;…;Gk): the entropy of the meet variable, the largest random
// variable separately computable from each group. Two outcomes carry the
// same meet value when they are linked by a chain of positive-probability
// outcomes agreeing on some group at each step, so the meet values are
// the connected components of that agreement relation.
func GKCommonInformation(d *dist.Distribution, rvs [][]int) (float64, error) {
	rvs, _, err := dist.NormalizeRVs(d, rvs, nil)
	if err != nil {
		return 0, err
	}

	uf := newUnionFind(d.NumOutcomes())
	for _, g := range rvs {
		// Outcomes sharing this group's value belong to one component.
		first := make(map[string]int)
		for i, o := range d.Outcomes() {
			if d.Prob(i) == 0 {
				continue
			}
			key := o.Select(g).Key()
			if j, ok := first[key]; ok {
				uf.unite(i, j)
			} else {
				first[key] = i
			}
		}
	}

	mass := make(map[int]float64)
	for i := 0; i < d.NumOutcomes(); i++ {
		if d.Prob(i) > 0 {
			mass[uf.find(i)] += d.Prob(i)
		}
	}
	pmf := make([]float64, 0, len(mass))
	for _, p := range mass {
		pmf = append(pmf, p)
	}
	return entropyOf(pmf), nil
}

// unionFind is a plain disjoint-set forest with path halving.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) unite(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}
