package measures

import (
	"strconv"
	"strings"

	"infodist/dist"
	"infodist/internal/mathx"
)

// MSSCommonInformation returns the minimal-sufficient-statistic common
// information M(G1;…;Gk): the joint entropy of the per-group minimal
// sufficient statistics, where each group's values are merged whenever
// they induce the same conditional distribution over the remaining
// groups. M upper-bounds the functional common information, since
// conditioning on every statistic at once renders the groups independent.
func MSSCommonInformation(d *dist.Distribution, rvs [][]int) (float64, error) {
	rvs, _, err := dist.NormalizeRVs(d, rvs, nil)
	if err != nil {
		return 0, err
	}

	// classOf[g][i] = equivalence class of outcome i under group g's MSS.
	classOf := make([][]int, len(rvs))
	for gi, g := range rvs {
		rest := make([][]int, 0, len(rvs)-1)
		rest = append(rest, rvs[:gi]...)
		rest = append(rest, rvs[gi+1:]...)
		classOf[gi] = mssClasses(d, g, flatten(rest))
	}

	// Joint statistic mass: outcomes grouped by their class tuple.
	mass := make(map[string]float64)
	for i := 0; i < d.NumOutcomes(); i++ {
		if d.Prob(i) == 0 {
			continue
		}
		var key strings.Builder
		for gi := range rvs {
			key.WriteString(strconv.Itoa(classOf[gi][i]))
			key.WriteByte('\x1f')
		}
		mass[key.String()] += d.Prob(i)
	}
	pmf := make([]float64, 0, len(mass))
	for _, p := range mass {
		pmf = append(pmf, p)
	}
	return entropyOf(pmf), nil
}

// mssClasses groups the values of group by equality of the conditional
// distribution over rest, and labels every positive-mass outcome with its
// value's class. Zero-mass outcomes get class -1.
func mssClasses(d *dist.Distribution, group, rest []int) []int {
	type conditional struct {
		mass  map[string]float64 // rest-value -> joint mass
		total float64
	}
	conds := make(map[string]*conditional)
	var order []string
	for i, o := range d.Outcomes() {
		if d.Prob(i) == 0 {
			continue
		}
		vkey := o.Select(group).Key()
		c, ok := conds[vkey]
		if !ok {
			c = &conditional{mass: make(map[string]float64)}
			conds[vkey] = c
			order = append(order, vkey)
		}
		c.mass[o.Select(rest).Key()] += d.Prob(i)
		c.total += d.Prob(i)
	}

	// Assign classes by comparing each value's conditional against the
	// representatives found so far.
	classByValue := make(map[string]int, len(order))
	var reps []*conditional
	for _, vkey := range order {
		c := conds[vkey]
		assigned := -1
		for ci, rep := range reps {
			if sameConditional(c.mass, c.total, rep.mass, rep.total) {
				assigned = ci
				break
			}
		}
		if assigned < 0 {
			assigned = len(reps)
			reps = append(reps, c)
		}
		classByValue[vkey] = assigned
	}

	classes := make([]int, d.NumOutcomes())
	for i, o := range d.Outcomes() {
		if d.Prob(i) == 0 {
			classes[i] = -1
			continue
		}
		classes[i] = classByValue[o.Select(group).Key()]
	}
	return classes
}

// sameConditional compares two normalized conditionals entry by entry.
func sameConditional(a map[string]float64, atot float64, b map[string]float64, btot float64) bool {
	for k, pa := range a {
		if !mathx.Close(pa/atot, b[k]/btot) {
			return false
		}
	}
	for k, pb := range b {
		if _, ok := a[k]; !ok && !mathx.Close(pb/btot, 0) {
			return false
		}
	}
	return true
}
