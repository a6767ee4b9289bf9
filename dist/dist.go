// Package dist models finite joint distributions over discrete random
// variables. A distribution is a value type: every transformation returns a
// new distribution and never mutates the receiver.
package dist

import (
	"fmt"
	"strings"

	"infodist/internal/mathx"
)

// keySep joins outcome symbols into map keys. Symbols containing the
// separator byte are rejected at construction.
const keySep = "\x1f"

// Outcome is one joint assignment: one symbol per random variable, in
// declaration order.
type Outcome []string

// Key returns the canonical map key for the outcome.
func (o Outcome) Key() string {
	return strings.Join(o, keySep)
}

// Select projects the outcome onto the given variable indices, in the
// order given. Indices must already be validated.
func (o Outcome) Select(vars []int) Outcome {
	sub := make(Outcome, len(vars))
	for i, v := range vars {
		sub[i] = o[v]
	}
	return sub
}

func (o Outcome) clone() Outcome {
	c := make(Outcome, len(o))
	copy(c, o)
	return c
}

// Distribution is a probability mass function over a fixed set of outcomes.
// Outcomes and pmf are parallel slices; the outcome list doubles as the
// declared sample space, so zero-mass outcomes are legal and preserved.
type Distribution struct {
	outcomes []Outcome
	pmf      []float64
	names    []string // optional, one per variable
	index    map[string]int
}

// New validates and builds a distribution. Outcomes must be non-empty,
// share one arity, and be pairwise distinct; masses must be non-negative
// and sum to 1 within tolerance.
func New(outcomes []Outcome, pmf []float64) (*Distribution, error) {
	if len(outcomes) == 0 {
		return nil, fmt.Errorf("distribution needs at least one outcome")
	}
	if len(outcomes) != len(pmf) {
		return nil, fmt.Errorf("got %d outcomes but %d masses", len(outcomes), len(pmf))
	}
	arity := len(outcomes[0])
	if arity == 0 {
		return nil, fmt.Errorf("outcomes must have at least one variable")
	}

	d := &Distribution{
		outcomes: make([]Outcome, len(outcomes)),
		pmf:      make([]float64, len(pmf)),
		index:    make(map[string]int, len(outcomes)),
	}
	total := 0.0
	for i, o := range outcomes {
		if len(o) != arity {
			return nil, fmt.Errorf("outcome %d has %d variables, want %d", i, len(o), arity)
		}
		for _, sym := range o {
			if strings.Contains(sym, keySep) {
				return nil, fmt.Errorf("outcome %d contains a reserved separator byte", i)
			}
		}
		key := o.Key()
		if _, dup := d.index[key]; dup {
			return nil, fmt.Errorf("duplicate outcome %v", []string(o))
		}
		if pmf[i] < 0 {
			return nil, fmt.Errorf("outcome %v has negative mass %v", []string(o), pmf[i])
		}
		d.outcomes[i] = o.clone()
		d.pmf[i] = pmf[i]
		d.index[key] = i
		total += pmf[i]
	}
	if !mathx.Close(total, 1) {
		return nil, fmt.Errorf("masses sum to %v, want 1", total)
	}
	return d, nil
}

// Named returns a copy of d with variable names attached. Names must be
// distinct and match the arity.
func (d *Distribution) Named(names ...string) (*Distribution, error) {
	if len(names) != d.NumVars() {
		return nil, fmt.Errorf("got %d names for %d variables", len(names), d.NumVars())
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return nil, fmt.Errorf("duplicate variable name %q", n)
		}
		seen[n] = true
	}
	c := d.shallowCopy()
	c.names = append([]string(nil), names...)
	return c, nil
}

// NumOutcomes returns the size of the sample space.
func (d *Distribution) NumOutcomes() int { return len(d.outcomes) }

// NumVars returns the number of declared random variables.
func (d *Distribution) NumVars() int { return len(d.outcomes[0]) }

// Outcome returns the i-th outcome. The returned slice must not be modified.
func (d *Distribution) Outcome(i int) Outcome { return d.outcomes[i] }

// Outcomes returns the sample space in declaration order. The returned
// slices must not be modified.
func (d *Distribution) Outcomes() []Outcome { return d.outcomes }

// Prob returns the mass of the i-th outcome.
func (d *Distribution) Prob(i int) float64 { return d.pmf[i] }

// PMF returns the mass vector parallel to Outcomes. The returned slice
// must not be modified.
func (d *Distribution) PMF() []float64 { return d.pmf }

// Names returns the variable names, or nil if none were declared.
func (d *Distribution) Names() []string { return d.names }

// IndexOf resolves a variable name to its index.
func (d *Distribution) IndexOf(name string) (int, error) {
	for i, n := range d.names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no variable named %q", name)
}

// Indices resolves several variable names at once.
func (d *Distribution) Indices(names ...string) ([]int, error) {
	idxs := make([]int, len(names))
	for i, n := range names {
		idx, err := d.IndexOf(n)
		if err != nil {
			return nil, err
		}
		idxs[i] = idx
	}
	return idxs, nil
}

// Lookup returns the index of an outcome, if it is in the sample space.
func (d *Distribution) Lookup(o Outcome) (int, bool) {
	i, ok := d.index[o.Key()]
	return i, ok
}

// Marginal returns the distribution of the selected variables, with mass
// accumulated over the dropped ones. Outcome order follows first
// appearance in the parent. Indices must be in range and distinct.
func (d *Distribution) Marginal(vars []int) (*Distribution, error) {
	if err := d.checkVars(vars); err != nil {
		return nil, err
	}
	m := &Distribution{index: make(map[string]int)}
	for i, o := range d.outcomes {
		sub := o.Select(vars)
		key := sub.Key()
		if j, ok := m.index[key]; ok {
			m.pmf[j] += d.pmf[i]
			continue
		}
		m.index[key] = len(m.outcomes)
		m.outcomes = append(m.outcomes, sub)
		m.pmf = append(m.pmf, d.pmf[i])
	}
	if d.names != nil {
		m.names = make([]string, len(vars))
		for i, v := range vars {
			m.names[i] = d.names[v]
		}
	}
	return m, nil
}

// InsertFunction appends one trailing variable whose value for each
// outcome is label(outcome). The new variable is by construction a
// deterministic function of the joint outcome. If the distribution is
// named, a fresh synthetic name is appended.
func (d *Distribution) InsertFunction(label func(Outcome) string) (*Distribution, error) {
	ext := &Distribution{
		outcomes: make([]Outcome, len(d.outcomes)),
		pmf:      append([]float64(nil), d.pmf...),
		index:    make(map[string]int, len(d.outcomes)),
	}
	for i, o := range d.outcomes {
		sym := label(o)
		if strings.Contains(sym, keySep) {
			return nil, fmt.Errorf("label for outcome %v contains a reserved separator byte", []string(o))
		}
		no := make(Outcome, len(o)+1)
		copy(no, o)
		no[len(o)] = sym
		ext.outcomes[i] = no
		ext.index[no.Key()] = i
	}
	if d.names != nil {
		ext.names = append(append([]string(nil), d.names...), d.freshName())
	}
	return ext, nil
}

func (d *Distribution) freshName() string {
	for i := 0; ; i++ {
		name := fmt.Sprintf("f%d", i)
		taken := false
		for _, n := range d.names {
			if n == name {
				taken = true
				break
			}
		}
		if !taken {
			return name
		}
	}
}

func (d *Distribution) checkVars(vars []int) error {
	seen := make(map[int]bool, len(vars))
	for _, v := range vars {
		if v < 0 || v >= d.NumVars() {
			return fmt.Errorf("variable index %d out of range [0,%d)", v, d.NumVars())
		}
		if seen[v] {
			return fmt.Errorf("variable index %d repeated", v)
		}
		seen[v] = true
	}
	return nil
}

func (d *Distribution) shallowCopy() *Distribution {
	return &Distribution{
		outcomes: d.outcomes,
		pmf:      d.pmf,
		names:    d.names,
		index:    d.index,
	}
}
