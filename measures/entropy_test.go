package measures

import (
	"math"
	"testing"

	"infodist/dist"
)

func mustDist(t *testing.T, outcomes []dist.Outcome, pmf []float64) *dist.Distribution {
	t.Helper()
	d, err := dist.New(outcomes, pmf)
	if err != nil {
		t.Fatalf("dist.New: %v", err)
	}
	return d
}

// copyDist is the two-variable perfect-copy distribution {00, 11}.
func copyDist(t *testing.T) *dist.Distribution {
	t.Helper()
	return mustDist(t,
		[]dist.Outcome{{"0", "0"}, {"1", "1"}},
		[]float64{0.5, 0.5},
	)
}

// independentDist is two fair independent bits.
func independentDist(t *testing.T) *dist.Distribution {
	t.Helper()
	return mustDist(t,
		[]dist.Outcome{{"0", "0"}, {"0", "1"}, {"1", "0"}, {"1", "1"}},
		[]float64{0.25, 0.25, 0.25, 0.25},
	)
}

// xorDist is three fair bits with the third the XOR of the first two.
func xorDist(t *testing.T) *dist.Distribution {
	t.Helper()
	return mustDist(t,
		[]dist.Outcome{{"0", "0", "0"}, {"0", "1", "1"}, {"1", "0", "1"}, {"1", "1", "0"}},
		[]float64{0.25, 0.25, 0.25, 0.25},
	)
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestEntropy(t *testing.T) {
	cases := []struct {
		name string
		d    *dist.Distribution
		vars []int
		want float64
	}{
		{"joint of copy", copyDist(t), nil, 1},
		{"marginal of copy", copyDist(t), []int{0}, 1},
		{"joint of independent bits", independentDist(t), nil, 2},
		{"joint of xor", xorDist(t), nil, 2},
		{"xor pair", xorDist(t), []int{0, 2}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := Entropy(tc.d, tc.vars)
			if err != nil {
				t.Fatalf("Entropy: %v", err)
			}
			approx(t, "H", h, tc.want)
		})
	}
}

func TestEntropy_BiasedCoin(t *testing.T) {
	d := mustDist(t, []dist.Outcome{{"h"}, {"t"}}, []float64{0.9, 0.1})
	h, err := Entropy(d, nil)
	if err != nil {
		t.Fatalf("Entropy: %v", err)
	}
	want := -(0.9*math.Log2(0.9) + 0.1*math.Log2(0.1))
	approx(t, "H", h, want)
}

func TestEntropy_BadVars(t *testing.T) {
	if _, err := Entropy(copyDist(t), []int{5}); err == nil {
		t.Error("expected error for out-of-range variable")
	}
}

func TestConditionalEntropy(t *testing.T) {
	// Copy: knowing one variable determines the other.
	h, err := ConditionalEntropy(copyDist(t), []int{0}, []int{1})
	if err != nil {
		t.Fatalf("ConditionalEntropy: %v", err)
	}
	approx(t, "H(X|Y) copy", h, 0)

	// Independent: conditioning changes nothing.
	h, err = ConditionalEntropy(independentDist(t), []int{0}, []int{1})
	if err != nil {
		t.Fatalf("ConditionalEntropy: %v", err)
	}
	approx(t, "H(X|Y) independent", h, 1)

	// XOR: one bit given leaves the pair with one bit.
	h, err = ConditionalEntropy(xorDist(t), []int{0, 1}, []int{2})
	if err != nil {
		t.Fatalf("ConditionalEntropy: %v", err)
	}
	approx(t, "H(XY|Z) xor", h, 1)
}
