package measures

import "testing"

func TestTotalCorrelation(t *testing.T) {
	tc, err := TotalCorrelation(xorDist(t), nil, nil)
	if err != nil {
		t.Fatalf("TotalCorrelation: %v", err)
	}
	// XOR: 3 x 1 bit marginals, 2 bit joint.
	approx(t, "T(xor)", tc, 1)

	tc, err = TotalCorrelation(independentDist(t), nil, nil)
	if err != nil {
		t.Fatalf("TotalCorrelation: %v", err)
	}
	approx(t, "T(independent)", tc, 0)
}

func TestDualTotalCorrelation(t *testing.T) {
	cases := []struct {
		name string
		run  func() (float64, error)
		want float64
	}{
		{
			"xor", func() (float64, error) { return DualTotalCorrelation(xorDist(t), nil, nil) }, 2,
		},
		{
			"copy", func() (float64, error) { return DualTotalCorrelation(copyDist(t), nil, nil) }, 1,
		},
		{
			"independent", func() (float64, error) { return DualTotalCorrelation(independentDist(t), nil, nil) }, 0,
		},
		{
			// Conditioned on the xor bit, the first two bits are still coupled.
			"xor given parity", func() (float64, error) {
				return DualTotalCorrelation(xorDist(t), [][]int{{0}, {1}}, []int{2})
			}, 1,
		},
		{
			// A single group is vacuously independent.
			"single group", func() (float64, error) {
				return DualTotalCorrelation(copyDist(t), [][]int{{0, 1}}, nil)
			}, 0,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := c.run()
			if err != nil {
				t.Fatalf("DualTotalCorrelation: %v", err)
			}
			approx(t, "B", b, c.want)
		})
	}
}

func TestDualTotalCorrelation_BadSelection(t *testing.T) {
	if _, err := DualTotalCorrelation(copyDist(t), [][]int{{0, 9}}, nil); err == nil {
		t.Error("expected error for out-of-range variable")
	}
	if _, err := DualTotalCorrelation(copyDist(t), [][]int{{0}}, []int{0}); err == nil {
		t.Error("expected error for rvs/crvs overlap")
	}
}

func TestCoinformation(t *testing.T) {
	// Two variables: coinformation is mutual information.
	co, err := Coinformation(copyDist(t), nil, nil)
	if err != nil {
		t.Fatalf("Coinformation: %v", err)
	}
	approx(t, "I(copy)", co, 1)

	// XOR is the canonical negative-coinformation example.
	co, err = Coinformation(xorDist(t), nil, nil)
	if err != nil {
		t.Fatalf("Coinformation: %v", err)
	}
	approx(t, "I(xor)", co, -1)
}
