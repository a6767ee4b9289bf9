package dist

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustNew(t *testing.T, outcomes []Outcome, pmf []float64) *Distribution {
	t.Helper()
	d, err := New(outcomes, pmf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func copyDist(t *testing.T) *Distribution {
	t.Helper()
	return mustNew(t,
		[]Outcome{{"0", "0"}, {"1", "1"}},
		[]float64{0.5, 0.5},
	)
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name     string
		outcomes []Outcome
		pmf      []float64
		wantErr  string
	}{
		{
			name:    "no outcomes",
			wantErr: "at least one outcome",
		},
		{
			name:     "length mismatch",
			outcomes: []Outcome{{"0"}},
			pmf:      []float64{0.5, 0.5},
			wantErr:  "1 outcomes but 2 masses",
		},
		{
			name:     "ragged arity",
			outcomes: []Outcome{{"0", "0"}, {"1"}},
			pmf:      []float64{0.5, 0.5},
			wantErr:  "has 1 variables, want 2",
		},
		{
			name:     "duplicate outcome",
			outcomes: []Outcome{{"0"}, {"0"}},
			pmf:      []float64{0.5, 0.5},
			wantErr:  "duplicate outcome",
		},
		{
			name:     "negative mass",
			outcomes: []Outcome{{"0"}, {"1"}},
			pmf:      []float64{1.2, -0.2},
			wantErr:  "negative mass",
		},
		{
			name:     "mass does not sum to one",
			outcomes: []Outcome{{"0"}, {"1"}},
			pmf:      []float64{0.5, 0.6},
			wantErr:  "sum to",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.outcomes, tc.pmf)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	outcomes := []Outcome{{"0", "0"}, {"1", "1"}}
	d := mustNew(t, outcomes, []float64{0.5, 0.5})
	outcomes[0][0] = "mutated"
	if d.Outcome(0)[0] != "0" {
		t.Error("distribution aliases caller-owned outcome storage")
	}
}

func TestNamed_AndLookupByName(t *testing.T) {
	d, err := copyDist(t).Named("X", "Y")
	if err != nil {
		t.Fatalf("Named: %v", err)
	}
	idx, err := d.IndexOf("Y")
	if err != nil || idx != 1 {
		t.Errorf("IndexOf(Y) = %d, %v; want 1, nil", idx, err)
	}
	if _, err := d.IndexOf("Z"); err == nil {
		t.Error("IndexOf(Z): expected error")
	}
	if _, err := copyDist(t).Named("X"); err == nil {
		t.Error("Named with wrong arity: expected error")
	}
	if _, err := copyDist(t).Named("X", "X"); err == nil {
		t.Error("Named with duplicate names: expected error")
	}
}

func TestMarginal(t *testing.T) {
	d := mustNew(t,
		[]Outcome{{"0", "0"}, {"0", "1"}, {"1", "0"}, {"1", "1"}},
		[]float64{0.4, 0.3, 0.2, 0.1},
	)
	m, err := d.Marginal([]int{0})
	if err != nil {
		t.Fatalf("Marginal: %v", err)
	}
	wantOutcomes := []Outcome{{"0"}, {"1"}}
	wantPMF := []float64{0.7, 0.3}
	if diff := cmp.Diff(wantOutcomes, m.Outcomes()); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantPMF, m.PMF(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("pmf mismatch (-want +got):\n%s", diff)
	}

	if _, err := d.Marginal([]int{0, 0}); err == nil {
		t.Error("repeated index: expected error")
	}
	if _, err := d.Marginal([]int{2}); err == nil {
		t.Error("out of range index: expected error")
	}
}

func TestMarginal_ReordersVariables(t *testing.T) {
	d := mustNew(t,
		[]Outcome{{"a", "x"}, {"b", "y"}},
		[]float64{0.5, 0.5},
	)
	m, err := d.Marginal([]int{1, 0})
	if err != nil {
		t.Fatalf("Marginal: %v", err)
	}
	want := []Outcome{{"x", "a"}, {"y", "b"}}
	if diff := cmp.Diff(want, m.Outcomes()); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertFunction(t *testing.T) {
	d := copyDist(t)
	ext, err := d.InsertFunction(func(o Outcome) string { return o[0] })
	if err != nil {
		t.Fatalf("InsertFunction: %v", err)
	}
	if ext.NumVars() != 3 {
		t.Fatalf("NumVars = %d, want 3", ext.NumVars())
	}
	for i, o := range ext.Outcomes() {
		if o[2] != o[0] {
			t.Errorf("outcome %d: derived symbol %q, want %q", i, o[2], o[0])
		}
	}
	// The receiver is unchanged.
	if d.NumVars() != 2 {
		t.Errorf("original NumVars = %d, want 2", d.NumVars())
	}
}

func TestInsertFunction_ExtendsNames(t *testing.T) {
	d, err := copyDist(t).Named("X", "f0")
	if err != nil {
		t.Fatalf("Named: %v", err)
	}
	ext, err := d.InsertFunction(func(o Outcome) string { return "c" })
	if err != nil {
		t.Fatalf("InsertFunction: %v", err)
	}
	names := ext.Names()
	if len(names) != 3 {
		t.Fatalf("names = %v, want 3 entries", names)
	}
	if names[2] == "X" || names[2] == "f0" {
		t.Errorf("synthetic name %q collides with existing names", names[2])
	}
}

func TestLookup(t *testing.T) {
	d := copyDist(t)
	if i, ok := d.Lookup(Outcome{"1", "1"}); !ok || i != 1 {
		t.Errorf("Lookup(11) = %d, %v; want 1, true", i, ok)
	}
	if _, ok := d.Lookup(Outcome{"0", "1"}); ok {
		t.Error("Lookup(01): expected miss")
	}
}
