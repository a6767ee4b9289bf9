package partition

import "testing"

func TestEnumerate_BellCounts(t *testing.T) {
	bell := []int{1, 2, 5, 15, 52} // B(1)..B(5)
	for n := 1; n <= len(bell); n++ {
		parts := Enumerate(n)
		if len(parts) != bell[n-1] {
			t.Errorf("Enumerate(%d) yields %d partitions, want %d", n, len(parts), bell[n-1])
		}
	}
}

func TestEnumerate_AllDistinctAndValid(t *testing.T) {
	const n = 4
	seen := make(map[string]bool)
	for _, p := range Enumerate(n) {
		key := p.Key()
		if seen[key] {
			t.Errorf("partition %s emitted twice", p)
		}
		seen[key] = true
		// Round-trip through New to confirm validity and canonical form.
		rebuilt, err := New(n, p.Blocks())
		if err != nil {
			t.Fatalf("Enumerate produced invalid partition %s: %v", p, err)
		}
		if rebuilt.Key() != key {
			t.Errorf("partition %s is not in canonical form", p)
		}
	}
}

func TestEnumerate_Empty(t *testing.T) {
	if parts := Enumerate(0); parts != nil {
		t.Errorf("Enumerate(0) = %v, want nil", parts)
	}
}
