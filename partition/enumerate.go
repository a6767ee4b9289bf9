package partition

// Enumerate generates every partition of [0,n) via restricted growth
// strings. The count is the n-th Bell number, so this is only usable for
// very small n; it exists to back the brute-force reference search and
// the counting tests.
func Enumerate(n int) []*Partition {
	if n < 1 {
		return nil
	}

	var (
		out []*Partition
		rgs = make([]int, n) // rgs[i] = block of element i
		max = make([]int, n) // max[i] = 1 + max(rgs[:i])
	)

	emit := func() {
		nb := 0
		for _, b := range rgs {
			if b+1 > nb {
				nb = b + 1
			}
		}
		blocks := make([][]int, nb)
		for i, b := range rgs {
			blocks[b] = append(blocks[b], i)
		}
		out = append(out, &Partition{n: n, blocks: blocks})
	}

	var walk func(i int)
	walk = func(i int) {
		if i == n {
			emit()
			return
		}
		for b := 0; b <= max[i]; b++ {
			rgs[i] = b
			if i+1 < n {
				if b == max[i] {
					max[i+1] = max[i] + 1
				} else {
					max[i+1] = max[i]
				}
			}
			walk(i + 1)
		}
	}
	walk(0)
	return out
}
