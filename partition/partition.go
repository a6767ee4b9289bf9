// Package partition implements set partitions of outcome indices. A
// partition of [0,n) stands in for a deterministic function of a joint
// outcome: outcomes in the same block map to the same function value.
//
// Partitions are kept in a canonical form (each block sorted ascending,
// blocks ordered by smallest member) so that two partitions inducing the
// same grouping compare equal regardless of how they were built. Key
// serializes the canonical form for use as a visited-set hash key.
package partition

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Partition is an immutable partition of [0,n) into disjoint non-empty
// blocks. The zero value is invalid; use New, Finest, or Merge.
type Partition struct {
	n      int
	blocks [][]int
}

// New validates blocks as a partition of [0,n): every index covered
// exactly once, no empty blocks, nothing out of range. The input is
// copied and canonicalized.
func New(n int, blocks [][]int) (*Partition, error) {
	if n < 1 {
		return nil, fmt.Errorf("partition ground set must be non-empty, got n=%d", n)
	}
	seen := make([]bool, n)
	covered := 0
	canon := make([][]int, len(blocks))
	for bi, b := range blocks {
		if len(b) == 0 {
			return nil, fmt.Errorf("block %d is empty", bi)
		}
		cb := append([]int(nil), b...)
		sort.Ints(cb)
		for _, i := range cb {
			if i < 0 || i >= n {
				return nil, fmt.Errorf("block %d: index %d out of range [0,%d)", bi, i, n)
			}
			if seen[i] {
				return nil, fmt.Errorf("index %d appears in more than one block", i)
			}
			seen[i] = true
			covered++
		}
		canon[bi] = cb
	}
	if covered != n {
		return nil, fmt.Errorf("blocks cover %d of %d indices", covered, n)
	}
	sortBlocks(canon)
	return &Partition{n: n, blocks: canon}, nil
}

// Finest returns the partition of [0,n) into n singleton blocks.
func Finest(n int) *Partition {
	blocks := make([][]int, n)
	for i := 0; i < n; i++ {
		blocks[i] = []int{i}
	}
	return &Partition{n: n, blocks: blocks}
}

// N returns the size of the ground set.
func (p *Partition) N() int { return p.n }

// NumBlocks returns the number of blocks.
func (p *Partition) NumBlocks() int { return len(p.blocks) }

// Block returns the i-th block in canonical order. Must not be modified.
func (p *Partition) Block(i int) []int { return p.blocks[i] }

// Blocks returns the blocks in canonical order. Must not be modified.
func (p *Partition) Blocks() [][]int { return p.blocks }

// BlockOf returns the canonical block index containing idx.
func (p *Partition) BlockOf(idx int) int {
	for bi, b := range p.blocks {
		for _, i := range b {
			if i == idx {
				return bi
			}
		}
	}
	return -1
}

// Merge returns a new partition with blocks a and b (canonical indices)
// fused into one. The receiver is unchanged.
func (p *Partition) Merge(a, b int) *Partition {
	merged := make([]int, 0, len(p.blocks[a])+len(p.blocks[b]))
	merged = append(merged, p.blocks[a]...)
	merged = append(merged, p.blocks[b]...)
	sort.Ints(merged)

	blocks := make([][]int, 0, len(p.blocks)-1)
	for bi, blk := range p.blocks {
		if bi == a || bi == b {
			continue
		}
		blocks = append(blocks, blk)
	}
	blocks = append(blocks, merged)
	sortBlocks(blocks)
	return &Partition{n: p.n, blocks: blocks}
}

// BlockSizes returns the multiset of block sizes, ascending.
func (p *Partition) BlockSizes() []int {
	sizes := make([]int, len(p.blocks))
	for i, b := range p.blocks {
		sizes[i] = len(b)
	}
	sort.Ints(sizes)
	return sizes
}

// Key serializes the canonical form, for visited-set membership.
func (p *Partition) Key() string {
	var sb strings.Builder
	for bi, b := range p.blocks {
		if bi > 0 {
			sb.WriteByte('|')
		}
		for i, idx := range b {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(idx))
		}
	}
	return sb.String()
}

// String renders the partition as {0 1}{2} style block sets.
func (p *Partition) String() string {
	var sb strings.Builder
	for _, b := range p.blocks {
		sb.WriteByte('{')
		for i, idx := range b {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(idx))
		}
		sb.WriteByte('}')
	}
	return sb.String()
}

// sortBlocks orders canonical (sorted) blocks by their smallest member.
func sortBlocks(blocks [][]int) {
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i][0] < blocks[j][0]
	})
}
