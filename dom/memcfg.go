// ABOUTME: SliceCFG is an adjacency-list backed convenience CFG implementation
// ABOUTME: Derives predecessor lists from successor lists when only one side is supplied

package dom

import "fmt"

// SliceCFG is a slice-backed implementation of CFG: useful for tests and
// for callers that don't already have their own CFG type. Blocks are
// numbered 1..NBlocks(); index 0 of each internal slice is unused.
type SliceCFG struct {
	succs [][]int
	preds [][]int
}

// NewSliceCFG builds a SliceCFG from explicit, already-consistent
// successor and predecessor lists. Both must have the same length
// (n+1, index 0 unused) and reference only blocks in [1, n] or the
// virtual-edge sentinel 0.
func NewSliceCFG(succs, preds [][]int) (*SliceCFG, error) {
	if len(succs) != len(preds) {
		return nil, fmt.Errorf("%w: succs has %d blocks, preds has %d", ErrInvalidCFG, len(succs)-1, len(preds)-1)
	}
	n := len(succs) - 1
	if n < 0 {
		return nil, fmt.Errorf("%w: empty adjacency lists", ErrInvalidCFG)
	}
	if err := validateAdjacency(n, succs, "successor"); err != nil {
		return nil, err
	}
	if err := validateAdjacency(n, preds, "predecessor"); err != nil {
		return nil, err
	}
	return &SliceCFG{succs: succs, preds: preds}, nil
}

// NewSliceCFGFromSuccs builds a SliceCFG from successor lists alone,
// deriving predecessor lists by scanning every successor list once.
func NewSliceCFGFromSuccs(succs [][]int) (*SliceCFG, error) {
	n := len(succs) - 1
	if n < 0 {
		return nil, fmt.Errorf("%w: empty successor list", ErrInvalidCFG)
	}
	if err := validateAdjacency(n, succs, "successor"); err != nil {
		return nil, err
	}
	preds := make([][]int, n+1)
	for b := 1; b <= n; b++ {
		for _, s := range succs[b] {
			if s == 0 {
				continue
			}
			preds[s] = append(preds[s], b)
		}
	}
	return &SliceCFG{succs: succs, preds: preds}, nil
}

func validateAdjacency(n int, lists [][]int, kind string) error {
	for b := 1; b <= n; b++ {
		for _, other := range lists[b] {
			if other != 0 && (other < 1 || other > n) {
				return fmt.Errorf("%w: block %d has %s %d out of range [1,%d]", ErrInvalidCFG, b, kind, other, n)
			}
		}
	}
	return nil
}

func (c *SliceCFG) NBlocks() int      { return len(c.succs) - 1 }
func (c *SliceCFG) Preds(b int) []int { return c.preds[b] }
func (c *SliceCFG) Succs(b int) []int { return c.succs[b] }
