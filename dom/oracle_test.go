package dom

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const oracleTrialsPerShape = 60

// genChain builds a straight-line CFG of n blocks: 1 -> 2 -> ... -> n.
func genChain(n int) [][]int {
	succs := make([][]int, n+1)
	for b := 1; b < n; b++ {
		succs[b] = []int{b + 1}
	}
	return succs
}

// genRandomDAG builds a random DAG on n blocks where every edge points
// from a lower-numbered block to a higher-numbered one, guaranteeing
// acyclicity and that block 1 can reach everything it has an edge path
// to.
func genRandomDAG(rng *rand.Rand, n, extraEdges int) [][]int {
	succs := make([][]int, n+1)
	for b := 1; b < n; b++ {
		succs[b] = append(succs[b], b+1)
	}
	for i := 0; i < extraEdges; i++ {
		from := 1 + rng.Intn(n-1)
		to := from + 1 + rng.Intn(n-from)
		if to > n {
			continue
		}
		succs[from] = append(succs[from], to)
	}
	return succs
}

// genHeapLike builds a merge-heavy graph reminiscent of a heap object
// graph: a handful of "fan-out" blocks near the root, each eventually
// converging on a small set of shared "fan-in" blocks, plus back edges
// from the tail blocks to earlier merge points (loops), mirroring the
// shape that stresses semidominator computation most.
func genHeapLike(rng *rand.Rand, n int) [][]int {
	succs := make([][]int, n+1)
	fanout := 1 + n/4
	for b := 1; b <= fanout && b < n; b++ {
		targets := 1 + rng.Intn(3)
		for i := 0; i < targets; i++ {
			to := fanout + 1 + rng.Intn(n-fanout)
			succs[b] = append(succs[b], to)
		}
	}
	for b := fanout + 1; b < n; b++ {
		to := b + 1 + rng.Intn(n-b)
		succs[b] = append(succs[b], to)
		if rng.Intn(4) == 0 && b > fanout+2 {
			back := fanout + 1 + rng.Intn(b-fanout)
			succs[b] = append(succs[b], back)
		}
	}
	return succs
}

func dedupeNeighbors(succs [][]int) [][]int {
	for b := range succs {
		seen := map[int]bool{}
		out := succs[b][:0]
		for _, s := range succs[b] {
			if s >= 1 && !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
		succs[b] = out
	}
	return succs
}

func TestOracleEquivalenceAcrossShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	shapes := []struct {
		name string
		gen  func() [][]int
	}{
		{"chain", func() [][]int { return genChain(1 + rng.Intn(20)) }},
		{"dag", func() [][]int { n := 4 + rng.Intn(20); return dedupeNeighbors(genRandomDAG(rng, n, n)) }},
		{"heaplike", func() [][]int { return dedupeNeighbors(genHeapLike(rng, 8+rng.Intn(24))) }},
	}

	for _, shape := range shapes {
		shape := shape
		t.Run(shape.name, func(t *testing.T) {
			for trial := 0; trial < oracleTrialsPerShape; trial++ {
				succs := shape.gen()
				cfg, err := NewSliceCFGFromSuccs(succs)
				require.NoError(t, err)

				forward := ConstructDomTree(cfg)
				wantForward := NaiveDominators(cfg, false)
				for b := 1; b <= cfg.NBlocks(); b++ {
					require.Equalf(t, wantForward[b], forward.ImmediateDominator(b),
						"forward idom mismatch at block %d, trial %d, shape %s", b, trial, shape.name)
				}

				post := ConstructPostDomTree(cfg)
				wantPost := NaiveDominators(cfg, true)
				for b := 1; b <= cfg.NBlocks(); b++ {
					require.Equalf(t, wantPost[b], post.ImmediateDominator(b),
						"post-dom idom mismatch at block %d, trial %d, shape %s", b, trial, shape.name)
				}
			}
		})
	}
}

func TestOracleEquivalenceAcrossIncrementalEdits(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < oracleTrialsPerShape; trial++ {
		n := 5 + rng.Intn(15)
		succs := dedupeNeighbors(genRandomDAG(rng, n, n/2))
		cfg, err := NewSliceCFGFromSuccs(succs)
		require.NoError(t, err)

		tree := ConstructDomTree(cfg)

		edits := 1 + rng.Intn(5)
		for e := 0; e < edits; e++ {
			from := 1 + rng.Intn(n)
			to := 1 + rng.Intn(n)
			if from == to {
				continue
			}

			if rng.Intn(2) == 0 {
				// Insert: add the edge if it isn't already present.
				if !containsInt(succs[from], to) {
					succs[from] = append(succs[from], to)
					newCFG, err := NewSliceCFGFromSuccs(cloneAdjacency(succs))
					require.NoError(t, err)
					tree.InsertEdge(newCFG, from, to)
					cfg = newCFG
				}
			} else {
				// Delete: remove the edge if present and it isn't the
				// block's only outgoing edge (keep the CFG sane).
				if containsInt(succs[from], to) && len(succs[from]) > 1 {
					succs[from] = removeInt(succs[from], to)
					newCFG, err := NewSliceCFGFromSuccs(cloneAdjacency(succs))
					require.NoError(t, err)
					tree.DeleteEdge(newCFG, from, to)
					cfg = newCFG
				}
			}

			want := NaiveDominators(cfg, false)
			for b := 1; b <= cfg.NBlocks(); b++ {
				require.Equalf(t, want[b], tree.ImmediateDominator(b),
					"idom mismatch at block %d after edit %d, trial %d", b, e, trial)
			}
		}
	}
}

func cloneAdjacency(succs [][]int) [][]int {
	out := make([][]int, len(succs))
	for i, s := range succs {
		out[i] = append([]int(nil), s...)
	}
	return out
}

func removeInt(s []int, v int) []int {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
