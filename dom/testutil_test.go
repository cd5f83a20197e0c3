package dom

import "testing"

// mustCFG builds a SliceCFG from successor lists, indexed from block 1
// (succs[0] is the unused placeholder), failing the test on a validation
// error.
func mustCFG(t *testing.T, succs [][]int) *SliceCFG {
	t.Helper()
	cfg, err := NewSliceCFGFromSuccs(succs)
	if err != nil {
		t.Fatalf("mustCFG: %v", err)
	}
	return cfg
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
