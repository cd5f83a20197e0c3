// ABOUTME: Dominance, post-dominance, nearest-common-dominator, and dominated-set queries
// ABOUTME: Plus the diagnostic path/weight-aggregation conveniences supplementing the core

package dom

// Dominates reports whether a dominates b in t's dominator tree. It is
// reflexive (Dominates(a, a) is always true) and panics if either block
// is unreachable and a != b, per this package's assertion-based error
// taxonomy for programmer errors.
func (t *Tree) Dominates(a, b int) bool { return t.dominatesImpl(a, b) }

// PostDominates reports whether a post-dominates b in t's post-dominator
// tree. It shares Dominates's walk: both use the same level/idomsBB
// representation, so a single implementation serves both.
func (t *Tree) PostDominates(a, b int) bool { return t.dominatesImpl(a, b) }

func (t *Tree) dominatesImpl(a, b int) bool {
	if a == b {
		return true
	}
	if t.BBUnreachable(a) || t.BBUnreachable(b) {
		panic(newInternalError("dom: dominance query against unreachable block (a=%d, b=%d)", a, b))
	}
	la, lb := t.nodes[a].level, t.nodes[b].level
	if la > lb {
		return false
	}
	cur := b
	for steps := lb - la; steps > 0; steps-- {
		cur = t.idomsBB[cur]
	}
	return cur == a
}

// NearestCommonDominator returns the nearest common (post-)dominator of
// a and b: the deepest node that dominates both. It returns 0 if either
// a or b is 0, and panics if the upward walks fail to converge (they
// must, at the root, for any two reachable blocks in the same tree).
func (t *Tree) NearestCommonDominator(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	for t.nodes[a].level > t.nodes[b].level {
		a = t.idomsBB[a]
	}
	for t.nodes[b].level > t.nodes[a].level {
		b = t.idomsBB[b]
	}
	for a != b {
		if a == 0 || b == 0 {
			panic(newInternalError("dom: nearest_common_dominator failed to converge (a=%d, b=%d)", a, b))
		}
		a = t.idomsBB[a]
		b = t.idomsBB[b]
	}
	return a
}

// Dominated returns root followed by every block transitively dominated
// by it — every block reachable from root by following children lists —
// each appearing exactly once. Order beyond "root first" is unspecified.
func (t *Tree) Dominated(root int) []int {
	result := make([]int, 0, 8)
	queue := []int{root}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		result = append(result, b)
		queue = append(queue, t.nodes[b].children...)
	}
	return result
}

// BBUnreachable reports whether b is unreachable in t: unreachable from
// the entry for a forward tree, or unreachable from any exit for a
// post-dominator tree.
func (t *Tree) BBUnreachable(b int) bool {
	if !t.postDom {
		return b != 1 && t.dfs.toPre[b] == 0
	}
	return t.dfs.toPre[b] == 0
}

// DominatorPath returns the path from b to the root of t's dominator
// tree, starting with b itself and ending at the root.
func (t *Tree) DominatorPath(b int) []int {
	path := []int{b}
	for t.idomsBB[b] != 0 {
		b = t.idomsBB[b]
		path = append(path, b)
	}
	return path
}

// AggregateWeight post-order-folds a per-block weight vector (indexed
// like the CFG: weight[b] for block b, weight[0] ignored) over the
// dominator tree, returning, for each block, the sum of weight over
// everything it dominates (inclusive) — e.g. per-block instruction count
// folded into a code-motion cost model. Implemented iteratively, not
// recursively, since CFG size (unlike a bounded compression chain) is
// not assumed small.
func (t *Tree) AggregateWeight(weight []uint64) []uint64 {
	total := make([]uint64, len(t.nodes))

	order := make([]int, 0, len(t.nodes))
	queue := make([]int, 0, 8)
	for b := 1; b < len(t.nodes); b++ {
		if t.dfs.toPre[b] != 0 && t.idomsBB[b] == 0 {
			queue = append(queue, b)
		}
	}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		order = append(order, b)
		queue = append(queue, t.nodes[b].children...)
	}

	for i := len(order) - 1; i >= 0; i-- {
		b := order[i]
		sum := weight[b]
		for _, c := range t.nodes[b].children {
			sum += total[c]
		}
		total[b] = sum
	}
	return total
}
