// ABOUTME: GenericDomTree: node/level maintenance and the Construct entry points
// ABOUTME: Translates preorder-indexed immediate dominators into block-indexed tree form

package dom

import "sort"

// DomTreeNode is the block-indexed dominator-tree node: its depth in
// the tree (1 at the root(s)) and the block numbers it immediately
// dominates, kept in ascending order.
type DomTreeNode struct {
	level    int
	children []int
}

// Level returns the node's depth in the dominator tree (1 at the
// root(s)); the result is unspecified for an unreachable block.
func (n DomTreeNode) Level() int { return n.level }

// Children returns the block numbers immediately dominated by this
// node, in ascending order. The caller must not mutate the result.
func (n DomTreeNode) Children() []int { return n.children }

// Tree is a dominator or post-dominator tree over a CFG. Go has no
// non-type template parameter, so the forward/post-dominator
// distinction is a field, not a generic parameter. Construct one with
// ConstructDomTree or ConstructPostDomTree; a zero Tree is not usable.
type Tree struct {
	postDom bool

	dfs  DFSTree
	snca []sncaData

	ancestors []int // scratch: path-compression forest, reused across SNCA runs
	idomsPre  []int // scratch: preorder-indexed immediate dominators

	idomsBB []int         // block-indexed; 0 means none (root or unreachable)
	nodes   []DomTreeNode // block-indexed

	// staleForIncrementalUpdate is set by RenameNodes: preorder-indexed
	// state no longer addresses the CFG through valid block numbers, so
	// InsertEdge/DeleteEdge refuse to run until a fresh Construct call.
	staleForIncrementalUpdate bool
}

// ConstructDomTree builds a forward dominator tree for cfg.
func ConstructDomTree(cfg CFG) *Tree {
	t := &Tree{postDom: false}
	t.rebuild(cfg)
	return t
}

// ConstructPostDomTree builds a post-dominator tree for cfg, using a
// virtual exit node whose predecessors (in the reversed graph) are every
// block with no successors.
func ConstructPostDomTree(cfg CFG) *Tree {
	t := &Tree{postDom: true}
	t.rebuild(cfg)
	return t
}

// IsPostDom reports whether t is a post-dominator tree.
func (t *Tree) IsPostDom() bool { return t.postDom }

// Level returns the dominator-tree depth of block b (1 at the root(s)).
// The result is unspecified for an unreachable block.
func (t *Tree) Level(b int) int { return t.nodes[b].level }

// ImmediateDominator returns the immediate (post-)dominator of b, or 0
// if b is a root or unreachable.
func (t *Tree) ImmediateDominator(b int) int { return t.idomsBB[b] }

// Children returns the block numbers immediately dominated by b, in
// ascending order. The caller must not mutate the result.
func (t *Tree) Children(b int) []int { return t.nodes[b].children }

func (t *Tree) rebuild(cfg CFG) {
	DFS(&t.dfs, cfg, t.postDom)
	nReachable := len(t.dfs.fromPre) - 1
	snca(t, cfg, nReachable)
	t.buildNodes(cfg.NBlocks())
	t.staleForIncrementalUpdate = false
}

// buildNodes allocates (or resets, reusing backing arrays) a fresh
// DomTreeNode per block, appends each block to its immediate
// dominator's children list, and assigns tree levels. Because blocks
// are iterated in ascending order, each children list ends up sorted
// ascending without a separate sort.
func (t *Tree) buildNodes(nBlocks int) {
	t.nodes = ensureDomTreeNodes(t.nodes, nBlocks+1)

	for b := 1; b <= nBlocks; b++ {
		idom := t.idomsBB[b]
		if idom == 0 {
			continue // root or unreachable: nothing to attach
		}
		t.nodes[idom].children = append(t.nodes[idom].children, b)
	}

	t.assignLevels(nBlocks)
}

// assignLevels performs an iterative BFS from the tree's root(s) — block
// 1 for a forward tree, every block with idomsBB == 0 for a
// post-dominator tree — assigning level 1 to each root and level+1 down
// the children lists. Unreachable blocks keep level 0 (unspecified).
func (t *Tree) assignLevels(nBlocks int) {
	queue := make([]int, 0, 8)
	for b := 1; b <= nBlocks; b++ {
		if t.dfs.toPre[b] != 0 && t.idomsBB[b] == 0 {
			t.nodes[b].level = 1
			queue = append(queue, b)
		}
	}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		for _, c := range t.nodes[b].children {
			t.nodes[c].level = t.nodes[b].level + 1
			queue = append(queue, c)
		}
	}
}

func ensureDomTreeNodes(nodes []DomTreeNode, n int) []DomTreeNode {
	if cap(nodes) < n {
		fresh := make([]DomTreeNode, n)
		nodes = fresh
	} else {
		nodes = nodes[:n]
	}
	for i := range nodes {
		nodes[i].children = nodes[i].children[:0]
		nodes[i].level = 0
	}
	return nodes
}

// sortChildren is used only by RenameNodes, where children lists are
// rebuilt out of ascending block order (old-to-new numbering need not be
// monotonic) and so need an explicit sort instead of relying on
// insertion order.
func sortChildren(nodes []DomTreeNode) {
	for i := range nodes {
		sort.Ints(nodes[i].children)
	}
}
