// ABOUTME: Iterative dual-numbering DFS producing preorder/postorder numbers
// ABOUTME: Drives both forward and post-dominator (reversed, virtual-exit) traversal

package dom

// DFSTree holds the result of a depth-first traversal: preorder and
// postorder numbers, their inverses, and the DFS-tree parent pointers
// needed by SNCA. All slices are block- or preorder-indexed with index
// 0 unused, and are reused across calls to DFS so repeat full rebuilds
// (triggered by InsertEdge/DeleteEdge) don't reallocate.
type DFSTree struct {
	toPre       []int // block-indexed, length nBlocks+1; 0 if unreachable
	fromPre     []int // preorder-indexed, length nReachable+1
	toPost      []int // block-indexed, length nBlocks+1
	fromPost    []int // postorder-indexed, length nReachable+1
	toParentPre []int // preorder-indexed, length nReachable+1

	stack []dfsFrame // reused scratch stack
}

type dfsFrame struct {
	block          int
	parentPre      int // 0 means block is a DFS-tree root (self-loop once numbered)
	childrenPushed bool
}

// DFS resets d and performs an iterative depth-first traversal of cfg.
// For a forward tree the start node is block 1. For a post-dominator
// tree the traversal starts from every block with an empty successor
// list (the CFG's exits) and follows predecessor edges; each exit
// becomes a DFS-tree root whose parent is itself. The virtual exit
// VirtualExit above them is never pushed or numbered.
func DFS(d *DFSTree, cfg CFG, postDominator bool) {
	n := cfg.NBlocks()

	d.toPre = ensureIntLen(d.toPre, n+1)
	d.toPost = ensureIntLen(d.toPost, n+1)
	for i := range d.toPre {
		d.toPre[i] = 0
	}
	for i := range d.toPost {
		d.toPost[i] = 0
	}
	d.fromPre = append(d.fromPre[:0], 0)
	d.fromPost = append(d.fromPost[:0], 0)
	d.toParentPre = append(d.toParentPre[:0], 0)
	d.stack = d.stack[:0]

	pushRoot := func(b int) {
		d.stack = append(d.stack, dfsFrame{block: b, parentPre: 0})
	}

	if postDominator {
		for b := 1; b <= n; b++ {
			if len(cfg.Succs(b)) == 0 {
				pushRoot(b)
			}
		}
	} else {
		pushRoot(1)
	}

	for len(d.stack) > 0 {
		i := len(d.stack) - 1
		frame := d.stack[i]

		if !frame.childrenPushed {
			if d.toPre[frame.block] != 0 {
				// Already numbered: a cross or forward edge target. Discard.
				d.stack = d.stack[:i]
				continue
			}

			pre := len(d.fromPre)
			d.toPre[frame.block] = pre
			d.fromPre = append(d.fromPre, frame.block)
			if frame.parentPre == 0 {
				d.toParentPre = append(d.toParentPre, pre) // root: self-loop
			} else {
				d.toParentPre = append(d.toParentPre, frame.parentPre)
			}

			frame.childrenPushed = true
			d.stack[i] = frame

			var neighbors []int
			if postDominator {
				neighbors = cfg.Preds(frame.block)
			} else {
				neighbors = cfg.Succs(frame.block)
			}
			for _, w := range neighbors {
				if w == 0 {
					if !postDominator {
						panic(newInternalError("dom: illegal virtual edge (0) among successors of block %d in forward DFS", frame.block))
					}
					continue
				}
				d.stack = append(d.stack, dfsFrame{block: w, parentPre: pre})
			}
			continue
		}

		post := len(d.fromPost)
		d.toPost[frame.block] = post
		d.fromPost = append(d.fromPost, frame.block)
		d.stack = d.stack[:i]
	}
}

// ensureIntLen returns a slice of exactly length n, reusing s's backing
// array when it already has enough capacity.
func ensureIntLen(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}
	return s[:n]
}
