// ABOUTME: Rewrites block numbers after external renumbering
// ABOUTME: Block-indexed arrays are compacted under the new numbering; preorder-indexed state is preserved

package dom

// RenameNodes rewrites t's block numbering: renameBB[old] is the new
// block number for old, or -1 to delete old entirely. Block-indexed
// arrays (toPre, toPost, idomsBB, nodes, and children lists) are
// rewritten under the new numbering and resized to max(renameBB). The
// purely preorder-to-preorder relationships (toParentPre, the snca
// state) are left untouched, since relabeling a block does not change
// the DFS tree's topology; fromPre's block-number values are remapped
// through renameBB so that a later full rebuild still starts from a
// consistent DFS snapshot. RenameNodes leaves t unusable for a further
// InsertEdge/DeleteEdge until a fresh Construct call — see
// requireIncrementalUpdatable and DESIGN.md.
func RenameNodes(t *Tree, renameBB []int) {
	maxNew := 0
	for _, nb := range renameBB {
		if nb > maxNew {
			maxNew = nb
		}
	}

	newToPre := make([]int, maxNew+1)
	newToPost := make([]int, maxNew+1)
	newIdomsBB := make([]int, maxNew+1)
	newNodes := make([]DomTreeNode, maxNew+1)

	for old := 1; old < len(renameBB); old++ {
		nb := renameBB[old]
		if nb == -1 {
			continue
		}
		if old < len(t.dfs.toPre) {
			newToPre[nb] = t.dfs.toPre[old]
		}
		if old < len(t.dfs.toPost) {
			newToPost[nb] = t.dfs.toPost[old]
		}
	}

	for old := 1; old < len(renameBB); old++ {
		nb := renameBB[old]
		if nb == -1 || old >= len(t.idomsBB) {
			continue
		}
		oldIdom := t.idomsBB[old]
		switch {
		case oldIdom == 0:
			newIdomsBB[nb] = 0
		case oldIdom >= 1 && oldIdom < len(renameBB) && renameBB[oldIdom] != -1:
			newIdomsBB[nb] = renameBB[oldIdom]
		default:
			// The old immediate dominator was itself deleted: nb
			// becomes a root of the renumbered tree.
			newIdomsBB[nb] = 0
		}
	}

	for nb := 1; nb <= maxNew; nb++ {
		idom := newIdomsBB[nb]
		if idom == 0 {
			continue
		}
		newNodes[idom].children = append(newNodes[idom].children, nb)
	}
	sortChildren(newNodes)

	for p := 1; p < len(t.dfs.fromPre); p++ {
		old := t.dfs.fromPre[p]
		if old >= 1 && old < len(renameBB) {
			t.dfs.fromPre[p] = renameBB[old]
		}
	}

	t.dfs.toPre = newToPre
	t.dfs.toPost = newToPost
	t.idomsBB = newIdomsBB
	t.nodes = newNodes
	t.assignLevels(maxNew)
	t.staleForIncrementalUpdate = true
}
