// ABOUTME: CFG is the read-only collaborator interface this package consumes
// ABOUTME: Construction, renumbering, and use of the CFG are the caller's responsibility

package dom

// VirtualExit is the sentinel block number naming the virtual exit node
// of a post-dominator tree: the node whose predecessors (in the
// reversed graph) are every block with no successors. DFS does not push
// it; it starts from each such block directly, and SNCA stands the
// virtual exit at preorder 0. It is never assigned a preorder number
// and never appears in a Tree's idomsBB or nodes arrays.
const VirtualExit = -1

// CFG is a read-only, 1-based view over a control-flow graph of basic
// blocks. Block 1 is the entry for a forward dominator tree. This
// package never constructs, mutates, or owns a CFG; it only reads it
// during a single Construct/InsertEdge/DeleteEdge call, and the caller
// must not mutate the underlying graph while such a call is in flight.
//
// A predecessor or successor value of 0 denotes an absent/virtual edge
// (for example, entry to a catch handler with no corresponding normal
// edge). It is silently skipped during post-dominator traversal; a
// forward traversal that encounters one treats it as caller error.
type CFG interface {
	// NBlocks returns the number of blocks, numbered 1..NBlocks().
	NBlocks() int
	// Preds returns the ordered predecessor block numbers of b.
	Preds(b int) []int
	// Succs returns the ordered successor block numbers of b.
	Succs(b int) []int
}
