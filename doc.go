// Package domtree computes and incrementally maintains dominator and
// post-dominator trees over control-flow-graph-shaped inputs.
//
// The actual API lives in the dom subpackage: construct a tree with
// dom.ConstructDomTree or dom.ConstructPostDomTree over any type
// implementing dom.CFG, query it with Dominates/NearestCommonDominator/
// DominatorPath and friends, and keep a forward dominator tree up to
// date incrementally with InsertEdge/DeleteEdge as the underlying CFG
// changes; those two methods panic on a post-dominator tree.
package domtree
