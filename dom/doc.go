// ABOUTME: Package documentation for the dominator-tree core
// ABOUTME: Describes scope, external collaborators, and threading model

// Package dom computes and incrementally maintains dominator and
// post-dominator trees over a control-flow graph (CFG) of basic blocks.
// It implements the Semi-NCA (SNCA) construction algorithm and its
// dynamic extension (DSNCA), which recomputes only the affected subset
// of semidominators when a single edge is inserted or deleted.
//
// The CFG itself — its construction, renumbering policy, and any use of
// the resulting tree by downstream optimization passes — is entirely
// outside this package's scope. Callers supply a CFG implementing the
// CFG interface (a read-only view of predecessor/successor lists indexed
// by 1-based block number) and this package owns only the Tree it
// builds from it.
//
// A Tree is not safe for concurrent use: mutating operations (the
// Construct functions, InsertEdge, DeleteEdge, RenameNodes) require
// exclusive access, though read-only queries against a tree that is not
// concurrently being mutated are safe. There is no parallel or streaming
// construction and no persistent (immutable) variant.
package dom
