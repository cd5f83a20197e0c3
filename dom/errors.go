// ABOUTME: Sentinel errors and the internal-error panic type
// ABOUTME: One wrapped sentinel for caller-supplied input, panics for everything else

package dom

import (
	"errors"
	"fmt"
)

// ErrInvalidCFG is wrapped, with details, when SliceCFG construction is
// given structurally invalid adjacency data. It is the one recoverable
// error condition in this package; everything else the core detects
// about its own invariants is a programmer error and panics instead.
var ErrInvalidCFG = errors.New("invalid cfg")

// InternalError is panicked when the core detects a violation of one of
// its own invariants: preorder monotonicity, an illegal virtual edge in
// a forward DFS, a dominance query against an unreachable block, or
// nearest-common-dominator failing to converge. These indicate caller
// misuse of the API contract or a bug in this package; there is no
// recoverable path for them, so they are not returned as errors.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string { return e.msg }

func newInternalError(format string, args ...any) *InternalError {
	return &InternalError{msg: fmt.Sprintf(format, args...)}
}
