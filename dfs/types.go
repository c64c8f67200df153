// Package dfs defines the Tree type, traversal options, result and sentinel errors.
package dfs

import "errors"

var (
	// ErrTreeNil is returned when a nil *Tree is passed to Preorder.
	ErrTreeNil = errors.New("dfs: tree is nil")

	// ErrRootOutOfRange indicates that the root is not a vertex of the tree.
	ErrRootOutOfRange = errors.New("dfs: root out of range")
)

// Tree is a rooted forest stored as per-vertex child lists.
// Children[u] lists the vertices whose parent is u, in ascending ID order.
type Tree struct {
	Children [][]int
}

// Len returns the number of vertices the tree is defined over.
func (t *Tree) Len() int { return len(t.Children) }

// Option configures optional behavior of Preorder.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the preorder walk.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a vertex is first reached.
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error
}

// DefaultOptions returns DFSOptions without hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{OnVisit: nil}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// DFSResult captures the outcome of a preorder walk.
type DFSResult struct {
	// Order records vertices in the sequence they were first visited (pre-order).
	Order []int

	// Depth holds the number of tree edges from the root, -1 for unvisited vertices.
	Depth []int
}
