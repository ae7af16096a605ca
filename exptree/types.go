// Package exptree turns search traces into displayable trees: the
// exploration tree of a single run, and a binary-search-tree view over
// node IDs that can carry visit-order badges.
package exptree

import "errors"

// Sentinel errors for tree construction.
var (
	// ErrEmptyTrace is returned when the trace has no entries.
	ErrEmptyTrace = errors.New("exptree: empty trace")

	// ErrNoRoot is returned when the first trace entry carries a parent.
	ErrNoRoot = errors.New("exptree: trace does not start at a root")

	// ErrStrayRoot is returned when a later entry introduces a second
	// parentless node.
	ErrStrayRoot = errors.New("exptree: second parentless node")

	// ErrForeignParent is returned when an entry names a parent that
	// never popped before it.
	ErrForeignParent = errors.New("exptree: parent never visited")
)

// Node is one exploration-tree node. Children keep attach order, which
// is the discovery order of the run that produced the trace.
type Node struct {
	ID       string
	Order    int // 1-based ordinal of the node's first pop
	Children []*Node
}

// Tree is the exploration tree of one search run: one edge per
// first-seen (node, parent) pair of the trace.
type Tree struct {
	Root *Node

	nodes map[string]*Node
}

// BSTNode is one node of the binary-search-tree view.
type BSTNode struct {
	ID          string
	Order       int // 1-based first-pop ordinal, 0 when never popped
	Left, Right *BSTNode
}

// BST is a binary search tree over node IDs, ordered lexicographically.
// Build it incrementally with Insert or height-balanced with FromIDs,
// then stamp exploration ordinals onto it with Annotate.
type BST struct {
	Root *BSTNode
}
