package exptree

import (
	"sort"

	"github.com/katalvlaran/wayfind/search"
)

// NewBST returns an empty binary search tree.
func NewBST() *BST { return &BST{} }

// Insert adds id by lexicographic descent; duplicates are ignored.
func (b *BST) Insert(id string) {
	b.Root = bstInsert(b.Root, id)
}

func bstInsert(n *BSTNode, id string) *BSTNode {
	if n == nil {
		return &BSTNode{ID: id}
	}
	switch {
	case id < n.ID:
		n.Left = bstInsert(n.Left, id)
	case id > n.ID:
		n.Right = bstInsert(n.Right, id)
	}

	return n
}

// FromIDs builds a height-balanced tree over ids: sort, take the middle
// element as the root, recurse on both halves. Duplicate IDs collapse.
func FromIDs(ids []string) *BST {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	uniq := sorted[:0]
	for i, id := range sorted {
		if i == 0 || id != sorted[i-1] {
			uniq = append(uniq, id)
		}
	}

	return &BST{Root: balanced(uniq)}
}

func balanced(ids []string) *BSTNode {
	if len(ids) == 0 {
		return nil
	}
	mid := len(ids) / 2

	return &BSTNode{
		ID:    ids[mid],
		Left:  balanced(ids[:mid]),
		Right: balanced(ids[mid+1:]),
	}
}

// Annotate stamps every node's Order with the 1-based ordinal of its
// first pop in trace. Nodes absent from the trace read Order 0.
func (b *BST) Annotate(trace search.Trace) {
	order := make(map[string]int, len(trace))
	for i, v := range trace {
		if _, seen := order[v.ID]; !seen {
			order[v.ID] = i + 1
		}
	}
	var walk func(n *BSTNode)
	walk = func(n *BSTNode) {
		if n == nil {
			return
		}
		n.Order = order[n.ID]
		walk(n.Left)
		walk(n.Right)
	}
	walk(b.Root)
}

// InOrder returns IDs in ascending lexicographic order.
func (b *BST) InOrder() []string {
	var out []string
	var walk func(n *BSTNode)
	walk = func(n *BSTNode) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.ID)
		walk(n.Right)
	}
	walk(b.Root)

	return out
}

// PreOrder returns IDs root-first.
func (b *BST) PreOrder() []string {
	var out []string
	var walk func(n *BSTNode)
	walk = func(n *BSTNode) {
		if n == nil {
			return
		}
		out = append(out, n.ID)
		walk(n.Left)
		walk(n.Right)
	}
	walk(b.Root)

	return out
}

// PostOrder returns IDs children-first, the root last.
func (b *BST) PostOrder() []string {
	var out []string
	var walk func(n *BSTNode)
	walk = func(n *BSTNode) {
		if n == nil {
			return
		}
		walk(n.Left)
		walk(n.Right)
		out = append(out, n.ID)
	}
	walk(b.Root)

	return out
}
