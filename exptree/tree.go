package exptree

import (
	"fmt"

	"github.com/katalvlaran/wayfind/search"
)

// FromTrace builds the exploration tree of one run. The first entry
// becomes the root; every later entry attaches its node under the
// parent recorded on the node's first pop. Re-pops of an already placed
// node change nothing: linkage and ordinal are fixed by first sight.
//
// A well-formed trace starts with exactly one parentless entry and
// names only parents that popped earlier; anything else is reported as
// ErrEmptyTrace, ErrNoRoot, ErrStrayRoot or ErrForeignParent.
func FromTrace(trace search.Trace) (*Tree, error) {
	if len(trace) == 0 {
		return nil, ErrEmptyTrace
	}
	if trace[0].Parent != "" {
		return nil, fmt.Errorf("%w: first visit %q has parent %q", ErrNoRoot, trace[0].ID, trace[0].Parent)
	}

	root := &Node{ID: trace[0].ID, Order: 1}
	t := &Tree{Root: root, nodes: map[string]*Node{root.ID: root}}
	for i, v := range trace[1:] {
		if _, seen := t.nodes[v.ID]; seen {
			continue
		}
		if v.Parent == "" {
			return nil, fmt.Errorf("%w: visit %q", ErrStrayRoot, v.ID)
		}
		parent, ok := t.nodes[v.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: visit %q names %q", ErrForeignParent, v.ID, v.Parent)
		}
		// i indexes trace[1:], so the full-trace ordinal is i+2.
		node := &Node{ID: v.ID, Order: i + 2}
		t.nodes[v.ID] = node
		parent.Children = append(parent.Children, node)
	}

	return t, nil
}

// Find returns the node for id, or nil when the walk never popped it.
func (t *Tree) Find(id string) *Node { return t.nodes[id] }

// Size returns the number of distinct nodes in the tree.
func (t *Tree) Size() int { return len(t.nodes) }

// Depth returns the number of levels, 1 for a lone root.
func (t *Tree) Depth() int { return nodeDepth(t.Root) }

func nodeDepth(n *Node) int {
	if n == nil {
		return 0
	}
	best := 0
	for _, c := range n.Children {
		if d := nodeDepth(c); d > best {
			best = d
		}
	}
	return best + 1
}

// PreOrder lists IDs parent-first, children in discovery order.
func (t *Tree) PreOrder() []string {
	out := make([]string, 0, len(t.nodes))
	var walk func(n *Node)
	walk = func(n *Node) {
		out = append(out, n.ID)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)

	return out
}

// PostOrder lists IDs children-first, the root last.
func (t *Tree) PostOrder() []string {
	out := make([]string, 0, len(t.nodes))
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			walk(c)
		}
		out = append(out, n.ID)
	}
	walk(t.Root)

	return out
}
