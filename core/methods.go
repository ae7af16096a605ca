package core

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
)

// HasNode reports whether id has been declared.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Coord returns the planar position of id, or ErrNodeNotFound.
func (g *Graph) Coord(id string) (orb.Point, error) {
	p, ok := g.nodes[id]
	if !ok {
		return orb.Point{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return p, nil
}

// NodeIDs returns every declared node ID in ascending lexicographic
// order. The slice is freshly allocated on each call.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Neighbors returns the outgoing arcs of id in insertion order. Nodes
// with no outgoing arcs yield an empty slice, not an error. The slice
// is a copy; callers may reorder or mutate it freely.
func (g *Graph) Neighbors(id string) ([]Arc, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	arcs := make([]Arc, len(g.out[id]))
	copy(arcs, g.out[id])
	return arcs, nil
}

// SortedNeighbors returns the outgoing arcs of id ordered by destination
// ID, then by cost for parallel arcs. The slice is a copy.
func (g *Graph) SortedNeighbors(id string) ([]Arc, error) {
	arcs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].To != arcs[j].To {
			return arcs[i].To < arcs[j].To
		}
		return arcs[i].Cost < arcs[j].Cost
	})
	return arcs, nil
}

// NodeCount returns the number of declared nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// ArcCount returns the total number of arcs, parallel arcs included.
func (g *Graph) ArcCount() int { return g.arcs }

// Bound returns the tight bounding box enclosing every node position.
// An empty graph yields orb.MultiPoint's empty bound.
func (g *Graph) Bound() orb.Bound {
	pts := make(orb.MultiPoint, 0, len(g.nodes))
	for _, p := range g.nodes {
		pts = append(pts, p)
	}
	return pts.Bound()
}
