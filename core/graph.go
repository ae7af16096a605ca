package core

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// AddNode declares a node at the given planar position. Re-declaring an
// existing ID overwrites the stored position and keeps existing arcs.
//
// Returns ErrEmptyNodeID for a blank ID and ErrBadCoordinate for a NaN
// or infinite coordinate.
func (g *Graph) AddNode(id string, x, y float64) error {
	// 1) Validate the identifier.
	if id == "" {
		return ErrEmptyNodeID
	}
	// 2) Validate the position; NaN would poison every distance below.
	if !isFinite(x) || !isFinite(y) {
		return fmt.Errorf("%w: node %q at (%v, %v)", ErrBadCoordinate, id, x, y)
	}
	// 3) Store. Last declaration wins for the position.
	g.nodes[id] = orb.Point{x, y}
	return nil
}

// AddEdge appends one directed arc from -> to with the given cost. Both
// endpoints must already be declared, so files that reference nodes
// before declaring them fail here. Parallel arcs and self-loops are
// permitted; every call appends one more arc in insertion order.
//
// Returns ErrNodeNotFound for an undeclared endpoint and ErrBadCost for
// a negative, NaN or infinite cost.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	// 1) Both endpoints must exist before any arc may join them.
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}
	// 2) Costs feed priority queues; keep them sane up front.
	if cost < 0 || !isFinite(cost) {
		return fmt.Errorf("%w: (%s,%s) cost %v", ErrBadCost, from, to, cost)
	}
	// 3) Append, preserving declaration order.
	g.out[from] = append(g.out[from], Arc{To: to, Cost: cost})
	g.arcs++
	return nil
}

// isFinite reports whether v is an ordinary float64 (not NaN, not ±Inf).
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
