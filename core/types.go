package core

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors returned by Graph operations. Wrapped variants carry
// the offending ID or value; match with errors.Is.
var (
	// ErrEmptyNodeID reports an empty node identifier.
	ErrEmptyNodeID = errors.New("core: empty node ID")
	// ErrNodeNotFound reports a lookup or an arc endpoint naming an
	// undeclared node.
	ErrNodeNotFound = errors.New("core: node not found")
	// ErrBadCoordinate reports a NaN or infinite node coordinate.
	ErrBadCoordinate = errors.New("core: coordinate must be finite")
	// ErrBadCost reports a negative, NaN or infinite arc cost.
	ErrBadCost = errors.New("core: cost must be non-negative and finite")
)

// Node pairs an identifier with its position on the plane.
type Node struct {
	ID string    // unique identifier, never empty
	At orb.Point // planar (x, y) position
}

// Arc is one directed, weighted connection as stored on its source
// node. Parallel arcs between the same endpoints stay separate entries.
type Arc struct {
	To   string  // destination node ID
	Cost float64 // non-negative, finite traversal cost
}

// Graph is an in-memory directed multigraph over nodes with planar
// coordinates. Outgoing arcs preserve insertion order per source node,
// which is what makes declaration-order expansion reproducible.
//
// Graph is not safe for concurrent mutation.
type Graph struct {
	nodes map[string]orb.Point // node ID -> position
	out   map[string][]Arc     // node ID -> outgoing arcs, insertion order
	arcs  int                  // total number of arcs
}

// NewGraph returns an empty Graph ready for AddNode / AddEdge calls.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]orb.Point),
		out:   make(map[string][]Arc),
	}
}
