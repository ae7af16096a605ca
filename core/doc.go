// Package core provides the in-memory route graph shared by every
// wayfind package: nodes with planar coordinates joined by directed,
// weighted arcs.
//
// The Graph G = (V,E) is deliberately small and predictable:
//
//   - Directed arcs only; an undirected road is two AddEdge calls
//   - Non-negative, finite float64 costs (AddEdge rejects the rest)
//   - Parallel arcs and self-loops are legal and kept as-is
//   - Outgoing arcs preserve insertion order per source node, so a
//     search that expands "in declaration order" is reproducible
//   - Node positions are orb.Point values on the plane
//
// Why use core.Graph?
//
//   - Deterministic iteration: NodeIDs() is sorted, Neighbors() is
//     insertion-ordered, SortedNeighbors() is ordered by (To, Cost)
//   - Zero hidden state: build it once, then treat it as read-only
//
// Core Methods:
//
//	// Build
//	AddNode(id string, x, y float64) error   // O(1); re-declare overwrites position
//	AddEdge(from, to string, cost float64) error // O(1); appends one arc
//
//	// Query
//	HasNode(id string) bool                  // O(1)
//	Coord(id string) (orb.Point, error)      // O(1)
//	NodeIDs() []string                       // O(V log V), ascending
//	Neighbors(id string) ([]Arc, error)      // O(d), insertion order, copy
//	SortedNeighbors(id string) ([]Arc, error)// O(d log d), by (To, Cost), copy
//	NodeCount() int                          // O(1)
//	ArcCount() int                           // O(1)
//	Bound() orb.Bound                        // O(V), tight box over all nodes
//
// Errors:
//
//	ErrEmptyNodeID   - zero-length node ID
//	ErrNodeNotFound  - missing node or undeclared arc endpoint
//	ErrBadCoordinate - NaN or infinite coordinate
//	ErrBadCost       - negative, NaN or infinite arc cost
//
// Graph is not safe for concurrent mutation. Build it fully, then share
// it freely across concurrent readers.
package core
