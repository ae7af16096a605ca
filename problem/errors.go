package problem

import "errors"

// Sentinel errors for problem-file parsing and validation. Parse errors
// wrap the 1-based line number; match with errors.Is.
var (
	// ErrNilGraph is returned by Validate on a Problem without a graph.
	ErrNilGraph = errors.New("problem: graph is nil")

	// ErrNoSection is returned for content before any section header.
	ErrNoSection = errors.New("problem: content before any section header")

	// ErrBadNodeLine is returned for a node line that is not "id: (x,y)".
	ErrBadNodeLine = errors.New("problem: malformed node line")

	// ErrBadEdgeLine is returned for an edge line that is not
	// "(from,to): cost".
	ErrBadEdgeLine = errors.New("problem: malformed edge line")

	// ErrBadCoordinate is returned when a coordinate does not parse to a
	// finite number.
	ErrBadCoordinate = errors.New("problem: coordinate is not a finite number")

	// ErrBadCost is returned when a cost does not parse to a
	// non-negative finite number.
	ErrBadCost = errors.New("problem: cost is not a non-negative finite number")

	// ErrMissingOrigin is returned when the Origin section is absent or
	// empty.
	ErrMissingOrigin = errors.New("problem: origin section missing or empty")

	// ErrMissingDestinations is returned when the Destinations section
	// is absent or empty.
	ErrMissingDestinations = errors.New("problem: destinations section missing or empty")

	// ErrUnknownNode is returned when an edge, the origin or a
	// destination references an undeclared node.
	ErrUnknownNode = errors.New("problem: reference to undeclared node")
)
