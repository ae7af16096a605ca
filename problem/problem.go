// Package problem loads route-search problems from the four-section
// text format.
//
// A problem file holds, in any order, the sections
//
//	Nodes:
//	1: (4,1)
//	2: (2,2)
//	Edges:
//	(2,1): 4
//	(1,2): 4
//	Origin:
//	2
//	Destinations:
//	1; 4
//
// Section headers must match exactly ("Nodes:", "Edges:", "Origin:",
// "Destinations:"). Blank lines and surrounding whitespace are ignored;
// a later Nodes or Edges header reopens the section and its lines
// accumulate, while a later Origin or Destinations line replaces the
// previous value. Every parse error carries its 1-based line number and
// wraps one of the package sentinels.
package problem

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// Problem bundles everything one search run needs: the graph, the node
// to start from and the nodes that count as goals.
type Problem struct {
	// Graph is the parsed weighted digraph.
	Graph *core.Graph

	// Origin is the start node ID.
	Origin string

	// Destinations are the goal node IDs in file order, duplicates
	// preserved.
	Destinations []string
}

// Validate checks the cross-references of a problem: the graph must be
// present, origin and destinations non-empty, and every referenced ID
// declared in the graph. Parse calls it before returning; it is exported
// for problems assembled by hand.
func (p *Problem) Validate() error {
	if p.Graph == nil {
		return ErrNilGraph
	}
	if p.Origin == "" {
		return ErrMissingOrigin
	}
	if len(p.Destinations) == 0 {
		return ErrMissingDestinations
	}
	if !p.Graph.HasNode(p.Origin) {
		return fmt.Errorf("%w: origin %q", ErrUnknownNode, p.Origin)
	}
	for _, d := range p.Destinations {
		if !p.Graph.HasNode(d) {
			return fmt.Errorf("%w: destination %q", ErrUnknownNode, d)
		}
	}
	return nil
}
