package search

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrOriginNotFound is returned when the origin ID is absent.
	ErrOriginNotFound = errors.New("search: origin node not found")

	// ErrGoalNotFound is returned when a goal ID is absent.
	ErrGoalNotFound = errors.New("search: goal node not found")

	// ErrUnknownMethod is returned for an unrecognized Method value or
	// CLI token.
	ErrUnknownMethod = errors.New("search: unknown method")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph
	// fails mid-walk.
	ErrNeighbors = errors.New("search: neighbor lookup failed")
)

// Method identifies one of the built-in search strategies.
type Method int

const (
	// MethodBFS explores in breadth-first order: fewest hops first.
	MethodBFS Method = iota
	// MethodDFS explores in depth-first order off a LIFO stack.
	MethodDFS
	// MethodGBFS is greedy best-first: ordered by heuristic alone.
	MethodGBFS
	// MethodAStar orders by cost so far plus heuristic.
	MethodAStar
	// MethodCostFirst orders by (cost so far, heuristic): uniform-cost
	// search with a heuristic tie-break. CLI token CUS1.
	MethodCostFirst
	// MethodWeightedAStar orders by cost so far plus Weight times the
	// heuristic. CLI token CUS2.
	MethodWeightedAStar
)

// methodTokens maps each Method to its canonical CLI token.
var methodTokens = map[Method]string{
	MethodBFS:           "BFS",
	MethodDFS:           "DFS",
	MethodGBFS:          "GBFS",
	MethodAStar:         "AS",
	MethodCostFirst:     "CUS1",
	MethodWeightedAStar: "CUS2",
}

// String returns the canonical CLI token for m: BFS, DFS, GBFS, AS,
// CUS1 or CUS2.
func (m Method) String() string {
	if tok, ok := methodTokens[m]; ok {
		return tok
	}
	return fmt.Sprintf("unknown(%d)", int(m))
}

// ParseMethod maps a CLI token to its Method. Matching is
// case-insensitive, "A*" is an alias for AS, and an "-all" suffix
// selects the reach-every-goal variant, reported via all.
func ParseMethod(token string) (m Method, all bool, err error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if rest, ok := strings.CutSuffix(t, "-ALL"); ok {
		all = true
		t = rest
	}
	switch t {
	case "BFS":
		m = MethodBFS
	case "DFS":
		m = MethodDFS
	case "GBFS":
		m = MethodGBFS
	case "AS", "A*":
		m = MethodAStar
	case "CUS1":
		m = MethodCostFirst
	case "CUS2":
		m = MethodWeightedAStar
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownMethod, token)
	}
	return m, all, nil
}

// DefaultWeight is the heuristic multiplier MethodWeightedAStar uses
// when no WithWeight option is given.
const DefaultWeight = 1.5

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. a negative weight), it is recorded
// internally and surfaced as ErrOptionViolation when the search runs.
type Option func(*Options)

// Options holds parameters customizing a search run.
type Options struct {
	// Weight scales the heuristic term of MethodWeightedAStar.
	// All other methods ignore it.
	Weight float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Weight = DefaultWeight (1.5)
//   - error slot clear.
func DefaultOptions() Options {
	return Options{Weight: DefaultWeight, err: nil}
}

// WithWeight sets the heuristic multiplier used by MethodWeightedAStar.
//
//	w > 0: scale the heuristic by w
//	w == 0: degenerate to pure cost order
//	w < 0, NaN or ±Inf: invalid option → ErrOptionViolation
func WithWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			o.err = fmt.Errorf("%w: Weight must be non-negative and finite (%v)", ErrOptionViolation, w)
			return
		}
		o.Weight = w
	}
}

// Visit is one frontier pop: the popped node and the parent recorded on
// the popped entry. The origin's parent is the empty string.
type Visit struct {
	ID     string
	Parent string
}

// Trace is the complete pop sequence of a run, one Visit per pop.
// A node may appear more than once when duplicate frontier entries pop.
type Trace []Visit

// Result holds the outcome of a single-goal search:
//   - Goal: the goal node that popped; empty when none was reached.
//   - Expanded: total pops, duplicates included; always len(Trace).
//   - Path: origin..goal node sequence; nil when no goal was reached.
//   - Trace: the full visited order.
type Result struct {
	Goal     string
	Expanded int
	Path     []string
	Trace    Trace
}

// Found reports whether the walk reached a goal.
func (r *Result) Found() bool { return r.Goal != "" }

// AllResult holds the outcome of a reach-every-goal search:
//   - Paths: the first recorded path per reached goal; unreached goals
//     are simply absent.
//   - Expanded: total pops, duplicates included; always len(Trace).
//   - Trace: the full visited order.
type AllResult struct {
	Paths    map[string][]string
	Expanded int
	Trace    Trace
}

// Goals returns the reached goals in ascending lexicographic order.
func (r *AllResult) Goals() []string {
	ids := make([]string, 0, len(r.Paths))
	for id := range r.Paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
