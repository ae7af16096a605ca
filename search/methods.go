package search

import "github.com/katalvlaran/wayfind/core"

// Run executes a single-goal search: the walk stops at the first goal
// popped and reports that goal, its path, the pop count and the trace.
//
// Returns ErrGraphNil, ErrOriginNotFound, ErrGoalNotFound,
// ErrUnknownMethod or ErrOptionViolation for invalid input. A drained
// frontier is not an error: the Result simply has no goal and no path.
func Run(m Method, g *core.Graph, origin string, goals []string, opts ...Option) (*Result, error) {
	w, err := newWalker(m, g, origin, goals, opts)
	if err != nil {
		return nil, err
	}

	return w.run()
}

// RunAll executes a reach-every-goal search: the walk records the first
// path to each goal and continues, straight through goal nodes, until
// every goal is resolved or the frontier drains. Goals left unreached
// are absent from AllResult.Paths.
//
// Input validation matches Run.
func RunAll(m Method, g *core.Graph, origin string, goals []string, opts ...Option) (*AllResult, error) {
	w, err := newWalker(m, g, origin, goals, opts)
	if err != nil {
		return nil, err
	}

	return w.runAll()
}

// BFS runs breadth-first search from origin: FIFO frontier, neighbors
// ascending by (To, Cost), each node expanded at most once. Reaches the
// goal with the fewest hops, not necessarily the cheapest path.
func BFS(g *core.Graph, origin string, goals []string, opts ...Option) (*Result, error) {
	return Run(MethodBFS, g, origin, goals, opts...)
}

// DFS runs depth-first search from origin: LIFO frontier with neighbors
// pushed in descending order so the lowest ID is explored first, each
// node expanded at most once.
func DFS(g *core.Graph, origin string, goals []string, opts ...Option) (*Result, error) {
	return Run(MethodDFS, g, origin, goals, opts...)
}

// GBFS runs greedy best-first search from origin: the frontier pops the
// smallest straight-line distance to the nearest goal, ties broken by
// node ID. Fast, but the path carries no optimality guarantee.
func GBFS(g *core.Graph, origin string, goals []string, opts ...Option) (*Result, error) {
	return Run(MethodGBFS, g, origin, goals, opts...)
}

// AStar runs A* from origin: the frontier pops the smallest g+h and
// strictly cheaper revisits re-expand. With an admissible heuristic
// (see CheckAdmissible) the first goal popped closes the cheapest path.
func AStar(g *core.Graph, origin string, goals []string, opts ...Option) (*Result, error) {
	return Run(MethodAStar, g, origin, goals, opts...)
}

// CostFirst runs uniform-cost search ordered by (g, h): cheapest
// accumulated cost first, straight-line distance as the tie-break.
// CLI token CUS1.
func CostFirst(g *core.Graph, origin string, goals []string, opts ...Option) (*Result, error) {
	return Run(MethodCostFirst, g, origin, goals, opts...)
}

// WeightedAStar runs weighted A* ordered by g + w·h, where w comes from
// WithWeight and defaults to DefaultWeight. Values above 1 lean greedy
// and typically pop fewer nodes at the price of path cost. CLI token
// CUS2.
func WeightedAStar(g *core.Graph, origin string, goals []string, opts ...Option) (*Result, error) {
	return Run(MethodWeightedAStar, g, origin, goals, opts...)
}
