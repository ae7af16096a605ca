package search

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/wayfind/core"
)

// expandOrder selects which neighbor ordering a strategy feeds its
// frontier.
type expandOrder int

const (
	// orderSorted expands ascending by (To, Cost).
	orderSorted expandOrder = iota
	// orderReversed pushes descending so a LIFO pops ascending.
	orderReversed
	// orderDeclared expands in arc declaration order.
	orderDeclared
)

// strategy captures everything that distinguishes one Method from
// another; the engine loop itself never branches on the Method again.
type strategy struct {
	order    expandOrder
	informed bool // heuristic participates in priorities
	reexpand bool // strictly cheaper duplicates may expand again
	frontier func(o Options) frontier
}

// strategyFor returns the strategy table row for m.
func strategyFor(m Method) (strategy, error) {
	switch m {
	case MethodBFS:
		return strategy{
			order:    orderSorted,
			frontier: func(Options) frontier { return &fifo{} },
		}, nil
	case MethodDFS:
		return strategy{
			order:    orderReversed,
			frontier: func(Options) frontier { return &lifo{} },
		}, nil
	case MethodGBFS:
		return strategy{
			order:    orderDeclared,
			informed: true,
			frontier: func(Options) frontier { return newOrdered(lessGreedy) },
		}, nil
	case MethodAStar:
		return strategy{
			order:    orderSorted,
			informed: true,
			reexpand: true,
			frontier: func(Options) frontier { return newOrdered(lessAStar) },
		}, nil
	case MethodCostFirst:
		return strategy{
			order:    orderDeclared,
			informed: true,
			frontier: func(Options) frontier { return newOrdered(lessCostFirst) },
		}, nil
	case MethodWeightedAStar:
		return strategy{
			order:    orderDeclared,
			informed: true,
			reexpand: true,
			frontier: func(o Options) frontier { return newOrdered(lessWeighted(o.Weight)) },
		}, nil
	default:
		return strategy{}, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}

// walker encapsulates the mutable state of one search run.
type walker struct {
	graph     *core.Graph
	strat     strategy
	goals     map[string]struct{} // goal membership, tested on every pop
	goalPts   []orb.Point         // goal coordinates, resolved once per run
	front     frontier
	finalized map[string]bool    // closed set for non-reexpanding methods
	bestG     map[string]float64 // best known g for reexpanding methods
	trace     Trace
	expanded  int
	seq       uint64
}

// newWalker validates inputs, resolves the strategy row and seeds the
// frontier with the origin entry.
func newWalker(m Method, g *core.Graph, origin string, goals []string, opts []Option) (*walker, error) {
	// 1) Guard the graph pointer before touching anything else.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) Resolve the strategy row.
	strat, err := strategyFor(m)
	if err != nil {
		return nil, err
	}

	// 4) Validate the origin and every goal. Duplicate goal IDs
	//    collapse to one membership entry.
	if !g.HasNode(origin) {
		return nil, fmt.Errorf("%w: %q", ErrOriginNotFound, origin)
	}
	goalSet := make(map[string]struct{}, len(goals))
	goalPts := make([]orb.Point, 0, len(goals))
	for _, id := range goals {
		p, errCoord := g.Coord(id)
		if errCoord != nil {
			return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, id)
		}
		if _, dup := goalSet[id]; dup {
			continue
		}
		goalSet[id] = struct{}{}
		goalPts = append(goalPts, p)
	}

	// 5) Assemble the walker with the duplicate policy its family needs.
	w := &walker{
		graph:   g,
		strat:   strat,
		goals:   goalSet,
		goalPts: goalPts,
		front:   strat.frontier(o),
	}
	if strat.reexpand {
		w.bestG = make(map[string]float64)
	} else {
		w.finalized = make(map[string]bool)
	}

	// 6) Seed the frontier with the origin: no parent, zero cost.
	h, err := w.heuristic(origin)
	if err != nil {
		return nil, err
	}
	w.front.push(&entry{id: origin, h: h, steps: &step{id: origin}})

	return w, nil
}

// run drives the loop until a goal pops or the frontier drains.
func (w *walker) run() (*Result, error) {
	for !w.front.empty() {
		// 1) Pop the next candidate and record the visit.
		cur := w.pop()

		// 2) Goal test on pop, before any duplicate check, so a goal
		//    surfacing through a stale entry still terminates the walk.
		if _, ok := w.goals[cur.id]; ok {
			return &Result{
				Goal:     cur.id,
				Expanded: w.expanded,
				Path:     cur.steps.path(),
				Trace:    w.trace,
			}, nil
		}

		// 3) Drop stale or already-expanded entries.
		if w.settle(cur) {
			continue
		}

		// 4) Push the successors in strategy order.
		if err := w.expand(cur); err != nil {
			return nil, err
		}
	}

	// Frontier drained with no goal popped.
	return &Result{Expanded: w.expanded, Trace: w.trace}, nil
}

// runAll drives the loop until every goal has a recorded path or the
// frontier drains. The first pop of a goal fixes its path; afterwards
// the walk keeps going straight through it.
func (w *walker) runAll() (*AllResult, error) {
	outstanding := len(w.goals)
	paths := make(map[string][]string, outstanding)
	for !w.front.empty() {
		cur := w.pop()

		if _, ok := w.goals[cur.id]; ok {
			if _, done := paths[cur.id]; !done {
				paths[cur.id] = cur.steps.path()
				outstanding--
				if outstanding == 0 {
					break
				}
			}
		}
		if w.settle(cur) {
			continue
		}
		if err := w.expand(cur); err != nil {
			return nil, err
		}
	}

	return &AllResult{Paths: paths, Expanded: w.expanded, Trace: w.trace}, nil
}

// pop takes the next frontier entry and records it in the trace. Every
// pop counts, duplicates included, so Expanded always equals len(Trace).
func (w *walker) pop() *entry {
	cur := w.front.pop()
	w.expanded++
	w.trace = append(w.trace, Visit{ID: cur.id, Parent: cur.parent})

	return cur
}

// settle reports whether cur is stale and must be skipped. As a side
// effect it finalizes cur (closed set) or records its g (best-g map).
func (w *walker) settle(cur *entry) bool {
	if w.strat.reexpand {
		best, seen := w.bestG[cur.id]
		if seen && cur.g >= best {
			return true
		}
		w.bestG[cur.id] = cur.g

		return false
	}
	if w.finalized[cur.id] {
		return true
	}
	w.finalized[cur.id] = true

	return false
}

// expand pushes cur's successors onto the frontier in strategy order.
func (w *walker) expand(cur *entry) error {
	arcs, err := w.neighbors(cur.id)
	if err != nil {
		return err
	}
	for _, a := range arcs {
		// Closed-set methods prune finalized successors at push time;
		// re-expanding methods push unconditionally and filter on pop.
		if !w.strat.reexpand && w.finalized[a.To] {
			continue
		}
		h, err := w.heuristic(a.To)
		if err != nil {
			return err
		}
		w.seq++
		w.front.push(&entry{
			id:     a.To,
			parent: cur.id,
			g:      cur.g + a.Cost,
			h:      h,
			seq:    w.seq,
			steps:  &step{id: a.To, prev: cur.steps},
		})
	}

	return nil
}

// neighbors fetches the outgoing arcs of id in the strategy's order.
func (w *walker) neighbors(id string) ([]core.Arc, error) {
	var arcs []core.Arc
	var err error
	if w.strat.order == orderDeclared {
		arcs, err = w.graph.Neighbors(id)
	} else {
		arcs, err = w.graph.SortedNeighbors(id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, id, err)
	}
	// Reversing the copy makes the LIFO pop ascending.
	if w.strat.order == orderReversed {
		for i, j := 0, len(arcs)-1; i < j; i, j = i+1, j-1 {
			arcs[i], arcs[j] = arcs[j], arcs[i]
		}
	}

	return arcs, nil
}

// heuristic returns the straight-line distance from id to the nearest
// goal; uninformed strategies and empty goal sets read zero.
func (w *walker) heuristic(id string) (float64, error) {
	if !w.strat.informed || len(w.goalPts) == 0 {
		return 0, nil
	}
	p, err := w.graph.Coord(id)
	if err != nil {
		return 0, err
	}

	return nearest(p, w.goalPts), nil
}
