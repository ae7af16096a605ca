package search

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/wayfind/core"
)

// Heuristic returns the straight-line (Euclidean) distance from id to
// the nearest of goals. An empty goal set yields zero, so informed
// methods degrade to their pure cost order instead of failing.
//
// Returns ErrGraphNil for a nil graph and core.ErrNodeNotFound when id
// or any goal is undeclared.
func Heuristic(g *core.Graph, id string, goals []string) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	from, err := g.Coord(id)
	if err != nil {
		return 0, err
	}
	var best float64
	for i, goal := range goals {
		to, err := g.Coord(goal)
		if err != nil {
			return 0, err
		}
		if d := planar.Distance(from, to); i == 0 || d < best {
			best = d
		}
	}
	return best, nil
}

// nearest returns the minimum straight-line distance from p to pts, or
// zero when pts is empty. This is the engine-side kernel: goal
// coordinates are resolved once per run, not once per pop.
func nearest(p orb.Point, pts []orb.Point) float64 {
	var best float64
	for i, q := range pts {
		if d := planar.Distance(p, q); i == 0 || d < best {
			best = d
		}
	}
	return best
}

// ArcViolation describes one arc whose cost undercuts the straight-line
// distance between its endpoints. Such an arc lets the Euclidean
// heuristic overestimate the true remaining cost, and the optimality
// guarantee of MethodAStar no longer holds.
type ArcViolation struct {
	From, To string
	Cost     float64 // declared arc cost
	Straight float64 // straight-line distance between the endpoints
}

// CheckAdmissible scans every arc and reports those cheaper than the
// straight-line distance between their endpoints, in NodeIDs order. An
// empty report means the Euclidean heuristic never overestimates on
// this graph.
func CheckAdmissible(g *core.Graph) ([]ArcViolation, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out []ArcViolation
	for _, id := range g.NodeIDs() {
		from, err := g.Coord(id)
		if err != nil {
			return nil, err
		}
		arcs, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		for _, a := range arcs {
			to, err := g.Coord(a.To)
			if err != nil {
				return nil, err
			}
			if d := planar.Distance(from, to); a.Cost < d {
				out = append(out, ArcViolation{From: id, To: a.To, Cost: a.Cost, Straight: d})
			}
		}
	}
	return out, nil
}
