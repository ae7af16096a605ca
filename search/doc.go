// Package search implements six deterministic route-search strategies
// over a core.Graph, all driven by one generic engine.
//
// Every strategy repeats the same four-step loop until a goal pops or
// the frontier drains:
//
//  1. Pop one entry from the frontier and record it in the trace.
//  2. Test the popped node against the goal set. The test runs before
//     any duplicate check, so a goal reached through a stale entry
//     still terminates the walk.
//  3. Discard stale entries: methods with a closed set skip nodes that
//     already expanded; re-expanding methods skip entries that do not
//     strictly improve the best known cost.
//  4. Push the node's successors in the strategy's neighbor order.
//
// What distinguishes the methods is only the frontier shape, the
// neighbor order, and the duplicate policy:
//
//	Method | Frontier            | Neighbor order     | Duplicates
//	BFS    | FIFO queue          | ascending (To,Cost)| closed set
//	DFS    | LIFO stack          | descending pushes  | closed set
//	GBFS   | min-heap on h       | declaration order  | closed set
//	AS     | min-heap on g+h     | ascending (To,Cost)| re-expand on cheaper g
//	CUS1   | min-heap on (g,h)   | declaration order  | closed set
//	CUS2   | min-heap on g+w*h   | declaration order  | re-expand on cheaper g
//
// g is the cost accumulated along the entry's own path, h the
// straight-line distance to the nearest goal, and w the tunable
// multiplier of CUS2 (WithWeight, default 1.5).
//
// Determinism:
//
//   - Heap ties break by insertion order, except GBFS which breaks by
//     node ID first. Two runs over one graph always produce identical
//     traces, paths and counts.
//   - Each frontier entry carries its own immutable path chain, so the
//     reported path is exactly the route that entry took, even when a
//     node is reached several times.
//
// Single-goal and reach-every-goal modes:
//
//   - Run (and the per-method helpers BFS, DFS, GBFS, AStar, CostFirst,
//     WeightedAStar) stop at the first goal popped.
//   - RunAll keeps walking until every goal has a recorded path or the
//     frontier drains, passing straight through goal nodes.
//
// Complexity, with V nodes and E arcs:
//
//   - Time:  O(V + E) for BFS/DFS (each arc pushes at most once),
//     O((V + E) log(V + E)) for the heap methods; re-expanding methods
//     pop a node again only on a strict cost improvement.
//   - Space: O(V + E) frontier entries under lazy-decrease-key; path
//     chains share tails, one step per push.
//
// The engine is single-threaded and never blocks; runs on static
// graphs complete without cancellation hooks.
package search
