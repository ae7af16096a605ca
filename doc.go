// Package wayfind is a small toolkit for route search over weighted,
// directed graphs laid out on a 2-D plane: load a problem file, run a
// search strategy, inspect the path and the full exploration trace.
//
// 🚀 What is wayfind?
//
//	A deterministic, single-threaded search library built around one
//	generic traversal engine and six interchangeable strategies:
//		• BFS  - breadth-first, fewest-hops paths
//		• DFS  - depth-first, stack-driven exploration
//		• GBFS - greedy best-first on straight-line distance
//		• AS   - A* on cost so far plus straight-line distance
//		• CUS1 - uniform cost ordered by (cost, heuristic)
//		• CUS2 - weighted A* with a tunable heuristic multiplier
//
// ✨ Why choose wayfind?
//
//   - Deterministic by construction: every tie-break rule is specified,
//     two runs over one problem always agree
//   - Full visibility: every strategy reports the visited order, not just
//     the final path
//   - Single-goal and reach-them-all modes share one engine
//
// Everything is organized under four subpackages plus one command:
//
//	core/        - Graph, Node and Arc primitives with planar coordinates
//	search/      - the traversal engine, strategies and heuristics
//	exptree/     - exploration trees and BST views built from traces
//	problem/     - the four-section problem-file loader
//	cmd/wayfind/ - the command-line front end
//
// Quick ASCII example:
//
//	    2───3───5
//	    │   │
//	    1───4
//
//	origin 2, destinations {4, 5}: BFS reaches 4 via 2 -> 1 -> 4.
//
//	go get github.com/katalvlaran/wayfind
package wayfind
