package search_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/search"
)

// newRouteNet builds the six-node route net shared by these examples:
// origin 2, destinations 5 and 4.
func newRouteNet() *core.Graph {
	g := core.NewGraph()
	nodes := []struct {
		id   string
		x, y float64
	}{
		{"1", 4, 1}, {"2", 2, 2}, {"3", 4, 4}, {"4", 6, 3}, {"5", 5, 6}, {"6", 7, 5},
	}
	for _, n := range nodes {
		_ = g.AddNode(n.id, n.x, n.y)
	}
	edges := []struct {
		from, to string
		cost     float64
	}{
		{"2", "1", 4}, {"3", "1", 5}, {"1", "3", 5}, {"2", "3", 4},
		{"3", "2", 5}, {"4", "1", 6}, {"1", "4", 6}, {"4", "3", 5},
		{"3", "5", 6}, {"5", "3", 6}, {"4", "5", 7}, {"5", "4", 8},
		{"6", "3", 7}, {"3", "6", 7},
	}
	for _, e := range edges {
		_ = g.AddEdge(e.from, e.to, e.cost)
	}
	return g
}

// ExampleBFS walks the smallest possible problem: two nodes, one arc.
// The trace records every pop together with the parent that pushed it.
func ExampleBFS() {
	g := core.NewGraph()
	_ = g.AddNode("N1", 10, 20)
	_ = g.AddNode("N2", 30, 40)
	_ = g.AddEdge("N1", "N2", 5)

	res, err := search.BFS(g, "N1", []string{"N2"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Goal, res.Expanded)
	fmt.Println(strings.Join(res.Path, " -> "))
	for _, v := range res.Trace {
		fmt.Printf("%s parent=%q\n", v.ID, v.Parent)
	}
	// Output:
	// N2 2
	// N1 -> N2
	// N1 parent=""
	// N2 parent="N1"
}

// ExampleGBFS shows greedy best-first heading straight for the goal
// region: three pops where BFS needs five.
func ExampleGBFS() {
	g := newRouteNet()

	res, err := search.GBFS(g, "2", []string{"5", "4"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("goal:", res.Goal)
	fmt.Println("expanded:", res.Expanded)
	fmt.Println("path:", strings.Join(res.Path, " -> "))
	// Output:
	// goal: 5
	// expanded: 3
	// path: 2 -> 3 -> 5
}

// ExampleWeightedAStar contrasts the default weight with w=0, which
// degenerates to uniform-cost order and closes the other goal.
func ExampleWeightedAStar() {
	g := newRouteNet()

	greedy, _ := search.WeightedAStar(g, "2", []string{"5", "4"})
	uniform, _ := search.WeightedAStar(g, "2", []string{"5", "4"}, search.WithWeight(0))
	fmt.Printf("w=1.5: %s\n", strings.Join(greedy.Path, " -> "))
	fmt.Printf("w=0: %s\n", strings.Join(uniform.Path, " -> "))
	// Output:
	// w=1.5: 2 -> 3 -> 5
	// w=0: 2 -> 1 -> 4
}

// ExampleRunAll reaches every destination in one walk and reports the
// first path recorded per goal.
func ExampleRunAll() {
	g := newRouteNet()

	res, err := search.RunAll(search.MethodBFS, g, "2", []string{"5", "4"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, goal := range res.Goals() {
		fmt.Printf("%s: %s\n", goal, strings.Join(res.Paths[goal], " -> "))
	}
	fmt.Println("expanded:", res.Expanded)
	// Output:
	// 4: 2 -> 1 -> 4
	// 5: 2 -> 3 -> 5
	// expanded: 6
}

// ExampleParseMethod maps CLI tokens onto methods; the -all suffix
// selects the reach-every-goal variant.
func ExampleParseMethod() {
	m, all, _ := search.ParseMethod("cus2-all")
	fmt.Println(m, all)
	m, all, _ = search.ParseMethod("A*")
	fmt.Println(m, all)
	// Output:
	// CUS2 true
	// AS false
}
