package problem_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wayfind/problem"
	"github.com/katalvlaran/wayfind/search"
)

// ExampleParse loads a small problem from a string and solves it.
func ExampleParse() {
	const file = `Nodes:
A: (0,0)
B: (3,0)
C: (3,4)
Edges:
(A,B): 3
(B,C): 4
(A,C): 9
Origin:
A
Destinations:
C
`
	p, err := problem.Parse(strings.NewReader(file))
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	fmt.Printf("origin %s, %d nodes, %d arcs\n",
		p.Origin, p.Graph.NodeCount(), p.Graph.ArcCount())

	res, err := search.Run(search.MethodAStar, p.Graph, p.Origin, p.Destinations)
	if err != nil {
		fmt.Println("search:", err)
		return
	}
	fmt.Println(strings.Join(res.Path, " -> "))

	// Output:
	// origin A, 3 nodes, 3 arcs
	// A -> B -> C
}
