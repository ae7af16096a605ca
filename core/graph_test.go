package core_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/core"
)

// buildTriangle declares three nodes and a few arcs used by most of the
// query tests below.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", 0, 0))
	require.NoError(t, g.AddNode("B", 3, 4))
	require.NoError(t, g.AddNode("C", 6, 0))
	require.NoError(t, g.AddEdge("A", "C", 6))
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "C", 5))
	return g
}

func TestAddNode_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddNode("", 1, 2), core.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddNode("A", math.NaN(), 2), core.ErrBadCoordinate)
	assert.ErrorIs(t, g.AddNode("A", 1, math.Inf(1)), core.ErrBadCoordinate)

	require.NoError(t, g.AddNode("A", -1.5, 2.25))
	p, err := g.Coord("A")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{-1.5, 2.25}, p)
}

func TestAddNode_RedeclareKeepsArcs(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddNode("A", 10, 10))

	p, err := g.Coord("A")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{10, 10}, p)

	arcs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, arcs, 2)
	assert.Equal(t, 3, g.NodeCount())
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", 0, 0))
	require.NoError(t, g.AddNode("B", 1, 1))

	assert.ErrorIs(t, g.AddEdge("A", "Z", 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge("Z", "B", 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge("A", "B", -0.5), core.ErrBadCost)
	assert.ErrorIs(t, g.AddEdge("A", "B", math.NaN()), core.ErrBadCost)
	assert.ErrorIs(t, g.AddEdge("A", "B", math.Inf(1)), core.ErrBadCost)

	require.NoError(t, g.AddEdge("A", "B", 0)) // zero cost is legal
	require.NoError(t, g.AddEdge("A", "A", 2)) // self-loop is legal
	assert.Equal(t, 2, g.ArcCount())
}

func TestNeighbors_InsertionOrderAndCopy(t *testing.T) {
	g := buildTriangle(t)
	arcs, err := g.Neighbors("A")
	require.NoError(t, err)
	// Declaration order: C first, then B.
	require.Equal(t, []core.Arc{{To: "C", Cost: 6}, {To: "B", Cost: 5}}, arcs)

	// Mutating the returned slice must not leak into the graph.
	arcs[0] = core.Arc{To: "X", Cost: 0}
	again, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, core.Arc{To: "C", Cost: 6}, again[0])
}

func TestSortedNeighbors(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddEdge("A", "B", 2)) // parallel arc, cheaper

	arcs, err := g.SortedNeighbors("A")
	require.NoError(t, err)
	require.Equal(t, []core.Arc{
		{To: "B", Cost: 2},
		{To: "B", Cost: 5},
		{To: "C", Cost: 6},
	}, arcs)
}

func TestNeighbors_UnknownNode(t *testing.T) {
	g := buildTriangle(t)
	_, err := g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.SortedNeighbors("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestNeighbors_LeafNode(t *testing.T) {
	g := buildTriangle(t)
	arcs, err := g.Neighbors("C")
	require.NoError(t, err)
	assert.Empty(t, arcs)
}

func TestNodeIDs_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"N10", "N2", "N1"} {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	// Lexicographic, not numeric: N10 sorts before N2.
	assert.Equal(t, []string{"N1", "N10", "N2"}, g.NodeIDs())
}

func TestBound(t *testing.T) {
	g := buildTriangle(t)
	b := g.Bound()
	assert.Equal(t, orb.Point{0, 0}, b.Min)
	assert.Equal(t, orb.Point{6, 4}, b.Max)
}
