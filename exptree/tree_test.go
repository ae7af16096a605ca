package exptree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/exptree"
	"github.com/katalvlaran/wayfind/search"
)

// bfsAllTrace is the visited order of a breadth-first walk over the
// six-node route net, duplicate pop included.
func bfsAllTrace() search.Trace {
	return search.Trace{
		{ID: "2", Parent: ""},
		{ID: "1", Parent: "2"},
		{ID: "3", Parent: "2"},
		{ID: "3", Parent: "1"}, // duplicate pop, must not re-link
		{ID: "4", Parent: "1"},
		{ID: "5", Parent: "3"},
	}
}

func TestFromTrace_BuildsExplorationTree(t *testing.T) {
	tree, err := exptree.FromTrace(bfsAllTrace())
	require.NoError(t, err)

	require.NotNil(t, tree.Root)
	assert.Equal(t, "2", tree.Root.ID)
	assert.Equal(t, 1, tree.Root.Order)
	assert.Equal(t, 5, tree.Size())
	assert.Equal(t, 3, tree.Depth())

	// Children keep discovery order.
	require.Len(t, tree.Root.Children, 2)
	assert.Equal(t, "1", tree.Root.Children[0].ID)
	assert.Equal(t, "3", tree.Root.Children[1].ID)

	// The duplicate (3, parent 1) did not re-link 3 under 1.
	one := tree.Find("1")
	require.NotNil(t, one)
	require.Len(t, one.Children, 1)
	assert.Equal(t, "4", one.Children[0].ID)

	// Ordinals come from the first pop.
	assert.Equal(t, 3, tree.Find("3").Order)
	assert.Equal(t, 5, tree.Find("4").Order)
	assert.Equal(t, 6, tree.Find("5").Order)
	assert.Nil(t, tree.Find("6"))
}

func TestTree_Traversals(t *testing.T) {
	tree, err := exptree.FromTrace(bfsAllTrace())
	require.NoError(t, err)

	assert.Equal(t, []string{"2", "1", "4", "3", "5"}, tree.PreOrder())
	assert.Equal(t, []string{"4", "1", "5", "3", "2"}, tree.PostOrder())
}

func TestFromTrace_SingleVisit(t *testing.T) {
	tree, err := exptree.FromTrace(search.Trace{{ID: "A", Parent: ""}})
	require.NoError(t, err)

	assert.Equal(t, 1, tree.Size())
	assert.Equal(t, 1, tree.Depth())
	assert.Empty(t, tree.Root.Children)
}

func TestFromTrace_RootRePopIgnored(t *testing.T) {
	tree, err := exptree.FromTrace(search.Trace{
		{ID: "A", Parent: ""},
		{ID: "B", Parent: "A"},
		{ID: "A", Parent: "B"}, // cycle pop; A is already placed
	})
	require.NoError(t, err)

	assert.Equal(t, 2, tree.Size())
	assert.Equal(t, 1, tree.Find("A").Order)
	require.Len(t, tree.Find("B").Children, 0)
}

func TestFromTrace_Errors(t *testing.T) {
	_, err := exptree.FromTrace(nil)
	assert.ErrorIs(t, err, exptree.ErrEmptyTrace)

	_, err = exptree.FromTrace(search.Trace{{ID: "A", Parent: "X"}})
	assert.ErrorIs(t, err, exptree.ErrNoRoot)

	_, err = exptree.FromTrace(search.Trace{
		{ID: "A", Parent: ""},
		{ID: "B", Parent: ""},
	})
	assert.ErrorIs(t, err, exptree.ErrStrayRoot)

	_, err = exptree.FromTrace(search.Trace{
		{ID: "A", Parent: ""},
		{ID: "C", Parent: "B"},
	})
	assert.ErrorIs(t, err, exptree.ErrForeignParent)
}
