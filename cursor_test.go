package h5walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/h5walk"
)

func TestRootSelectsFirstChild(t *testing.T) {
	t.Parallel()
	tree := h5walk.NewTree(fixture(t))
	cur, err := tree.Root()
	require.NoError(t, err)
	assert.Equal(t, h5walk.RootPath, cur.Path)
	assert.Equal(t, 0, cur.Index)

	sel, ok := tree.Selected(cur)
	require.True(t, ok)
	assert.Equal(t, "/experiment", sel.Path)
}

func TestMoveClampsToBounds(t *testing.T) {
	t.Parallel()
	tree := h5walk.NewTree(fixture(t))
	cur, err := tree.Root()
	require.NoError(t, err)

	// Root has 4 children. No move may leave [0, 3].
	cur = tree.Move(cur, -10)
	assert.Equal(t, 0, cur.Index)
	cur = tree.Move(cur, 2)
	assert.Equal(t, 2, cur.Index)
	cur = tree.Move(cur, 100)
	assert.Equal(t, 3, cur.Index)
	cur = tree.Move(cur, 1)
	assert.Equal(t, 3, cur.Index)
}

func TestEnterGroup(t *testing.T) {
	t.Parallel()
	tree := h5walk.NewTree(fixture(t))
	cur, err := tree.Root()
	require.NoError(t, err)

	cur = tree.Enter(cur)
	assert.Equal(t, "/experiment", cur.Path)
	assert.Equal(t, 0, cur.Index)
}

func TestEnterDatasetIsNoop(t *testing.T) {
	t.Parallel()
	tree := h5walk.NewTree(fixture(t))
	cur, err := tree.Root()
	require.NoError(t, err)
	cur = tree.Move(cur, 3) // /scalar

	after := tree.Enter(cur)
	assert.Equal(t, cur, after)
}

func TestEnterEmptyGroupHasNoSelection(t *testing.T) {
	t.Parallel()
	tree := h5walk.NewTree(fixture(t))
	cur, err := tree.Root()
	require.NoError(t, err)
	cur = tree.Move(cur, 2) // /empty

	cur = tree.Enter(cur)
	assert.Equal(t, "/empty", cur.Path)
	assert.Equal(t, h5walk.NoSelection, cur.Index)

	_, ok := tree.Selected(cur)
	assert.False(t, ok)

	// Moving inside an empty group stays unselected, entering again is a noop.
	cur = tree.Move(cur, 1)
	assert.Equal(t, h5walk.NoSelection, cur.Index)
	assert.Equal(t, cur, tree.Enter(cur))
}

func TestLeaveRestoresPriorSelection(t *testing.T) {
	t.Parallel()
	tree := h5walk.NewTree(fixture(t))
	cur, err := tree.Root()
	require.NoError(t, err)
	cur = tree.Move(cur, 1) // /results
	cur = tree.Enter(cur)
	cur = tree.Move(cur, 1) // /results/trial2
	cur = tree.Enter(cur)
	require.Equal(t, "/results/trial2", cur.Path)

	cur = tree.Leave(cur)
	assert.Equal(t, "/results", cur.Path)
	assert.Equal(t, 1, cur.Index) // trial2 re-selected

	cur = tree.Leave(cur)
	assert.Equal(t, h5walk.RootPath, cur.Path)
	assert.Equal(t, 1, cur.Index) // results re-selected
}

func TestLeaveAtRootIsNoop(t *testing.T) {
	t.Parallel()
	tree := h5walk.NewTree(fixture(t))
	cur, err := tree.Root()
	require.NoError(t, err)
	cur = tree.Move(cur, 2)

	assert.Equal(t, cur, tree.Leave(cur))
}
