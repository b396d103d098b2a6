package gridfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/h5walk"
	"github.com/bjaus/h5walk/gridfile"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.h5g")
	w, err := gridfile.Create(path)
	require.NoError(t, err)

	require.NoError(t, w.CreateGroup("/experiment"))
	require.NoError(t, w.WriteDataset("/experiment/data1",
		h5walk.Array{Shape: []int{3}, Type: h5walk.TypeInt, Elems: []any{int64(1), int64(2), int64(3)}},
		map[string]string{"unit": "mV"}))
	require.NoError(t, w.WriteDataset("/experiment/data2",
		h5walk.Array{Shape: []int{2, 2}, Type: h5walk.TypeFloat, Elems: []any{1.5, 2.5, 3.5, 4.5}}, nil))
	require.NoError(t, w.CreateGroup("/empty"))
	require.NoError(t, w.Close())
	return path
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()
	_, err := gridfile.Open(filepath.Join(t.TempDir(), "nope.h5g"))
	assert.ErrorIs(t, err, h5walk.ErrContainerOpen)
}

func TestOpenNotAContainer(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "junk.h5g")
	require.NoError(t, os.WriteFile(path, []byte("not a database"), 0o644))

	_, err := gridfile.Open(path)
	assert.ErrorIs(t, err, h5walk.ErrContainerOpen)
}

func TestCreateRefusesExistingFile(t *testing.T) {
	t.Parallel()
	path := writeFixture(t)
	_, err := gridfile.Create(path)
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	f, err := gridfile.Open(writeFixture(t))
	require.NoError(t, err)
	defer f.Close()

	root, err := f.Children(h5walk.RootPath)
	require.NoError(t, err)
	require.Len(t, root, 2)
	assert.Equal(t, "/experiment", root[0].Path)
	assert.True(t, root[0].IsGroup())
	assert.Equal(t, "/empty", root[1].Path)

	children, err := f.Children("/experiment")
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "/experiment/data1", children[0].Path)
	assert.True(t, children[0].IsDataset())
	assert.Equal(t, h5walk.TypeInt, children[0].Type)
	assert.Equal(t, []int{3}, children[0].Shape)
	assert.Equal(t, []int{2, 2}, children[1].Shape)

	a, err := f.ReadArray("/experiment/data1")
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, a.Elems)

	b, err := f.ReadArray("/experiment/data2")
	require.NoError(t, err)
	assert.Equal(t, h5walk.TypeFloat, b.Type)
	assert.Equal(t, []any{1.5, 2.5, 3.5, 4.5}, b.Elems)

	attrs, err := f.Attributes("/experiment/data1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"unit": "mV"}, attrs)
}

func TestChildrenOfMissingGroup(t *testing.T) {
	t.Parallel()
	f, err := gridfile.Open(writeFixture(t))
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Children("/nope")
	assert.ErrorIs(t, err, h5walk.ErrContainerRead)

	// A dataset path is not listable either.
	_, err = f.Children("/experiment/data1")
	assert.ErrorIs(t, err, h5walk.ErrContainerRead)
}

func TestReadArrayOfGroup(t *testing.T) {
	t.Parallel()
	f, err := gridfile.Open(writeFixture(t))
	require.NoError(t, err)
	defer f.Close()

	_, err = f.ReadArray("/experiment")
	assert.ErrorIs(t, err, h5walk.ErrContainerRead)
}

func TestEmptyGroupListsNoChildren(t *testing.T) {
	t.Parallel()
	f, err := gridfile.Open(writeFixture(t))
	require.NoError(t, err)
	defer f.Close()

	children, err := f.Children("/empty")
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestExportedSubtreeReopens(t *testing.T) {
	t.Parallel()
	src, err := gridfile.Open(writeFixture(t))
	require.NoError(t, err)
	defer src.Close()

	dstPath := filepath.Join(t.TempDir(), "subset.h5g")
	w, err := gridfile.Create(dstPath)
	require.NoError(t, err)

	tree := h5walk.NewTree(src)
	e := h5walk.NewExporter(tree)
	require.NoError(t, e.ExportContainer(
		h5walk.Node{Path: "/experiment", Kind: h5walk.KindGroup}, w))
	require.NoError(t, w.Close())

	dst, err := gridfile.Open(dstPath)
	require.NoError(t, err)
	defer dst.Close()

	root, err := dst.Children(h5walk.RootPath)
	require.NoError(t, err)
	require.Len(t, root, 2)
	assert.Equal(t, "/data1", root[0].Path)

	a, err := dst.ReadArray("/data1")
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, a.Elems)

	attrs, err := dst.Attributes("/data1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"unit": "mV"}, attrs)
}
