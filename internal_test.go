package h5walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathHelpers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/", baseName("/"))
	assert.Equal(t, "data1", baseName("/experiment/data1"))
	assert.Equal(t, "top", baseName("/top"))

	assert.Equal(t, "/", parentPath("/"))
	assert.Equal(t, "/", parentPath("/top"))
	assert.Equal(t, "/experiment", parentPath("/experiment/data1"))

	assert.Equal(t, "/a", joinPath("/", "a"))
	assert.Equal(t, "/a/b", joinPath("/a", "b"))
}

func TestFrameDims(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shape      []int
		rows, cols int
	}{
		{nil, 1, 1},
		{[]int{5}, 5, 1},
		{[]int{2, 3}, 2, 3},
		{[]int{4, 3, 2}, 4, 6},
		{[]int{2, 0}, 2, 0},
	}
	for _, tt := range tests {
		rows, cols := frameDims(tt.shape)
		assert.Equal(t, tt.rows, rows, "shape %v rows", tt.shape)
		assert.Equal(t, tt.cols, cols, "shape %v cols", tt.shape)
	}
}

func TestFormatCellPrecision(t *testing.T) {
	t.Parallel()
	s, err := formatCell(int64(-9007199254740993))
	assert.NoError(t, err)
	assert.Equal(t, "-9007199254740993", s)

	s, err = formatCell(0.30000000000000004)
	assert.NoError(t, err)
	assert.Equal(t, "0.30000000000000004", s)

	s, err = formatCell(float32(1.5))
	assert.NoError(t, err)
	assert.Equal(t, "1.5", s)
}

func TestFormatCellOpaque(t *testing.T) {
	t.Parallel()
	_, err := formatCell(map[string]int{"x": 1})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestShapeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "scalar", shapeString(nil))
	assert.Equal(t, "(3)", shapeString([]int{3}))
	assert.Equal(t, "(2, 3)", shapeString([]int{2, 3}))
}

func TestFitCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", fitCell("ab", 5))
	assert.Equal(t, "a...", fitCell("abcdef", 4))
	assert.Equal(t, "abc", fitCell("abcdef", 3))
}
