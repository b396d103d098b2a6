package h5walk

import (
	"fmt"
	"strconv"
)

// Frame is a flattened dataset: a header row plus data rows of string
// cells, ready for tabular output.
type Frame struct {
	Header []string
	Rows   [][]string
}

// Flatten reduces an n-dimensional array to a 2-D frame.
//
// A scalar becomes one row with the single header "value". A 1-D array of n
// elements becomes n single-column rows under "value". A 2-D [r, c] array
// becomes r rows of c columns headed col_0 … col_{c-1}. Higher-dimensional
// arrays collapse every dimension after the first into one column axis in
// row-major order: shape[0] rows by product(shape[1:]) columns.
//
// Compound or opaque element types cannot be represented as scalar cells
// and fail with [ErrUnsupportedType]. An element count that disagrees with
// the shape fails with [ErrContainerRead].
func Flatten(a Array) (Frame, error) {
	if a.Type == TypeCompound {
		return Frame{}, fmt.Errorf("%w: %s", ErrUnsupportedType, a.Type)
	}
	if len(a.Elems) != a.Size() {
		return Frame{}, fmt.Errorf("%w: have %d elements, shape %v wants %d",
			ErrContainerRead, len(a.Elems), a.Shape, a.Size())
	}

	rows, cols := frameDims(a.Shape)
	f := Frame{Header: frameHeader(a.Shape, cols), Rows: make([][]string, rows)}
	for r := 0; r < rows; r++ {
		cells := make([]string, cols)
		for c := 0; c < cols; c++ {
			s, err := formatCell(a.Elems[r*cols+c])
			if err != nil {
				return Frame{}, err
			}
			cells[c] = s
		}
		f.Rows[r] = cells
	}
	return f, nil
}

// frameDims maps a shape onto the 2-D frame: row count first, then the
// collapsed column count.
func frameDims(shape []int) (rows, cols int) {
	switch len(shape) {
	case 0:
		return 1, 1
	case 1:
		return shape[0], 1
	default:
		return shape[0], shapeSize(shape[1:])
	}
}

func frameHeader(shape []int, cols int) []string {
	if len(shape) < 2 {
		return []string{"value"}
	}
	h := make([]string, cols)
	for i := range h {
		h[i] = "col_" + strconv.Itoa(i)
	}
	return h
}

// formatCell renders one element as a cell string. Numeric values keep
// their native precision; strings and bytes pass through untouched, any
// quoting being the concern of the output format.
func formatCell(v any) (string, error) {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10), nil
	case int:
		return strconv.Itoa(x), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	default:
		return "", fmt.Errorf("%w: cell of type %T", ErrUnsupportedType, v)
	}
}
