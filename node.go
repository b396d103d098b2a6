package h5walk

import "strings"

// TypeTag identifies the element type of a dataset.
type TypeTag string

const (
	TypeInt      TypeTag = "int"
	TypeFloat    TypeTag = "float"
	TypeString   TypeTag = "string"
	TypeCompound TypeTag = "compound"
)

// String returns the type name.
func (t TypeTag) String() string { return string(t) }

// Kind distinguishes the two node variants of a container.
type Kind int

const (
	KindGroup Kind = iota
	KindDataset
)

// Node is a single entry in a container hierarchy: either a group that holds
// named children, or a dataset that holds a typed, shaped array. Shape and
// Type are meaningful for datasets only.
type Node struct {
	Path  string
	Kind  Kind
	Shape []int
	Type  TypeTag
}

// Name returns the last path segment, or "/" for the root.
func (n Node) Name() string { return baseName(n.Path) }

// IsGroup reports whether the node is a group.
func (n Node) IsGroup() bool { return n.Kind == KindGroup }

// IsDataset reports whether the node is a dataset.
func (n Node) IsDataset() bool { return n.Kind == KindDataset }

// Array is the raw content of a dataset: a row-major element sequence with
// its shape and element type. An empty shape denotes a scalar. Elements are
// one of int64, float64, string, or []byte; anything else is treated as
// opaque and cannot be flattened.
type Array struct {
	Shape []int
	Type  TypeTag
	Elems []any
}

// Size returns the number of elements implied by the shape. A scalar has
// size 1. Any zero dimension makes the size 0.
func (a Array) Size() int { return shapeSize(a.Shape) }

func shapeSize(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// RootPath is the path of the container root group.
const RootPath = "/"

func baseName(path string) string {
	if path == RootPath || path == "" {
		return RootPath
	}
	i := strings.LastIndexByte(path, '/')
	return path[i+1:]
}

func parentPath(path string) string {
	if path == RootPath || path == "" {
		return RootPath
	}
	i := strings.LastIndexByte(path, '/')
	if i <= 0 {
		return RootPath
	}
	return path[:i]
}

func joinPath(dir, name string) string {
	if dir == RootPath || dir == "" {
		return "/" + name
	}
	return dir + "/" + name
}
