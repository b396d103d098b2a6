package h5walk

import (
	"fmt"
	"sort"
)

// Tree is an in-memory view over one open container. Child listings are
// fetched lazily on first visit and cached for the lifetime of the open
// container; the cache is dropped when the tree is closed. A Tree is bound
// to a single container handle and never takes ownership of more than one.
type Tree struct {
	c     Container
	cache map[string][]Node
}

// NewTree wraps an open container handle.
func NewTree(c Container) *Tree {
	return &Tree{c: c, cache: make(map[string][]Node)}
}

// Children returns the child nodes of the group at path, in the container's
// native order. The first visit reads through to the container; later
// visits are served from the cache. Read failures are returned to the
// caller and are not cached, so a transient failure can be retried.
func (t *Tree) Children(path string) ([]Node, error) {
	if nodes, ok := t.cache[path]; ok {
		return nodes, nil
	}
	nodes, err := t.c.Children(path)
	if err != nil {
		return nil, err
	}
	t.cache[path] = nodes
	return nodes, nil
}

// ReadArray reads a dataset's content. Arrays are not cached; datasets can
// dwarf the child listings and are read once per export.
func (t *Tree) ReadArray(path string) (Array, error) {
	return t.c.ReadArray(path)
}

// Attributes returns the attribute map of the node at path.
func (t *Tree) Attributes(path string) (map[string]string, error) {
	return t.c.Attributes(path)
}

// Close releases the underlying container and invalidates the cache. The
// tree must not be used afterwards.
func (t *Tree) Close() error {
	t.cache = make(map[string][]Node)
	return t.c.Close()
}

// Lookup resolves a container path to its node by walking the cached
// listings from the root. The root path resolves to the root group.
func (t *Tree) Lookup(path string) (Node, error) {
	if path == RootPath || path == "" {
		return Node{Path: RootPath, Kind: KindGroup}, nil
	}
	parent := parentPath(path)
	nodes, err := t.Children(parent)
	if err != nil {
		return Node{}, err
	}
	name := baseName(path)
	for _, n := range nodes {
		if n.Name() == name {
			return n, nil
		}
	}
	return Node{}, fmt.Errorf("%w: no such node %s", ErrContainerRead, path)
}

// Info describes a dataset for the information view.
type Info struct {
	Path       string
	Name       string
	Shape      []int
	Type       TypeTag
	Size       int
	Attributes map[string]string
}

// Describe collects the information view of a dataset node: shape, type,
// element count, and attributes.
func (t *Tree) Describe(n Node) (Info, error) {
	if !n.IsDataset() {
		return Info{}, fmt.Errorf("%w: %s is a group", ErrContainerRead, n.Path)
	}
	attrs, err := t.Attributes(n.Path)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Path:       n.Path,
		Name:       n.Name(),
		Shape:      n.Shape,
		Type:       n.Type,
		Size:       shapeSize(n.Shape),
		Attributes: attrs,
	}, nil
}

// AttributeNames returns the attribute keys of an Info in sorted order, for
// stable rendering.
func (i Info) AttributeNames() []string {
	names := make([]string, 0, len(i.Attributes))
	for name := range i.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
