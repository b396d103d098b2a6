package h5walk

import "fmt"

// Mem is an in-memory container implementing both [Container] and
// [ContainerWriter]. It backs tests and fixtures, and receives subtree
// copies when no file-backed destination is wanted.
type Mem struct {
	children map[string][]Node
	arrays   map[string]Array
	attrs    map[string]map[string]string
	broken   map[string]error
}

// NewMem returns an empty in-memory container with just a root group.
func NewMem() *Mem {
	return &Mem{
		children: map[string][]Node{RootPath: nil},
		arrays:   make(map[string]Array),
		attrs:    make(map[string]map[string]string),
		broken:   make(map[string]error),
	}
}

// CreateGroup adds an empty group. The parent must already exist.
func (m *Mem) CreateGroup(path string) error {
	return m.add(Node{Path: path, Kind: KindGroup})
}

// WriteDataset adds a dataset with its content and attributes. The parent
// group must already exist.
func (m *Mem) WriteDataset(path string, a Array, attrs map[string]string) error {
	if err := m.add(Node{Path: path, Kind: KindDataset, Shape: a.Shape, Type: a.Type}); err != nil {
		return err
	}
	m.arrays[path] = a
	if attrs != nil {
		m.attrs[path] = attrs
	}
	return nil
}

func (m *Mem) add(n Node) error {
	parent := parentPath(n.Path)
	if _, ok := m.children[parent]; !ok {
		return fmt.Errorf("%w: no such group %s", ErrContainerRead, parent)
	}
	m.children[parent] = append(m.children[parent], n)
	if n.IsGroup() {
		m.children[n.Path] = nil
	}
	return nil
}

// Break makes every subsequent read of path fail with err, for exercising
// partial-failure paths in tests.
func (m *Mem) Break(path string, err error) { m.broken[path] = err }

// Children implements [Container].
func (m *Mem) Children(path string) ([]Node, error) {
	if err := m.broken[path]; err != nil {
		return nil, err
	}
	nodes, ok := m.children[path]
	if !ok {
		return nil, fmt.Errorf("%w: no such group %s", ErrContainerRead, path)
	}
	return nodes, nil
}

// ReadArray implements [Container].
func (m *Mem) ReadArray(path string) (Array, error) {
	if err := m.broken[path]; err != nil {
		return Array{}, err
	}
	a, ok := m.arrays[path]
	if !ok {
		return Array{}, fmt.Errorf("%w: no such dataset %s", ErrContainerRead, path)
	}
	return a, nil
}

// Attributes implements [Container].
func (m *Mem) Attributes(path string) (map[string]string, error) {
	if err := m.broken[path]; err != nil {
		return nil, err
	}
	return m.attrs[path], nil
}

// Close implements both interfaces; it is a no-op for memory.
func (m *Mem) Close() error { return nil }
