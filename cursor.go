package h5walk

// Cursor is a position in the tree: the path of the current group plus the
// index of the selected child, or NoSelection when the group is empty.
// Cursors are values; navigation returns a new cursor and never mutates the
// tree. An invalid move returns the cursor unchanged.
type Cursor struct {
	Path  string
	Index int
}

// NoSelection is the cursor index of an empty group.
const NoSelection = -1

// Root returns a cursor at the container root with the first child selected
// when the root is non-empty.
func (t *Tree) Root() (Cursor, error) {
	nodes, err := t.Children(RootPath)
	if err != nil {
		return Cursor{}, err
	}
	return Cursor{Path: RootPath, Index: firstIndex(nodes)}, nil
}

// Selected returns the node under the cursor, if any.
func (t *Tree) Selected(c Cursor) (Node, bool) {
	if c.Index == NoSelection {
		return Node{}, false
	}
	nodes, err := t.Children(c.Path)
	if err != nil || c.Index < 0 || c.Index >= len(nodes) {
		return Node{}, false
	}
	return nodes[c.Index], true
}

// Move shifts the selection by delta, clamped to the child list; there is
// no wraparound. In an empty group the cursor keeps NoSelection.
func (t *Tree) Move(c Cursor, delta int) Cursor {
	nodes, err := t.Children(c.Path)
	if err != nil || len(nodes) == 0 {
		return c
	}
	i := c.Index + delta
	if c.Index == NoSelection {
		i = 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(nodes) {
		i = len(nodes) - 1
	}
	return Cursor{Path: c.Path, Index: i}
}

// Enter descends into the selected child when it is a group, selecting its
// first child if it has one. Selecting a dataset, or nothing, is not
// enterable and returns the cursor unchanged.
func (t *Tree) Enter(c Cursor) Cursor {
	sel, ok := t.Selected(c)
	if !ok || !sel.IsGroup() {
		return c
	}
	nodes, err := t.Children(sel.Path)
	if err != nil {
		return c
	}
	return Cursor{Path: sel.Path, Index: firstIndex(nodes)}
}

// Leave ascends to the parent group, re-selecting the group the cursor came
// from so that navigating back restores the prior context. At the root the
// cursor is returned unchanged.
func (t *Tree) Leave(c Cursor) Cursor {
	if c.Path == RootPath {
		return c
	}
	from := baseName(c.Path)
	parent := parentPath(c.Path)
	nodes, err := t.Children(parent)
	if err != nil {
		return c
	}
	i := firstIndex(nodes)
	for j, n := range nodes {
		if n.Name() == from {
			i = j
			break
		}
	}
	return Cursor{Path: parent, Index: i}
}

func firstIndex(nodes []Node) int {
	if len(nodes) == 0 {
		return NoSelection
	}
	return 0
}
