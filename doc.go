// Package h5walk browses hierarchical data containers and exports subtrees
// to flat CSV files.
//
// A container is a tree of groups and typed, shaped datasets behind the
// [Container] interface; the gridfile subpackage provides the file-backed
// implementation and [Mem] an in-memory one. The package is strictly
// read-only towards the source container.
//
// # Browsing
//
// [NewTree] wraps an open container and lazily caches child listings. A
// [Cursor] is a value holding the current group path and the selected child
// index; [Tree.Move], [Tree.Enter], and [Tree.Leave] return new cursors and
// silently clamp invalid moves:
//
//	tree := h5walk.NewTree(c)
//	cur, err := tree.Root()
//	cur = tree.Move(cur, 1)
//	cur = tree.Enter(cur)
//
// # Planning and exporting
//
// [Classify] maps a node and its children onto an export [Plan] before any
// I/O happens. The plan kind is a pure function of the child composition: a
// dataset exports to one file, a group of datasets to one combined file, a
// group with subgroups to a directory tree. [Exporter.ExportCSV] executes
// the plan and returns a [Report]:
//
//	rep := h5walk.NewExporter(tree).ExportCSV(node, "out.csv")
//	fmt.Println(rep.Summary())
//
// Individual datasets that cannot be read or flattened become failed
// [Result] entries; the rest of the run continues. A completed run always
// reports how many items succeeded and how many failed.
//
// # Flattening
//
// [Flatten] reduces an n-dimensional [Array] to a 2-D [Frame]. Scalars and
// 1-D arrays produce a single "value" column; higher dimensions collapse
// everything after the first axis into col_i columns in row-major order.
// Compound element types fail with [ErrUnsupportedType].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrContainerOpen]: container cannot be opened at all
//   - [ErrContainerRead]: a specific group or dataset is unreadable
//   - [ErrUnsupportedType]: element type cannot be flattened
//   - [ErrNotGroup]: a group operation was given a dataset
package h5walk
