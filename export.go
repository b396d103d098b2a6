package h5walk

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// FS is the file-system collaborator the executor writes through. MkdirAll
// must be idempotent: creating a directory that already exists is not an
// error. The default implementation is the local file system.
type FS interface {
	WriteFile(path string, data []byte) error
	MkdirAll(path string) error
}

type osFS struct{}

func (osFS) WriteFile(path string, data []byte) error { return os.WriteFile(path, data, 0o644) }
func (osFS) MkdirAll(path string) error               { return os.MkdirAll(path, 0o755) }

// Exporter drives export plans to concrete CSV artifacts. It reads through
// a Tree and writes through an FS; the source container is never mutated.
type Exporter struct {
	tree *Tree
	fs   FS
}

// NewExporter returns an exporter writing to the local file system.
func NewExporter(t *Tree) *Exporter { return &Exporter{tree: t, fs: osFS{}} }

// NewExporterFS returns an exporter writing through fs.
func NewExporterFS(t *Tree, fs FS) *Exporter { return &Exporter{tree: t, fs: fs} }

// ExportCSV exports the node to dest and reports every attempted item.
//
// A dataset produces one file at dest. A group of datasets produces one
// combined file at dest. A group with subgroups produces a directory at
// dest mirroring the container structure, with one file per flat subgroup.
// Individual read, flatten, or write failures are recorded in the report
// and never abort the rest of the run; a failed item produces no file at
// all rather than a malformed one.
func (e *Exporter) ExportCSV(n Node, dest string) Report {
	var rep Report
	p, err := e.tree.Plan(n)
	if err != nil {
		rep.failure(dest, n.Path, err)
		return rep
	}
	e.execute(p, dest, &rep)
	return rep
}

func (e *Exporter) execute(p Plan, dest string, rep *Report) {
	switch p.Kind {
	case PlanSingleDataset:
		e.writeDataset(p.Node, dest, rep)
	case PlanFlatGroup:
		e.writeCombined(p.Datasets, dest, rep)
	case PlanMixedGroup:
		if err := e.fs.MkdirAll(dest); err != nil {
			rep.failure(dest, p.Node.Path, err)
			return
		}
		e.writeCombined(p.Datasets, filepath.Join(dest, p.Node.Name()+".csv"), rep)
		e.descend(p.Subgroups, dest, rep)
	case PlanNestedGroup:
		if err := e.fs.MkdirAll(dest); err != nil {
			rep.failure(dest, p.Node.Path, err)
			return
		}
		e.descend(p.Subgroups, dest, rep)
	}
}

// descend re-plans each subgroup under dir. A flat subgroup becomes a file
// named after it; any other subgroup becomes a directory.
func (e *Exporter) descend(subgroups []Node, dir string, rep *Report) {
	for _, g := range subgroups {
		p, err := e.tree.Plan(g)
		if err != nil {
			rep.failure(filepath.Join(dir, g.Name()), g.Path, err)
			continue
		}
		if p.Kind == PlanFlatGroup {
			e.execute(p, filepath.Join(dir, g.Name()+".csv"), rep)
		} else {
			e.execute(p, filepath.Join(dir, g.Name()), rep)
		}
	}
}

func (e *Exporter) frame(ds Node) (Frame, error) {
	a, err := e.tree.ReadArray(ds.Path)
	if err != nil {
		return Frame{}, err
	}
	return Flatten(a)
}

func (e *Exporter) writeDataset(ds Node, dest string, rep *Report) {
	f, err := e.frame(ds)
	if err != nil {
		rep.failure(dest, ds.Path, err)
		return
	}
	n, err := e.writeFrame(f, dest)
	if err != nil {
		rep.failure(dest, ds.Path, err)
		return
	}
	rep.success(dest, ds.Path, len(f.Rows), n)
}

// writeCombined renders one column block per dataset into a single file.
// Blocks are unioned to the longest row count, shorter blocks padded with
// empty cells, and headers prefixed with the dataset's local name. Each
// dataset yields its own report entry: a dataset that fails to read or
// flatten is recorded and left out, the file is still written for the
// survivors, and skipped entirely when none survive.
func (e *Exporter) writeCombined(datasets []Node, dest string, rep *Report) {
	type block struct {
		ds    Node
		frame Frame
	}
	var blocks []block
	for _, ds := range datasets {
		f, err := e.frame(ds)
		if err != nil {
			rep.failure(dest, ds.Path, err)
			continue
		}
		blocks = append(blocks, block{ds: ds, frame: f})
	}
	if len(blocks) == 0 {
		return
	}

	maxRows := 0
	for _, b := range blocks {
		if len(b.frame.Rows) > maxRows {
			maxRows = len(b.frame.Rows)
		}
	}

	var combined Frame
	for _, b := range blocks {
		for i := range b.frame.Header {
			combined.Header = append(combined.Header, fmt.Sprintf("%s.col_%d", b.ds.Name(), i))
		}
	}
	combined.Rows = make([][]string, maxRows)
	for r := 0; r < maxRows; r++ {
		var row []string
		for _, b := range blocks {
			if r < len(b.frame.Rows) {
				row = append(row, b.frame.Rows[r]...)
			} else {
				for range b.frame.Header {
					row = append(row, "")
				}
			}
		}
		combined.Rows[r] = row
	}

	n, err := e.writeFrame(combined, dest)
	if err != nil {
		rep.failure(dest, "", err)
		return
	}
	for _, b := range blocks {
		rep.success(dest, b.ds.Path, len(b.frame.Rows), n)
	}
}

// writeFrame serializes a frame to CSV in memory and writes it in one call,
// so a failed write never leaves a truncated artifact behind. It returns
// the artifact size.
func (e *Exporter) writeFrame(f Frame, dest string) (int, error) {
	data, err := marshalCSV(f)
	if err != nil {
		return 0, err
	}
	if err := e.fs.WriteFile(dest, data); err != nil {
		return 0, err
	}
	return len(data), nil
}

func marshalCSV(f Frame) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(f.Header); err != nil {
		return nil, err
	}
	for _, row := range f.Rows {
		if err := cw.Write(row); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportContainer copies the group's subtree, groups, datasets, attributes,
// and native child order included, into a freshly created container writer.
// Unlike CSV export this is an all-or-nothing copy: the first read or write
// failure aborts and is returned.
func (e *Exporter) ExportContainer(n Node, w ContainerWriter) error {
	if !n.IsGroup() {
		return fmt.Errorf("%w: %s", ErrNotGroup, n.Path)
	}
	return e.copyChildren(n.Path, RootPath, w)
}

func (e *Exporter) copyChildren(src, dst string, w ContainerWriter) error {
	children, err := e.tree.Children(src)
	if err != nil {
		return err
	}
	for _, c := range children {
		target := joinPath(dst, c.Name())
		if c.IsGroup() {
			if err := w.CreateGroup(target); err != nil {
				return err
			}
			if err := e.copyChildren(c.Path, target, w); err != nil {
				return err
			}
			continue
		}
		a, err := e.tree.ReadArray(c.Path)
		if err != nil {
			return err
		}
		attrs, err := e.tree.Attributes(c.Path)
		if err != nil {
			return err
		}
		if err := w.WriteDataset(target, a, attrs); err != nil {
			return err
		}
	}
	return nil
}
