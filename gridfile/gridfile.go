// Package gridfile reads and writes the single-file container format used
// by h5walk: a hierarchy of groups and typed, shaped datasets stored in an
// SQLite database. [Open] returns a read-only handle implementing
// [h5walk.Container]; [Create] returns a [h5walk.ContainerWriter] used when
// a subtree is exported into a fresh container.
package gridfile

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/bjaus/h5walk"
)

// formatMark identifies a gridfile database. Open refuses files without it.
const formatMark = "gridfile/1"

const schema = `
CREATE TABLE meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE nodes (
	path     TEXT PRIMARY KEY,
	parent   TEXT NOT NULL,
	name     TEXT NOT NULL,
	kind     INTEGER NOT NULL,
	position INTEGER NOT NULL,
	dtype    TEXT,
	shape    TEXT
);
CREATE INDEX nodes_parent ON nodes(parent, position);
CREATE TABLE cells (
	path  TEXT NOT NULL,
	idx   INTEGER NOT NULL,
	value,
	PRIMARY KEY (path, idx)
);
CREATE TABLE attrs (
	path  TEXT NOT NULL,
	name  TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (path, name)
);
`

const (
	kindGroup   = 0
	kindDataset = 1
)

// File is a read-only handle on a gridfile container.
type File struct {
	db   *sql.DB
	path string
}

// Open opens an existing container read-only. A missing file, a file that
// is not SQLite, or a database without the gridfile mark all fail with
// [h5walk.ErrContainerOpen].
func Open(path string) (*File, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", h5walk.ErrContainerOpen, err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", h5walk.ErrContainerOpen, err)
	}
	// SQLite supports one writer; the reader needs no pool either.
	db.SetMaxOpenConns(1)

	var mark string
	err = db.QueryRow(`SELECT value FROM meta WHERE key = 'format'`).Scan(&mark)
	if err != nil || mark != formatMark {
		db.Close()
		return nil, fmt.Errorf("%w: %s is not a gridfile container", h5walk.ErrContainerOpen, path)
	}
	return &File{db: db, path: path}, nil
}

// Path returns the file path the container was opened from.
func (f *File) Path() string { return f.path }

// Close releases the database handle.
func (f *File) Close() error { return f.db.Close() }

// Children implements [h5walk.Container]. Children are returned in the
// order they were written, the container's native order.
func (f *File) Children(path string) ([]h5walk.Node, error) {
	if path != h5walk.RootPath {
		var kind int
		err := f.db.QueryRow(`SELECT kind FROM nodes WHERE path = ?`, path).Scan(&kind)
		if err != nil || kind != kindGroup {
			return nil, fmt.Errorf("%w: no such group %s", h5walk.ErrContainerRead, path)
		}
	}
	rows, err := f.db.Query(
		`SELECT path, kind, dtype, shape FROM nodes WHERE parent = ? ORDER BY position`, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", h5walk.ErrContainerRead, err)
	}
	defer rows.Close()

	var nodes []h5walk.Node
	for rows.Next() {
		var (
			n     h5walk.Node
			kind  int
			dtype sql.NullString
			shape sql.NullString
		)
		if err := rows.Scan(&n.Path, &kind, &dtype, &shape); err != nil {
			return nil, fmt.Errorf("%w: %v", h5walk.ErrContainerRead, err)
		}
		if kind == kindDataset {
			n.Kind = h5walk.KindDataset
			n.Type = h5walk.TypeTag(dtype.String)
			if n.Shape, err = decodeShape(shape.String); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", h5walk.ErrContainerRead, n.Path, err)
			}
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", h5walk.ErrContainerRead, err)
	}
	return nodes, nil
}

// ReadArray implements [h5walk.Container].
func (f *File) ReadArray(path string) (h5walk.Array, error) {
	var (
		kind  int
		dtype sql.NullString
		shape sql.NullString
	)
	err := f.db.QueryRow(`SELECT kind, dtype, shape FROM nodes WHERE path = ?`, path).
		Scan(&kind, &dtype, &shape)
	if err != nil || kind != kindDataset {
		return h5walk.Array{}, fmt.Errorf("%w: no such dataset %s", h5walk.ErrContainerRead, path)
	}
	a := h5walk.Array{Type: h5walk.TypeTag(dtype.String)}
	if a.Shape, err = decodeShape(shape.String); err != nil {
		return h5walk.Array{}, fmt.Errorf("%w: %s: %v", h5walk.ErrContainerRead, path, err)
	}

	rows, err := f.db.Query(`SELECT value FROM cells WHERE path = ? ORDER BY idx`, path)
	if err != nil {
		return h5walk.Array{}, fmt.Errorf("%w: %v", h5walk.ErrContainerRead, err)
	}
	defer rows.Close()
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return h5walk.Array{}, fmt.Errorf("%w: %v", h5walk.ErrContainerRead, err)
		}
		a.Elems = append(a.Elems, v)
	}
	if err := rows.Err(); err != nil {
		return h5walk.Array{}, fmt.Errorf("%w: %v", h5walk.ErrContainerRead, err)
	}
	return a, nil
}

// Attributes implements [h5walk.Container].
func (f *File) Attributes(path string) (map[string]string, error) {
	rows, err := f.db.Query(`SELECT name, value FROM attrs WHERE path = ? ORDER BY name`, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", h5walk.ErrContainerRead, err)
	}
	defer rows.Close()
	attrs := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("%w: %v", h5walk.ErrContainerRead, err)
		}
		attrs[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", h5walk.ErrContainerRead, err)
	}
	return attrs, nil
}

func decodeShape(s string) ([]int, error) {
	if s == "" || s == "null" {
		return nil, nil
	}
	var shape []int
	if err := json.Unmarshal([]byte(s), &shape); err != nil {
		return nil, err
	}
	return shape, nil
}
