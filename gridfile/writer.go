package gridfile

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bjaus/h5walk"
)

// Writer builds a new gridfile container. It satisfies
// [h5walk.ContainerWriter]; parents must be created before their children,
// which the exporter's top-down walk guarantees.
type Writer struct {
	db  *sql.DB
	pos map[string]int
}

// Create creates a fresh container file. The file must not already exist.
func Create(path string) (*Writer, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("create container: %s already exists", path)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("create container: %w", err)
	}
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("create container: %w", err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create container: %w", err)
	}
	if _, err := db.Exec(`INSERT INTO meta (key, value) VALUES ('format', ?)`, formatMark); err != nil {
		db.Close()
		return nil, fmt.Errorf("create container: %w", err)
	}
	return &Writer{db: db, pos: make(map[string]int)}, nil
}

// CreateGroup implements [h5walk.ContainerWriter].
func (w *Writer) CreateGroup(path string) error {
	return w.insertNode(path, kindGroup, "", nil)
}

// WriteDataset implements [h5walk.ContainerWriter]. The array's cells are
// stored row-major in a single transaction so a failed write never leaves a
// half-written dataset.
func (w *Writer) WriteDataset(path string, a h5walk.Array, attrs map[string]string) error {
	shape, err := json.Marshal(a.Shape)
	if err != nil {
		return fmt.Errorf("write dataset %s: %w", path, err)
	}
	if err := w.insertNode(path, kindDataset, string(a.Type), shape); err != nil {
		return err
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("write dataset %s: %w", path, err)
	}
	defer tx.Rollback()
	for i, v := range a.Elems {
		if _, err := tx.Exec(`INSERT INTO cells (path, idx, value) VALUES (?, ?, ?)`,
			path, i, cellValue(v)); err != nil {
			return fmt.Errorf("write dataset %s: %w", path, err)
		}
	}
	for name, value := range attrs {
		if _, err := tx.Exec(`INSERT INTO attrs (path, name, value) VALUES (?, ?, ?)`,
			path, name, value); err != nil {
			return fmt.Errorf("write dataset %s: %w", path, err)
		}
	}
	return tx.Commit()
}

func (w *Writer) insertNode(path string, kind int, dtype string, shape []byte) error {
	parent := parentOf(path)
	pos := w.pos[parent]
	w.pos[parent]++
	var shapeArg any
	if shape != nil {
		shapeArg = string(shape)
	}
	var dtypeArg any
	if dtype != "" {
		dtypeArg = dtype
	}
	_, err := w.db.Exec(
		`INSERT INTO nodes (path, parent, name, kind, position, dtype, shape) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		path, parent, nameOf(path), kind, pos, dtypeArg, shapeArg)
	if err != nil {
		return fmt.Errorf("create node %s: %w", path, err)
	}
	return nil
}

// Close finishes the file and releases the handle.
func (w *Writer) Close() error { return w.db.Close() }

func cellValue(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case float32:
		return float64(x)
	default:
		return v
	}
}

func parentOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			if i == 0 {
				return h5walk.RootPath
			}
			return path[:i]
		}
	}
	return h5walk.RootPath
}

func nameOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
