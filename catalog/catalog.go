// Package catalog maintains a sqlite index over a directory of geometry
// documents, so tooling can look components up by name or kind without
// re-parsing every file.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/ohler55/ojg/oj"
	_ "modernc.org/sqlite"

	"github.com/Trophime/magnetgeo-claude/codec"
)

// ErrNotFound reports a name absent from the index.
var ErrNotFound = errors.New("component not found")

// Entry is one indexed component. R and Z are the bounding box when the
// component exposes one, zero otherwise. Record carries the full encoded
// document.
type Entry struct {
	Name   string
	Kind   string
	Path   string
	R      [2]float64
	Z      [2]float64
	Record map[string]any
}

// bounded is satisfied by components that know their extent.
type bounded interface {
	Bounds() ([2]float64, [2]float64, error)
}

// EntryFor builds an index entry from a decoded component.
func EntryFor(name, path string, v any) (Entry, error) {
	enc, ok := v.(codec.Encoder)
	if !ok {
		return Entry{}, fmt.Errorf("%q: %T is not an indexable component", name, v)
	}
	e := Entry{Name: name, Kind: enc.Classname(), Path: path}
	if b, ok := v.(bounded); ok {
		if r, z, err := b.Bounds(); err == nil {
			e.R, e.Z = r, z
		}
	}
	record, ok := codec.Encode(v).(map[string]any)
	if !ok {
		return Entry{}, fmt.Errorf("%q: component did not encode to a mapping", name)
	}
	e.Record = record
	return e, nil
}

// Catalog is a sqlite-backed component index. Writes go through one prepared
// statement inside a transaction; Flush or Close makes them durable.
type Catalog struct {
	db   *sql.DB
	tx   *sql.Tx
	stmt *sql.Stmt
	mu   sync.Mutex
}

// Open creates or opens the index at dbPath and prepares it for writing.
func Open(dbPath string) (*Catalog, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// tuned for bulk indexing, the catalog is rebuildable data
	if _, err := db.Exec("PRAGMA synchronous = OFF"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode = MEMORY"); err != nil {
		_ = db.Close()
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS components (
		name TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		path TEXT NOT NULL,
		r0 REAL, r1 REAL,
		z0 REAL, z1 REAL,
		record JSON
	);
	CREATE INDEX IF NOT EXISTS idx_components_kind ON components(kind);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.beginTx(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Catalog) beginTx() error {
	var err error
	c.tx, err = c.db.Begin()
	if err != nil {
		return err
	}
	c.stmt, err = c.tx.Prepare(`
		INSERT OR REPLACE INTO components (name, kind, path, r0, r1, z0, z1, record)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	return err
}

func (c *Catalog) commitTx() error {
	if c.stmt != nil {
		_ = c.stmt.Close()
	}
	return c.tx.Commit()
}

// Add indexes one entry.
func (c *Catalog) Add(e Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.stmt.Exec(
		e.Name, e.Kind, e.Path,
		e.R[0], e.R[1], e.Z[0], e.Z[1],
		oj.JSON(e.Record),
	)
	if err != nil {
		return fmt.Errorf("index %q: %w", e.Name, err)
	}
	return nil
}

// Flush commits pending writes and reopens the transaction.
func (c *Catalog) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.commitTx(); err != nil {
		return err
	}
	return c.beginTx()
}

func scanEntry(row interface{ Scan(...any) error }) (Entry, error) {
	var e Entry
	var record string
	err := row.Scan(&e.Name, &e.Kind, &e.Path, &e.R[0], &e.R[1], &e.Z[0], &e.Z[1], &record)
	if err != nil {
		return Entry{}, err
	}
	if record != "" {
		tree, err := oj.ParseString(record)
		if err != nil {
			return Entry{}, fmt.Errorf("record for %q: %w", e.Name, err)
		}
		if m, ok := tree.(map[string]any); ok {
			e.Record = m
		}
	}
	return e, nil
}

const selectCols = "SELECT name, kind, path, r0, r1, z0, z1, record FROM components"

// Get looks one component up by name. Uncommitted writes are visible.
func (c *Catalog) Get(name string) (Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := scanEntry(c.tx.QueryRow(selectCols+" WHERE name = ?", name))
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return e, err
}

// ByKind lists every component of one kind, ordered by name.
func (c *Catalog) ByKind(kind string) ([]Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows, err := c.tx.Query(selectCols+" WHERE kind = ? ORDER BY name", kind)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Names lists every indexed component name.
func (c *Catalog) Names() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows, err := c.tx.Query("SELECT name FROM components ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close commits pending writes and closes the database.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.commitTx(); err != nil {
		_ = c.db.Close()
		return err
	}
	return c.db.Close()
}
