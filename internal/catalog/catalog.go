// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog tracks built knowledge graphs in a SQLite index.
// Implements: prd006-catalog (R1-R4);
//
//	docs/ARCHITECTURE § Catalog.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/repo-sage/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "catalog.db"
)

// Entry describes one built knowledge graph.
type Entry struct {
	Slug    string    `json:"slug"`
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Nodes   int       `json:"nodes"`
	BuiltAt time.Time `json:"built_at"`
}

// Store manages the graph catalog SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database at reposDir/index/catalog.db.
// It creates the schema if it does not exist.
func Open(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.ReposDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS graphs (
			slug TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			path TEXT NOT NULL,
			nodes INTEGER NOT NULL,
			built_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_graphs_built_at ON graphs(built_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record upserts the catalog entry for a graph, keyed by slug.
func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO graphs (slug, name, path, nodes, built_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
			name=excluded.name, path=excluded.path,
			nodes=excluded.nodes, built_at=excluded.built_at`,
		e.Slug, e.Name, e.Path, e.Nodes, e.BuiltAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording graph %s: %w", e.Slug, err)
	}
	return nil
}

// List returns all cataloged graphs, most recently built first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT slug, name, path, nodes, built_at FROM graphs
		 ORDER BY built_at DESC, slug ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog rows: %w", err)
	}
	return entries, nil
}

// Lookup returns the catalog entry for slug. The found return value is
// false when the slug has never been recorded.
func (s *Store) Lookup(ctx context.Context, slug string) (Entry, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT slug, name, path, nodes, built_at FROM graphs WHERE slug = ?`, slug)
	e, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("looking up graph %s: %w", slug, err)
	}
	return e, true, nil
}

// scanEntry reads one catalog row, parsing the stored timestamp.
func scanEntry(scan func(...any) error) (Entry, error) {
	var e Entry
	var builtAt string
	if err := scan(&e.Slug, &e.Name, &e.Path, &e.Nodes, &builtAt); err != nil {
		return Entry{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, builtAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing built_at %q: %w", builtAt, err)
	}
	e.BuiltAt = t
	return e, nil
}
