// Package store manages mealplan's durable state in a local SQLite file:
// per-tag preference scores, selected recipes, the pending review batch, and
// the singleton workflow record. It is the only package that touches storage.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"mealplan/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; an existing database with another version is rejected.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store wraps the SQLite database holding all planner state.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the planner database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to start over)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// State reads the singleton workflow record.
func (s *Store) State(ctx context.Context) (State, error) {
	var (
		rawMode int64
		offset  int64
	)
	row := s.db.QueryRowContext(ctx, "SELECT mode, fetch_offset FROM workflow_state WHERE id = 1")
	if err := row.Scan(&rawMode, &offset); err != nil {
		return State{}, fmt.Errorf("read workflow state: %w", err)
	}
	mode, err := ParseMode(rawMode)
	if err != nil {
		return State{}, err
	}
	return State{Mode: mode, Offset: offset}, nil
}

// SetMode transitions the workflow phase.
func (s *Store) SetMode(ctx context.Context, mode Mode) error {
	if _, err := ParseMode(int64(mode)); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "UPDATE workflow_state SET mode = ? WHERE id = 1", int64(mode)); err != nil {
		return fmt.Errorf("set mode: %w", err)
	}
	return nil
}

// IncrementOffset advances the fetch offset by the number of recipes consumed
// in the finished gather phase. The offset only ever grows.
func (s *Store) IncrementOffset(ctx context.Context, n int64) error {
	if n < 0 {
		return fmt.Errorf("offset increment must be non-negative, got %d", n)
	}
	if _, err := s.db.ExecContext(ctx, "UPDATE workflow_state SET fetch_offset = fetch_offset + ? WHERE id = 1", n); err != nil {
		return fmt.Errorf("increment offset: %w", err)
	}
	return nil
}
