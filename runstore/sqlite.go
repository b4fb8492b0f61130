//go:build sqlite

// SPDX-License-Identifier: MIT

package runstore

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/katalvlaran/ddpgrowth/ctxlog"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps runs in a single SQLite table.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore returns a store backed by the database file at path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func newSQLiteStore(path string) (Store, error) {
	return NewSQLiteStore(path), nil
}

// Init opens the database and creates the runs table. It is idempotent.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err = createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	ctxlog.FromContext(ctx).Debug("runstore initialized", "backend", "sqlite", "path", s.path)

	return nil
}

// SaveRun inserts or replaces rec.
func (s *SQLiteStore) SaveRun(ctx context.Context, rec RunRecord) error {
	if rec.ID == "" {
		return ErrEmptyID
	}
	db, err := s.getDB()
	if err != nil {
		return err
	}
	payload, err := EncodeRun(rec)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, algorithm, created_at, schema_version, codec_version, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			algorithm = excluded.algorithm,
			created_at = excluded.created_at,
			schema_version = excluded.schema_version,
			codec_version = excluded.codec_version,
			payload = excluded.payload
	`, rec.ID, rec.Algorithm, rec.CreatedAt.UnixNano(), rec.SchemaVersion, rec.CodecVersion, payload)

	return err
}

// GetRun returns the record saved under id.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (RunRecord, bool, error) {
	if id == "" {
		return RunRecord{}, false, ErrEmptyID
	}
	db, err := s.getDB()
	if err != nil {
		return RunRecord{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM runs WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, false, nil
	}
	if err != nil {
		return RunRecord{}, false, err
	}
	rec, err := DecodeRun(payload)
	if err != nil {
		return RunRecord{}, false, err
	}

	return rec, true, nil
}

// ListRuns returns every record ordered by CreatedAt, then ID.
func (s *SQLiteStore) ListRuns(ctx context.Context) ([]RunRecord, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT payload FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var payload []byte
		if err = rows.Scan(&payload); err != nil {
			return nil, err
		}
		rec, err := DecodeRun(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	// Rows are already ordered; re-sorting keeps Go and SQLite tie-breaks identical.
	sortRuns(out)

	return out, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrNotInitialized
	}

	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			algorithm TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			schema_version INTEGER NOT NULL,
			codec_version INTEGER NOT NULL,
			payload BLOB NOT NULL
		)
	`)

	return err
}
