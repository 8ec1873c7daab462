// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     history
// Description: SQLite history store
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/foundation/core/errors"
)

// SQLiteStore implements Store on a SQLite database in WAL mode
type SQLiteStore struct {
	db         *sql.DB
	mu         sync.RWMutex
	maxEntries int
}

// Config holds SQLite store settings
type Config struct {
	Path string
	// MaxEntries caps the stored entries; older ones are pruned on Record.
	// Zero keeps everything.
	MaxEntries int
}

// DefaultConfig returns the default store configuration
func DefaultConfig() Config {
	return Config{
		Path:       "./data/history.db",
		MaxEntries: 1000,
	}
}

// NewSQLiteStore opens or creates the database at cfg.Path
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultConfig().Path
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, failed("open", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, failed("open", err)
	}

	s := &SQLiteStore{db: db, maxEntries: cfg.MaxEntries}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, failed("schema", err)
	}
	return s, nil
}

func failed(operation string, err error) error {
	return errors.OperationFailed(errors.ModuleHistory, operation, mdwerror.CodeDatabaseError, err)
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS evaluations (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		session TEXT NOT NULL,
		input TEXT NOT NULL,
		output TEXT NOT NULL DEFAULT '',
		error_code TEXT NOT NULL DEFAULT '',
		duration_us INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_evaluations_session ON evaluations(session);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores an evaluation and prunes the oldest entries beyond the cap
func (s *SQLiteStore) Record(ctx context.Context, e *Entry) error {
	if err := validate(e); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return failed("record", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO evaluations (id, session, input, output, error_code, duration_us, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Session, e.Input, e.Output, e.ErrorCode, e.Duration.Microseconds(), e.CreatedAt)
	if err != nil {
		return failed("record", err)
	}

	if s.maxEntries > 0 {
		_, err = tx.ExecContext(ctx, `
			DELETE FROM evaluations
			WHERE seq <= (SELECT seq FROM evaluations ORDER BY seq DESC LIMIT 1 OFFSET ?)
		`, s.maxEntries)
		if err != nil {
			return failed("prune", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return failed("record", err)
	}
	return nil
}

// List returns the newest entries, optionally of one session
func (s *SQLiteStore) List(ctx context.Context, opts ListOptions) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, session, input, output, error_code, duration_us, created_at
		FROM evaluations`
	var args []interface{}
	if opts.Session != "" {
		query += ` WHERE session = ?`
		args = append(args, opts.Session)
	}
	query += ` ORDER BY seq DESC LIMIT ?`
	args = append(args, limitOf(opts))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, failed("list", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var micros int64
		if err := rows.Scan(&e.ID, &e.Session, &e.Input, &e.Output, &e.ErrorCode, &micros, &e.CreatedAt); err != nil {
			return nil, failed("list", err)
		}
		e.Duration = time.Duration(micros) * time.Microsecond
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, failed("list", err)
	}
	return entries, nil
}

// Clear deletes the entries of one session, or all of them
func (s *SQLiteStore) Clear(ctx context.Context, session string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res sql.Result
	var err error
	if session == "" {
		res, err = s.db.ExecContext(ctx, `DELETE FROM evaluations`)
	} else {
		res, err = s.db.ExecContext(ctx, `DELETE FROM evaluations WHERE session = ?`, session)
	}
	if err != nil {
		return 0, failed("clear", err)
	}
	return res.RowsAffected()
}

// Statistics counts entries, sessions and failed evaluations
func (s *SQLiteStore) Statistics(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT session), COUNT(CASE WHEN error_code != '' THEN 1 END)
		FROM evaluations
	`).Scan(&st.Entries, &st.Sessions, &st.Failed)
	if err != nil {
		return Stats{}, failed("statistics", err)
	}
	return st, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
