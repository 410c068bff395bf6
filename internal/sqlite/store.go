package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/loomworks/boardkit/pkg/types"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "boardkit.db"

// Store owns the SQLite database holding all board state. A single
// connection serializes statements in-process; cross-process writers are
// handled by WAL mode plus a busy timeout, with SQLITE_BUSY surfacing as
// types.ErrConflict for the caller to retry.
type Store struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
}

// Tx is a transaction over the store. Every mutation the board engine
// performs runs inside one Tx so multi-record writes commit or roll back
// as a unit.
type Tx struct {
	tx *sql.Tx
}

// Open creates the data directory if needed, opens (or creates) the
// database file and applies the schema. The schema uses IF NOT EXISTS
// throughout: the database is the durable source of truth and survives
// across runs.
func Open(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	// _txlock=immediate takes the write lock at BEGIN, so a cross-process
	// writer waits out busy_timeout instead of failing on a deferred
	// read-to-write upgrade.
	path := filepath.Join(dataDir, dbFileName)
	dsn := "file:" + url.PathEscape(path) +
		"?_txlock=immediate&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: transactions never interleave in-process.
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying indexes: %w", err)
		}
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the database connection. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// View runs fn inside a read-only transaction. The transaction is always
// rolled back; fn must not mutate.
func (s *Store) View(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return errors.New("store is closed")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapSQLiteErr(err)
	}
	defer tx.Rollback()

	if err := fn(&Tx{tx: tx}); err != nil {
		return mapSQLiteErr(err)
	}
	return nil
}

// Update runs fn inside a transaction and commits it. Any error rolls the
// whole transaction back; busy and uniqueness collisions come back as
// types.ErrConflict so the caller can re-read and retry.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return errors.New("store is closed")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapSQLiteErr(err)
	}
	defer tx.Rollback()

	if err := fn(&Tx{tx: tx}); err != nil {
		return mapSQLiteErr(err)
	}
	if err := tx.Commit(); err != nil {
		return mapSQLiteErr(err)
	}
	return nil
}

// mapSQLiteErr translates driver-level contention into the retryable
// types.ErrConflict sentinel. Uniqueness violations are included: the
// seeding and reindex paths treat "someone else got there first" as a
// conflict to re-read, never as corruption.
func mapSQLiteErr(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite3.Error
	if !errors.As(err, &se) {
		return err
	}
	switch se.Code() & 0xff {
	case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
		return fmt.Errorf("%w: %v", types.ErrConflict, err)
	case sqlite3lib.SQLITE_CONSTRAINT:
		return fmt.Errorf("%w: %v", types.ErrConflict, err)
	}
	return err
}

// NewID generates a new UUID v7 for entity IDs.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}

// Timestamps are stored as RFC3339 UTC strings.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullIfEmpty maps the empty string to SQL NULL for optional text columns.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullIfZero maps zero to SQL NULL for optional integer columns.
func nullIfZero(n int) any {
	if n == 0 {
		return nil
	}
	return n
}
