package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DateLayout is the calendar date format used for storage and on the wire
const DateLayout = "2006-01-02"

// SQLiteStore implements persistence using SQLite
type SQLiteStore struct {
	db  *sqlx.DB // writes, transactions take the write lock on begin
	rdb *sqlx.DB // query-only reads, deferred transactions on a WAL snapshot
}

// NewSQLiteStore opens the database file and creates the schema if it is missing.
// Write transactions take the write lock immediately, so concurrent writers queue on busy_timeout
// instead of failing on lock upgrade. Reads go through a separate query-only pool and never wait
// for writers.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_txlock=immediate"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to set WAL mode: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Initialize(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close db: %v)", err, closeErr)
		}
		return nil, err
	}

	rdb, err := sqlx.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=query_only(1)")
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to open read pool: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to open read pool: %w", err)
	}
	s.rdb = rdb
	return s, nil
}

// Initialize creates the database schema, safe to call on an existing database
func (s *SQLiteStore) Initialize(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id TEXT NOT NULL UNIQUE,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			department TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id TEXT NOT NULL,
			date TEXT NOT NULL,
			status TEXT NOT NULL,
			UNIQUE (employee_id, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_employee_id ON attendance(employee_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(date)`,
	}

	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// Close closes both connection pools
func (s *SQLiteStore) Close() error {
	return errors.Join(s.rdb.Close(), s.db.Close())
}

// inTx runs fn as a single unit of work. The transaction is committed only if fn succeeds
// and is rolled back on every other exit path, panics included.
func (s *SQLiteStore) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return runTx(ctx, s.db, fn)
}

// inReadTx runs fn in a read transaction, all queries of fn see the same snapshot
func (s *SQLiteStore) inReadTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return runTx(ctx, s.rdb, fn)
}

func runTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// no-op after a successful commit
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Printf("[WARN] failed to rollback transaction: %v", rbErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a failed UNIQUE constraint on the given column,
// column is matched against the "table.column" list sqlite puts into the message
func isUniqueViolation(err error, column string) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	if sqliteErr.Code() != sqlite3.SQLITE_CONSTRAINT_UNIQUE && sqliteErr.Code() != sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
		return false
	}
	return column == "" || strings.Contains(sqliteErr.Error(), column)
}
