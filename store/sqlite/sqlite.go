/*
Package sqlite provides SQLite-backed persistence for calculation history.

PURPOSE:
  Every calculation run through the API is recorded so intake staff can
  audit what was computed, with which inputs, and when. The calculation
  engine itself is pure and stateless; this store sits entirely outside it.

KEY TABLE:
  calculations: one row per calculation - program, span, unit, the raw
  request and result as JSON, the final total, and a timestamp.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so readers don't block
  the writer.

USAGE:
  store, err := sqlite.New("./data/calculations.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  Use ":memory:" for tests.

SEE ALSO:
  - api/handlers.go: records a row after each successful calculation
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists calculation history in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		program TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		unit TEXT,
		request_json TEXT NOT NULL,
		result_json TEXT NOT NULL,
		final_total TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_created_at
		ON calculations(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_calculations_program
		ON calculations(program);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// CALCULATION HISTORY
// =============================================================================

// CalculationRecord is one stored calculation. RequestJSON and ResultJSON
// hold the API request and result verbatim; the remaining columns exist
// for listing and filtering without unmarshaling.
type CalculationRecord struct {
	ID          string
	Program     string
	StartDate   time.Time
	EndDate     time.Time
	Unit        string // empty for CDPAS (no unit choice)
	RequestJSON string
	ResultJSON  string
	FinalTotal  string // decimal string, not float, to keep exact values
	CreatedAt   time.Time
}

// SaveCalculation records a completed calculation.
func (s *Store) SaveCalculation(ctx context.Context, rec CalculationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO calculations
		(id, program, start_date, end_date, unit, request_json, result_json, final_total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		rec.ID,
		rec.Program,
		rec.StartDate.Format("2006-01-02"),
		rec.EndDate.Format("2006-01-02"),
		rec.Unit,
		rec.RequestJSON,
		rec.ResultJSON,
		rec.FinalTotal,
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}
	return nil
}

// ListCalculations returns history, most recent first.
func (s *Store) ListCalculations(ctx context.Context, limit int) ([]CalculationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, program, start_date, end_date, unit, request_json, result_json, final_total, created_at
		FROM calculations
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var records []CalculationRecord
	for rows.Next() {
		rec, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetCalculation returns one record, or nil if absent.
func (s *Store) GetCalculation(ctx context.Context, id string) (*CalculationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, program, start_date, end_date, unit, request_json, result_json, final_total, created_at
		FROM calculations
		WHERE id = ?
	`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get calculation: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	rec, err := scanCalculation(rows)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteCalculation removes a history record. Returns true if a row was
// deleted. History is an audit convenience, not a ledger, so deletion is
// allowed.
func (s *Store) DeleteCalculation(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM calculations WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete calculation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Reset clears all history. Used by tests and the dev reset endpoint.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM calculations")
	return err
}

func scanCalculation(rows *sql.Rows) (CalculationRecord, error) {
	var rec CalculationRecord
	var startDate, endDate, createdAt string

	if err := rows.Scan(
		&rec.ID,
		&rec.Program,
		&startDate,
		&endDate,
		&rec.Unit,
		&rec.RequestJSON,
		&rec.ResultJSON,
		&rec.FinalTotal,
		&createdAt,
	); err != nil {
		return rec, fmt.Errorf("failed to scan calculation: %w", err)
	}

	var err error
	if rec.StartDate, err = time.Parse("2006-01-02", startDate); err != nil {
		return rec, fmt.Errorf("bad start_date %q: %w", startDate, err)
	}
	if rec.EndDate, err = time.Parse("2006-01-02", endDate); err != nil {
		return rec, fmt.Errorf("bad end_date %q: %w", endDate, err)
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return rec, fmt.Errorf("bad created_at %q: %w", createdAt, err)
	}
	return rec, nil
}
