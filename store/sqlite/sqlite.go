/*
Package sqlite provides a SQLite-backed implementation of the case store.

PURPOSE:
  Implements precatorio.CaseStore using SQLite. Only calculation INPUTS are
  stored; results are recomputed on every read so they always reflect the
  current engine.

KEY TABLES:
  cases: One row per saved precatório (process reference, creditor,
         principal, base/issuance/final dates, annual rates)

NUMERIC COLUMNS:
  Money and rates are stored as TEXT decimal strings, never REAL, so a
  round trip through the database cannot introduce floating-point drift.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. SQLite allows a single writer.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/precatorio.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  err = store.SaveCase(ctx, precatorio.Case{ID: "case-1", Input: input})

MIGRATION:
  Schema is auto-migrated on New().

SEE ALSO:
  - precatorio/store.go: Interface definition
  - precatorio/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
)

// Store implements precatorio.CaseStore using SQLite.
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
	// Each connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

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
	CREATE TABLE IF NOT EXISTS cases (
		id TEXT PRIMARY KEY,
		reference TEXT,
		creditor TEXT,
		principal TEXT NOT NULL,
		base_date TEXT NOT NULL,
		issuance_date TEXT NOT NULL,
		final_date TEXT NOT NULL,
		correction_rate TEXT NOT NULL,
		interest_rate TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_cases_reference
		ON cases(reference) WHERE reference IS NOT NULL;
	CREATE INDEX IF NOT EXISTS idx_cases_created_at
		ON cases(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// CASE STORE (precatorio.CaseStore interface)
// =============================================================================

// timestampLayout has fixed width so TEXT ordering matches time ordering.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

const caseColumns = `id, reference, creditor, principal, base_date, issuance_date, final_date,
	correction_rate, interest_rate, created_at`

// SaveCase inserts a case or replaces its fields, keeping created_at.
func (s *Store) SaveCase(ctx context.Context, c precatorio.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO cases (id, reference, creditor, principal, base_date, issuance_date, final_date,
			correction_rate, interest_rate, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			reference = excluded.reference,
			creditor = excluded.creditor,
			principal = excluded.principal,
			base_date = excluded.base_date,
			issuance_date = excluded.issuance_date,
			final_date = excluded.final_date,
			correction_rate = excluded.correction_rate,
			interest_rate = excluded.interest_rate,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC()
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	in := c.Input
	_, err := s.db.ExecContext(ctx, query,
		c.ID, nullString(c.Reference), nullString(c.Creditor),
		in.Principal.String(),
		in.BaseDate.String(), in.IssuanceDate.String(), in.FinalDate.String(),
		in.Rates.Correction.Percent.String(), in.Rates.Interest.Percent.String(),
		createdAt.UTC().Format(timestampLayout), now.Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("save case %s: %w", c.ID, err)
	}
	return nil
}

// GetCase retrieves a case by ID.
func (s *Store) GetCase(ctx context.Context, id string) (*precatorio.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT "+caseColumns+" FROM cases WHERE id = ?", id)
	c, err := scanCase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &generic.NotFoundError{Kind: "case", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get case %s: %w", id, err)
	}
	return &c, nil
}

// ListCases returns all cases, newest first.
func (s *Store) ListCases(ctx context.Context) ([]precatorio.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+caseColumns+" FROM cases ORDER BY created_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	var cases []precatorio.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("list cases: %w", err)
		}
		cases = append(cases, c)
	}
	return cases, rows.Err()
}

// DeleteCase removes a case.
func (s *Store) DeleteCase(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM cases WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete case %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete case %s: %w", id, err)
	}
	if n == 0 {
		return &generic.NotFoundError{Kind: "case", ID: id}
	}
	return nil
}

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM cases")
	return err
}

var _ precatorio.CaseStore = (*Store)(nil)

// =============================================================================
// SCANNING
// =============================================================================

type scanner interface {
	Scan(dest ...any) error
}

func scanCase(row scanner) (precatorio.Case, error) {
	var c precatorio.Case
	var reference, creditor sql.NullString
	var principal, correction, interest string
	var baseDate, issuanceDate, finalDate, createdAt string
	if err := row.Scan(&c.ID, &reference, &creditor, &principal, &baseDate, &issuanceDate,
		&finalDate, &correction, &interest, &createdAt); err != nil {
		return precatorio.Case{}, err
	}

	c.Reference = reference.String
	c.Creditor = creditor.String

	var p columnParser
	c.Input = precatorio.Input{
		Principal:    p.decimal("principal", principal),
		BaseDate:     p.date("base_date", baseDate),
		IssuanceDate: p.date("issuance_date", issuanceDate),
		FinalDate:    p.date("final_date", finalDate),
		Rates: precatorio.Rates{
			Correction: generic.NewRateFromDecimal(p.decimal("correction_rate", correction)),
			Interest:   generic.NewRateFromDecimal(p.decimal("interest_rate", interest)),
		},
	}
	c.CreatedAt = p.timestamp("created_at", createdAt)
	if p.err != nil {
		return precatorio.Case{}, fmt.Errorf("case %s: %w", c.ID, p.err)
	}
	return c, nil
}

// columnParser converts TEXT columns and keeps the first failure.
type columnParser struct {
	err error
}

func (p *columnParser) fail(column string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("column %s: %w", column, err)
	}
}

func (p *columnParser) decimal(column, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		p.fail(column, err)
	}
	return d
}

func (p *columnParser) date(column, s string) generic.Date {
	d, err := generic.ParseDate(s)
	if err != nil {
		p.fail(column, err)
	}
	return d
}

func (p *columnParser) timestamp(column, s string) time.Time {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		p.fail(column, err)
	}
	return t
}

// Helper functions

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
