/*
store.go - Persistence interface for saved cases

PURPOSE:
  A case is a named set of calculation INPUTS (process reference, creditor,
  principal, dates, rates) kept so it can be recalculated later, e.g. with
  a newer final date. Results are never stored: they are recomputed from
  the inputs on every request.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: SQLite
  - precatorio/store/memory.go: In-memory for testing

SEE ALSO:
  - api/handlers.go: Case endpoints
*/
package precatorio

import (
	"context"
	"time"
)

// =============================================================================
// CASE
// =============================================================================

// Case is a saved precatório input.
type Case struct {
	ID        string
	Reference string // judicial process number
	Creditor  string
	Input     Input
	CreatedAt time.Time
}

// Calculate runs the engine on the case input.
func (c Case) Calculate() Result {
	return Calculate(c.Input)
}

// =============================================================================
// CASE STORE
// =============================================================================

// CaseStore persists cases.
type CaseStore interface {
	// SaveCase inserts or replaces the case with the same ID.
	SaveCase(ctx context.Context, c Case) error

	// GetCase returns the case or an error wrapping generic.ErrNotFound.
	GetCase(ctx context.Context, id string) (*Case, error)

	// ListCases returns every case, newest first.
	ListCases(ctx context.Context) ([]Case, error)

	// DeleteCase removes a case. Returns generic.ErrNotFound if absent.
	DeleteCase(ctx context.Context, id string) error
}
