/*
errors.go - Centralized error types for the engine and its adapters

PURPOSE:
  All error types in one place for consistency and discoverability.
  The calculation engine itself never fails: every issuance date maps to a
  regime and every date ordering degrades to empty intervals. Errors only
  exist at the boundary (input validation, case storage).

ERROR CATEGORIES:
  1. Validation errors - Invalid or missing input (client errors)
  2. Lookup errors - Stored case not found
  3. Store errors - Database-level failures (wrapped, not defined here)

USAGE:
  Domain packages wrap these sentinels:

    if errors.Is(err, generic.ErrInvalidInput) {
        // 400 Bad Request
    }

SEE ALSO:
  - precatorio/validate.go: ValidationError wraps ErrInvalidInput
  - api/handlers.go: Maps errors to HTTP status codes
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned when caller-supplied data is missing,
	// malformed or violates a business rule (e.g. base date after final date).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a referenced record doesn't exist.
	ErrNotFound = errors.New("not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// NotFoundError names the kind and ID of a missing record.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
