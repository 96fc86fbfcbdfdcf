package precatorio

import (
	"fmt"

	"github.com/warp/precatorio-engine/generic"
)

// =============================================================================
// VALIDATION - Boundary checks (the engine itself never fails)
// =============================================================================

// Field names as they appear on the wire.
const (
	FieldPrincipal      = "valor_homologado"
	FieldBaseDate       = "data_base"
	FieldIssuanceDate   = "data_oficio"
	FieldFinalDate      = "data_final"
	FieldCorrectionRate = "taxa_correcao"
	FieldInterestRate   = "taxa_mora"
)

// ValidationError reports an invalid input field with a user-facing message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return generic.ErrInvalidInput
}

// Invalid builds a ValidationError.
func Invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate enforces the rules the external interfaces guarantee before
// calling Calculate. It returns the first violation found.
func (in Input) Validate() error {
	if !in.Principal.IsPositive() {
		return Invalid(FieldPrincipal, "Valor homologado deve ser maior que zero")
	}
	if in.BaseDate.After(in.FinalDate) {
		return Invalid(FieldBaseDate, "Data-base deve ser anterior à data final")
	}
	if in.IssuanceDate.Before(in.BaseDate) {
		return Invalid(FieldIssuanceDate, "Data do ofício deve ser posterior à data-base")
	}
	if in.Rates.Correction.IsNegative() {
		return Invalid(FieldCorrectionRate, "Taxa de correção não pode ser negativa")
	}
	if in.Rates.Interest.IsNegative() {
		return Invalid(FieldInterestRate, "Taxa de mora não pode ser negativa")
	}
	return nil
}
