/*
Package factory converts case definitions (JSON or YAML) into engine input.

PURPOSE:
  Case definitions arrive from the web form (JSON), from case files on disk
  (YAML or JSON) and from the built-in demo scenarios. The factory turns
  all of them into a validated precatorio.Input, filling in default rates
  and rejecting missing or malformed fields with a ValidationError.

SCHEMA (keys follow the web form):
  {
    "id": "optional-id",
    "processo": "0001234-56.2021.8.26.0053",
    "credor": "Maria da Silva",
    "valor_homologado": 100000.00,
    "data_base": "2021-05-10",
    "data_oficio": "2022-03-20",
    "data_final": "2026-01-29",
    "taxa_correcao": 1.0,
    "taxa_mora": 0.5
  }

  The same keys are used in YAML:

    valor_homologado: 100000.00
    data_base: "2021-05-10"
    data_oficio: "2022-03-20"
    data_final: "2026-01-29"

  taxa_correcao and taxa_mora are optional and default to the factory's
  rates (1.0 and 0.5 unless configured otherwise).

USAGE:
  f := factory.NewCaseFactory(precatorio.DefaultRates())
  def, err := factory.ParseCase(data, factory.FormatYAML)
  input, err := f.ToInput(*def)
  result := precatorio.Calculate(input)

SEE ALSO:
  - precatorio/validate.go: Business rule validation
  - api/dto.go: CalculateRequest embeds CaseJSON
*/
package factory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CASE DEFINITION
// =============================================================================

// CaseJSON is the wire/file representation of a case.
type CaseJSON struct {
	ID             string   `json:"id,omitempty" yaml:"id,omitempty"`
	Reference      string   `json:"processo,omitempty" yaml:"processo,omitempty"`
	Creditor       string   `json:"credor,omitempty" yaml:"credor,omitempty"`
	Principal      *float64 `json:"valor_homologado" yaml:"valor_homologado"`
	BaseDate       string   `json:"data_base" yaml:"data_base"`
	IssuanceDate   string   `json:"data_oficio" yaml:"data_oficio"`
	FinalDate      string   `json:"data_final" yaml:"data_final"`
	CorrectionRate *float64 `json:"taxa_correcao,omitempty" yaml:"taxa_correcao,omitempty"`
	InterestRate   *float64 `json:"taxa_mora,omitempty" yaml:"taxa_mora,omitempty"`
}

// Format is the encoding of a case definition.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension (.json, .yaml, .yml).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported case file extension %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// ParseCase decodes a case definition.
func ParseCase(data []byte, format Format) (*CaseJSON, error) {
	var def CaseJSON
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&def); err != nil {
			return nil, invalidData(err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, invalidData(err)
		}
	default:
		return nil, fmt.Errorf("unsupported case format %q", format)
	}
	return &def, nil
}

func invalidData(err error) error {
	return &precatorio.ValidationError{Message: fmt.Sprintf("Dados inválidos: %v", err)}
}

// =============================================================================
// CASE FACTORY
// =============================================================================

// CaseFactory converts definitions into engine input.
type CaseFactory struct {
	Defaults precatorio.Rates
	NewID    func() string
}

// NewCaseFactory creates a factory that fills missing rates from defaults.
func NewCaseFactory(defaults precatorio.Rates) *CaseFactory {
	return &CaseFactory{
		Defaults: defaults,
		NewID:    uuid.NewString,
	}
}

// ToInput converts and validates a definition.
func (f *CaseFactory) ToInput(def CaseJSON) (precatorio.Input, error) {
	if def.Principal == nil {
		return precatorio.Input{}, missing(precatorio.FieldPrincipal)
	}

	base, err := parseDateField(precatorio.FieldBaseDate, def.BaseDate)
	if err != nil {
		return precatorio.Input{}, err
	}
	issuance, err := parseDateField(precatorio.FieldIssuanceDate, def.IssuanceDate)
	if err != nil {
		return precatorio.Input{}, err
	}
	final, err := parseDateField(precatorio.FieldFinalDate, def.FinalDate)
	if err != nil {
		return precatorio.Input{}, err
	}

	rates := f.Defaults
	if def.CorrectionRate != nil {
		rates.Correction = generic.NewRate(*def.CorrectionRate)
	}
	if def.InterestRate != nil {
		rates.Interest = generic.NewRate(*def.InterestRate)
	}

	input := precatorio.Input{
		Principal:    decimal.NewFromFloat(*def.Principal),
		BaseDate:     base,
		IssuanceDate: issuance,
		FinalDate:    final,
		Rates:        rates,
	}
	if err := input.Validate(); err != nil {
		return precatorio.Input{}, err
	}
	return input, nil
}

// ToCase converts a definition into a case, assigning an ID if missing.
func (f *CaseFactory) ToCase(def CaseJSON) (precatorio.Case, error) {
	input, err := f.ToInput(def)
	if err != nil {
		return precatorio.Case{}, err
	}

	id := def.ID
	if id == "" {
		id = f.NewID()
	}
	return precatorio.Case{
		ID:        id,
		Reference: def.Reference,
		Creditor:  def.Creditor,
		Input:     input,
	}, nil
}

// FromCase converts a case back to its definition. Rates are always set.
func FromCase(c precatorio.Case) CaseJSON {
	principal, _ := c.Input.Principal.Float64()
	correction := c.Input.Rates.Correction.Float64()
	interest := c.Input.Rates.Interest.Float64()
	return CaseJSON{
		ID:             c.ID,
		Reference:      c.Reference,
		Creditor:       c.Creditor,
		Principal:      &principal,
		BaseDate:       c.Input.BaseDate.String(),
		IssuanceDate:   c.Input.IssuanceDate.String(),
		FinalDate:      c.Input.FinalDate.String(),
		CorrectionRate: &correction,
		InterestRate:   &interest,
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func missing(field string) error {
	return precatorio.Invalid(field, "Dados inválidos: campo obrigatório ausente: %s", field)
}

func parseDateField(field, value string) (generic.Date, error) {
	if value == "" {
		return generic.Date{}, missing(field)
	}
	d, err := generic.ParseDate(value)
	if err != nil {
		return generic.Date{}, precatorio.Invalid(field, "Dados inválidos: %s: %v", field, err)
	}
	return d, nil
}
