/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Keys follow the
  original web form ("valor_homologado", "data_base", ...) so the existing
  front-end keeps working. These types decouple the engine's model from
  the wire contract:
  - Dates are ISO-8601 strings (YYYY-MM-DD)
  - Intervals are [start, end] pairs of such strings
  - Money and rates are JSON numbers

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Calculation:
    CalculateRequest (= factory.CaseJSON), ResultDTO, BreakdownDTO, LineDTO

  Regimes:
    RegimeDTO, ResolutionDTO

  Cases:
    CaseDTO, CaseCalculationDTO

  Scenarios:
    ScenarioDTO, LoadScenarioRequest

VALIDATION:
  Validation is done by factory.CaseFactory and precatorio.Input.Validate,
  not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/case.go: CaseJSON type
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/precatorio-engine/factory"
	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalculateRequest is the body of POST /calcular.
type CalculateRequest = factory.CaseJSON

// ResultDTO is a calculation result.
type ResultDTO struct {
	Regime     string       `json:"regime"`
	GraceStart string       `json:"inicio_periodo_graca"`
	GraceEnd   string       `json:"fim_periodo_graca"`
	Principal  float64      `json:"valor_principal"`
	Correction float64      `json:"correcao_monetaria"`
	Interest   float64      `json:"juros_mora"`
	Accretion  float64      `json:"valor_total_acrescimos"`
	Total      float64      `json:"valor_total"`
	Breakdown  BreakdownDTO `json:"detalhamento"`
}

// BreakdownDTO lists the intervals and rates behind a result.
type BreakdownDTO struct {
	FullRate       [][2]string `json:"periodos_com_mora"`
	GraceRate      [][2]string `json:"periodos_sem_mora"`
	CorrectionRate float64     `json:"taxa_correcao_aa"`
	InterestRate   float64     `json:"taxa_mora_aa"`
	Lines          []LineDTO   `json:"linhas"`
}

// LineDTO is the accrual over one interval.
type LineDTO struct {
	Kind       string  `json:"tipo"`
	Start      string  `json:"inicio"`
	End        string  `json:"fim"`
	Days       int     `json:"dias"`
	Correction float64 `json:"correcao_monetaria"`
	Interest   float64 `json:"juros_mora"`
	Subtotal   float64 `json:"subtotal"`
}

// RegimeDTO is one row of the regime table.
type RegimeDTO struct {
	Regime          string  `json:"regime"`
	Through         *string `json:"oficios_ate,omitempty"` // nil = open-ended
	GraceStartMonth int     `json:"mes_inicio_graca"`
}

// ResolutionDTO is the regime resolved for an issuance date.
type ResolutionDTO struct {
	IssuanceDate string `json:"data_oficio"`
	Regime       string `json:"regime"`
	GraceStart   string `json:"inicio_periodo_graca"`
	GraceEnd     string `json:"fim_periodo_graca"`
}

// CaseDTO is a saved case.
type CaseDTO struct {
	factory.CaseJSON
	CreatedAt string `json:"created_at,omitempty"`
}

// CaseCalculationDTO is a saved case with its freshly computed result.
type CaseCalculationDTO struct {
	Case   CaseDTO   `json:"caso"`
	Result ResultDTO `json:"resultado"`
}

// ScenarioDTO represents a demo scenario.
type ScenarioDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Input       factory.CaseJSON `json:"entrada"`
}

// LoadScenarioRequest is the body of POST /api/scenarios/load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"erro"`
	Field   string `json:"campo,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toResultDTO(res precatorio.Result) ResultDTO {
	return ResultDTO{
		Regime:     res.Regime.String(),
		GraceStart: res.GraceWindow.Start.String(),
		GraceEnd:   res.GraceWindow.End.String(),
		Principal:  toFloat(res.Principal),
		Correction: toFloat(res.Correction),
		Interest:   toFloat(res.Interest),
		Accretion:  toFloat(res.Accretion),
		Total:      toFloat(res.Total),
		Breakdown: BreakdownDTO{
			FullRate:       toIntervalPairs(res.Breakdown.FullRate),
			GraceRate:      toIntervalPairs(res.Breakdown.GraceRate),
			CorrectionRate: res.Breakdown.Rates.Correction.Float64(),
			InterestRate:   res.Breakdown.Rates.Interest.Float64(),
			Lines:          toLineDTOs(res.Breakdown.Lines),
		},
	}
}

func toIntervalPairs(periods []generic.Period) [][2]string {
	pairs := make([][2]string, len(periods))
	for i, p := range periods {
		pairs[i] = [2]string{p.Start.String(), p.End.String()}
	}
	return pairs
}

func toLineDTOs(lines []precatorio.Line) []LineDTO {
	dtos := make([]LineDTO, len(lines))
	for i, l := range lines {
		dtos[i] = LineDTO{
			Kind:       string(l.Kind),
			Start:      l.Interval.Start.String(),
			End:        l.Interval.End.String(),
			Days:       l.Days,
			Correction: toFloat(l.Correction),
			Interest:   toFloat(l.Interest),
			Subtotal:   toFloat(l.Subtotal()),
		}
	}
	return dtos
}

func toRegimeDTO(rule precatorio.RegimeRule) RegimeDTO {
	dto := RegimeDTO{
		Regime:          rule.Regime.String(),
		GraceStartMonth: int(rule.GraceStartMonth),
	}
	if !rule.Through.IsZero() {
		through := rule.Through.String()
		dto.Through = &through
	}
	return dto
}

func toResolutionDTO(issuance generic.Date, r precatorio.Resolution) ResolutionDTO {
	return ResolutionDTO{
		IssuanceDate: issuance.String(),
		Regime:       r.Regime.String(),
		GraceStart:   r.GraceWindow.Start.String(),
		GraceEnd:     r.GraceWindow.End.String(),
	}
}

func toCaseDTO(c precatorio.Case) CaseDTO {
	dto := CaseDTO{CaseJSON: factory.FromCase(c)}
	if !c.CreatedAt.IsZero() {
		dto.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	}
	return dto
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// ResultPayload converts a result to its JSON representation. Used by the
// CLI's json output so both adapters emit the same document.
func ResultPayload(res precatorio.Result) ResultDTO {
	return toResultDTO(res)
}
