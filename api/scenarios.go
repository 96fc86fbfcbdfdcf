/*
scenarios.go - Built-in demonstration scenarios

PURPOSE:

	Provides pre-built inputs that show how the grace window shapes a
	calculation. Each scenario can be calculated directly or saved as a
	case in the store.

AVAILABLE SCENARIOS:

	ec114-three-slices: grace window inside [base, final]; before/grace/after
	cf-boundary:        issued 2021-12-15, last day of the CF regime
	ec114-boundary:     issued 2021-12-16, first day of EC 114
	same-day:           base date = final date, nothing accrues
	grace-after-final:  evaluation ends before the grace window opens
	ec136:              EC 136 order, February grace start

USAGE VIA API:

	GET  /api/scenarios
	POST /api/scenarios/ec114-three-slices/run
	POST /api/scenarios/load
	{"scenario_id": "ec114-three-slices"}

ADDING NEW SCENARIOS:
 1. Add to 'scenarios' slice with ID, name, description and input
 2. Rates left nil use the handler's configured defaults

SEE ALSO:
  - handlers.go: Case handlers
  - factory/case.go: CaseJSON definition
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/warp/precatorio-engine/factory"
	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "ec114-three-slices",
		Name:        "EC 114 - antes, durante e depois da graça",
		Description: "Ofício de 20/03/2022: graça de 01/04/2022 a 31/12/2023, mora antes e depois",
		Input:       scenarioInput(100000.00, "2021-05-10", "2022-03-20", "2026-01-29"),
	},
	{
		ID:          "cf-boundary",
		Name:        "CF - último dia",
		Description: "Ofício de 15/12/2021 ainda no regime CF (graça a partir de julho)",
		Input:       scenarioInput(1000.00, "2021-01-01", "2021-12-15", "2023-06-01"),
	},
	{
		ID:          "ec114-boundary",
		Name:        "EC 114 - primeiro dia",
		Description: "Ofício de 16/12/2021 já no regime EC 114 (graça a partir de abril)",
		Input:       scenarioInput(1000.00, "2021-01-01", "2021-12-16", "2023-06-01"),
	},
	{
		ID:          "same-day",
		Name:        "Data-base igual à data final",
		Description: "Nenhum período: correção e mora zeradas, total igual ao principal",
		Input:       scenarioInput(12345.67, "2023-03-01", "2023-03-01", "2023-03-01"),
	},
	{
		ID:          "grace-after-final",
		Name:        "Graça posterior à data final",
		Description: "Cálculo encerra antes da graça: mora sobre todo o período",
		Input:       scenarioInput(50000.00, "2020-01-10", "2024-05-01", "2023-06-30"),
	},
	{
		ID:          "ec136",
		Name:        "EC 136",
		Description: "Ofício de 01/10/2025: graça a partir de fevereiro",
		Input:       scenarioInput(80000.00, "2025-01-15", "2025-10-01", "2026-06-30"),
	},
}

func scenarioInput(principal float64, base, issuance, final string) factory.CaseJSON {
	return factory.CaseJSON{
		Principal:    &principal,
		BaseDate:     base,
		IssuanceDate: issuance,
		FinalDate:    final,
	}
}

func findScenario(id string) (ScenarioDTO, error) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, nil
		}
	}
	return ScenarioDTO{}, &generic.NotFoundError{Kind: "scenario", ID: id}
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// RunScenario calculates a scenario without saving it.
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	s, err := findScenario(chi.URLParam(r, "id"))
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	input, err := h.Factory.ToInput(s.Input)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResultDTO(precatorio.Calculate(input)))
}

// LoadScenario saves a scenario as a case with ID "scenario-<id>".
// Loading the same scenario twice replaces the stored case.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Dados inválidos: %v", err), nil)
		return
	}

	s, err := findScenario(req.ScenarioID)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	def := s.Input
	def.ID = "scenario-" + s.ID
	def.Reference = s.Name
	c, err := h.Factory.ToCase(def)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	if err := h.Store.SaveCase(r.Context(), c); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	h.Logger.Info("scenario loaded", "scenario", s.ID, "case_id", c.ID)
	writeJSON(w, http.StatusCreated, toCaseDTO(c))
}
