/*
handlers.go - HTTP API handlers for the precatório calculator

PURPOSE:
  Exposes the calculation engine via a JSON API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.
  Handlers hold no calculation logic of their own.

ENDPOINTS:
  Calculation:
    POST   /calcular                    Calculate (original web form path)
    POST   /api/calculations            Calculate

  Regimes:
    GET    /api/regimes                 Regime table
    GET    /api/regimes/resolve         Regime for ?data_oficio=YYYY-MM-DD

  Cases (saved inputs, results always recomputed):
    GET    /api/cases                   List cases
    POST   /api/cases                   Save a case
    GET    /api/cases/{id}              Get a case
    DELETE /api/cases/{id}              Delete a case
    GET    /api/cases/{id}/calculation  Calculate a saved case

  Scenarios:
    GET    /api/scenarios               List demo scenarios
    POST   /api/scenarios/{id}/run      Calculate a demo scenario
    POST   /api/scenarios/load          Save a demo scenario as a case

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: Saved cases
  - Factory: JSON to engine input conversion (with default rates)
  - Logger: Structured logging of failures

REQUEST FLOW:
  1. Parse HTTP request
  2. Convert + validate input (factory)
  3. Call the engine (precatorio.Calculate)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON {"erro": "..."} with HTTP status:
  - 400: Validation errors, invalid input
  - 404: Case or scenario not found
  - 500: Internal errors

SECURITY NOTE:
  No authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenarios
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/warp/precatorio-engine/factory"
	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   precatorio.CaseStore
	Factory *factory.CaseFactory
	Logger  *slog.Logger
}

// NewHandler creates a new handler. A nil logger uses slog.Default().
func NewHandler(store precatorio.CaseStore, defaults precatorio.Rates, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Store:   store,
		Factory: factory.NewCaseFactory(defaults),
		Logger:  logger,
	}
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// Calculate runs the engine on the request body.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Dados inválidos: %v", err), nil)
		return
	}

	input, err := h.Factory.ToInput(req)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	res := precatorio.Calculate(input)
	h.Logger.Debug("calculation done",
		"request_id", middleware.GetReqID(r.Context()),
		"regime", res.Regime,
		"total", res.Total.String(),
	)
	writeJSON(w, http.StatusOK, toResultDTO(res))
}

// =============================================================================
// REGIME HANDLERS
// =============================================================================

// ListRegimes returns the regime table in evaluation order.
func (h *Handler) ListRegimes(w http.ResponseWriter, r *http.Request) {
	rules := precatorio.Regimes()
	dtos := make([]RegimeDTO, len(rules))
	for i, rule := range rules {
		dtos[i] = toRegimeDTO(rule)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ResolveRegime returns the regime and grace window for ?data_oficio=.
func (h *Handler) ResolveRegime(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get(precatorio.FieldIssuanceDate)
	if raw == "" {
		writeError(w, http.StatusBadRequest, "Parâmetro data_oficio é obrigatório", nil)
		return
	}
	issuance, err := generic.ParseDate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Data do ofício inválida (use AAAA-MM-DD)", err)
		return
	}

	writeJSON(w, http.StatusOK, toResolutionDTO(issuance, precatorio.ResolveRegime(issuance)))
}

// =============================================================================
// CASE HANDLERS
// =============================================================================

// ListCases returns all saved cases.
func (h *Handler) ListCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.Store.ListCases(r.Context())
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	dtos := make([]CaseDTO, len(cases))
	for i, c := range cases {
		dtos[i] = toCaseDTO(c)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateCase validates and saves a case.
func (h *Handler) CreateCase(w http.ResponseWriter, r *http.Request) {
	var req factory.CaseJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Dados inválidos: %v", err), nil)
		return
	}

	c, err := h.Factory.ToCase(req)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	if err := h.Store.SaveCase(r.Context(), c); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	saved, err := h.Store.GetCase(r.Context(), c.ID)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCaseDTO(*saved))
}

// GetCase returns a single case.
func (h *Handler) GetCase(w http.ResponseWriter, r *http.Request) {
	c, err := h.Store.GetCase(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseDTO(*c))
}

// DeleteCase removes a case.
func (h *Handler) DeleteCase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteCase(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CalculateCase recomputes a saved case.
func (h *Handler) CalculateCase(w http.ResponseWriter, r *http.Request) {
	c, err := h.Store.GetCase(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CaseCalculationDTO{
		Case:   toCaseDTO(*c),
		Result: toResultDTO(c.Calculate()),
	})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeFailure maps an error to a status code and writes it.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var verr *precatorio.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case generic.IsClientError(err):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	case generic.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	default:
		h.Logger.Error("request failed",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "Erro interno", err)
	}
}
