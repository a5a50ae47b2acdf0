package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/config"
	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/internal/output"
	"github.com/rpgo/coastfire-calculator/internal/storage"
)

const maxBodyBytes = 1 << 20

var errMissingInputs = errors.New("request needs inputs or parameters")

// Handler serves the calculator API.
type Handler struct {
	Store  storage.InputStore
	Engine *calculation.CalculationEngine
}

// NewHandler creates a new handler with the given store and engine. A nil
// engine gets a default one.
func NewHandler(store storage.InputStore, engine *calculation.CalculationEngine) *Handler {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return &Handler{Store: store, Engine: engine}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// =============================================================================
// CALCULATION ENDPOINTS
// =============================================================================

// Validate checks a request's parameters against every validation rule.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, currency, err := req.resolve()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err)
		return
	}
	violations := calculation.Violations(p)
	if violations == nil {
		violations = []calculation.Violation{}
	}
	writeJSON(w, http.StatusOK, ValidateResponse{
		Valid:      len(violations) == 0,
		Currency:   currency,
		Violations: violations,
	})
}

// Calculate runs the full calculation and returns results with display strings.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	req, res, opts, ok := h.calculate(w, r)
	if !ok {
		return
	}
	if req.SaveAs != "" {
		if err := h.Store.Save(r.Context(), req.SaveAs, req.rawInputs(res.Parameters, opts.Currency)); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to save inputs", err)
			return
		}
	}
	writeJSON(w, http.StatusOK, output.NewJSONReport(res, opts))
}

// Report renders the calculation with the formatter named in the URL.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if output.GetFormatterByName(format) == nil {
		writeError(w, http.StatusNotFound, "unknown report format", fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format))
		return
	}
	_, res, opts, ok := h.calculate(w, r)
	if !ok {
		return
	}
	data, f, err := output.Render(res, format, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render report", err)
		return
	}
	w.Header().Set("Content-Type", output.ContentType(f.Name()))
	if ext := output.Extension(f.Name()); ext == "pdf" || ext == "csv" {
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="coastfire_%s.%s"`, f.Name(), ext))
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Projection calls the convergence solver directly.
func (h *Handler) Projection(w http.ResponseWriter, r *http.Request) {
	var req ProjectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.AnnualRate <= -1 || (req.InflatingTarget && req.TargetInflationRate <= -1) {
		writeError(w, http.StatusBadRequest, "invalid projection", fmt.Errorf("rates must be greater than -100%%"))
		return
	}
	for _, v := range []float64{req.Balance, req.MonthlyContribution, req.AnnualRate, req.Target, req.TargetInflationRate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			writeError(w, http.StatusBadRequest, "invalid projection", fmt.Errorf("values must be finite"))
			return
		}
	}
	res := calculation.ProjectToTarget(req.Balance, req.MonthlyContribution, req.AnnualRate, req.Target, calculation.ProjectionOptions{
		InflatingTarget:     req.InflatingTarget,
		TargetInflationRate: req.TargetInflationRate,
	})
	writeJSON(w, http.StatusOK, ProjectionResponse{
		ProjectionResult: res,
		Years:            res.Years(),
		Formatted:        output.FormatProjection(res),
	})
}

// calculate decodes a CalculateRequest and runs the engine, writing the
// error response itself when it returns false.
func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) (CalculateRequest, *domain.CalculationResult, output.FormatOptions, bool) {
	var req CalculateRequest
	if !decodeJSON(w, r, &req) {
		return req, nil, output.FormatOptions{}, false
	}
	p, currency, err := req.resolve()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err)
		return req, nil, output.FormatOptions{}, false
	}
	res, err := h.Engine.Calculate(p, req.Scenarios)
	if err != nil {
		writeCalculationError(w, err)
		return req, nil, output.FormatOptions{}, false
	}
	return req, res, output.FormatOptions{Currency: currency}, true
}

// =============================================================================
// SAVED INPUT ENDPOINTS
// =============================================================================

// DefaultInputs returns the calculator's initial form values.
func (h *Handler) DefaultInputs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, config.DefaultRawInputs())
}

// GetInputs returns the inputs saved under {key}.
func (h *Handler) GetInputs(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	inputs, err := h.Store.Load(r.Context(), key)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "inputs not found", fmt.Errorf("no inputs saved under %q", key))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load inputs", err)
		return
	}
	writeJSON(w, http.StatusOK, inputs)
}

// PutInputs saves the request body under {key}. Values must parse as numbers;
// they are not required to pass validation, matching a half-filled form.
func (h *Handler) PutInputs(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var inputs domain.RawInputs
	if !decodeJSON(w, r, &inputs) {
		return
	}
	if _, _, err := config.ParseRawInputs(inputs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid inputs", err)
		return
	}
	if err := h.Store.Save(r.Context(), key, inputs); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save inputs", err)
		return
	}
	writeJSON(w, http.StatusOK, inputs)
}

// DeleteInputs removes the inputs saved under {key}.
func (h *Handler) DeleteInputs(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete inputs", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err)
		return false
	}
	return true
}

func writeCalculationError(w http.ResponseWriter, err error) {
	var verr *calculation.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:      "invalid parameters",
			Details:    err.Error(),
			Violations: verr.Violations,
		})
		return
	}
	writeError(w, http.StatusInternalServerError, "calculation failed", err)
}

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
