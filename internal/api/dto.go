package api

import (
	"fmt"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/config"
	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// =============================================================================
// REQUEST DTOs
// =============================================================================

// CalculateRequest carries either raw form inputs (whole-percent strings, as
// typed into the calculator) or already-parsed parameters. Inputs wins when
// both are present.
type CalculateRequest struct {
	Currency   string                        `json:"currency,omitempty"`
	Inputs     *domain.RawInputs             `json:"inputs,omitempty"`
	Parameters *domain.ParameterSet          `json:"parameters,omitempty"`
	Scenarios  []domain.ContributionOverride `json:"scenarios,omitempty"`
	// SaveAs stores the raw inputs under this key after a successful calculation.
	SaveAs string `json:"save_as,omitempty"`
}

// resolve returns the parameter set and currency described by the request.
// Custom scenarios are checked with the same rules as configuration files.
func (r CalculateRequest) resolve() (domain.ParameterSet, string, error) {
	if err := config.ValidateScenarios(r.Scenarios); err != nil {
		return domain.ParameterSet{}, "", err
	}
	switch {
	case r.Inputs != nil:
		return config.ParseRawInputs(*r.Inputs)
	case r.Parameters != nil:
		currency := r.Currency
		if currency == "" {
			currency = domain.DefaultCurrency
		}
		if _, ok := domain.CurrencySymbol(currency); !ok {
			return domain.ParameterSet{}, "", fmt.Errorf("%w: %q", config.ErrUnknownCurrency, currency)
		}
		return *r.Parameters, currency, nil
	default:
		return domain.ParameterSet{}, "", errMissingInputs
	}
}

// rawInputs returns the inputs to persist for SaveAs.
func (r CalculateRequest) rawInputs(p domain.ParameterSet, currency string) domain.RawInputs {
	if r.Inputs != nil {
		return *r.Inputs
	}
	return config.RawInputsFromParameters(p, currency)
}

// ProjectionRequest is a direct call into the convergence solver.
type ProjectionRequest struct {
	Balance             float64 `json:"balance"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualRate          float64 `json:"annual_rate"`
	Target              float64 `json:"target"`
	InflatingTarget     bool    `json:"inflating_target"`
	TargetInflationRate float64 `json:"target_inflation_rate"`
}

// =============================================================================
// RESPONSE DTOs
// =============================================================================

// ValidateResponse reports every rule a parameter set breaks.
type ValidateResponse struct {
	Valid      bool                    `json:"valid"`
	Currency   string                  `json:"currency,omitempty"`
	Violations []calculation.Violation `json:"violations"`
}

// ProjectionResponse is the solver outcome plus its display string.
type ProjectionResponse struct {
	domain.ProjectionResult
	Years     float64 `json:"years"`
	Formatted string  `json:"formatted"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error      string                  `json:"error"`
	Details    any                     `json:"details,omitempty"`
	Violations []calculation.Violation `json:"violations,omitempty"`
}
