package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/pkg/decimal"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCurrency is returned when a currency code has no display symbol.
var ErrUnknownCurrency = errors.New("unknown currency")

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func (ip *InputParser) applyDefaults(config *domain.Configuration) {
	config.Currency = strings.ToUpper(strings.TrimSpace(config.Currency))
	if config.Currency == "" {
		config.Currency = domain.DefaultCurrency
	}
	if len(config.Scenarios) == 0 {
		config.Scenarios = calculation.DefaultOverrides()
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("configuration is required")
	}
	if _, ok := domain.CurrencySymbol(config.Currency); !ok {
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnknownCurrency, config.Currency, strings.Join(domain.SupportedCurrencies(), ", "))
	}

	if err := calculation.ValidateParameters(config.Parameters); err != nil {
		return fmt.Errorf("parameters: %w", err)
	}

	return ValidateScenarios(config.Scenarios)
}

// ValidateScenarios checks every contribution override, reporting the first
// failure with its index.
func ValidateScenarios(scenarios []domain.ContributionOverride) error {
	for i, scenario := range scenarios {
		if err := ValidateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}
	return nil
}

// ValidateScenario validates a single contribution override
func ValidateScenario(scenario domain.ContributionOverride) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}
	if (scenario.Multiplier == nil) == (scenario.Amount == nil) {
		return fmt.Errorf("scenario %q must set exactly one of multiplier or amount", scenario.Name)
	}
	if scenario.Multiplier != nil {
		if !isFinite(*scenario.Multiplier) {
			return fmt.Errorf("scenario %q multiplier must be a finite number", scenario.Name)
		}
		if *scenario.Multiplier < 0 {
			return fmt.Errorf("scenario %q multiplier cannot be negative", scenario.Name)
		}
	}
	if scenario.Amount != nil {
		if !isFinite(*scenario.Amount) {
			return fmt.Errorf("scenario %q amount must be a finite number", scenario.Name)
		}
		if *scenario.Amount < 0 {
			return fmt.Errorf("scenario %q amount cannot be negative", scenario.Name)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DefaultRawInputs returns the calculator form's initial values.
func DefaultRawInputs() domain.RawInputs {
	return domain.RawInputs{
		Currency:            domain.DefaultCurrency,
		CurrentAge:          "30",
		RetirementAge:       "65",
		CurrentSavings:      "50000",
		MonthlyContribution: "1000",
		AnnualExpenses:      "40000",
		ReturnRate:          "7",
		InflationRate:       "3",
		SafeWithdrawalRate:  "4",
	}
}

// ParseRawInputs converts form values into a ParameterSet and currency code.
// Empty fields fall back to DefaultRawInputs; rates are whole percentages.
// The result is not validated; pass it through calculation.ValidateParameters.
func ParseRawInputs(raw domain.RawInputs) (domain.ParameterSet, string, error) {
	def := DefaultRawInputs()

	currency := strings.ToUpper(strings.TrimSpace(raw.Currency))
	if currency == "" {
		currency = def.Currency
	}
	if _, ok := domain.CurrencySymbol(currency); !ok {
		return domain.ParameterSet{}, "", fmt.Errorf("%w: %q", ErrUnknownCurrency, raw.Currency)
	}

	var p domain.ParameterSet
	fields := []rawField{
		{"current_age", raw.CurrentAge, def.CurrentAge, false, &p.CurrentAge},
		{"retirement_age", raw.RetirementAge, def.RetirementAge, false, &p.RetirementAge},
		{"current_savings", raw.CurrentSavings, def.CurrentSavings, false, &p.CurrentSavings},
		{"monthly_contribution", raw.MonthlyContribution, def.MonthlyContribution, false, &p.MonthlyContribution},
		{"annual_expenses", raw.AnnualExpenses, def.AnnualExpenses, false, &p.AnnualExpenses},
		{"return_rate", raw.ReturnRate, def.ReturnRate, true, &p.ReturnRate},
		{"inflation_rate", raw.InflationRate, def.InflationRate, true, &p.InflationRate},
		{"safe_withdrawal_rate", raw.SafeWithdrawalRate, def.SafeWithdrawalRate, true, &p.SafeWithdrawalRate},
	}
	for _, f := range fields {
		if err := f.parse(); err != nil {
			return domain.ParameterSet{}, "", err
		}
	}
	return p, currency, nil
}

type rawField struct {
	name     string
	value    string
	fallback string
	percent  bool
	dst      *float64
}

var hundred = decimal.NewMoney(100)

func (f rawField) parse() error {
	value := strings.TrimSpace(f.value)
	if value == "" {
		value = f.fallback
	}
	m, err := decimal.NewMoneyFromString(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: not a number", f.name, f.value)
	}
	if f.percent {
		m = decimal.NewMoneyFromDecimal(m.Decimal.Div(hundred.Decimal))
	}
	*f.dst = m.Float()
	return nil
}

// RawInputsFromParameters renders a ParameterSet back into form values.
func RawInputsFromParameters(p domain.ParameterSet, currency string) domain.RawInputs {
	amount := func(v float64) string {
		return decimal.NewMoney(v).Decimal.String()
	}
	percent := func(v float64) string {
		return decimal.NewMoney(v).Decimal.Mul(hundred.Decimal).String()
	}
	return domain.RawInputs{
		Currency:            currency,
		CurrentAge:          amount(p.CurrentAge),
		RetirementAge:       amount(p.RetirementAge),
		CurrentSavings:      amount(p.CurrentSavings),
		MonthlyContribution: amount(p.MonthlyContribution),
		AnnualExpenses:      amount(p.AnnualExpenses),
		ReturnRate:          percent(p.ReturnRate),
		InflationRate:       percent(p.InflationRate),
		SafeWithdrawalRate:  percent(p.SafeWithdrawalRate),
	}
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	p, currency, _ := ParseRawInputs(DefaultRawInputs())
	return &domain.Configuration{
		Currency:   currency,
		Parameters: p,
		Scenarios:  calculation.DefaultOverrides(),
	}
}

// SaveConfiguration writes a configuration to a YAML file
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
