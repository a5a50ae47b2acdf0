package output

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/pkg/dateutil"
	"github.com/rpgo/coastfire-calculator/pkg/decimal"
)

// NotReachedText is shown in place of a duration when a projection hit the month cap.
const NotReachedText = "Not reached within 100 years"

var hundred = decimal.NewMoney(100).Decimal

// FormatOptions carries presentation settings that the calculation never sees.
type FormatOptions struct {
	Currency string
	// Today anchors calendar years in reports. Zero means the current date.
	Today time.Time `json:"-"`
}

// DefaultFormatOptions formats amounts in US dollars.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Currency: domain.DefaultCurrency}
}

func (o FormatOptions) withDefaults() FormatOptions {
	if o.Currency == "" {
		o.Currency = domain.DefaultCurrency
	}
	if o.Today.IsZero() {
		o.Today = time.Now()
	}
	return o
}

// CoastYear returns the calendar year in which a projection reaches its
// target, counted from opts.Today.
func CoastYear(pr domain.ProjectionResult, opts FormatOptions) int {
	return dateutil.CalendarYearAfter(opts.withDefaults().Today, pr.ElapsedMonths)
}

// Symbol returns the display symbol for the configured currency. Unknown
// codes are rendered as the code itself followed by a space.
func (o FormatOptions) Symbol() string {
	code := o.withDefaults().Currency
	if s, ok := domain.CurrencySymbol(code); ok {
		return s
	}
	return code + " "
}

// FormatCurrency formats an amount as whole currency units with thousands
// separators, rounding half away from zero: "$713,076".
func FormatCurrency(amount float64, opts FormatOptions) string {
	return decimal.NewMoney(amount).Format(opts.Symbol())
}

// FormatThousands formats a chart axis label in thousands: "$713k".
func FormatThousands(amount float64, opts FormatOptions) string {
	return decimal.NewMoney(amount).FormatThousands(opts.Symbol())
}

// FormatPercentage formats a fractional rate with one decimal: 0.07 -> "7.0%".
func FormatPercentage(rate float64) string {
	return decimal.NewMoney(rate).Mul(hundred).StringFixed(1) + "%"
}

// FormatYears renders a fractional year count as "N years, M months".
func FormatYears(years float64) string {
	if years == 0 {
		return "Already reached!"
	}
	whole, months := dateutil.SplitYears(years)
	if whole == 0 {
		return plural(months, "month")
	}
	if months == 0 {
		return plural(whole, "year")
	}
	return plural(whole, "year") + ", " + plural(months, "month")
}

// FormatProjection renders the time to target of a projection, or
// NotReachedText when the month cap was hit.
func FormatProjection(pr domain.ProjectionResult) string {
	if !pr.ReachedWithinCap {
		return NotReachedText
	}
	return FormatYears(pr.Years())
}

// FormatAge rounds an age to the nearest whole year, halves up.
func FormatAge(age float64) string {
	return intToString(int(decimal.NewMoney(age).Whole().IntPart()))
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func fixed2(v float64) string { return decimal.NewMoney(v).Round().String() }
