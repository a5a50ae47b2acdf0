package dateutil

import (
	"math"
	"time"
)

// MonthsPerYear is the number of monthly compounding periods in a year.
const MonthsPerYear = 12

// MonthsToYears converts a month count to fractional years.
func MonthsToYears(months int) float64 {
	return float64(months) / MonthsPerYear
}

// CeilYears returns the number of whole years needed to cover months,
// so 13 months is 2 years and 12 months is 1.
func CeilYears(months int) int {
	if months <= 0 {
		return 0
	}
	return (months + MonthsPerYear - 1) / MonthsPerYear
}

// SplitYears breaks fractional years into whole years and a rounded month
// remainder. A remainder that rounds up to a full year is carried.
func SplitYears(years float64) (wholeYears, months int) {
	wholeYears = int(math.Floor(years))
	months = int(math.Round((years - float64(wholeYears)) * MonthsPerYear))
	if months == MonthsPerYear {
		wholeYears++
		months = 0
	}
	return wholeYears, months
}

// AgeAfter returns the age reached after the given number of months.
func AgeAfter(currentAge float64, months int) float64 {
	return currentAge + MonthsToYears(months)
}

// AddMonths advances t by a number of calendar months.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

// CalendarYearAfter returns the calendar year reached months after from.
func CalendarYearAfter(from time.Time, months int) int {
	return AddMonths(from, months).Year()
}
