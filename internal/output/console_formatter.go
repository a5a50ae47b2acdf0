package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.CalculationResult, opts FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "COAST FIRE SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, card := range SummaryCards(results, opts) {
		fmt.Fprintf(&buf, "%-26s %s\n", card.Label+":", card.Value)
	}
	fmt.Fprintln(&buf)
	for _, v := range ComparisonViews(results, opts) {
		fmt.Fprintf(&buf, "%s: %s (age %s) at %s/month\n", v.Name, v.YearsToCoast, v.AgeAtCoast, v.Monthly)
	}
	return buf.Bytes(), nil
}
