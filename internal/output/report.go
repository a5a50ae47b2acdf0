package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// unsupportedFormat builds the error for an unknown format, listing the choices.
func unsupportedFormat(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats results with the named formatter and returns the bytes along
// with the resolved formatter.
func Render(results *domain.CalculationResult, format string, opts FormatOptions) ([]byte, Formatter, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, nil, unsupportedFormat(format)
	}
	data, err := f.Format(results, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	return data, f, nil
}

// GenerateReport writes the named report into dir and returns the files
// written. The format "all" writes every registered formatter.
func GenerateReport(results *domain.CalculationResult, format string, opts FormatOptions, dir string) ([]string, error) {
	if results == nil {
		return nil, fmt.Errorf("no results to report")
	}
	var formatters []Formatter
	if NormalizeFormatName(format) == "all" {
		formatters = builtInFormatters
	} else if f := GetFormatterByName(format); f != nil {
		formatters = []Formatter{f}
	} else {
		return nil, unsupportedFormat(format)
	}

	var files []string
	for _, f := range formatters {
		name, err := WriteFormatted(f, results, opts, dir)
		if err != nil {
			return files, fmt.Errorf("%s report: %w", f.Name(), err)
		}
		files = append(files, name)
	}
	return files, nil
}
