package report

import (
	"fmt"
	"io"
	"time"
)

// OutputFormat represents the inspection output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputFull shows issues plus statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to OutputIssues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the inspection result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, useColors bool) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result, time.Now()); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
	case OutputFull:
		reporter := NewReporter(w, useColors, true, true)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		reporter.PrintStatistics(*result)
	default:
		reporter := NewReporter(w, useColors, true, true)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}
