package smartgrid

import (
	"fmt"
	"os"
	"strings"

	"github.com/yacobolo/smartgrid/internal/grid"
	"github.com/yacobolo/smartgrid/internal/report"
	"github.com/yacobolo/smartgrid/internal/stylesheet"
)

// DefaultInspectPaths is used when no patterns are given
var DefaultInspectPaths = []string{"css/**/*.css"}

// InspectConfig holds inspection configuration
type InspectConfig struct {
	Paths           []string // Doublestar patterns, e.g. "css/**/*.css"
	IncludeMinified bool     // Also inspect *.min.css
}

// guaranteedFractions are the fraction class names every column breakpoint defines
var guaranteedFractions = func() []string {
	var names []string
	for _, f := range grid.GuaranteedFractions() {
		names = append(names, f.Name())
	}
	return names
}()

// Inspect parses every matching stylesheet and reports selector problems.
// Files that cannot be read or parsed are reported as errors and counted as scanned.
func Inspect(config InspectConfig) (*InspectResult, error) {
	paths := config.Paths
	if len(paths) == 0 {
		paths = DefaultInspectPaths
	}

	files, stats, err := expandGlobPatterns(paths, config.IncludeMinified)
	if err != nil {
		return nil, fmt.Errorf("expand patterns: %w", err)
	}

	result := &InspectResult{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
	}
	contexts := make(map[string]bool)
	classes := make(map[string]bool)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			result.Issues = append(result.Issues, fileIssue(file, err))
			continue
		}

		sheet, err := stylesheet.Parse(string(content), file)
		if err != nil {
			result.Issues = append(result.Issues, fileIssue(file, err))
			continue
		}

		result.Rules += len(sheet.Rules)
		for _, c := range sheet.Contexts() {
			contexts[c] = true
		}
		for _, c := range sheet.Classes() {
			classes[c] = true
		}
		result.Issues = append(result.Issues, inspectSheet(sheet, strings.Split(string(content), "\n"))...)
	}

	result.Contexts = len(contexts)
	result.Classes = len(classes)
	for _, issue := range result.Issues {
		if issue.Severity == report.SeverityError {
			result.ErrorCount++
		}
	}
	return result, nil
}

// inspectSheet runs every selector check over one parsed stylesheet
func inspectSheet(sheet *stylesheet.Sheet, lines []string) []report.Issue {
	var issues []report.Issue
	newIssue := func(r stylesheet.Rule, severity, text string) report.Issue {
		var source []string
		if r.Line > 0 && r.Line <= len(lines) {
			source = []string{lines[r.Line-1]}
		}
		return report.Issue{
			FromLinter:  report.Linter,
			Text:        text,
			Severity:    severity,
			SourceLines: source,
			Pos:         report.IssuePos{Filename: sheet.Filename, Line: r.Line, Column: r.Column},
		}
	}

	// context -> selector -> declarations of the first definition
	defined := make(map[string]map[string]string)
	// context -> rule that first mentions a fraction class
	fractionContexts := make(map[string]stylesheet.Rule)
	var contextOrder []string
	fractionsSeen := make(map[string]map[string]bool)

	for _, r := range sheet.Rules {
		if defined[r.Context] == nil {
			defined[r.Context] = make(map[string]string)
			fractionsSeen[r.Context] = make(map[string]bool)
		}
		decls := declarationKey(r.Declarations)

		inList := make(map[string]bool)
		for _, sel := range r.Selectors {
			if sel == "" {
				issues = append(issues, newIssue(r, report.SeverityError, report.IssueEmptySelector))
				continue
			}
			if inList[sel] {
				issues = append(issues, newIssue(r, report.SeverityError, fmt.Sprintf(report.IssueDuplicateSelector, sel)))
				continue
			}
			inList[sel] = true

			if prev, ok := defined[r.Context][sel]; ok && prev == decls {
				issues = append(issues, newIssue(r, report.SeverityWarning,
					fmt.Sprintf(report.IssueRedefinedSelector, sel, contextName(r.Context))))
			} else if !ok {
				defined[r.Context][sel] = decls
			}

			for _, name := range guaranteedFractions {
				if strings.HasSuffix(sel, "."+name) {
					fractionsSeen[r.Context][name] = true
					if _, ok := fractionContexts[r.Context]; !ok {
						fractionContexts[r.Context] = r
						contextOrder = append(contextOrder, r.Context)
					}
				}
			}
		}
	}

	for _, ctx := range contextOrder {
		for _, name := range guaranteedFractions {
			if !fractionsSeen[ctx][name] {
				issues = append(issues, newIssue(fractionContexts[ctx], report.SeverityWarning,
					fmt.Sprintf(report.IssueMissingFraction, name, contextName(ctx))))
			}
		}
	}

	return issues
}

func declarationKey(decls []stylesheet.Declaration) string {
	var b strings.Builder
	for _, d := range decls {
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	return b.String()
}

func contextName(ctx string) string {
	if ctx == "" {
		return "top level"
	}
	return ctx
}

func fileIssue(file string, err error) report.Issue {
	return report.Issue{
		FromLinter: report.Linter,
		Text:       err.Error(),
		Severity:   report.SeverityError,
		Pos:        report.IssuePos{Filename: file, Line: 1, Column: 1},
	}
}
