package report

// Issue represents a single inspection finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "gridlint"
	Text        string   `json:"Text"`        // "selector \".container .columns\" repeated in one selector list"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of CSS with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "css/smart-grid.css"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 1-based
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter is the name attached to every inspection issue
const Linter = "gridlint"

// Issue texts
const (
	IssueDuplicateSelector = "selector %q repeated in one selector list"
	IssueEmptySelector     = "empty selector in selector list"
	IssueRedefinedSelector = "selector %q already defined in %s with the same declarations"
	IssueMissingFraction   = "no %q rule in %s"
)

// Result contains inspection results
type Result struct {
	Issues       []Issue
	FilesScanned int
	FilesSkipped int // Ignored by .gitignore or minified
	Rules        int
	Contexts     int // Distinct media/at-rule contexts across all files
	Classes      int // Distinct class names across all files
	ErrorCount   int
}
