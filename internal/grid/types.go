package grid

import "time"

// Breakpoint is a minimum viewport width at which a distinct set of grid rules activates
type Breakpoint struct {
	Width  int    `koanf:"width"`  // 960
	Suffix string `koanf:"suffix"` // "large", "" for unnamed breakpoints
	Label  string `koanf:"label"`  // "Widescreen" (header comment only)
}

// Config holds generator configuration
type Config struct {
	Columns           int          // Even, 2..48
	Gutter            int          // Pixels between adjacent columns
	Breakpoints       []Breakpoint // Strictly ascending by width
	IEFallbackClass   string       // "oldie"
	IEFallbackWidth   int          // Must match one of Breakpoints
	ContainerClass    string       // "container"
	ColumnClass       string       // "columns"
	MinColumnWidth    int          // First breakpoint that gets column rules
	LegacyNumberWords bool         // Reproduce the historical number-word table
}

// BuildInfo is the release metadata printed in the stylesheet header
type BuildInfo struct {
	Version string    // "4.1.0"
	Date    time.Time // Latest update
}

// Declaration is a single CSS property/value pair
type Declaration struct {
	Property string
	Value    string
}

// Rule is a selector list with its declarations
type Rule struct {
	Selectors    []string
	Declarations []Declaration
}

// BlockKind distinguishes media-query blocks from IE fallback blocks
type BlockKind int

const (
	// KindBreakpoint blocks are wrapped in a min-width media query.
	KindBreakpoint BlockKind = iota
	// KindIEFallback blocks apply unconditionally under the fallback class.
	KindIEFallback
)

// RuleBlock is the ordered set of rules generated for one breakpoint
type RuleBlock struct {
	Breakpoint Breakpoint
	Kind       BlockKind
	Rules      []Rule
}
