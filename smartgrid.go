// Package smartgrid generates the smart-grid responsive CSS framework.
//
// smartgrid computes column, offset and fraction widths for a set of
// min-width breakpoints and renders them as a stylesheet plus a minified
// copy. It also inspects existing stylesheets for selector mistakes.
//
// # Generation
//
// Build the stylesheet for a configuration:
//
//	cfg := smartgrid.DefaultConfig()
//	cfg.Columns = 16
//	result, err := smartgrid.Build(cfg, smartgrid.BuildInfo{
//		Version: "4.1.1",
//		Date:    time.Now(),
//	})
//	err = smartgrid.WriteArtifacts("css", result, time.Now())
//
// # Inspection
//
// Check generated or hand-edited stylesheets:
//
//	result, err := smartgrid.Inspect(smartgrid.InspectConfig{
//		Paths: []string{"css/**/*.css"},
//	})
//
// # CLI Tool
//
// smartgrid also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/smartgrid/cmd/smartgrid@latest
package smartgrid

import (
	"github.com/yacobolo/smartgrid/internal/grid"
	"github.com/yacobolo/smartgrid/internal/report"
)

// Config describes one grid build
type Config = grid.Config

// Breakpoint is one min-width media query
type Breakpoint = grid.Breakpoint

// BuildInfo carries the version and date stamped into the header
type BuildInfo = grid.BuildInfo

// ConfigValidationError reports an option that cannot produce a grid
type ConfigValidationError = grid.ConfigValidationError

// InspectResult contains inspection issues and statistics
type InspectResult = report.Result

// DefaultConfig returns the stock 12 column, 20px gutter configuration
func DefaultConfig() Config {
	return grid.DefaultConfig()
}
