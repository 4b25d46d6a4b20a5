// Package main provides the smartgrid CLI for building the smart-grid stylesheet.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/smartgrid"
	"github.com/yacobolo/smartgrid/internal/report"
)

// exitDataErr is the sysexits.h EX_DATAERR code used for invalid options.
const exitDataErr = 65

func main() {
	if err := rootCmd.Execute(); err != nil {
		useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))
		fmt.Fprintln(os.Stderr, report.RenderStyle(report.StyleRed, "Error: "+err.Error(), useColors))
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status
func exitCode(err error) int {
	var verr *smartgrid.ConfigValidationError
	if errors.As(err, &verr) {
		return exitDataErr
	}
	return 1
}
