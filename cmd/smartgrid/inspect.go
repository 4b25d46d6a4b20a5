package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/smartgrid"
	"github.com/yacobolo/smartgrid/internal/report"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect [PATTERNS...]",
	Aliases: []string{"lint"},
	Short:   "Inspect grid stylesheets for selector mistakes",
	Long: `Parse stylesheets and report selectors repeated within one selector list,
empty selectors, rules redefined with identical declarations and media
queries missing one of the fraction classes every grid breakpoint defines.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd, buildInspectConfig(args))
	},
}

func init() {
	f := inspectCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("include-minified", false, "Also inspect *.min.css files")
	f.String("output-format", "", "Output format: issues|full|json")
}

func runInspect(cmd *cobra.Command, config smartgrid.InspectConfig) error {
	result, err := smartgrid.Inspect(config)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := report.DetermineOutputFormat(getStringWithFallback("output-format", "inspect.output-format", ""))
	useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))

	if !quiet {
		if err := report.WriteOutput(cmd.OutOrStdout(), result, format, useColors); err != nil {
			return err
		}
	}

	// Soft gate: only errors fail unless strict, where any issue does
	strict := getBoolWithFallback("strict", "inspect.strict", false)
	if strict && len(result.Issues) > 0 {
		return fmt.Errorf("strict mode: %d issues found", len(result.Issues))
	}
	if result.ErrorCount > 0 {
		return fmt.Errorf("%d errors found", result.ErrorCount)
	}
	return nil
}
