package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .smartgrid.yaml config file",
	Long:  `Create a .smartgrid.yaml configuration file in the current directory with the stock grid settings.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := configPath(cmd)

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# smartgrid configuration
# Flags override SMARTGRID_* environment variables, which override this file.

# Shared settings
debug: false
quiet: false
color: false

# Generation settings
generate:
  version: ""              # "" = latest release, "+1" = next patch, or X.Y.Z
  columns: 12              # even, at most 48
  gutter-width: 20
  ie-fallback-class: oldie
  ie-fallback-width: 960   # must be one of the breakpoint widths
  container-class: container
  column-class: columns
  min-column-width: 768    # first breakpoint with column rules
  legacy-number-words: false
  output-dir: css
  repo: dryan/css-smart-grid
  breakpoints:
    - width: 768
      label: Tablet
    - width: 960
      label: Desktop
    - width: 1200
      suffix: large
      label: Widescreen
    - width: 1920
      suffix: hd
      label: Widescreen HD

# Inspection settings
inspect:
  paths:
    - "css/**/*.css"
  strict: false
  include-minified: false
  output-format: issues    # issues | full | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
