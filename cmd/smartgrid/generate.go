package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yacobolo/smartgrid"
	"github.com/yacobolo/smartgrid/internal/release"
	"github.com/yacobolo/smartgrid/internal/report"
)

var generateCmd = &cobra.Command{
	Use:     "generate [VERSION]",
	Aliases: []string{"gen", "build"},
	Short:   "Generate smart-grid.css and smart-grid.min.css",
	Long: `Render the grid stylesheet and its minified copy.
VERSION is X.Y.Z, or +1 to increment the latest published release.
Without a version the latest published release and its date are used.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

// addGenerateFlags registers the generate flags on cmd
func addGenerateFlags(cmd *cobra.Command) {
	def := smartgrid.DefaultConfig()
	f := cmd.Flags()
	f.String("version", "", "Version to stamp: X.Y.Z, or +1 to increment the latest release")
	f.String("date", "", "Latest update date to stamp (YYYY-MM-DD)")
	f.IntP("columns", "c", def.Columns, "Number of columns (even, max 48)")
	f.IntP("gutter-width", "g", def.Gutter, "Gutter width in pixels")
	f.String("ie-fallback-class", def.IEFallbackClass, "Class on <html> that enables the IE fallback")
	f.Int("ie-fallback-width", def.IEFallbackWidth, "Breakpoint width served to old IE")
	f.Bool("legacy-number-words", false, "Use the historical column names (18 as nineteen, 40 as fourty)")
	f.String("output-dir", "css", "Output directory for generated files")
	f.BoolP("stdout", "o", false, "Print the stylesheet instead of writing files")
	f.Bool("watch", false, "Rebuild whenever the config file changes")
	f.String("tags-url", release.DefaultBaseURL, "GitHub API base URL for release lookup")
	f.String("repo", release.DefaultRepo, "Repository whose tags provide the release version")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := buildGenerateOptions(args)
	if err != nil {
		return err
	}

	if !opts.Watch {
		return generate(cmd.Context(), opts, cmd.OutOrStdout(), time.Now())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := generate(ctx, opts, cmd.OutOrStdout(), time.Now()); err != nil {
		return err
	}

	path := configPath(cmd)
	useColors := report.ShouldUseColors(opts.Color)
	if !opts.Quiet {
		fmt.Fprintln(cmd.OutOrStdout(), report.RenderStyle(report.StyleGray, "Watching "+path+" for changes (Ctrl+C to stop)", useColors))
	}

	return watchConfig(ctx, path, func() error {
		resetConfig()
		if err := loadConfig(cmd); err != nil {
			return err
		}
		next, err := buildGenerateOptions(args)
		if err != nil {
			return err
		}
		return generate(ctx, next, cmd.OutOrStdout(), time.Now())
	}, cmd.ErrOrStderr())
}

// generate validates options, resolves the release and writes the artifacts.
func generate(ctx context.Context, opts generateOptions, w io.Writer, now time.Time) error {
	useColors := report.ShouldUseColors(opts.Color)
	// Status messages go to stderr when the stylesheet itself is on stdout
	status := w
	if opts.Stdout {
		status = os.Stderr
	}

	if opts.Debug {
		printOptions(status, opts, useColors)
	}

	if err := opts.Grid.Validate(); err != nil {
		return err
	}

	src := release.NewGitHubTags(opts.TagsURL, opts.Repo, nil)
	info, err := release.Resolve(ctx, src, opts.Version, opts.Date, now)
	if err != nil {
		return err
	}

	if !opts.Quiet {
		fmt.Fprintln(status, report.RenderStyle(report.StyleGreen, "Preparing to create version "+info.Version, useColors))
	}

	result, err := smartgrid.Build(opts.Grid, info)
	if err != nil {
		return err
	}

	if opts.Stdout {
		_, err := io.WriteString(w, result.CSS)
		return err
	}

	paths, err := smartgrid.WriteArtifacts(opts.OutputDir, result, now)
	if err != nil {
		return err
	}

	if !opts.Quiet {
		for _, p := range paths {
			fmt.Fprintf(status, "%s %s\n", report.RenderStyle(report.StyleGreen, "Saved", useColors), p)
		}
	}
	return nil
}

// printOptions writes the resolved options, one per line, sorted by name
func printOptions(w io.Writer, opts generateOptions, useColors bool) {
	values := map[string]any{
		"version":             opts.Version,
		"date":                opts.Date,
		"columns":             opts.Grid.Columns,
		"gutter-width":        opts.Grid.Gutter,
		"ie-fallback-class":   opts.Grid.IEFallbackClass,
		"ie-fallback-width":   opts.Grid.IEFallbackWidth,
		"container-class":     opts.Grid.ContainerClass,
		"column-class":        opts.Grid.ColumnClass,
		"min-column-width":    opts.Grid.MinColumnWidth,
		"legacy-number-words": opts.Grid.LegacyNumberWords,
		"output-dir":          opts.OutputDir,
		"stdout":              opts.Stdout,
		"tags-url":            opts.TagsURL,
		"repo":                opts.Repo,
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, report.RenderStyle(report.StyleCyan, "Options", useColors))
	for _, name := range names {
		fmt.Fprintf(w, "  %-20s %v\n", name+":", values[name])
	}
	for _, bp := range opts.Grid.Breakpoints {
		fmt.Fprintf(w, "  %-20s %dpx %s %s\n", "breakpoint:", bp.Width, bp.Suffix, bp.Label)
	}
}
