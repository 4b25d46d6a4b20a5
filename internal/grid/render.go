package grid

import (
	"fmt"
	"strings"
)

// Render produces the complete stylesheet for a validated configuration.
// Output is byte-identical for identical inputs.
func Render(cfg Config, info BuildInfo) string {
	header, body := RenderParts(cfg, info)
	return header + body
}

// RenderParts renders the header comments and the rule body separately so
// the body can be minified while the header is kept verbatim.
func RenderParts(cfg Config, info BuildInfo) (header, body string) {
	return strings.Join(headerLines(cfg, info), "\n"), strings.Join(bodyLines(cfg), "\n") + "\n"
}

// Blocks returns every rule block in output order: each breakpoint's IE
// fallback block (if any) followed by the breakpoint block itself.
func Blocks(cfg Config) []RuleBlock {
	g := newGenerator(cfg)
	blocks := make([]RuleBlock, 0, len(cfg.Breakpoints)+1)
	for i := range cfg.Breakpoints {
		block := g.breakpointBlock(i)
		if ie, ok := IEFallbackBlock(cfg, block); ok {
			blocks = append(blocks, ie)
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func headerLines(cfg Config, info BuildInfo) []string {
	lines := []string{
		`@charset "utf-8";`,
		"",
		"/*",
		" * smart-grid.css",
		" * Code developed under a BSD License: https://raw.github.com/dryan/css-smart-grid/master/LICENSE.txt",
		" * Version: " + info.Version,
		" * Latest update: " + info.Date.Format("2006-01-02"),
		" */",
		"",
	}

	if cfg.IsCustom() {
		lines = append(lines,
			"/*",
			" * Custom Build",
			fmt.Sprintf(" * Columns: %d", cfg.Columns),
			fmt.Sprintf(" * Gutter Width: %d", cfg.Gutter),
			" * IE Fallback Class: "+cfg.IEFallbackClass,
			fmt.Sprintf(" * IE Fallback Width: %d", cfg.IEFallbackWidth),
			" */",
			"",
		)
	}

	lines = append(lines, "/*", " * Breakpoints:")
	for _, bp := range cfg.Breakpoints {
		label := bp.Label
		if label == "" {
			label = "Breakpoint"
		}
		lines = append(lines, fmt.Sprintf(" * %-20s-   %dpx", label, bp.Width))
	}
	return append(lines, " */", "")
}

func bodyLines(cfg Config) []string {
	lines := []string{
		"/*",
		" * Base container class",
		" */",
		"." + cfg.ContainerClass + " {",
		fmt.Sprintf("    padding: 0 %dpx;", cfg.Gutter/2),
		"    margin: 0 auto;",
		"    clear: both;",
		"}",
		"",
		"/*",
		" * contain rows of columns",
		" */",
		".row {",
		"    zoom: 1;",
		"    overflow: hidden;",
		"}",
	}

	for _, block := range Blocks(cfg) {
		lines = append(lines, block.Lines()...)
	}
	return lines
}

// Lines renders the block as CSS text lines. Breakpoint blocks are wrapped in
// a min-width media query and indented one tab; IE fallback blocks are not.
func (b RuleBlock) Lines() []string {
	var lines []string
	switch b.Kind {
	case KindIEFallback:
		lines = append(lines, "", "/*", fmt.Sprintf(" * IE Fallback: %dpx", b.Breakpoint.Width), " */")
		for _, r := range b.Rules {
			lines = append(lines, r.lines("")...)
		}
	default:
		lines = append(lines,
			"",
			"/*",
			fmt.Sprintf(" * Breakpoint: %dpx", b.Breakpoint.Width),
			" */",
			fmt.Sprintf("@media screen and (min-width:%dpx) {", b.Breakpoint.Width),
		)
		for _, r := range b.Rules {
			lines = append(lines, r.lines("\t")...)
		}
		lines = append(lines, "}")
	}
	return lines
}

func (r Rule) lines(indent string) []string {
	lines := make([]string, 0, len(r.Selectors)+len(r.Declarations)+1)
	for i, sel := range r.Selectors {
		if i == len(r.Selectors)-1 {
			lines = append(lines, indent+sel+" {")
		} else {
			lines = append(lines, indent+sel+",")
		}
	}
	for _, d := range r.Declarations {
		lines = append(lines, indent+"\t"+d.Property+": "+d.Value+";")
	}
	return append(lines, indent+"}")
}
