// Package grid computes smart-grid widths and renders them as CSS rule blocks.
package grid

import (
	"fmt"
	"strings"
)

// Scopes returns, for every breakpoint, the container selectors its rules target.
//
// A named breakpoint also covers every later named breakpoint with a
// different suffix, so ".container.hd" picks up the "large" widths until its
// own media query applies. Unnamed breakpoints only ever target the bare
// container selector; they never produce duplicate sibling selectors.
func Scopes(cfg Config) [][]string {
	scopes := make([][]string, len(cfg.Breakpoints))
	for i, bp := range cfg.Breakpoints {
		var group []string
		seen := make(map[string]bool)

		if bp.Suffix != "" {
			for _, later := range cfg.Breakpoints[i:] {
				if later.Suffix == "" || later.Suffix == bp.Suffix {
					continue
				}
				sel := cfg.containerSelector(later.Suffix)
				if !seen[sel] {
					seen[sel] = true
					group = append(group, sel)
				}
			}
		}

		scopes[i] = append(group, cfg.containerSelector(bp.Suffix))
	}
	return scopes
}

// generator holds the per-configuration state shared by every block
type generator struct {
	cfg    Config
	scopes [][]string
}

func newGenerator(cfg Config) *generator {
	return &generator{cfg: cfg, scopes: Scopes(cfg)}
}

// BreakpointBlock generates the rules for one configured breakpoint.
func BreakpointBlock(cfg Config, bp Breakpoint) (RuleBlock, error) {
	i := cfg.indexOf(bp.Width)
	if i < 0 {
		return RuleBlock{}, invalid("breakpoint", bp.Width, "not a configured breakpoint")
	}
	return newGenerator(cfg).breakpointBlock(i), nil
}

func (g *generator) breakpointBlock(i int) RuleBlock {
	bp := g.cfg.Breakpoints[i]
	b := &blockBuilder{scopes: g.scopes[i]}
	container := ContainerWidth(bp.Width, g.cfg.Gutter)

	b.add(b.scoped(""), decl("width", px(container)))

	if bp.Width >= g.cfg.MinColumnWidth {
		g.columnRules(b, bp, container)
		g.fifthRules(b, container)
	}

	return RuleBlock{Breakpoint: bp, Kind: KindBreakpoint, Rules: b.rules}
}

// columnRules emits the span and offset rules for every column count, then
// computes any fraction alias the column grid could not hit exactly.
func (g *generator) columnRules(b *blockBuilder, bp Breakpoint, container int) {
	cfg := g.cfg
	columnWidth := ColumnWidth(bp.Width, cfg.Columns, cfg.Gutter)
	floatsFirst := bp.Width == cfg.MinColumnWidth
	hit := make(map[FractionSpec]bool)

	for col := 1; col <= cfg.Columns; col++ {
		width := SpanWidth(col, columnWidth, cfg.Gutter)

		var aliases []FractionSpec
		for _, f := range columnAliases {
			if f.spans(col, cfg.Columns) {
				aliases = append(aliases, f)
				hit[f] = true
			}
		}

		spans := make([]string, 0, len(aliases)+1)
		offsets := make([]string, 0, len(aliases)+1)
		for _, f := range aliases {
			spans = append(spans, g.column(f.Name()))
			offsets = append(offsets, offset(f.Name()))
		}
		if col == 1 {
			spans = append(spans, g.column(""))
		} else {
			spans = append(spans, g.column(cfg.numberWord(col)))
		}
		offsets = append(offsets, offset(cfg.numberWord(col)))

		decls := []Declaration{decl("width", px(width))}
		if col == 1 && floatsFirst {
			decls = append(decls, decl("float", "left"), decl("margin-left", px(cfg.Gutter)))
		}
		b.add(b.scoped(spans...), decls...)

		if col < cfg.Columns {
			b.add(b.scoped(offsets...), decl("padding-left", px(OffsetPadding(width, cfg.Gutter))))
		}

		if col == 1 && floatsFirst {
			b.add(b.perScope(g.column("")+":first-child", g.column("first")), decl("margin-left", "0"))
		}
	}

	for _, den := range fallbackDenominators {
		table := FractionWidths(container, cfg.Gutter, den)
		for _, f := range columnAliases {
			if f.Denominator != den || hit[f] {
				continue
			}
			fw := table[f.Numerator-1]
			b.add(b.scoped(g.column(f.Name())), decl("width", px(fw.Width)))
			b.add(b.scoped(offset(f.Name())), decl("padding-left", px(fw.Offset)))
		}
	}
}

// fifthRules emits one-fifth through five-fifths regardless of column count.
func (g *generator) fifthRules(b *blockBuilder, container int) {
	for _, fw := range FractionWidths(container, g.cfg.Gutter, 5) {
		name := fw.Fraction.Name()
		b.add(b.scoped(g.column(name)), decl("width", px(fw.Width)))
		b.add(b.scoped(offset(name)), decl("padding-left", px(fw.Offset)))
	}
}

// IEFallbackBlock re-scopes a breakpoint block under the IE fallback class.
// It reports false when the block's breakpoint is not the fallback width.
func IEFallbackBlock(cfg Config, block RuleBlock) (RuleBlock, bool) {
	bp := block.Breakpoint
	if bp.Width != cfg.IEFallbackWidth {
		return RuleBlock{}, false
	}

	container := "." + cfg.ContainerClass
	prefix := "." + cfg.IEFallbackClass + " "

	rules := make([]Rule, 0, len(block.Rules)+2)
	for _, r := range block.Rules {
		selectors := make([]string, len(r.Selectors))
		for i, sel := range r.Selectors {
			if strings.HasPrefix(sel, container) {
				sel = prefix + sel
			}
			selectors[i] = sel
		}
		rules = append(rules, Rule{
			Selectors:    selectors,
			Declarations: append([]Declaration(nil), r.Declarations...),
		})
	}

	if bp.Width >= cfg.MinColumnWidth {
		columns := prefix + cfg.containerSelector(bp.Suffix) + " ." + cfg.ColumnClass
		rules = append(rules, Rule{
			Selectors:    []string{columns},
			Declarations: []Declaration{decl("float", "left"), decl("margin-left", px(cfg.Gutter))},
		})
		// At the minimum column width the cloned rules already reset the first column
		if bp.Width != cfg.MinColumnWidth {
			rules = append(rules, Rule{
				Selectors:    []string{columns + ":first-child", columns + ".first"},
				Declarations: []Declaration{decl("margin-left", "0")},
			})
		}
	}

	return RuleBlock{Breakpoint: bp, Kind: KindIEFallback, Rules: rules}, true
}

// column returns the descendant selector for the column class with an optional modifier.
func (g *generator) column(modifier string) string {
	if modifier == "" {
		return " ." + g.cfg.ColumnClass
	}
	return " ." + g.cfg.ColumnClass + "." + modifier
}

func offset(name string) string {
	return " .offset-" + name
}

// blockBuilder accumulates rules for one breakpoint
type blockBuilder struct {
	scopes []string
	rules  []Rule
}

func (b *blockBuilder) add(selectors []string, decls ...Declaration) {
	b.rules = append(b.rules, Rule{Selectors: selectors, Declarations: decls})
}

// scoped joins every scope with every suffix, suffix-major: all scopes of the
// first suffix come before the second suffix.
func (b *blockBuilder) scoped(suffixes ...string) []string {
	if len(suffixes) == 0 {
		suffixes = []string{""}
	}
	selectors := make([]string, 0, len(suffixes)*len(b.scopes))
	for _, suffix := range suffixes {
		for _, scope := range b.scopes {
			selectors = append(selectors, scope+suffix)
		}
	}
	return selectors
}

// perScope is scoped with scope-major ordering.
func (b *blockBuilder) perScope(suffixes ...string) []string {
	selectors := make([]string, 0, len(suffixes)*len(b.scopes))
	for _, scope := range b.scopes {
		for _, suffix := range suffixes {
			selectors = append(selectors, scope+suffix)
		}
	}
	return selectors
}

func decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

func px(n int) string {
	return fmt.Sprintf("%dpx", n)
}
