package grid

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// MaxColumns is the largest column count the number-word table can name.
const MaxColumns = 48

var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// DefaultConfig returns the stock smart-grid configuration
func DefaultConfig() Config {
	return Config{
		Columns: 12,
		Gutter:  20,
		Breakpoints: []Breakpoint{
			{Width: 768, Label: "Tablet"},
			{Width: 960, Label: "Desktop"},
			{Width: 1200, Suffix: "large", Label: "Widescreen"},
			{Width: 1920, Suffix: "hd", Label: "Widescreen HD"},
		},
		IEFallbackClass: "oldie",
		IEFallbackWidth: 960,
		ContainerClass:  "container",
		ColumnClass:     "columns",
		MinColumnWidth:  768,
	}
}

// Validate checks every constraint generation relies on.
// The returned error is a *ConfigValidationError.
func (c Config) Validate() error {
	if c.Columns%2 != 0 {
		return invalid("columns", c.Columns, "odd numbers of columns are not supported")
	}
	if c.Columns > MaxColumns {
		return invalid("columns", c.Columns, "%d is more columns than we support (max %d)", c.Columns, MaxColumns)
	}
	if c.Columns < 2 {
		return invalid("columns", c.Columns, "at least 2 columns are required")
	}
	if c.Gutter < 0 {
		return invalid("gutter-width", c.Gutter, "gutter width cannot be negative")
	}

	for _, class := range []struct{ field, name string }{
		{"container-class", c.ContainerClass},
		{"column-class", c.ColumnClass},
		{"ie-fallback-class", c.IEFallbackClass},
	} {
		if class.name == "" || strings.ContainsAny(class.name, " .,{}") {
			return invalid(class.field, strconv.Quote(class.name), "class names must be non-empty plain identifiers")
		}
	}

	if len(c.Breakpoints) == 0 {
		return invalid("breakpoints", "[]", "at least one breakpoint is required")
	}
	for i, bp := range c.Breakpoints {
		if bp.Width <= 0 {
			return invalid("breakpoints", bp.Width, "breakpoint widths must be positive")
		}
		if i > 0 && bp.Width <= c.Breakpoints[i-1].Width {
			return invalid("breakpoints", bp.Width, "breakpoints must be strictly ascending")
		}
		if strings.ContainsAny(bp.Suffix, " .,{}") {
			return invalid("breakpoints", strconv.Quote(bp.Suffix), "breakpoint suffixes must be plain identifiers")
		}
	}

	if c.indexOf(c.IEFallbackWidth) < 0 {
		return invalid("ie-fallback-width", c.IEFallbackWidth,
			"%d is not a supported IE fallback width. Try one of %s", c.IEFallbackWidth, c.widthList())
	}
	if c.indexOf(c.MinColumnWidth) < 0 {
		return invalid("min-column-width", c.MinColumnWidth,
			"%d is not a configured breakpoint. Try one of %s", c.MinColumnWidth, c.widthList())
	}

	// Every emitted width has to stay non-negative: the widest gutter run is
	// either the full column row or the fifths.
	gutters := max(c.Columns-1, 4)
	for _, bp := range c.Breakpoints {
		container := ContainerWidth(bp.Width, c.Gutter)
		if container < 0 || (bp.Width >= c.MinColumnWidth && container-gutters*c.Gutter < 0) {
			return invalid("gutter-width", c.Gutter, "gutter is too wide for the %dpx breakpoint", bp.Width)
		}
	}

	return nil
}

// IsCustom reports whether any option differs from DefaultConfig.
func (c Config) IsCustom() bool {
	d := DefaultConfig()
	return c.Columns != d.Columns ||
		c.Gutter != d.Gutter ||
		c.IEFallbackClass != d.IEFallbackClass ||
		c.IEFallbackWidth != d.IEFallbackWidth ||
		c.ContainerClass != d.ContainerClass ||
		c.ColumnClass != d.ColumnClass ||
		c.MinColumnWidth != d.MinColumnWidth ||
		c.LegacyNumberWords != d.LegacyNumberWords ||
		!slices.Equal(c.Breakpoints, d.Breakpoints)
}

// ValidateVersion checks a release version has the X.Y.Z form.
func ValidateVersion(version string) error {
	if !versionPattern.MatchString(version) {
		return invalid("version", strconv.Quote(version), "version number is not in the format X.X.X")
	}
	return nil
}

func (c Config) indexOf(width int) int {
	return slices.IndexFunc(c.Breakpoints, func(bp Breakpoint) bool {
		return bp.Width == width
	})
}

func (c Config) widthList() string {
	widths := make([]string, len(c.Breakpoints))
	for i, bp := range c.Breakpoints {
		widths[i] = strconv.Itoa(bp.Width)
	}
	return strings.Join(widths, ", ")
}

func (c Config) containerSelector(suffix string) string {
	if suffix == "" {
		return "." + c.ContainerClass
	}
	return "." + c.ContainerClass + "." + suffix
}

func (c Config) numberWord(n int) string {
	if c.LegacyNumberWords {
		return LegacyNumberWord(n)
	}
	return NumberWord(n)
}
