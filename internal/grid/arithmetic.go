package grid

// All grid arithmetic uses truncating integer division at every step so that
// widths match the historical smart-grid output to the pixel.

// ContainerWidth is the usable width inside a breakpoint
func ContainerWidth(breakpoint, gutter int) int {
	return breakpoint - gutter
}

// ColumnWidth returns the width of a single column at the given breakpoint
func ColumnWidth(breakpoint, columns, gutter int) int {
	return (ContainerWidth(breakpoint, gutter) - (columns-1)*gutter) / columns
}

// SpanWidth returns the width of cols contiguous columns including the gutters between them
func SpanWidth(cols, columnWidth, gutter int) int {
	return cols*columnWidth + (cols-1)*gutter
}

// OffsetPadding is the left padding that pushes content past a span and its gutter
func OffsetPadding(spanWidth, gutter int) int {
	return spanWidth + gutter
}

// FractionWidth is the width and offset of one named fraction
type FractionWidth struct {
	Fraction FractionSpec
	Width    int
	Offset   int
}

// FractionWidths splits a container into denominator equal parts directly,
// independent of the column grid. The result is indexed by numerator-1.
func FractionWidths(containerWidth, gutter, denominator int) []FractionWidth {
	part := (containerWidth - (denominator-1)*gutter) / denominator

	widths := make([]FractionWidth, denominator)
	for n := 1; n <= denominator; n++ {
		width := SpanWidth(n, part, gutter)
		widths[n-1] = FractionWidth{
			Fraction: FractionSpec{Numerator: n, Denominator: denominator},
			Width:    width,
			Offset:   OffsetPadding(width, gutter),
		}
	}
	return widths
}
