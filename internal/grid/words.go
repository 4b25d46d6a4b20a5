package grid

var ones = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = []string{"", "", "twenty", "thirty", "forty"}

// The table shipped with smart-grid 4.x and earlier: "eighteen" is
// missing (18 renders as "nineteen", 19 as "nine") and 40 is "fourty".
var (
	legacyOnes = append(append([]string{}, ones[:18]...), "nineteen")
	legacyTens = []string{"", "", "twenty", "thirty", "fourty"}
)

// NumberWord spells n (0..MaxColumns) for use in class names: "three", "twentyone".
func NumberWord(n int) string {
	return spell(n, ones, tens)
}

// LegacyNumberWord spells n exactly as historical smart-grid releases did,
// including their misnamed 18 and 19.
func LegacyNumberWord(n int) string {
	return spell(n, legacyOnes, legacyTens)
}

func spell(n int, units, decades []string) string {
	if n < len(units) {
		return units[n]
	}
	word := decades[n/10]
	if n%10 != 0 {
		word += units[n%10]
	}
	return word
}

// FractionSpec is a named fraction of the container width
type FractionSpec struct {
	Numerator   int
	Denominator int
}

var denominatorNames = map[int][2]string{
	2: {"half", "halves"},
	3: {"third", "thirds"},
	4: {"fourth", "fourths"},
	5: {"fifth", "fifths"},
}

// Name returns the class name for the fraction: "one-half", "two-fifths".
func (f FractionSpec) Name() string {
	forms := denominatorNames[f.Denominator]
	unit := forms[0]
	if f.Numerator > 1 {
		unit = forms[1]
	}
	return NumberWord(f.Numerator) + "-" + unit
}

// spans reports whether col of columns covers exactly this fraction.
func (f FractionSpec) spans(col, columns int) bool {
	return col*f.Denominator == f.Numerator*columns
}

// columnAliases are the fraction classes a column span also answers to, in emission order.
var columnAliases = []FractionSpec{
	{Numerator: 1, Denominator: 2},
	{Numerator: 1, Denominator: 4},
	{Numerator: 1, Denominator: 3},
	{Numerator: 3, Denominator: 4},
	{Numerator: 2, Denominator: 3},
}

// fallbackDenominators is the order missing aliases are computed directly.
var fallbackDenominators = []int{2, 4, 3}

// GuaranteedFractions lists every fraction class a breakpoint at or above the
// minimum column width defines, whatever the column count.
func GuaranteedFractions() []FractionSpec {
	fractions := append([]FractionSpec(nil), columnAliases...)
	for n := 1; n <= 5; n++ {
		fractions = append(fractions, FractionSpec{Numerator: n, Denominator: 5})
	}
	return fractions
}
