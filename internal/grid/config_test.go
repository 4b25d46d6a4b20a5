package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "two columns", mutate: func(c *Config) { c.Columns = 2 }},
		{name: "forty-eight columns", mutate: func(c *Config) { c.Columns = 48; c.Gutter = 10 }},
		{name: "odd columns", mutate: func(c *Config) { c.Columns = 13 }, wantField: "columns"},
		{name: "too many columns", mutate: func(c *Config) { c.Columns = 50 }, wantField: "columns"},
		{name: "zero columns", mutate: func(c *Config) { c.Columns = 0 }, wantField: "columns"},
		{name: "negative columns", mutate: func(c *Config) { c.Columns = -4 }, wantField: "columns"},
		{name: "negative gutter", mutate: func(c *Config) { c.Gutter = -2 }, wantField: "gutter-width"},
		{name: "gutter too wide", mutate: func(c *Config) { c.Gutter = 100 }, wantField: "gutter-width"},
		{name: "unsupported ie width", mutate: func(c *Config) { c.IEFallbackWidth = 1024 }, wantField: "ie-fallback-width"},
		{name: "ie width at named breakpoint", mutate: func(c *Config) { c.IEFallbackWidth = 1920 }},
		{name: "unknown min column width", mutate: func(c *Config) { c.MinColumnWidth = 800 }, wantField: "min-column-width"},
		{name: "empty container class", mutate: func(c *Config) { c.ContainerClass = "" }, wantField: "container-class"},
		{name: "dotted column class", mutate: func(c *Config) { c.ColumnClass = "col.umn" }, wantField: "column-class"},
		{name: "blank ie class", mutate: func(c *Config) { c.IEFallbackClass = "old ie" }, wantField: "ie-fallback-class"},
		{name: "no breakpoints", mutate: func(c *Config) { c.Breakpoints = nil }, wantField: "breakpoints"},
		{
			name: "descending breakpoints",
			mutate: func(c *Config) {
				c.Breakpoints[1], c.Breakpoints[2] = c.Breakpoints[2], c.Breakpoints[1]
			},
			wantField: "breakpoints",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var verr *ConfigValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.NotEmpty(t, verr.Reason)
		})
	}
}

func TestValidateMessages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IEFallbackWidth = 1024
	assert.EqualError(t, cfg.Validate(),
		"invalid ie-fallback-width 1024: 1024 is not a supported IE fallback width. Try one of 768, 960, 1200, 1920")

	cfg = DefaultConfig()
	cfg.Columns = 7
	assert.EqualError(t, cfg.Validate(), "invalid columns 7: odd numbers of columns are not supported")
}

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		version string
		valid   bool
	}{
		{"4.1.0", true},
		{"10.20.30", true},
		{"4.1", false},
		{"v4.1.0", false},
		{"4.1.0-beta", false},
		{"+1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := ValidateVersion(tt.version)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var verr *ConfigValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "version", verr.Field)
		})
	}
}

func TestIsCustom(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		custom bool
	}{
		{name: "defaults", mutate: func(*Config) {}, custom: false},
		{name: "columns", mutate: func(c *Config) { c.Columns = 16 }, custom: true},
		{name: "gutter", mutate: func(c *Config) { c.Gutter = 10 }, custom: true},
		{name: "ie class", mutate: func(c *Config) { c.IEFallbackClass = "lt-ie9" }, custom: true},
		{name: "ie width", mutate: func(c *Config) { c.IEFallbackWidth = 1200 }, custom: true},
		{name: "breakpoint label", mutate: func(c *Config) { c.Breakpoints[0].Label = "Phone" }, custom: true},
		{name: "legacy words", mutate: func(c *Config) { c.LegacyNumberWords = true }, custom: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Equal(t, tt.custom, cfg.IsCustom())
		})
	}
}

func TestDefaultConfigIsFresh(t *testing.T) {
	a := DefaultConfig()
	a.Breakpoints[0].Width = 1

	assert.Equal(t, 768, DefaultConfig().Breakpoints[0].Width)
}

func TestNumberWord(t *testing.T) {
	tests := map[int]string{
		1:  "one",
		2:  "two",
		12: "twelve",
		17: "seventeen",
		18: "eighteen",
		19: "nineteen",
		20: "twenty",
		21: "twentyone",
		30: "thirty",
		40: "forty",
		48: "fortyeight",
	}
	for n, want := range tests {
		assert.Equal(t, want, NumberWord(n), "n=%d", n)
	}

	seen := make(map[string]int)
	for n := 1; n <= MaxColumns; n++ {
		word := NumberWord(n)
		prev, dup := seen[word]
		assert.False(t, dup, "%d and %d both spell %q", prev, n, word)
		seen[word] = n
	}
}

func TestLegacyNumberWord(t *testing.T) {
	tests := map[int]string{
		12: "twelve",
		17: "seventeen",
		18: "nineteen",
		19: "nine",
		20: "twenty",
		23: "twentythree",
		40: "fourty",
		48: "fourtyeight",
	}
	for n, want := range tests {
		assert.Equal(t, want, LegacyNumberWord(n), "n=%d", n)
	}

	for n := 1; n <= 17; n++ {
		assert.Equal(t, NumberWord(n), LegacyNumberWord(n))
	}
}

func TestFractionSpecName(t *testing.T) {
	tests := []struct {
		spec FractionSpec
		want string
	}{
		{FractionSpec{1, 2}, "one-half"},
		{FractionSpec{1, 3}, "one-third"},
		{FractionSpec{2, 3}, "two-thirds"},
		{FractionSpec{3, 4}, "three-fourths"},
		{FractionSpec{1, 5}, "one-fifth"},
		{FractionSpec{2, 5}, "two-fifths"},
		{FractionSpec{5, 5}, "five-fifths"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.spec.Name())
	}
}
