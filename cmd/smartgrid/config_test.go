package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/smartgrid"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	resetConfig()
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".smartgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	path := writeConfig(t, `
debug: true

generate:
  columns: 16
  gutter-width: 10
  ie-fallback-class: lt-ie9
  ie-fallback-width: 1200
  output-dir: public/css
  breakpoints:
    - width: 600
      label: Phone
    - width: 1200
      suffix: large
      label: Widescreen

inspect:
  strict: true
  paths:
    - "public/**/*.css"
`)
	require.NoError(t, loadConfigFromPath(path))

	assert.True(t, k.Bool("debug"))
	assert.Equal(t, 16, k.Int("generate.columns"))
	assert.True(t, k.Bool("inspect.strict"))

	cfg, err := buildGridConfig()
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Columns)
	assert.Equal(t, 10, cfg.Gutter)
	assert.Equal(t, "lt-ie9", cfg.IEFallbackClass)
	assert.Equal(t, 1200, cfg.IEFallbackWidth)
	assert.Equal(t, []smartgrid.Breakpoint{
		{Width: 600, Label: "Phone"},
		{Width: 1200, Suffix: "large", Label: "Widescreen"},
	}, cfg.Breakpoints)

	opts, err := buildGenerateOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, "public/css", opts.OutputDir)
	assert.True(t, opts.Debug)

	inspect := buildInspectConfig(nil)
	assert.Equal(t, []string{"public/**/*.css"}, inspect.Paths)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.smartgrid.yaml"))

	cfg, err := buildGridConfig()
	require.NoError(t, err)
	assert.Equal(t, smartgrid.DefaultConfig(), cfg)

	opts, err := buildGenerateOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, "css", opts.OutputDir)
	assert.Equal(t, "", opts.Version)
	assert.Equal(t, "https://api.github.com", opts.TagsURL)
	assert.Equal(t, "dryan/css-smart-grid", opts.Repo)
	assert.False(t, opts.Stdout)

	assert.Equal(t, smartgrid.DefaultInspectPaths, buildInspectConfig(nil).Paths)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	path := writeConfig(t, `
generate:
  gutter-width: 10
  columns: 16
inspect:
  strict: false
`)

	t.Setenv("SMARTGRID_GENERATE_GUTTER_WIDTH", "30")
	t.Setenv("SMARTGRID_INSPECT_STRICT", "true")
	t.Setenv("SMARTGRID_QUIET", "true")

	require.NoError(t, loadConfigFromPath(path))

	cfg, err := buildGridConfig()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Gutter)
	assert.Equal(t, 16, cfg.Columns)
	assert.True(t, k.Bool("inspect.strict"))
	assert.True(t, k.Bool("quiet"))
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	resetKoanf()

	path := writeConfig(t, `
generate:
  columns: 16
  gutter-width: 30
`)

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", defaultConfigPath, "")
	addGenerateFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--config", path, "-c", "24", "--stdout"}))
	require.NoError(t, loadConfig(cmd))

	cfg, err := buildGridConfig()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Columns, "explicit flag wins")
	assert.Equal(t, 30, cfg.Gutter, "unset flag default does not shadow the file")

	opts, err := buildGenerateOptions([]string{"4.2.0"})
	require.NoError(t, err)
	assert.True(t, opts.Stdout)
	assert.Equal(t, "4.2.0", opts.Version)
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"SMARTGRID_GENERATE_GUTTER_WIDTH":        "generate.gutter-width",
		"SMARTGRID_GENERATE_COLUMNS":             "generate.columns",
		"SMARTGRID_GENERATE_LEGACY_NUMBER_WORDS": "generate.legacy-number-words",
		"SMARTGRID_INSPECT_INCLUDE_MINIFIED":     "inspect.include-minified",
		"SMARTGRID_DEBUG":                        "debug",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestInitWritesDefaults(t *testing.T) {
	resetKoanf()
	path := filepath.Join(t.TempDir(), ".smartgrid.yaml")

	rootCmd.SetArgs([]string{"init", "--config", path})
	require.NoError(t, rootCmd.Execute())

	// The written file describes exactly the stock grid
	require.NoError(t, loadConfigFromPath(path))
	cfg, err := buildGridConfig()
	require.NoError(t, err)
	assert.Equal(t, smartgrid.DefaultConfig(), cfg)
	assert.Equal(t, smartgrid.DefaultInspectPaths, buildInspectConfig(nil).Paths)

	rootCmd.SetArgs([]string{"init", "--config", path})
	err = rootCmd.Execute()
	assert.ErrorContains(t, err, "already exists")
}
