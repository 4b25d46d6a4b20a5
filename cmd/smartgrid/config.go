package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/smartgrid"
	"github.com/yacobolo/smartgrid/internal/release"
)

const (
	defaultConfigPath = ".smartgrid.yaml"
	envPrefix         = "SMARTGRID_"
)

var k = koanf.New(".")

// configSections are the nested blocks of the config file
var configSections = []string{"generate", "inspect"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	if err := loadConfigFromPath(configPath(cmd)); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set).
	// Defaults stay out of koanf so config file values are not shadowed.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// configPath resolves the config file path from the --config flag
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = defaultConfigPath
	}
	return path
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(path string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// 2. Environment variables (SMARTGRID_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to its config key:
//
//	SMARTGRID_GENERATE_GUTTER_WIDTH -> generate.gutter-width
//	SMARTGRID_INSPECT_STRICT        -> inspect.strict
//	SMARTGRID_QUIET                 -> quiet
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range configSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

// generateOptions is everything one generate run needs
type generateOptions struct {
	Grid      smartgrid.Config
	Version   string // "", "+1" or X.Y.Z
	Date      string // YYYY-MM-DD override
	OutputDir string
	Stdout    bool
	Watch     bool
	TagsURL   string
	Repo      string
	Debug     bool
	Quiet     bool
	Color     bool
}

// buildGridConfig constructs the library's Config struct from koanf state.
func buildGridConfig() (smartgrid.Config, error) {
	def := smartgrid.DefaultConfig()
	cfg := smartgrid.Config{
		Columns:           getIntWithFallback("columns", "generate.columns", def.Columns),
		Gutter:            getIntWithFallback("gutter-width", "generate.gutter-width", def.Gutter),
		Breakpoints:       def.Breakpoints,
		IEFallbackClass:   getStringWithFallback("ie-fallback-class", "generate.ie-fallback-class", def.IEFallbackClass),
		IEFallbackWidth:   getIntWithFallback("ie-fallback-width", "generate.ie-fallback-width", def.IEFallbackWidth),
		ContainerClass:    getStringWithFallback("container-class", "generate.container-class", def.ContainerClass),
		ColumnClass:       getStringWithFallback("column-class", "generate.column-class", def.ColumnClass),
		MinColumnWidth:    getIntWithFallback("min-column-width", "generate.min-column-width", def.MinColumnWidth),
		LegacyNumberWords: getBoolWithFallback("legacy-number-words", "generate.legacy-number-words", def.LegacyNumberWords),
	}

	if k.Exists("generate.breakpoints") {
		var breakpoints []smartgrid.Breakpoint
		if err := k.Unmarshal("generate.breakpoints", &breakpoints); err != nil {
			return smartgrid.Config{}, fmt.Errorf("reading breakpoints: %w", err)
		}
		cfg.Breakpoints = breakpoints
	}

	return cfg, nil
}

// buildGenerateOptions constructs generate options from koanf state and the
// optional positional version argument.
func buildGenerateOptions(args []string) (generateOptions, error) {
	cfg, err := buildGridConfig()
	if err != nil {
		return generateOptions{}, err
	}

	opts := generateOptions{
		Grid:      cfg,
		Version:   getStringWithFallback("version", "generate.version", ""),
		Date:      getStringWithFallback("date", "generate.date", ""),
		OutputDir: getStringWithFallback("output-dir", "generate.output-dir", "css"),
		Stdout:    getBoolWithFallback("stdout", "generate.stdout", false),
		Watch:     getBoolWithFallback("watch", "generate.watch", false),
		TagsURL:   getStringWithFallback("tags-url", "generate.tags-url", release.DefaultBaseURL),
		Repo:      getStringWithFallback("repo", "generate.repo", release.DefaultRepo),
		Debug:     getBoolWithFallback("debug", "debug", false),
		Quiet:     getBoolWithFallback("quiet", "quiet", false),
		Color:     getBoolWithFallback("color", "color", false),
	}

	// A positional version wins over --version
	if len(args) > 0 {
		opts.Version = args[0]
	}

	return opts, nil
}

// buildInspectConfig constructs the library's InspectConfig from koanf state
// and positional patterns.
func buildInspectConfig(args []string) smartgrid.InspectConfig {
	var paths []string
	if len(args) > 0 {
		paths = args
	} else if p := k.Strings("inspect.paths"); len(p) > 0 {
		paths = p
	} else {
		paths = smartgrid.DefaultInspectPaths
	}

	return smartgrid.InspectConfig{
		Paths:           paths,
		IncludeMinified: getBoolWithFallback("include-minified", "inspect.include-minified", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// resetConfig discards all loaded configuration
func resetConfig() {
	k = koanf.New(".")
}
