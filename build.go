package smartgrid

import (
	"fmt"

	"github.com/yacobolo/smartgrid/internal/grid"
)

// Result holds one rendered build
type Result struct {
	CSS      string // Full stylesheet
	Minified string // Header verbatim followed by the minified body
	Custom   bool   // Config differs from DefaultConfig
	Info     BuildInfo
}

// Build validates the configuration and version, then renders and minifies
// the stylesheet. Nothing is rendered when validation fails.
func Build(cfg Config, info BuildInfo) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := grid.ValidateVersion(info.Version); err != nil {
		return nil, err
	}

	header, body := grid.RenderParts(cfg, info)

	minified, err := Minify(body)
	if err != nil {
		return nil, fmt.Errorf("minify stylesheet: %w", err)
	}

	return &Result{
		CSS:      header + body,
		Minified: header + minified,
		Custom:   cfg.IsCustom(),
		Info:     info,
	}, nil
}
