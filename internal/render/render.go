// Package render adapts the composed report to concrete output surfaces.
// The core pipeline only ever produces panel descriptions; everything
// visual (colors, typography, pixels) lives behind the Renderer interface.
package render

import (
	"fmt"
	"os"

	"MarketBoard/internal/config"
	"MarketBoard/internal/model"
)

// Renderer consumes a complete report. A renderer error is the one
// failure the report driver treats as fatal.
type Renderer interface {
	Render(rep *model.Report) error
	Name() string
}

// New selects a renderer from configuration.
func New(cfg *config.Config) (Renderer, error) {
	switch cfg.Output.Format {
	case "text":
		return &TextRenderer{Path: cfg.Output.Path}, nil
	case "json":
		return &JSONRenderer{Path: cfg.Output.Path, Palette: cfg.Palette}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
}

// openTarget returns the write target and a close func. An empty path
// means stdout.
func openTarget(path string) (*os.File, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}
	return f, f.Close, nil
}
