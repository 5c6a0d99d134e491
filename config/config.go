// Package config loads render-job settings from YAML files, mirroring the
// CLI surface so jobs can be file-driven.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid render config")

// Palette names accepted by Render.Palette.
const (
	PaletteEscape = "escape"
	PaletteSmooth = "smooth"
)

// Render describes one render job. Field meanings match the render
// command's positional arguments.
type Render struct {
	OutFile    string  `yaml:"outfile"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	MaxIters   uint    `yaml:"max_iters"`
	Left       float64 `yaml:"view_left"`
	Bottom     float64 `yaml:"view_bottom"`
	ViewHeight float64 `yaml:"view_height"`

	// Palette selects the color mapping: "escape" (default) or "smooth".
	Palette string `yaml:"palette"`

	// Workers caps the render goroutines; 0 or 1 renders sequentially.
	Workers int `yaml:"workers"`
}

// Load reads and validates a render config from a YAML file.
func Load(path string) (Render, error) {
	var r Render
	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return r, err
	}
	return r, nil
}

// Validate checks the fields a render job cannot run without. Zero raster
// dimensions are legal (they yield an empty image at the sink boundary);
// negative ones are not.
func (r Render) Validate() error {
	if r.OutFile == "" {
		return fmt.Errorf("%w: outfile is required", ErrInvalid)
	}
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: dimensions %dx%d must not be negative", ErrInvalid, r.Width, r.Height)
	}
	if r.ViewHeight <= 0 {
		return fmt.Errorf("%w: view_height must be positive, got %v", ErrInvalid, r.ViewHeight)
	}
	switch r.Palette {
	case "", PaletteEscape, PaletteSmooth:
	default:
		return fmt.Errorf("%w: unknown palette %q", ErrInvalid, r.Palette)
	}
	if r.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, r.Workers)
	}
	return nil
}
