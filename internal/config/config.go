// Package config handles converter configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrLevelCount   = errors.New("config: levels must be between 2 and 256")
	ErrBaseHeight   = errors.New("config: base_height must be positive")
	ErrStepHeight   = errors.New("config: step_height must be non-negative")
	ErrPixelSize    = errors.New("config: pixel_size must be positive")
	ErrDPI          = errors.New("config: dpi must be positive")
	ErrOutputFormat = errors.New(`config: output format must be "binary" or "ascii"`)
	ErrRenderSize   = errors.New("config: width and height must be non-negative")
)

// Config holds all converter settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Model   ModelConfig   `yaml:"model"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds rasterization settings.
type RenderConfig struct {
	DPI    float64 `yaml:"dpi"`    // rasterization resolution for SVG input
	Width  int     `yaml:"width"`  // output width in pixels (0 = derive)
	Height int     `yaml:"height"` // output height in pixels (0 = derive)
}

// ModelConfig holds heightfield and extrusion settings.
type ModelConfig struct {
	Levels         int     `yaml:"levels"`          // grayscale levels
	BaseHeight     float64 `yaml:"base_height"`     // mm, lightest level
	StepHeight     float64 `yaml:"step_height"`     // mm per darker level
	PixelSize      float64 `yaml:"pixel_size"`      // mm per pixel
	AlphaThreshold uint8   `yaml:"alpha_threshold"` // 0-255, below = background
}

// OutputConfig holds mesh export settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "binary" or "ascii"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: a 5-level relief
// with 1mm base and 0.5mm steps at 0.1mm per pixel, rasterized at 300 dpi.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			DPI:    300,
			Width:  0,
			Height: 0,
		},
		Model: ModelConfig{
			Levels:         5,
			BaseHeight:     1.0,
			StepHeight:     0.5,
			PixelSize:      0.1,
			AlphaThreshold: 128,
		},
		Output: OutputConfig{
			Format: "binary",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the config for values the pipeline cannot work with.
func (c *Config) Validate() error {
	if c.Model.Levels < 2 || c.Model.Levels > 256 {
		return fmt.Errorf("%w: got %d", ErrLevelCount, c.Model.Levels)
	}
	if c.Model.BaseHeight <= 0 {
		return fmt.Errorf("%w: got %g", ErrBaseHeight, c.Model.BaseHeight)
	}
	if c.Model.StepHeight < 0 {
		return fmt.Errorf("%w: got %g", ErrStepHeight, c.Model.StepHeight)
	}
	if c.Model.PixelSize <= 0 {
		return fmt.Errorf("%w: got %g", ErrPixelSize, c.Model.PixelSize)
	}
	if c.Render.DPI <= 0 {
		return fmt.Errorf("%w: got %g", ErrDPI, c.Render.DPI)
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return fmt.Errorf("%w: got %dx%d", ErrRenderSize, c.Render.Width, c.Render.Height)
	}
	if c.Output.Format != "binary" && c.Output.Format != "ascii" {
		return fmt.Errorf("%w: got %q", ErrOutputFormat, c.Output.Format)
	}
	return nil
}
