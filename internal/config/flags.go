package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagColors = flag.Int("colors", 0, "Number of grayscale levels")
	flagBase   = flag.Float64("base-height", 0, "Base height in mm for the lightest level")
	flagStep   = flag.Float64("step-height", -1, "Height step in mm between levels")
	flagPixel  = flag.Float64("pixel-size", 0, "Size of each pixel in mm")
	flagDPI    = flag.Float64("dpi", 0, "Rasterization resolution for SVG input")
	flagWidth  = flag.Int("width", 0, "Output width in pixels")
	flagHeight = flag.Int("height", 0, "Output height in pixels")
	flagASCII  = flag.Bool("ascii", false, "Write ASCII STL instead of binary")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagColors > 0 {
		cfg.Model.Levels = *flagColors
	}
	if *flagBase > 0 {
		cfg.Model.BaseHeight = *flagBase
	}
	if *flagStep >= 0 {
		cfg.Model.StepHeight = *flagStep
	}
	if *flagPixel > 0 {
		cfg.Model.PixelSize = *flagPixel
	}
	if *flagDPI > 0 {
		cfg.Render.DPI = *flagDPI
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if *flagASCII {
		cfg.Output.Format = "ascii"
	}
}
