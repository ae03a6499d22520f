// Package config loads drawing and export settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	FormatHTML = "html"
	FormatSVG  = "svg"
)

// Environment overrides, applied after the config file.
const (
	EnvOutput   = "TURTLE_OUTPUT"
	EnvFormat   = "TURTLE_FORMAT"
	EnvLogLevel = "TURTLE_LOG_LEVEL"
)

type Config struct {
	Output   string `yaml:"output"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	Canvas   Canvas `yaml:"canvas"`
}

// Canvas controls how recorded segments map onto the exported image.
type Canvas struct {
	Title       string  `yaml:"title"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Scale       float64 `yaml:"scale"`
	StrokeWidth float64 `yaml:"stroke_width"`
	Opacity     float64 `yaml:"opacity"`
	Background  string  `yaml:"background"`
	// FlipY draws +y upwards. Off by default: turtle y maps straight onto SVG y.
	FlipY bool `yaml:"flip_y"`
}

func Default() Config {
	return Config{
		Output:   "turtle_art.html",
		Format:   FormatHTML,
		LogLevel: "info",
		Canvas: Canvas{
			Title:       "Turtle Art",
			Width:       600,
			Height:      600,
			Scale:       0.8,
			StrokeWidth: 2,
			Opacity:     0.7,
			Background:  "white",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path (if path is
// not empty) and then with TURTLE_* environment variables. A .env file in the
// working directory is read first when present. The result is not validated;
// callers apply their own overrides (flags) and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func (c Config) Validate() error {
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	switch strings.ToLower(c.Format) {
	case FormatHTML, FormatSVG:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatHTML, FormatSVG)
	}
	if !positive(c.Canvas.Width) || !positive(c.Canvas.Height) {
		return fmt.Errorf("canvas size %vx%v must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if !positive(c.Canvas.Scale) {
		return fmt.Errorf("canvas scale %v must be positive", c.Canvas.Scale)
	}
	if !positive(c.Canvas.StrokeWidth) {
		return fmt.Errorf("stroke width %v must be positive", c.Canvas.StrokeWidth)
	}
	if !(c.Canvas.Opacity >= 0 && c.Canvas.Opacity <= 1) {
		return fmt.Errorf("opacity %v must be within [0, 1]", c.Canvas.Opacity)
	}
	return nil
}
