// Package config loads the workbench configuration from YAML.
//
// A missing file is not an error: Load returns the defaults. Values present
// in the file override the defaults field by field.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/image-workbench-mcp/internal/catalog"
	"github.com/ironsheep/image-workbench-mcp/internal/session"
)

// Config is the workbench configuration.
type Config struct {
	Logging struct {
		// Level is a logrus level name: debug, info, warn or error.
		Level string `yaml:"level"`

		// Format is "text" or "json".
		Format string `yaml:"format"`
	} `yaml:"logging"`

	// Frequency-domain filter defaults
	Filters struct {
		LowPassCutoff    float64 `yaml:"lowPassCutoff"`
		HighPassCutoff   float64 `yaml:"highPassCutoff"`
		ButterworthOrder int     `yaml:"butterworthOrder"`
	} `yaml:"filters"`

	// Canny hysteresis thresholds on the 0-255 gradient scale
	Edges struct {
		CannyLow  float64 `yaml:"cannyLow"`
		CannyHigh float64 `yaml:"cannyHigh"`
	} `yaml:"edges"`

	Segmentation struct {
		// Highlight is the "#RRGGBB" color of watershed boundaries.
		Highlight string `yaml:"highlight"`

		// RegionTolerance is the default region growing tolerance.
		RegionTolerance float64 `yaml:"regionTolerance"`
	} `yaml:"segmentation"`

	Noise struct {
		// Seed is used when a request does not carry its own seed.
		Seed uint64 `yaml:"seed"`
	} `yaml:"noise"`

	Session struct {
		MaxZoom float64 `yaml:"maxZoom"`
	} `yaml:"session"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	opts := catalog.DefaultOptions()

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"

	cfg.Filters.LowPassCutoff = opts.LowPassCutoff
	cfg.Filters.HighPassCutoff = opts.HighPassCutoff
	cfg.Filters.ButterworthOrder = opts.ButterworthOrder

	cfg.Edges.CannyLow = opts.CannyLow
	cfg.Edges.CannyHigh = opts.CannyHigh

	cfg.Segmentation.Highlight = opts.Highlight
	cfg.Segmentation.RegionTolerance = opts.RegionTolerance

	cfg.Noise.Seed = opts.Seed

	cfg.Session.MaxZoom = session.MaxZoom
	return cfg
}

// Load reads the configuration at path. An empty path or a missing file
// yields Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// Validate checks the values that the catalog and session would reject.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	if c.Session.MaxZoom < session.MinZoom || c.Session.MaxZoom > session.MaxZoom {
		return fmt.Errorf("session.maxZoom %g outside [%g, %g]", c.Session.MaxZoom, session.MinZoom, session.MaxZoom)
	}
	if _, err := catalog.New(c.CatalogOptions()); err != nil {
		return err
	}
	return nil
}

// CatalogOptions extracts the transform defaults.
func (c *Config) CatalogOptions() catalog.Options {
	return catalog.Options{
		LowPassCutoff:    c.Filters.LowPassCutoff,
		HighPassCutoff:   c.Filters.HighPassCutoff,
		ButterworthOrder: c.Filters.ButterworthOrder,
		CannyLow:         c.Edges.CannyLow,
		CannyHigh:        c.Edges.CannyHigh,
		Highlight:        c.Segmentation.Highlight,
		RegionTolerance:  c.Segmentation.RegionTolerance,
		Seed:             c.Noise.Seed,
	}
}
