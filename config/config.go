// Package config loads the optional YAML settings of the jigsaw command.
//
// Missing keys keep the values of Default(); command-line flags override
// whatever the file sets.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jigsaw/pattern"
	"github.com/katalvlaran/jigsaw/render"
)

// ErrInvalidConfig indicates a config value that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultScale is the BMP pixel magnification when none is set.
const DefaultScale = 4

// Export selects optional renderings of the merged picture.
type Export struct {
	// BMP is the output path of the bitmap; empty disables it.
	BMP string `yaml:"bmp"`
	// Scale is the bitmap pixel magnification.
	Scale int `yaml:"scale"`
	// Text is the output path of the '#'/'.'/'O' rendering; empty disables it.
	Text string `yaml:"text"`
}

// Config is the on-disk shape of the settings file.
type Config struct {
	// Input is the puzzle file; empty or "-" reads stdin.
	Input string `yaml:"input"`
	// Overlap is "approximate" (default) or "exact".
	Overlap string `yaml:"overlap"`
	// Pattern optionally replaces the sea monster; '#' marks motif cells.
	Pattern []string `yaml:"pattern"`
	Export  Export   `yaml:"export"`
	Verbose bool     `yaml:"verbose"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Overlap: pattern.Approximate.String(),
		Export:  Export{Scale: DefaultScale},
	}
}

// Load reads and validates the YAML file at path on top of Default().
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML data on top of Default() and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the overlap mode, the pattern and the export scale.
func (c Config) Validate() error {
	if _, err := pattern.ParseOverlapMode(c.Overlap); err != nil {
		return fmt.Errorf("overlap: %v: %w", err, ErrInvalidConfig)
	}
	if len(c.Pattern) > 0 {
		if _, err := pattern.ParseMask(c.Pattern); err != nil {
			return fmt.Errorf("pattern: %v: %w", err, ErrInvalidConfig)
		}
	}
	if c.Export.Scale < 1 || c.Export.Scale > render.MaxScale {
		return fmt.Errorf("export.scale %d outside [1,%d]: %w", c.Export.Scale, render.MaxScale, ErrInvalidConfig)
	}

	return nil
}

// OverlapMode returns the parsed overlap mode; call after Validate.
func (c Config) OverlapMode() pattern.OverlapMode {
	m, _ := pattern.ParseOverlapMode(c.Overlap)

	return m
}

// Mask returns the configured motif, or pattern.SeaMonster when none is set.
func (c Config) Mask() (pattern.Mask, error) {
	if len(c.Pattern) == 0 {
		return pattern.SeaMonster, nil
	}

	return pattern.ParseMask(c.Pattern)
}
