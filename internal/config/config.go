// Package config loads the span CLI settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clipperhouse/span"
)

// DefaultPath is read when no path is given. A missing default file is not
// an error.
const DefaultPath = "span.yaml"

// Config holds CLI defaults. Flags override it.
type Config struct {
	// Format is the default style id: short, human, precise or ai.
	Format string `yaml:"format"`
	// Debug enables debug logging to stderr.
	Debug bool `yaml:"debug"`
}

// Default returns the settings used when there is no config file.
func Default() Config {
	return Config{Format: "short"}
}

// Load reads the config at path, or [DefaultPath] if path is empty.
// Unset keys keep their [Default] values.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config.load %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config.load %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.load %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the format names a known style.
func (c Config) Validate() error {
	_, err := span.ParseStyle(c.Format)
	return err
}

// Style returns the parsed format style.
func (c Config) Style() (span.Style, error) {
	return span.ParseStyle(c.Format)
}
