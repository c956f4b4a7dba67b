package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"sl-calculator/internal/charges"
)

type Config struct {
	Charges charges.Rates `yaml:"charges"`
	Server  struct {
		Addr string `yaml:"addr"`
		Mode string `yaml:"mode"` // gin mode: debug, release or test
	} `yaml:"server"`
	Output struct {
		Format string `yaml:"format"` // text or json
	} `yaml:"output"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{Charges: charges.DefaultRates()}
	c.Server.Addr = ":8080"
	c.Server.Mode = "release"
	c.Output.Format = "text"
	return c
}

func (c *Config) Validate() error {
	if err := c.Charges.Validate(); err != nil {
		return err
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server.mode '%s': must be 'debug', 'release' or 'test'", c.Server.Mode)
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr cannot be empty")
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("invalid output.format '%s': must be 'text' or 'json'", c.Output.Format)
	}
	return nil
}

// Rates returns the charge schedule with an empty levy mode resolved.
func (c *Config) Rates() charges.Rates {
	r := c.Charges
	if r.LevyMode == "" {
		r.LevyMode = charges.LevyByDirection
	}
	return r
}

// LoadConfig reads path over the defaults. A missing file is not an error;
// any key left out of the file keeps its default.
func LoadConfig(path string) (*Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return c, nil
	case err != nil:
		return nil, err
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	c.Server.Mode = strings.ToLower(c.Server.Mode)
	c.Output.Format = strings.ToLower(c.Output.Format)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return c, nil
}

// SaveToFile writes c as YAML, e.g. to seed an editable config file.
func (c *Config) SaveToFile(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
