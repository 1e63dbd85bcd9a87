package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside Dir().
const FileName = "config.yaml"

// Config is the contents of config.yaml.
//
//	hooks:
//	  search_paths: [".husky"]
//	color: auto
type Config struct {
	Hooks HooksConfig `yaml:"hooks"`
	// Color is the default for --color: auto, always or never.
	Color string `yaml:"color,omitempty"`
}

// HooksConfig configures hook lookup.
type HooksConfig struct {
	// SearchPaths are directories, relative to the git directory, searched
	// for hooks after <gitdir>/hooks when core.hooksPath is unset.
	SearchPaths []string `yaml:"search_paths,omitempty"`
}

// Load reads config.yaml from Dir(). A missing file yields the zero Config.
func Load() (*Config, error) {
	path := Path()
	if path == "" {
		return &Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads a config file. A missing file yields the zero Config;
// unknown keys and invalid values are errors.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}

	for _, p := range c.Hooks.SearchPaths {
		if p == "" {
			return errors.New("hooks.search_paths must not contain empty entries")
		}
	}
	return nil
}
