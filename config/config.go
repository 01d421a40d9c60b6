// Package config loads commentcode.yaml (§4.11): threshold, token
// budget, model data directory, and the optional findings-store
// backend.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "commentcode.yaml"

// Defaults mirror spec.md §4.7's bundled model: 0.83 is the threshold
// the current bundled model at DefaultDataDir was tuned against.
const (
	DefaultThreshold = 0.83
	DefaultMaxTokens = 512
	DefaultDataDir   = "./testdata/model"
)

// StoreConfig selects and configures the findings-persistence backend
// of §4.10. Backend "" or "none" disables persistence.
type StoreConfig struct {
	Backend    string `yaml:"backend"`
	Connection string `yaml:"connection"`
}

// Config is the root of commentcode.yaml.
type Config struct {
	Threshold float64     `yaml:"threshold"`
	MaxTokens int         `yaml:"maxTokens"`
	DataDir   string      `yaml:"dataDir"`
	Store     StoreConfig `yaml:"store"`
}

// Default returns a Config populated with built-in defaults and no
// store backend.
func Default() Config {
	return Config{
		Threshold: DefaultThreshold,
		MaxTokens: DefaultMaxTokens,
		DataDir:   DefaultDataDir,
	}
}

// Load reads commentcode.yaml from root. A missing file is not an
// error: it yields Default() unchanged, since the ambient stack is
// opt-in (§4.11 names a fallback explicitly).
func Load(root string) (Config, error) {
	cfg := Default()

	path := filepath.Join(root, fileName)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}
