// Package config holds the semparse configuration: where the lexicon, the
// annotated corpus and the aligner mappings live, and how results are
// printed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	// LexiconPath is a directory of YAML sense files or a SQLite file.
	LexiconPath string `yaml:"lexicon_path"`

	// CorpusPath is a directory of annotated JSON docs or a SQLite file.
	CorpusPath string `yaml:"corpus_path"`

	// MappingsPath is the YAML file of PropBank to VerbNet role mappings.
	// Without it no proposition is aligned.
	MappingsPath string `yaml:"mappings_path"`

	Workers int `yaml:"workers"`

	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type OutputConfig struct {
	Format  string `yaml:"format"` // text, json
	View    string `yaml:"view"`   // all, roles, semantics
	NoColor bool   `yaml:"no_color"`
}

func DefaultConfig() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
		Output: OutputConfig{
			Format: OutputText,
			View:   "all",
		},
		Logging: LoggingConfig{
			Level:    "warn",
			Encoding: "console",
		},
	}
}

// DefaultPath is semparse/config.yaml in the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "semparse.yaml"
	}
	return filepath.Join(dir, "semparse", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment variables override both.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Output.Format {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("SEMPARSE_LEXICON_PATH"); path != "" {
		c.LexiconPath = path
	}
	if path := os.Getenv("SEMPARSE_CORPUS_PATH"); path != "" {
		c.CorpusPath = path
	}
	if path := os.Getenv("SEMPARSE_MAPPINGS_PATH"); path != "" {
		c.MappingsPath = path
	}
	if n, err := strconv.Atoi(os.Getenv("SEMPARSE_WORKERS")); err == nil && n > 0 {
		c.Workers = n
	}
	if level := os.Getenv("SEMPARSE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}
