package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Run     RunConfig     `toml:"run" yaml:"run"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

type RunConfig struct {
	Duration       time.Duration `toml:"duration" yaml:"duration"`
	Entities       int           `toml:"entities" yaml:"entities"`
	Lifetime       int           `toml:"lifetime" yaml:"lifetime"` // max frames an entity lives before it is replaced
	Seed           int64         `toml:"seed" yaml:"seed"`
	Profile        string        `toml:"profile" yaml:"profile"` // "", "cpu" or "mem"
	GCPauseMetrics bool          `toml:"gc_pause_metrics" yaml:"gc_pause_metrics"`
	Dump           int           `toml:"dump" yaml:"dump"`               // entities to print after the report
	DumpFilter     string        `toml:"dump_filter" yaml:"dump_filter"` // component name substring
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// Load reads a config file over the defaults. The format follows the file
// extension: .yaml and .yml are YAML, anything else is TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Run.Duration <= 0 {
		return fmt.Errorf("run.duration must be positive, got %s", c.Run.Duration)
	}
	if c.Run.Entities < 0 {
		return fmt.Errorf("run.entities must not be negative, got %d", c.Run.Entities)
	}
	if c.Run.Lifetime < 1 {
		return fmt.Errorf("run.lifetime must be at least 1, got %d", c.Run.Lifetime)
	}
	if c.Run.Dump < 0 {
		return fmt.Errorf("run.dump must not be negative, got %d", c.Run.Dump)
	}
	switch c.Run.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("run.profile must be cpu or mem, got %q", c.Run.Profile)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Run: RunConfig{
			Duration: 10 * time.Second,
			Entities: 10000,
			Lifetime: 600,
			Seed:     1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
