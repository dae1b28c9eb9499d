// Package config loads siftly-roster settings.
//
// The file lives at $XDG_CONFIG_HOME/siftly-roster/config.yaml
// (~/.config/siftly-roster/config.yaml when unset). A missing file is not
// an error.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const appName = "siftly-roster"

const (
	SourceGenerate = "generate"
	SourceFile     = "file"
)

// SourceConfig picks where the roster comes from.
type SourceConfig struct {
	Kind  string        `yaml:"kind,omitempty"` // generate or file
	Path  string        `yaml:"path,omitempty"`
	Count int           `yaml:"count,omitempty"`
	Seed  uint64        `yaml:"seed,omitempty"`
	Delay time.Duration `yaml:"delay,omitempty"`
}

// GridConfig holds table geometry and sort locale.
type GridConfig struct {
	RowHeight int    `yaml:"row_height,omitempty"`
	Overscan  int    `yaml:"overscan,omitempty"`
	Collation string `yaml:"collation,omitempty"`
}

type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty"`
}

type Config struct {
	Source SourceConfig `yaml:"source,omitempty"`
	Grid   GridConfig   `yaml:"grid,omitempty"`
	Log    LogConfig    `yaml:"log,omitempty"`
}

// DefaultConfig returns the settings used when no file overrides them.
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Kind:  SourceGenerate,
			Count: 1200,
			Delay: time.Second,
		},
		Grid: GridConfig{
			RowHeight: 1,
			Overscan:  10,
			Collation: "en",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG config directory, or "" if no home is known.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// Path returns the full path to config.yaml.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config from the XDG config directory.
func Load() (Config, error) {
	path := Path()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path. Fields the file leaves
// empty keep their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	cfg.fill(DefaultConfig())
	cfg.Source.Path = expandHome(cfg.Source.Path)
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// fill copies defaults into zero-valued fields. Overscan is left alone: the
// file is decoded over the defaults already and 0 is a valid setting.
func (c *Config) fill(def Config) {
	if c.Source.Kind == "" {
		c.Source.Kind = def.Source.Kind
	}
	if c.Source.Count == 0 {
		c.Source.Count = def.Source.Count
	}
	if c.Grid.RowHeight == 0 {
		c.Grid.RowHeight = def.Grid.RowHeight
	}
	if c.Grid.Collation == "" {
		c.Grid.Collation = def.Grid.Collation
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.Source.Kind {
	case SourceGenerate:
	case SourceFile:
		if c.Source.Path == "" {
			return fmt.Errorf("source.kind %q needs source.path", SourceFile)
		}
	default:
		return fmt.Errorf("unknown source.kind %q", c.Source.Kind)
	}
	if c.Source.Count < 0 {
		return fmt.Errorf("source.count must not be negative")
	}
	if c.Source.Delay < 0 {
		return fmt.Errorf("source.delay must not be negative")
	}
	if c.Grid.RowHeight < 1 {
		return fmt.Errorf("grid.row_height must be at least 1")
	}
	if c.Grid.Overscan < 0 {
		return fmt.Errorf("grid.overscan must not be negative")
	}
	if _, err := c.CollationTag(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// CollationTag parses grid.collation as a BCP 47 tag.
func (c Config) CollationTag() (language.Tag, error) {
	tag, err := language.Parse(c.Grid.Collation)
	if err != nil {
		return language.Und, fmt.Errorf("grid.collation %q: %w", c.Grid.Collation, err)
	}
	return tag, nil
}

// LogLevel parses log.level (debug, info, warn, error).
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
