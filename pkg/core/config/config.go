// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     config
// Description: Typed application settings built from foundation config
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fconfig "github.com/msto63/numtower/foundation/core/config"
	mdwerror "github.com/msto63/numtower/foundation/core/error"
	mdwlog "github.com/msto63/numtower/foundation/core/log"
)

// EnvPrefix is the prefix for environment overrides, e.g. NUMTOWER_LOG_LEVEL
const EnvPrefix = "NUMTOWER"

// ConfigEnvVar names the variable holding an explicit config file path
const ConfigEnvVar = "NUMTOWER_CONFIG"

// Config holds the complete application configuration
type Config struct {
	Log     LogConfig     `toml:"log" yaml:"log"`
	Reader  ReaderConfig  `toml:"reader" yaml:"reader"`
	History HistoryConfig `toml:"history" yaml:"history"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`
	Calc    CalcConfig    `toml:"calc" yaml:"calc"`

	// Source is the file the settings came from, empty for defaults only
	Source string `toml:"-" yaml:"-"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// ReaderConfig holds reader settings
type ReaderConfig struct {
	// DefaultFloat is the kind of an unmarked float literal such as 1.5:
	// short, single, double or long
	DefaultFloat string `toml:"default_float" yaml:"default_float"`
}

// HistoryConfig holds evaluation history settings
type HistoryConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"`
	Limit   int    `toml:"limit" yaml:"limit"`
}

// REPLConfig holds interactive session settings
type REPLConfig struct {
	Prompt string `toml:"prompt" yaml:"prompt"`
}

// CalcConfig holds evaluator settings
type CalcConfig struct {
	// CacheSize bounds the result cache; 0 disables it
	CacheSize int `toml:"cache_size" yaml:"cache_size"`
}

// Defaults returns the default values keyed by dotted config key
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"log.level":            "warn",
		"log.format":           "text",
		"reader.default_float": "single",
		"history.enabled":      true,
		"history.path":         defaultHistoryPath(),
		"history.limit":        1000,
		"repl.prompt":          "numtower> ",
		"calc.cache_size":      256,
	}
}

func defaultHistoryPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "numtower", "history.db")
	}
	return "./numtower-history.db"
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	src, err := fconfig.LoadWithOptions(os.ExpandEnv(path), fconfig.LoadOptions{
		Format:    fconfig.FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  Defaults(),
	})
	if err != nil {
		return nil, err
	}
	return FromSource(src)
}

// LoadFromEnv loads the file named by NUMTOWER_CONFIG, else the first
// numtower.toml/.yaml in the working directory or the user config directory,
// else the defaults.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return Load(path)
	}

	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "numtower"))
	}

	src, err := fconfig.Discover(fconfig.DiscoveryOptions{
		Paths:     paths,
		Filenames: []string{"numtower", "config"},
		EnvPrefix: EnvPrefix,
		Defaults:  Defaults(),
	})
	if err != nil {
		return nil, err
	}
	return FromSource(src)
}

// FromSource reads the typed settings out of a loaded configuration and
// validates them
func FromSource(src *fconfig.Config) (*Config, error) {
	cfg := &Config{
		Log: LogConfig{
			Level:  src.GetString("log.level"),
			Format: src.GetString("log.format"),
		},
		Reader: ReaderConfig{
			DefaultFloat: strings.ToLower(src.GetString("reader.default_float")),
		},
		History: HistoryConfig{
			Enabled: src.GetBool("history.enabled"),
			Path:    os.ExpandEnv(src.GetString("history.path")),
			Limit:   src.GetInt("history.limit"),
		},
		REPL: REPLConfig{
			Prompt: src.GetString("repl.prompt"),
		},
		Calc: CalcConfig{
			CacheSize: src.GetInt("calc.cache_size"),
		},
		Source: src.FilePath(),
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the settings with every key at its default value
func Default() *Config {
	d := Defaults()
	cfg := &Config{
		History: HistoryConfig{Enabled: d["history.enabled"].(bool)},
		Calc:    CalcConfig{CacheSize: d["calc.cache_size"].(int)},
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	d := Defaults()
	if c.Log.Level == "" {
		c.Log.Level = d["log.level"].(string)
	}
	if c.Log.Format == "" {
		c.Log.Format = d["log.format"].(string)
	}
	if c.Reader.DefaultFloat == "" {
		c.Reader.DefaultFloat = d["reader.default_float"].(string)
	}
	if c.History.Path == "" {
		c.History.Path = d["history.path"].(string)
	}
	if c.History.Limit == 0 {
		c.History.Limit = d["history.limit"].(int)
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = d["repl.prompt"].(string)
	}
}

// Validate checks enumerated and ranged values
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}, reason string) error {
		return mdwerror.New(fmt.Sprintf("invalid %s %v: %s", key, value, reason)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key).
			WithDetail("source", c.Source)
	}

	if _, err := mdwlog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, "expected trace, debug, info, warn, error or fatal")
	}
	if _, err := mdwlog.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", c.Log.Format, "expected json, text, console or logfmt")
	}
	switch c.Reader.DefaultFloat {
	case "short", "single", "double", "long":
	default:
		return invalid("reader.default_float", c.Reader.DefaultFloat, "expected short, single, double or long")
	}
	if c.History.Limit < 0 {
		return invalid("history.limit", c.History.Limit, "must not be negative")
	}
	if c.Calc.CacheSize < 0 {
		return invalid("calc.cache_size", c.Calc.CacheSize, "must not be negative")
	}
	return nil
}
