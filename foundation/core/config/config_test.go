// File: config_test.go
// Title: Configuration Tests
// Description: Tests for TOML/YAML loading, defaults, env overrides and
//              discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
)

const tomlContent = `
[log]
level = "debug"
format = "json"

[history]
enabled = true
limit = 250
path = "/tmp/history.db"

[repl]
timeout = "2s"
`

const yamlContent = `
log:
  level: info
reader:
  default_float: double
history:
  limit: 50
  ratio: 0.5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(writeFile(t, "numtower.toml", tomlContent))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Format() != FormatTOML {
		t.Errorf("Format() = %v, want toml", cfg.Format())
	}
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q", got)
	}
	if got := cfg.GetInt("history.limit"); got != 250 {
		t.Errorf("history.limit = %d", got)
	}
	if !cfg.GetBool("history.enabled") {
		t.Error("history.enabled = false")
	}
	if got := cfg.GetDuration("repl.timeout"); got != 2*time.Second {
		t.Errorf("repl.timeout = %v", got)
	}
	if got := cfg.GetString("missing.key", "fallback"); got != "fallback" {
		t.Errorf("missing.key = %q", got)
	}
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "numtower.yaml", yamlContent))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Format() != FormatYAML {
		t.Errorf("Format() = %v, want yaml", cfg.Format())
	}
	if got := cfg.GetString("reader.default_float"); got != "double" {
		t.Errorf("reader.default_float = %q", got)
	}
	if got := cfg.GetInt("history.limit"); got != 50 {
		t.Errorf("history.limit = %d", got)
	}
	if got := cfg.GetFloat("history.ratio"); got != 0.5 {
		t.Errorf("history.ratio = %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code mdwerror.Code
	}{
		{"empty path", "", mdwerror.CodeMissingConfig},
		{"missing file", filepath.Join(t.TempDir(), "nope.toml"), mdwerror.CodeMissingConfig},
		{"bad toml", writeFile(t, "bad.toml", "[log\nlevel ="), mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("code = %v, want %v", mdwerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestDefaultsAndEnvOverride(t *testing.T) {
	cfg, err := LoadWithOptions(writeFile(t, "numtower.toml", tomlContent), LoadOptions{
		EnvPrefix: "NUMTOWER",
		Defaults: map[string]interface{}{
			"repl.prompt":   "> ",
			"history.limit": 1000,
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetString("repl.prompt"); got != "> " {
		t.Errorf("default repl.prompt = %q", got)
	}
	if got := cfg.GetInt("history.limit"); got != 250 {
		t.Errorf("file value should beat default, got %d", got)
	}

	t.Setenv("NUMTOWER_HISTORY_LIMIT", "7")
	t.Setenv("NUMTOWER_LOG_LEVEL", "error")
	if got := cfg.GetInt("history.limit"); got != 7 {
		t.Errorf("env value should beat file, got %d", got)
	}
	if got := cfg.GetString("log.level"); got != "error" {
		t.Errorf("log.level = %q", got)
	}
	if !cfg.Has("log.level") || cfg.Has("nothing.here") {
		t.Error("Has() mismatch")
	}
}

func TestSetAndKeys(t *testing.T) {
	cfg, err := LoadFromString(`a = 1
[b]
c = "x"`, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	cfg = cfg.WithDefaults(map[string]interface{}{"d.e": true})
	cfg.Set("b.f", "y")

	want := []string{"a", "b.c", "b.f", "d.e"}
	if got := cfg.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if cfg.GetString("b.f") != "y" {
		t.Errorf("b.f = %q", cfg.GetString("b.f"))
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	options := DiscoveryOptions{
		Paths:     []string{filepath.Join(dir, "missing"), dir},
		Filenames: []string{"numtower"},
		Defaults:  map[string]interface{}{"log.level": "warn"},
	}

	cfg, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() without file error = %v", err)
	}
	if cfg.FilePath() != "" || cfg.GetString("log.level") != "warn" {
		t.Errorf("expected defaults-only config, got path %q", cfg.FilePath())
	}

	path := filepath.Join(dir, "numtower.yml")
	if err := os.WriteFile(path, []byte("log:\n  level: trace\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}
	if cfg.GetString("log.level") != "trace" {
		t.Errorf("log.level = %q", cfg.GetString("log.level"))
	}
}
