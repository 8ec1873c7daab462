// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first configuration
//              file with a known name and extension.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of configuration discovery
// - 2025-08-14 v0.2.0: Optional discovery falls back to a defaults-only config

package config

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions configures the search for a configuration file
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
	EnvPrefix  string
	Defaults   map[string]interface{}
}

// FindConfigFile returns the first existing candidate file, or "" when none
// exists.
func FindConfigFile(options DiscoveryOptions) string {
	for _, candidate := range candidates(options) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// Discover loads the first configuration file found. Without a file it
// returns a configuration holding only the defaults.
func Discover(options DiscoveryOptions) (*Config, error) {
	path := FindConfigFile(options)
	if path == "" {
		return New(options.EnvPrefix, options.Defaults), nil
	}
	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
}

func candidates(options DiscoveryOptions) []string {
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}
	out := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(extensions))
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range extensions {
				out = append(out, filepath.Join(dir, name+ext))
			}
		}
	}
	return out
}
