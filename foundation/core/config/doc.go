// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with dot
//              notation access, a defaults layer and environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-14 v0.2.0: Defaults layer and optional discovery

/*
Package config provides configuration loading for numtower.

Lookup order for every key is: environment variable, file data, defaults.
A key such as history.path maps to the variable NUMTOWER_HISTORY_PATH when
the environment prefix is "NUMTOWER".

Usage:

	cfg, err := config.LoadWithOptions("numtower.toml", config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "NUMTOWER",
		Defaults:  map[string]interface{}{"history.limit": 1000},
	})
	if err != nil {
		return err
	}

	level := cfg.GetString("log.level", "warn")
	limit := cfg.GetInt("history.limit")

Discovery searches directories for the first matching file and falls back to
a defaults-only configuration:

	cfg, err := config.Discover(config.DiscoveryOptions{
		Paths:     []string{".", userDir},
		Filenames: []string{"numtower"},
		EnvPrefix: "NUMTOWER",
	})
*/
package config
