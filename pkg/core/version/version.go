// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all numtower components
const (
	// Platform version
	Platform = "0.3.0"

	// Component versions
	Number  = "0.3.0"
	Reader  = "0.2.0"
	Calc    = "0.2.0"
	History = "0.1.0"
	REPL    = "0.1.0"
)

// Build metadata, set via -ldflags "-X github.com/msto63/numtower/pkg/core/version.GitCommit=..."
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "number":
		return Number
	case "reader":
		return Reader
	case "calc":
		return Calc
	case "history":
		return History
	case "repl":
		return REPL
	default:
		return Platform
	}
}

// Components lists the component names in display order
func Components() []string {
	return []string{"number", "reader", "calc", "history", "repl"}
}

// Info returns a one line build summary
func Info() string {
	return fmt.Sprintf("numtower %s (commit %s, built %s, %s %s/%s)",
		Platform, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
