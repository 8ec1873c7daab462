// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     repl
// Description: Transcript lines and async messages
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package repl

import (
	"time"

	"github.com/msto63/numtower/internal/calc"
)

// Line is one submitted input with its outcome
type Line struct {
	Input     string
	Results   []calc.Result
	Err       error
	System    string // informational text instead of an evaluation
	Timestamp time.Time
}

// evalResultMsg is sent when an evaluation finished
type evalResultMsg struct {
	input    string
	results  []calc.Result
	err      error
	duration time.Duration
}

// historyLoadedMsg carries stored inputs, oldest first
type historyLoadedMsg struct {
	inputs []string
	err    error
}
