// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     history
// Description: Persistent record of evaluated expressions
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package history

import (
	"context"
	"time"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/foundation/core/errors"
)

// Entry is one evaluated expression
type Entry struct {
	ID        string        `json:"id"`
	Session   string        `json:"session"`
	Input     string        `json:"input"`
	Output    string        `json:"output,omitempty"`
	ErrorCode string        `json:"error_code,omitempty"` // empty on success
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}

// Failed reports whether the evaluation ended in an error
func (e *Entry) Failed() bool {
	return e.ErrorCode != ""
}

// ListOptions filters List results
type ListOptions struct {
	Limit   int    // newest entries to return; 0 means DefaultListLimit
	Session string // empty lists every session
}

// DefaultListLimit applies when ListOptions.Limit is not set
const DefaultListLimit = 50

// Stats summarizes the stored history
type Stats struct {
	Entries  int64
	Sessions int64
	Failed   int64
}

// Store persists evaluation history
type Store interface {
	// Record stores e, filling in a missing ID and timestamp
	Record(ctx context.Context, e *Entry) error
	// List returns entries newest first
	List(ctx context.Context, opts ListOptions) ([]*Entry, error)
	// Clear deletes the entries of session, or all entries when session is
	// empty, and returns how many were removed
	Clear(ctx context.Context, session string) (int64, error)
	Statistics(ctx context.Context) (Stats, error)
	Close() error
}

func invalidEntry(reason string) error {
	return mdwerror.New("invalid history entry: "+reason).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(errors.ModuleHistory + ".record")
}

func validate(e *Entry) error {
	switch {
	case e == nil:
		return invalidEntry("nil entry")
	case e.Session == "":
		return invalidEntry("session is required")
	case e.Input == "":
		return invalidEntry("input is required")
	}
	return nil
}

func limitOf(opts ListOptions) int {
	if opts.Limit <= 0 {
		return DefaultListLimit
	}
	return opts.Limit
}
