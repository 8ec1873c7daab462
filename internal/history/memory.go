// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     history
// Description: In-memory history store
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps history for the lifetime of the process. The REPL uses
// it when persistent history is disabled.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    []*Entry // oldest first
	maxEntries int
}

// NewMemoryStore creates an in-memory store; maxEntries 0 keeps everything
func NewMemoryStore(maxEntries int) *MemoryStore {
	return &MemoryStore{maxEntries: maxEntries}
}

func (s *MemoryStore) Record(ctx context.Context, e *Entry) error {
	if err := validate(e); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	stored := *e
	s.entries = append(s.entries, &stored)
	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		s.entries = append([]*Entry(nil), s.entries[len(s.entries)-s.maxEntries:]...)
	}
	return nil
}

func (s *MemoryStore) List(ctx context.Context, opts ListOptions) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := limitOf(opts)
	var out []*Entry
	for i := len(s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := s.entries[i]
		if opts.Session != "" && e.Session != opts.Session {
			continue
		}
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (s *MemoryStore) Clear(ctx context.Context, session string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session == "" {
		n := int64(len(s.entries))
		s.entries = nil
		return n, nil
	}
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Session != session {
			kept = append(kept, e)
		}
	}
	n := int64(len(s.entries) - len(kept))
	s.entries = kept
	return n, nil
}

func (s *MemoryStore) Statistics(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make(map[string]struct{})
	st := Stats{Entries: int64(len(s.entries))}
	for _, e := range s.entries {
		sessions[e.Session] = struct{}{}
		if e.Failed() {
			st.Failed++
		}
	}
	st.Sessions = int64(len(sessions))
	return st, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
