package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
)

type storeFactory func(t *testing.T, maxEntries int) Store

func factories() map[string]storeFactory {
	return map[string]storeFactory{
		"sqlite": func(t *testing.T, maxEntries int) Store {
			s, err := NewSQLiteStore(Config{
				Path:       filepath.Join(t.TempDir(), "nested", "history.db"),
				MaxEntries: maxEntries,
			})
			if err != nil {
				t.Fatalf("NewSQLiteStore() error = %v", err)
			}
			t.Cleanup(func() { s.Close() })
			return s
		},
		"memory": func(t *testing.T, maxEntries int) Store {
			return NewMemoryStore(maxEntries)
		},
	}
}

func record(t *testing.T, s Store, session, input, output string) *Entry {
	t.Helper()
	e := &Entry{Session: session, Input: input, Output: output, Duration: 1500 * time.Microsecond}
	if err := s.Record(context.Background(), e); err != nil {
		t.Fatalf("Record(%q) error = %v", input, err)
	}
	return e
}

func TestRecordAndList(t *testing.T) {
	for name, newStore := range factories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t, 0)

			first := record(t, s, "a", "(floor -7 2)", "-4 1")
			record(t, s, "b", "(+ 1/2 1/3)", "5/6")
			record(t, s, "a", "(sqrt -4)", "#C(0.0 2.0)")

			if first.ID == "" || first.CreatedAt.IsZero() {
				t.Errorf("Record should fill ID and CreatedAt: %+v", first)
			}

			all, err := s.List(ctx, ListOptions{})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(all) != 3 {
				t.Fatalf("List() returned %d entries, want 3", len(all))
			}
			if all[0].Input != "(sqrt -4)" || all[2].Input != "(floor -7 2)" {
				t.Errorf("List() not newest first: %s ... %s", all[0].Input, all[2].Input)
			}
			if all[2].ID != first.ID || all[2].Output != "-4 1" || all[2].Duration != first.Duration {
				t.Errorf("stored entry = %+v, want %+v", all[2], first)
			}

			sessionA, err := s.List(ctx, ListOptions{Session: "a", Limit: 1})
			if err != nil {
				t.Fatalf("List(session) error = %v", err)
			}
			if len(sessionA) != 1 || sessionA[0].Input != "(sqrt -4)" {
				t.Errorf("List(session a, 1) = %v", sessionA)
			}
		})
	}
}

func TestMaxEntries(t *testing.T) {
	for name, newStore := range factories() {
		t.Run(name, func(t *testing.T) {
			s := newStore(t, 3)
			for i := 0; i < 5; i++ {
				record(t, s, "s", fmt.Sprintf("(+ %d 1)", i), fmt.Sprint(i+1))
			}

			entries, err := s.List(context.Background(), ListOptions{Limit: 10})
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 3 {
				t.Fatalf("kept %d entries, want 3", len(entries))
			}
			if entries[0].Input != "(+ 4 1)" || entries[2].Input != "(+ 2 1)" {
				t.Errorf("kept %s ... %s", entries[0].Input, entries[2].Input)
			}
		})
	}
}

func TestClearAndStatistics(t *testing.T) {
	for name, newStore := range factories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t, 0)

			record(t, s, "a", "(+ 1 2)", "3")
			record(t, s, "b", "(* 2 3)", "6")
			failed := &Entry{Session: "a", Input: "(/ 1 0)", ErrorCode: string(mdwerror.CodeDivisionByZero)}
			if err := s.Record(ctx, failed); err != nil {
				t.Fatal(err)
			}

			st, err := s.Statistics(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if st != (Stats{Entries: 3, Sessions: 2, Failed: 1}) {
				t.Errorf("Statistics() = %+v", st)
			}

			n, err := s.Clear(ctx, "a")
			if err != nil || n != 2 {
				t.Errorf("Clear(a) = %d, %v; want 2", n, err)
			}
			n, err = s.Clear(ctx, "")
			if err != nil || n != 1 {
				t.Errorf("Clear() = %d, %v; want 1", n, err)
			}
			if entries, _ := s.List(ctx, ListOptions{}); len(entries) != 0 {
				t.Errorf("List() after Clear = %d entries", len(entries))
			}
		})
	}
}

func TestRecordValidation(t *testing.T) {
	for name, newStore := range factories() {
		t.Run(name, func(t *testing.T) {
			s := newStore(t, 0)
			for _, e := range []*Entry{nil, {Input: "(+)"}, {Session: "s"}} {
				err := s.Record(context.Background(), e)
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
					t.Errorf("Record(%+v) error = %v", e, err)
				}
			}
		})
	}
}

func TestSQLiteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := NewSQLiteStore(Config{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	record(t, s, "s", "(expt 2 64)", "18446744073709551616")
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewSQLiteStore(Config{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	entries, err := reopened.List(context.Background(), ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Output != "18446744073709551616" {
		t.Errorf("entries after reopen = %v", entries)
	}
}
