// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     cmd
// Description: CLI commands for the evaluation history
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/internal/history"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	var session string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Zeigt gespeicherte Auswertungen",
		Long: `Zeigt die zuletzt gespeicherten Auswertungen, neueste zuerst.

Beispiele:
  numtower history                       # Letzte 20 Einträge
  numtower history --limit 100
  numtower history --session <id>        # Nur eine Sitzung
  numtower history stats
  numtower history clear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store history.Store) error {
				entries, err := store.List(context.Background(), history.ListOptions{Limit: limit, Session: session})
				if err != nil {
					return err
				}
				printEntries(cmd, entries)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Anzahl der Einträge")
	cmd.Flags().StringVarP(&session, "session", "s", "", "Nur Einträge dieser Sitzung")

	var clearSession string
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Löscht die Historie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store history.Store) error {
				n, err := store.Clear(context.Background(), clearSession)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d Einträge gelöscht\n", n)
				return nil
			})
		},
	}
	clearCmd.Flags().StringVarP(&clearSession, "session", "s", "", "Nur Einträge dieser Sitzung löschen")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Statistik der Historie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store history.Store) error {
				st, err := store.Statistics(context.Background())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Einträge:   %d\n", st.Entries)
				fmt.Fprintf(out, "Sitzungen:  %d\n", st.Sessions)
				fmt.Fprintf(out, "Fehler:     %d\n", st.Failed)
				fmt.Fprintf(out, "Datei:      %s\n", a.settings.History.Path)
				return nil
			})
		},
	}

	cmd.AddCommand(clearCmd, statsCmd)
	return cmd
}

// withStore opens the history database for the duration of fn
func (a *app) withStore(fn func(history.Store) error) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	if store == nil {
		return mdwerror.New("Historie ist deaktiviert (history.enabled = false)").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("history.open")
	}
	defer store.Close()
	return fn(store)
}

func printEntries(cmd *cobra.Command, entries []*history.Entry) {
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "Keine Einträge.")
		return
	}

	fmt.Fprintf(out, "%-19s %-8s %-40s %s\n", "ZEIT", "SITZUNG", "AUSDRUCK", "ERGEBNIS")
	fmt.Fprintln(out, strings.Repeat("-", 90))
	for _, e := range entries {
		result := e.Output
		if e.Failed() {
			result = "Fehler: " + e.ErrorCode
		}
		fmt.Fprintf(out, "%-19s %-8s %-40s %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			shortID(e.Session),
			truncate(e.Input, 40),
			result)
	}
	fmt.Fprintf(out, "\nGesamt: %d Eintrag/Einträge\n", len(entries))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, width int) string {
	if len([]rune(s)) <= width {
		return s
	}
	return string([]rune(s)[:width-3]) + "..."
}
