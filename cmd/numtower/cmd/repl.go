// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive REPL
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/numtower/internal/history"
	"github.com/msto63/numtower/internal/tui/repl"
	"github.com/msto63/numtower/pkg/core/logging"
)

func newREPLCmd(a *app) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Startet die interaktive Sitzung",
		Long: `Startet die interaktive numtower-Sitzung.

Jede Auswertung wird in der Historie gespeichert, sofern
history.enabled gesetzt ist.

Tastenkürzel:
  Enter       Ausdruck auswerten
  ↑/↓         Frühere Eingaben
  PgUp/PgDn   Scrollen
  Ctrl+L      Ausgabe leeren
  Ctrl+C      Beenden

Befehle:
  :help       Operatoren auflisten
  :stats      Historie und Cache
  :quit       Beenden`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := a.evaluator()
			if err != nil {
				return err
			}

			var store history.Store
			sqlite, err := a.openStore()
			if err != nil {
				printError(cmd, "Historie nicht verfügbar", err)
			} else if sqlite != nil {
				defer sqlite.Close()
				store = sqlite
			}

			return repl.Run(repl.Config{
				Evaluator:   ev,
				Store:       store,
				Logger:      logging.Wrap(a.base, "repl"),
				Prompt:      a.settings.REPL.Prompt,
				EvalTimeout: timeout,
			})
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Zeitlimit pro Eingabe")
	return cmd
}
