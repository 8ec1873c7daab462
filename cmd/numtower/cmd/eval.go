// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     cmd
// Description: One-shot evaluation of expressions
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
)

func newEvalCmd(a *app) *cobra.Command {
	var showInput bool

	cmd := &cobra.Command{
		Use:   "eval [ausdruck...]",
		Short: "Wertet Ausdrücke aus",
		Long: `Wertet einen oder mehrere Ausdrücke aus und gibt alle Werte aus,
eine Zeile pro Ausdruck. Ohne Argumente wird von stdin gelesen.

Beispiele:
  numtower eval "(+ 1/2 0.5d0)"        # 1.0d0
  numtower eval "(floor -7 2)"         # -4 1
  numtower eval "(sqrt -4)"            # #C(0.0 2.0)
  echo "(expt 2 100)" | numtower eval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				input = string(data)
			}
			return a.runEval(cmd, input, showInput)
		},
	}

	cmd.Flags().BoolVarP(&showInput, "show-input", "i", false, "Ausdruck vor dem Ergebnis ausgeben")
	return cmd
}

func (a *app) runEval(cmd *cobra.Command, input string, showInput bool) error {
	ev, err := a.evaluator()
	if err != nil {
		return err
	}

	timer := a.base.WithSession(ev.SessionID()).StartTimer("eval").
		WithField("input", strings.TrimSpace(input))
	results, err := ev.EvalString(context.Background(), input)

	out := cmd.OutOrStdout()
	for _, r := range results {
		if showInput {
			fmt.Fprintf(out, "%s => %s\n", r.Input, r.Values)
			continue
		}
		fmt.Fprintln(out, r.Values)
	}
	if err != nil {
		timer.WithField("error_code", string(mdwerror.GetCode(err))).Stop()
		return err
	}
	timer.WithField("forms", len(results)).Stop()
	return nil
}
