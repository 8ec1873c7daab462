// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     cmd
// Description: Root command, settings and shared construction helpers
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/numtower/foundation/core/log"
	"github.com/msto63/numtower/internal/calc"
	"github.com/msto63/numtower/internal/history"
	"github.com/msto63/numtower/internal/reader"
	"github.com/msto63/numtower/pkg/core/config"
	"github.com/msto63/numtower/pkg/core/logging"
)

// app carries the loaded settings to the subcommands
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	settings *config.Config
	base     *mdwlog.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "numtower",
		Short: "numtower - Numerischer Turm",
		Long: `numtower wertet Lisp-Ausdrücke über dem numerischen Turm aus:
Fixnum, Bignum, Ratio, Short/Single/Double/Long-Float und Complex,
mit automatischer Typ-Kontagion, exakter Division und IEEE-Gleitkomma.

Beispiele:
  numtower eval "(+ 1/2 0.5d0)"
  numtower eval "(floor 7 2)" "(sqrt -4)"
  numtower repl
  numtower history --limit 10`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config-Datei (TOML oder YAML, default: ./numtower.toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log-Level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log-Format (text, json, console, logfmt)")

	root.AddCommand(
		newEvalCmd(a),
		newREPLCmd(a),
		newHistoryCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Fehler: %v\n", err)
		return err
	}
	return nil
}

// load reads the configuration and builds the logger
func (a *app) load(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.settings, err = config.Load(a.cfgFile)
	} else {
		a.settings, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		a.settings.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.settings.Log.Format = a.logFormat
	}
	if err := a.settings.Validate(); err != nil {
		return err
	}

	a.base = logging.NewLogger(logging.LoggerConfig{
		Name:   "numtower",
		Level:  a.settings.Log.Level,
		Format: a.settings.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	a.base.Debug("configuration loaded", mdwlog.Fields{"source": a.settings.Source})
	return nil
}

func (a *app) evaluator() (*calc.Evaluator, error) {
	kind, err := reader.ParseFloatKind(a.settings.Reader.DefaultFloat)
	if err != nil {
		return nil, err
	}
	return calc.New(calc.Config{
		Reader:    reader.Options{DefaultFloat: kind},
		Logger:    logging.Wrap(a.base, "calc"),
		CacheSize: a.settings.Calc.CacheSize,
	}), nil
}

// openStore opens the persistent history, or returns nil when disabled
func (a *app) openStore() (*history.SQLiteStore, error) {
	if !a.settings.History.Enabled {
		return nil, nil
	}
	return history.NewSQLiteStore(history.Config{
		Path:       a.settings.History.Path,
		MaxEntries: a.settings.History.Limit,
	})
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Fehler: %s: %v\n", msg, err)
}
