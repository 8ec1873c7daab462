// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     calc
// Description: Evaluator for operator forms over the numeric tower
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package calc

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/foundation/core/errors"
	"github.com/msto63/numtower/internal/reader"
	"github.com/msto63/numtower/pkg/core/cache"
	"github.com/msto63/numtower/pkg/core/logging"
	"github.com/msto63/numtower/pkg/number"
)

// Config holds evaluator configuration
type Config struct {
	Reader    reader.Options
	Registry  *Registry
	Logger    *logging.Logger
	SessionID string
	CacheSize int // cached top-level results; 0 disables the cache
}

// Result is the outcome of one top-level form
type Result struct {
	Input    string
	Values   Values
	Duration time.Duration
}

// Evaluator reads and evaluates forms. It is safe for concurrent use.
type Evaluator struct {
	registry  *Registry
	logger    *logging.Logger
	reader    reader.Options
	sessionID string
	results   *cache.Cache[Values]
	constants map[string]Value
}

// New creates an evaluator. Missing fields get defaults: the builtin
// registry, a logger named "calc" and a fresh session ID.
func New(cfg Config) *Evaluator {
	if cfg.Registry == nil {
		cfg.Registry = DefaultRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.New("calc")
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.New().String()
	}
	if !cfg.Reader.DefaultFloat.IsFloat() {
		cfg.Reader = reader.DefaultOptions()
	}

	e := &Evaluator{
		registry:  cfg.Registry,
		logger:    cfg.Logger,
		reader:    cfg.Reader,
		sessionID: cfg.SessionID,
		constants: map[string]Value{
			"t":                    Bool(true),
			"nil":                  Bool(false),
			"pi":                   Num(number.LongFloat(math.Pi)),
			"most-positive-fixnum": Num(number.Fixnum(number.MostPositiveFixnum)),
			"most-negative-fixnum": Num(number.Fixnum(number.MostNegativeFixnum)),
		},
	}
	if cfg.CacheSize > 0 {
		e.results = cache.New[Values](cache.Config{MaxItems: cfg.CacheSize})
	}
	return e
}

// SessionID identifies this evaluator in logs and history
func (e *Evaluator) SessionID() string {
	return e.sessionID
}

// Registry returns the operator registry
func (e *Evaluator) Registry() *Registry {
	return e.registry
}

// EvalString reads every form in input and evaluates them in order. On an
// error the results of the forms evaluated so far are returned with it.
func (e *Evaluator) EvalString(ctx context.Context, input string) ([]Result, error) {
	forms, err := reader.ReadAll(input, e.reader)
	if err != nil {
		e.logger.Debug("read failed", "session", e.sessionID, "input", input, "error", err)
		return nil, err
	}

	results := make([]Result, 0, len(forms))
	for _, f := range forms {
		start := time.Now()
		values, err := e.evalTop(ctx, f)
		elapsed := time.Since(start)
		if err != nil {
			e.logger.Debug("evaluation failed",
				"session", e.sessionID,
				"expr", f.String(),
				"error_code", string(mdwerror.GetCode(err)),
				"error", err)
			return results, err
		}
		e.logger.Debug("evaluated",
			"session", e.sessionID,
			"expr", f.String(),
			"result", values.String(),
			"duration_ms", float64(elapsed.Microseconds())/1000)
		results = append(results, Result{Input: f.String(), Values: values, Duration: elapsed})
	}
	return results, nil
}

// evalTop evaluates a top-level form through the result cache
func (e *Evaluator) evalTop(ctx context.Context, f reader.Form) (Values, error) {
	if e.results == nil || f.Kind != reader.FormList {
		return e.Eval(ctx, f)
	}
	return e.results.GetOrSet(f.String(), func() (Values, error) {
		return e.Eval(ctx, f)
	})
}

// Eval evaluates one form. Numbers evaluate to themselves, symbols name
// constants, and a list applies its head operator to the primary values of
// its evaluated arguments.
func (e *Evaluator) Eval(ctx context.Context, f reader.Form) (Values, error) {
	switch f.Kind {
	case reader.FormNumber:
		return Values{Num(f.Number)}, nil
	case reader.FormSymbol:
		if v, ok := e.constants[f.Symbol]; ok {
			return Values{v}, nil
		}
		return nil, mdwerror.Newf("unbound variable: %s", f.Symbol).
			WithCode(mdwerror.CodeNotFound).
			WithOperation(errors.ModuleCalc + ".eval").
			WithDetail("symbol", f.Symbol)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(f.List) == 0 {
		return Values{Bool(false)}, nil
	}
	head := f.List[0]
	if head.Kind != reader.FormSymbol {
		return nil, errors.InvalidFormat(errors.ModuleCalc, f.String(), "operator form")
	}
	op, ok := e.registry.Lookup(head.Symbol)
	if !ok {
		return nil, errors.UnknownOperator(errors.ModuleCalc, head.Symbol)
	}

	args := make([]Value, 0, len(f.List)-1)
	for _, a := range f.List[1:] {
		vs, err := e.Eval(ctx, a)
		if err != nil {
			return nil, err
		}
		args = append(args, vs.Primary())
	}
	return op.Call(args)
}

// CacheStats reports result cache hits and misses
func (e *Evaluator) CacheStats() (hits, misses int64) {
	if e.results == nil {
		return 0, 0
	}
	hits, misses, _ = e.results.Stats()
	return hits, misses
}
