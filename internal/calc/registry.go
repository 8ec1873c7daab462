// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     calc
// Description: Operator registry
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package calc

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/foundation/core/errors"
	"github.com/msto63/numtower/pkg/number"
)

// Variadic marks an operator without an upper argument bound
const Variadic = -1

// Operator binds a symbol to a numeric function
type Operator struct {
	Name    string
	MinArgs int
	MaxArgs int
	Doc     string
	Apply   func(args []number.Number) (Values, error)
}

// arity describes the accepted argument count for error messages
func (op *Operator) arity() string {
	switch {
	case op.MaxArgs == Variadic:
		return fmt.Sprintf("at least %d", op.MinArgs)
	case op.MinArgs == op.MaxArgs:
		return fmt.Sprintf("%d", op.MinArgs)
	default:
		return fmt.Sprintf("%d to %d", op.MinArgs, op.MaxArgs)
	}
}

// Call checks arity and applies the operator
func (op *Operator) Call(args []Value) (Values, error) {
	if len(args) < op.MinArgs || (op.MaxArgs != Variadic && len(args) > op.MaxArgs) {
		return nil, errors.ArityMismatch(errors.ModuleCalc, op.Name, len(args), op.arity())
	}
	nums, err := numbers(op.Name, args)
	if err != nil {
		return nil, err
	}
	return op.Apply(nums)
}

// Registry maps symbols to operators
type Registry struct {
	mu  sync.RWMutex
	ops map[string]*Operator
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]*Operator)}
}

// DefaultRegistry creates a registry holding every builtin operator
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, op := range builtins() {
		if err := r.Register(op); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds an operator; names are case-insensitive and unique
func (r *Registry) Register(op *Operator) error {
	if op == nil || op.Name == "" || op.Apply == nil {
		return mdwerror.New("operator requires a name and a function").
			WithCode(mdwerror.CodeInvalidInput)
	}
	name := strings.ToLower(op.Name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ops[name]; exists {
		return mdwerror.Newf("operator %q already registered", name).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("operator", name)
	}
	r.ops[name] = op
	return nil
}

// Lookup finds an operator by name
func (r *Registry) Lookup(name string) (*Operator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[strings.ToLower(name)]
	return op, ok
}

// Names returns the registered operator names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
