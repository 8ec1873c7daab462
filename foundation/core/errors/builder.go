// File: builder.go
// Title: Error Builder and Standard Constructors
// Description: Fluent ErrorBuilder plus the standard constructors used by the
//              numeric core and the supporting numtower packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-08-14 v0.2.0: DivisionByZero, DomainTypeError, evaluator constructors

package errors

import (
	"errors"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleNumber  = "number"
	ModuleReader  = "reader"
	ModuleCalc    = "calc"
	ModuleHistory = "history"
	ModuleConfig  = "config"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeInternal
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}
	return err
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// DivisionByZero reports an exact division by zero. The operands are
// recorded in their printed form.
func DivisionByZero(module, operation string, operands ...fmt.Stringer) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s: division by zero", operation)).
		Code(mdwerror.CodeDivisionByZero).
		Detail("operands", printed(operands)).
		Build()
}

// DomainTypeError reports an operand whose kind is outside the domain of the
// operation.
func DomainTypeError(module, operation, expected string, got fmt.Stringer) *mdwerror.Error {
	datum := printed([]fmt.Stringer{got})
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s: %s is not of type %s", operation, datum, expected)).
		Code(mdwerror.CodeDomainType).
		Detail("datum", datum).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input string, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("parse").
		Message(fmt.Sprintf("invalid %s: %q", expectedFormat, input)).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// UnknownOperator reports an operator symbol that has no binding
func UnknownOperator(module, symbol string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("apply").
		Message(fmt.Sprintf("unknown operator %q", symbol)).
		Code(mdwerror.CodeUnknownOperator).
		Detail("symbol", symbol).
		Build()
}

// ArityMismatch reports a call with an unsupported number of arguments
func ArityMismatch(module, symbol string, got int, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("apply").
		Message(fmt.Sprintf("%s: expected %s arguments, got %d", symbol, expected, got)).
		Code(mdwerror.CodeArity).
		Detail("symbol", symbol).
		Detail("got", got).
		Detail("expected", expected).
		Build()
}

// OperationFailed wraps an infrastructure failure
func OperationFailed(module, operation string, code mdwerror.Code, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(code).
		Build()
}

func printed(values []fmt.Stringer) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if v == nil {
			parts[i] = "nil"
			continue
		}
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// Utility functions for error analysis

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	var e *mdwerror.Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
