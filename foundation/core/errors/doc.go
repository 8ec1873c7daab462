// Package errors provides the standard error construction API for all
// numtower modules.
//
// Package: errors
// Title: Standard Error Handling API
// Description: Module identifiers, a fluent ErrorBuilder and ready made
//              constructors for the error taxonomy of the numeric tower
//              (division by zero, domain/type errors) and its supporting
//              packages (reader, evaluator, history store). All errors are
//              *error.Error values from foundation/core/error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-08-14 v0.2.0: Numeric taxonomy constructors, utility module codes removed
//
// # Error Creation
//
//   - NewErrorBuilder: fluent builder, module and operation are recorded as details
//   - DivisionByZero: exact division by zero in an arithmetic operation
//   - DomainTypeError: an operand of the wrong numeric kind
//   - InvalidFormat: malformed textual input
//   - UnknownOperator, ArityMismatch: evaluator failures
//   - OperationFailed: wraps an infrastructure failure (database, file system)
//
// # Error Analysis
//
//   - ExtractModule, ExtractOperation, IsModuleOperation
//
// # Usage
//
//	if y.Zerop() {
//		return errors.DivisionByZero(errors.ModuleNumber, "div", x, y)
//	}
//
//	if !x.IsInteger() {
//		return errors.DomainTypeError(errors.ModuleNumber, "evenp", "integer", x)
//	}
package errors
