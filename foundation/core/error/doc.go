// Package error provides structured error handling for numtower.
//
// Package: error
// Title: numtower Error Handling Framework
// Description: This package implements a structured error type with codes,
//              severity, operation names, details and stack traces. The numeric
//              tower reports its two failure modes (DIVISION_BY_ZERO and
//              DOMAIN_TYPE_ERROR) through it, and the reader, configuration and
//              history layers use the remaining codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-14 v0.2.0: Numeric taxonomy, code based errors.Is matching
//
// Usage:
//
//	import mdwerror "github.com/msto63/numtower/foundation/core/error"
//
//	err := mdwerror.New("division by zero").
//		WithCode(mdwerror.CodeDivisionByZero).
//		WithOperation("number.Div").
//		WithDetail("dividend", "5")
//
//	if mdwerror.HasCode(err, mdwerror.CodeDivisionByZero) {
//		// ...
//	}
//
// Two errors with the same non-empty code match under errors.Is, so a bare
// sentinel such as New("").WithCode(CodeDivisionByZero) can be used as a target.
package error
