// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across numtower. The numeric tower itself raises only two codes
//              (division by zero and domain type errors); the remaining codes serve
//              the reader, configuration, and history layers around it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-08-14 v0.2.0: Reduced to the numeric taxonomy and its supporting layers

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Numeric taxonomy. Fixnum overflow is deliberately absent: it promotes.
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"
	CodeDomainType     Code = "DOMAIN_TYPE_ERROR"

	// Reader and evaluator
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeUnknownOperator Code = "UNKNOWN_OPERATOR"
	CodeArity           Code = "ARITY"

	// Storage
	CodeDatabaseError    Code = "DATABASE_ERROR"
	CodeConnectionFailed Code = "CONNECTION_FAILED"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeDivisionByZero, CodeDomainType,
		CodeInvalidFormat, CodeUnknownOperator, CodeArity,
		CodeDatabaseError, CodeConnectionFailed,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError, CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDivisionByZero, CodeDomainType:
		return "arithmetic"
	case CodeInvalidFormat, CodeUnknownOperator, CodeArity:
		return "reader"
	case CodeDatabaseError, CodeConnectionFailed:
		return "database"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError, CodeValidationFailed:
		return "configuration"
	default:
		return "generic"
	}
}
