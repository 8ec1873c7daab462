// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and the logger can
//              decide how loudly to report them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-08-14 v0.2.0: Severity mapping for the numeric codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake with no lasting effect,
	// e.g. a malformed literal or an evenp on a ratio
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. an unreachable history database
	SeverityHigh

	// SeverityCritical indicates an error that makes the tool unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError:
		return SeverityCritical

	case CodeDatabaseError, CodeConnectionFailed, CodeInternal:
		return SeverityHigh

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	case CodeDivisionByZero, CodeDomainType, CodeInvalidInput, CodeNotFound,
		CodeInvalidFormat, CodeUnknownOperator, CodeArity, CodeValidationFailed:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
