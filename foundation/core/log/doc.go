// Package log provides structured logging for numtower.
//
// Package: log
// Title: Structured Logging Framework
// Description: Structured logger with level filtering, persistent context
//              fields, a session identifier, JSON/text/console/logfmt output
//              and timers for measuring evaluations. Errors from
//              foundation/core/error are logged with their code, severity
//              and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-08-14 v0.2.0: Session context, sorted field output, lipgloss console styles,
//                      async buffer and audit level removed
//
// Usage:
//
//	import mdwlog "github.com/msto63/numtower/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithSession(sessionID)
//
//	logger.Debug("evaluated", mdwlog.Fields{"expr": "(+ 1 2)", "result": "3"})
//
//	timer := logger.StartTimer("eval")
//	// ... evaluate
//	timer.Stop()
package log
