// File: timer_test.go
// Title: Timer Tests
// Description: Tests for timer completion, failure and cancellation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14

package log

import (
	"errors"
	"strings"
	"testing"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON)
	timer := logger.StartTimer("eval").WithField("expr", "(+ 1 2)")

	if !timer.IsRunning() {
		t.Fatal("timer should be running")
	}
	elapsed := timer.Stop()
	if elapsed < 0 {
		t.Errorf("elapsed = %v", elapsed)
	}
	if timer.IsRunning() {
		t.Error("timer should be stopped")
	}

	entry := decodeJSON(t, buf)
	if entry["message"] != "eval completed" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["operation"] != "eval" || entry["expr"] != "(+ 1 2)" {
		t.Errorf("fields = %v", entry)
	}

	buf.Reset()
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}
	if buf.Len() != 0 {
		t.Error("second Stop() should not log")
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON)
	logger.StartTimer("eval").StopWithError(errors.New("division by zero"))

	entry := decodeJSON(t, buf)
	if entry["level"] != "error" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["success"] != false {
		t.Errorf("success = %v", entry["success"])
	}
	if !strings.Contains(entry["message"].(string), "failed") {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestTimerRespectsLevel(t *testing.T) {
	logger, buf := newBufferLogger(FormatText)
	logger = logger.WithLevel(LevelInfo)

	logger.StartTimer("quiet").Stop()
	if buf.Len() != 0 {
		t.Errorf("debug timer logged at info level: %q", buf.String())
	}

	logger.StartTimer("loud").WithLevel(LevelInfo).Stop()
	if !strings.Contains(buf.String(), "loud completed") {
		t.Errorf("info timer not logged: %q", buf.String())
	}
}

func TestTimerCancel(t *testing.T) {
	logger, buf := newBufferLogger(FormatText)
	timer := logger.StartTimer("cancelled")
	timer.Cancel()
	timer.Stop()
	if buf.Len() != 0 {
		t.Errorf("cancelled timer logged: %q", buf.String())
	}
}
