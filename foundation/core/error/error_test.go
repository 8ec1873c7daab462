// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity, code based
//              matching and JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-08-14 v0.2.0: Numeric codes and errors.Is matching

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("bad operand %d", 7)
	if err.Error() != "bad operand 7" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad operand 7")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap numeric error",
			err:     New("division by zero").WithCode(CodeDivisionByZero),
			message: "evaluating (/ 5 0)",
			wantMsg: "evaluating (/ 5 0): division by zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if inner, ok := tt.err.(*Error); ok {
				if wrapped.Code() != inner.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), inner.Code())
				}
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}

	if top.RootCause() != original {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), original)
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root").WithCode(CodeDomainType)
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}
	if chainDepth(err) > MaxErrorChainDepth {
		t.Errorf("chain depth = %d, want <= %d", chainDepth(err), MaxErrorChainDepth)
	}
	if !HasCode(err, CodeDomainType) {
		t.Error("truncated chain should keep the root code")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New("").WithCode(CodeDivisionByZero)
	err := New("division by zero").WithCode(CodeDivisionByZero).WithOperation("number.Div")

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is() should match errors with the same code")
	}

	if errors.Is(err, New("").WithCode(CodeDomainType)) {
		t.Error("errors.Is() should not match a different code")
	}

	if errors.Is(New("a"), New("b")) {
		t.Error("errors.Is() should not match on CodeUnknown")
	}

	wrapped := fmt.Errorf("eval: %w", err)
	if !errors.Is(wrapped, sentinel) {
		t.Error("errors.Is() should see through fmt.Errorf wrapping")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeDivisionByZero, SeverityLow},
		{CodeDomainType, SeverityLow},
		{CodeDatabaseError, SeverityHigh},
		{CodeInvalidConfig, SeverityMedium},
		{CodeEnvironmentError, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("test").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("test").WithSeverity(SeverityCritical).WithCode(CodeDomainType)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestWithDetails(t *testing.T) {
	err := New("test error").
		WithDetail("dividend", "5").
		WithDetails(map[string]interface{}{"divisor": "0", "kind": "fixnum"})

	details := err.Details()
	if len(details) != 3 {
		t.Errorf("Details() length = %d, want 3", len(details))
	}
	if details["divisor"] != "0" {
		t.Errorf("Details()[\"divisor\"] = %v, want \"0\"", details["divisor"])
	}

	details["divisor"] = "mutated"
	if err.Details()["divisor"] != "0" {
		t.Error("Details() must return a copy")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeDivisionByZero, "arithmetic"},
		{CodeDomainType, "arithmetic"},
		{CodeInvalidFormat, "reader"},
		{CodeDatabaseError, "database"},
		{CodeMissingConfig, "configuration"},
		{CodeUnknown, "generic"},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
		if !tt.code.IsValid() {
			t.Errorf("%s.IsValid() = false", tt.code)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
}

func TestString(t *testing.T) {
	err := New("domain error").
		WithCode(CodeDomainType).
		WithOperation("number.Evenp").
		WithDetail("kind", "ratio")

	s := err.String()
	for _, want := range []string{"Error: domain error", "Code: DOMAIN_TYPE_ERROR", "Operation: number.Evenp", "kind=ratio"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("inner"), "outer").
		WithCode(CodeInvalidFormat).
		WithOperation("reader.Read")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != string(CodeInvalidFormat) {
		t.Errorf("code = %v, want %v", decoded["code"], CodeInvalidFormat)
	}
	if decoded["operation"] != "reader.Read" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "inner" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestHelpersOnForeignErrors(t *testing.T) {
	plain := errors.New("plain")
	if GetCode(plain) != CodeUnknown {
		t.Errorf("GetCode(plain) = %v", GetCode(plain))
	}
	if GetSeverity(plain) != SeverityMedium {
		t.Errorf("GetSeverity(plain) = %v", GetSeverity(plain))
	}
	if HasCode(plain, CodeUnknown) {
		t.Error("HasCode(plain) should be false")
	}
	if HasCode(nil, CodeDivisionByZero) {
		t.Error("HasCode(nil) should be false")
	}
}
