// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Error constructors and classification
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

import (
	"fmt"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/foundation/core/errors"
)

func divisionByZero(op string, operands ...Number) error {
	s := make([]fmt.Stringer, len(operands))
	for i, o := range operands {
		s[i] = o
	}
	return errors.DivisionByZero(errors.ModuleNumber, op, s...)
}

func domainError(op, expected string, got Number) error {
	return errors.DomainTypeError(errors.ModuleNumber, op, expected, got)
}

// IsDivisionByZero reports whether err is an exact division by zero
func IsDivisionByZero(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeDivisionByZero)
}

// IsDomainTypeError reports whether err was raised for an operand of the
// wrong numeric type
func IsDomainTypeError(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeDomainType)
}
