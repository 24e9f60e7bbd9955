// File: errors.go
// Title: Input Guard and Error Helpers
// Description: The precondition guard every validated operation runs first,
//              plus the sentinels callers match failures against.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-11
//
// Change History:
// - 2025-01-24 v0.1.0: ValidateRequired and friends
// - 2025-08-11 v0.2.0: Single requireText guard, sentinels and Must

package stringx

import (
	"math"

	coreerror "github.com/msto63/textkit/core/error"
	coreerrors "github.com/msto63/textkit/core/errors"
)

// Sentinels for errors.Is. Every error returned by this package matches
// exactly one of them.
var (
	// ErrInvalidArgument matches missing text values and malformed patterns
	ErrInvalidArgument = coreerror.Sentinel(coreerror.CodeInvalidArgument)

	// ErrOutOfRange matches indices, counts and lengths outside their bounds
	ErrOutOfRange = coreerror.Sentinel(coreerror.CodeOutOfRange)
)

// unbounded is the upper bound reported for lengths without a maximum
const unbounded = math.MaxInt

// requireText fails when value is empty
func requireText(operation, value string) error {
	if value == "" {
		return coreerrors.InvalidArgument(coreerrors.ModuleStringx, operation, "value", value, "non-empty text")
	}
	return nil
}

func invalidArgument(operation, argument string, input interface{}, expected string) error {
	return coreerrors.InvalidArgument(coreerrors.ModuleStringx, operation, argument, input, expected)
}

func outOfRange(operation, argument string, value, min, max int) error {
	return coreerrors.OutOfRange(coreerrors.ModuleStringx, operation, argument, value, min, max)
}

// patternFailure maps a rejected pattern to an argument error of this
// package. Engine failures are returned as they are.
func patternFailure(operation, pattern string, err error) error {
	if !coreerror.HasCode(err, coreerror.CodeInvalidPattern) {
		return err
	}
	return coreerrors.NewErrorBuilder(coreerrors.ModuleStringx).
		Operation(operation).
		Messagef("%s.%s: invalid argument pattern", coreerrors.ModuleStringx, operation).
		Cause(err).
		Code(coreerror.CodeInvalidArgument).
		Detail("argument", "pattern").
		Detail("input", pattern).
		Severity(coreerror.SeverityLow).
		Localized(coreerrors.KeyInvalidPattern, map[string]interface{}{
			"Operation": coreerrors.ModuleStringx + "." + operation,
			"Pattern":   pattern,
		}).
		Build()
}

// Must returns v and panics if err is non-nil. It is meant for values known
// to be valid, such as literals:
//
//	tail := stringx.Must(stringx.Tail("hello"))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
