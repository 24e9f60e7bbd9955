// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across textkit. Codes classify
//              failures so callers can branch on them without parsing
//              messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-08-11 v0.2.0: Reduced to the codes raised by text operations

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown         Code = "UNKNOWN"
	CodeInternal        Code = "INTERNAL"
	CodeNotFound        Code = "NOT_FOUND"
	CodeOperationFailed Code = "OPERATION_FAILED"

	// Argument validation
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeOutOfRange      Code = "OUT_OF_RANGE"
	CodeInvalidFormat   Code = "INVALID_FORMAT"

	// Pattern facility
	CodeInvalidPattern Code = "INVALID_PATTERN"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeOperationFailed,
		CodeInvalidArgument, CodeOutOfRange, CodeInvalidFormat,
		CodeInvalidPattern:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeOutOfRange, CodeInvalidFormat:
		return "argument"
	case CodeInvalidPattern:
		return "pattern"
	case CodeNotFound, CodeOperationFailed:
		return "operation"
	default:
		return "generic"
	}
}

// IsArgumentError reports whether the code describes a caller mistake.
// A malformed pattern supplied by the caller counts as one.
func (c Code) IsArgumentError() bool {
	switch c {
	case CodeInvalidArgument, CodeOutOfRange, CodeInvalidFormat, CodeInvalidPattern:
		return true
	default:
		return false
	}
}
