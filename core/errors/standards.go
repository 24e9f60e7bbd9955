// File: standards.go
// Title: Error Standards for textkit
// Description: Standardised error constructors shared by all textkit
//              packages so every failure carries module, operation, code and
//              a catalog message key.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-11
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-08-11 v0.2.0: Constructors for argument, range and pattern errors

package errors

import (
	"fmt"

	coreerror "github.com/msto63/textkit/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModulePatternx = "patternx"
	ModuleI18n     = "i18n"
)

// Catalog keys used for localised messages
const (
	KeyInvalidArgument = "errors.invalid_argument"
	KeyOutOfRange      = "errors.out_of_range"
	KeyInvalidPattern  = "errors.invalid_pattern"
	KeyOperationFailed = "errors.operation_failed"
	KeyNotFound        = "errors.not_found"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  coreerror.Severity
	code      coreerror.Code
	key       string
	keyArgs   map[string]interface{}
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: coreerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity coreerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code coreerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Localized sets the catalog key and template arguments for the message
func (eb *ErrorBuilder) Localized(key string, args map[string]interface{}) *ErrorBuilder {
	eb.key = key
	eb.keyArgs = args
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *coreerror.Error {
	if eb.code == "" {
		eb.code = coreerror.CodeOperationFailed
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *coreerror.Error
	if eb.cause != nil {
		err = coreerror.Wrap(eb.cause, eb.message)
	} else {
		err = coreerror.New(eb.message)
	}

	err = err.
		WithCode(eb.code).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	if eb.key != "" {
		err = err.WithMessage(eb.key, eb.keyArgs)
	}
	return err
}

// InvalidArgument reports an argument that violates a precondition, such as
// an empty text value where one is required.
func InvalidArgument(module, operation, argument string, input interface{}, expected string) *coreerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: invalid argument %s: expected %s", module, operation, argument, expected).
		Code(coreerror.CodeInvalidArgument).
		Detail("argument", argument).
		Detail("input", input).
		Detail("expected", expected).
		Severity(coreerror.SeverityLow).
		Localized(KeyInvalidArgument, map[string]interface{}{
			"Operation": module + "." + operation,
			"Argument":  argument,
			"Expected":  expected,
		}).
		Build()
}

// OutOfRange reports an index or length outside [min, max]
func OutOfRange(module, operation, argument string, value, min, max int) *coreerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %s %d out of range [%d, %d]", module, operation, argument, value, min, max).
		Code(coreerror.CodeOutOfRange).
		Detail("argument", argument).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(coreerror.SeverityLow).
		Localized(KeyOutOfRange, map[string]interface{}{
			"Operation": module + "." + operation,
			"Argument":  argument,
			"Value":     value,
			"Min":       min,
			"Max":       max,
		}).
		Build()
}

// InvalidPattern reports a pattern the regular expression engine rejected
func InvalidPattern(module, operation, pattern string, cause error) *coreerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: invalid pattern %q", module, operation, pattern).
		Cause(cause).
		Code(coreerror.CodeInvalidPattern).
		Detail("pattern", pattern).
		Severity(coreerror.SeverityLow).
		Localized(KeyInvalidPattern, map[string]interface{}{
			"Operation": module + "." + operation,
			"Pattern":   pattern,
		}).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *coreerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(coreerror.CodeOperationFailed).
		Severity(coreerror.SeverityHigh).
		Localized(KeyOperationFailed, map[string]interface{}{
			"Operation": module + "." + operation,
		}).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *coreerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %v not found", module, operation, identifier).
		Code(coreerror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(coreerror.SeverityLow).
		Localized(KeyNotFound, map[string]interface{}{
			"Operation":  module + "." + operation,
			"Identifier": identifier,
		}).
		Build()
}
