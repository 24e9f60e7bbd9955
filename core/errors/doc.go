// Package errors provides the standard error constructors for textkit.
//
// Package: errors
// Title: Standardised Error Constructors
// Description: Every textkit package reports failures through the
//              constructors in this package so that errors share the same
//              codes, details ("module", "operation") and catalog keys.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-11
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-08-11 v0.2.0: Argument, range and pattern constructors, Localize
//
// Usage:
//
//	err := errors.InvalidArgument("stringx", "Reverse", "value", "", "non-empty string")
//	errors.ExtractModule(err)    // "stringx"
//	errors.ExtractOperation(err) // "Reverse"
//	errors.Localize(err, "de")   // message from the German catalog
package errors
