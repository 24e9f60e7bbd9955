// Package error provides the structured error type used by textkit.
//
// Package: error
// Title: textkit Error Handling Framework
// Description: Errors carry a code, a severity, key/value details, an optional
//              localisation key and a captured stack trace. They remain plain
//              Go errors: Unwrap and Is work with the standard errors package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-11 v0.2.0: Added code sentinels and errors.Is support
//
// Usage:
//
//	import coreerror "github.com/msto63/textkit/core/error"
//
//	err := coreerror.New("value must not be empty").
//		WithCode(coreerror.CodeInvalidArgument).
//		WithOperation("stringx.Reverse").
//		WithDetail("input", "")
//
//	// Sentinels match any error with the same code
//	var ErrInvalidArgument = coreerror.Sentinel(coreerror.CodeInvalidArgument)
//	if errors.Is(err, ErrInvalidArgument) {
//		// handle caller mistake
//	}
package error
