// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Helpers for inspecting standardised errors and rendering their
//              messages through the message catalog.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-11
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-08-11 v0.2.0: Localize, errors.As based extraction

package errors

import (
	stderrors "errors"

	coreerror "github.com/msto63/textkit/core/error"
	"github.com/msto63/textkit/core/i18n"
)

// ExtractDetails extracts all details from the outermost structured error
func ExtractDetails(err error) map[string]interface{} {
	var e *coreerror.Error
	if stderrors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// HasCode reports whether any structured error in the chain carries code
func HasCode(err error, code coreerror.Code) bool {
	return coreerror.HasCode(err, code)
}

// Localize renders err in the given locale using the default catalog. Errors
// without a message key, or with a key missing from the catalog, fall back to
// err.Error().
func Localize(err error, locale string) string {
	if err == nil {
		return ""
	}
	catalog, cerr := i18n.Default()
	if cerr != nil {
		return err.Error()
	}
	return LocalizeWith(catalog, err, locale)
}

// LocalizeWith is Localize with an explicit catalog
func LocalizeWith(catalog *i18n.Catalog, err error, locale string) string {
	if err == nil {
		return ""
	}

	var e *coreerror.Error
	if !stderrors.As(err, &e) || e.MessageKey() == "" {
		return err.Error()
	}

	msg, terr := catalog.TryT(locale, e.MessageKey(), e.MessageArgs())
	if terr != nil {
		return err.Error()
	}
	return msg
}
