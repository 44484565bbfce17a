// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Helpers to inspect errors created through the standard
//              builders: module, operation and detail extraction.
// Author: msto63
// Version: v0.1.2
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2025-10-19 v0.1.2: Extraction through errors.As

package errors

import (
	stderrors "errors"

	mdwerror "github.com/msto63/xlstr/core/error"
)

// ExtractDetails extracts all details from a structured error in the chain
func ExtractDetails(err error) map[string]interface{} {
	var e *mdwerror.Error
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

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return err != nil && ExtractModule(err) == module
}
