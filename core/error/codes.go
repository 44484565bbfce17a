// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the xlstr module. Codes
//              classify failures of the string value library, the
//              configuration layer and the conformance runner.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-10-19 v0.2.0: Reduced to the codes used by xlstr, added degenerate input codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Degenerate arguments that have no defined result
	CodeEmptyToken Code = "EMPTY_TOKEN"
	CodeEmptyPad   Code = "EMPTY_PAD"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"

	// I/O while loading fixtures and config files
	CodeReadFailed  Code = "READ_FAILED"
	CodeParseFailed Code = "PARSE_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}
