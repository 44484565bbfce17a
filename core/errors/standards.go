// File: standards.go
// Title: Error Standards for xlstr Modules
// Description: Module identifiers, module-specific error codes and the
//              ErrorBuilder used by every xlstr package to create errors with
//              a consistent shape (module, operation, input, expected).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-10-19 v0.2.0: Module set reduced to stringx, config and conformance

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/xlstr/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx     = "stringx"
	ModuleConfig      = "config"
	ModuleConformance = "conformance"
)

// Standardized error codes
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	// stringx
	CodeStringxEmptyToken = "STRINGX_EMPTY_TOKEN"
	CodeStringxEmptyPad   = "STRINGX_EMPTY_PAD"

	// config
	CodeConfigLoadFailed  = "CONFIG_LOAD_FAILED"
	CodeConfigParseFailed = "CONFIG_PARSE_FAILED"

	// conformance
	CodeConformanceLoadFailed = "CONFORMANCE_LOAD_FAILED"
	CodeConformanceUnknownOp  = "CONFORMANCE_UNKNOWN_OP"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
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
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = CodeOperationFailed
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

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	return err.
		WithCode(mdwerror.Code(eb.code)).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(CodeOperationFailed).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("%s.validate_%s: validation failed for field %s: %s", module, field, field, reason)).
		Code(fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module))).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(mdwerror.SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("item not found in %s.%s", module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// StringX convenience functions

// StringxEmptyToken rejects an empty split or search token
func StringxEmptyToken(operation string, input string) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Messagef("stringx.%s: token must not be empty", operation).
		Code(CodeStringxEmptyToken).
		Detail("input", input).
		Detail("expected", "non-empty token").
		Severity(mdwerror.SeverityLow).
		Build()
}

// StringxEmptyPad rejects an empty pad content when padding is required
func StringxEmptyPad(operation string, target int) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Messagef("stringx.%s: pad content must not be empty", operation).
		Code(CodeStringxEmptyPad).
		Detail("target", target).
		Detail("expected", "non-empty pad content").
		Severity(mdwerror.SeverityLow).
		Build()
}

// ConformanceLoadFailed wraps a failure to read or decode a suite file
func ConformanceLoadFailed(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConformance).
		Operation("load").
		Messagef("conformance: cannot load suite %s", path).
		Cause(cause).
		Code(CodeConformanceLoadFailed).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ConformanceUnknownOp rejects a case naming an operation the runner lacks
func ConformanceUnknownOp(op string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConformance).
		Operation("run").
		Messagef("conformance: unknown operation %q", op).
		Code(CodeConformanceUnknownOp).
		Detail("op", op).
		Severity(mdwerror.SeverityMedium).
		Build()
}
