// Package error provides structured errors for the xlstr module.
//
// Package: error
// Title: xlstr Error Handling Framework
// Description: Structured errors with codes, severities, detail fields and
//              stack traces. Every rejected input of the string library and
//              every loader failure of the conformance runner is an *Error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-10-19 v0.2.0: Reduced to the xlstr code set
//
// Usage:
//
//	import mdwerror "github.com/msto63/xlstr/core/error"
//
//	err := mdwerror.New("split token must not be empty").
//		WithCode(mdwerror.CodeEmptyToken).
//		WithDetail("operation", "split")
//
//	if mdwerror.HasCode(err, mdwerror.CodeEmptyToken) {
//		// reject the request
//	}
package error
