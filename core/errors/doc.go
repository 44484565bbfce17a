// Package errors provides standardized error constructors for xlstr modules.
//
// Every package of the module builds its errors through NewErrorBuilder or
// one of the convenience constructors so that errors carry the same details:
// "module", "operation" and, for rejected input, "input" and "expected".
//
// Usage:
//
//	import mdwerrors "github.com/msto63/xlstr/core/errors"
//
//	if token == "" {
//		return nil, mdwerrors.StringxEmptyToken("split", source)
//	}
//
//	if mdwerrors.IsModuleOperation(err, mdwerrors.ModuleStringx, "split") {
//		// handle split failures
//	}
package errors
