// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides an owned, sentinel-terminated byte
//              string value and an ordered sequence of such values with
//              split and zip conversion between the two.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-10-19 v0.3.0: Rewritten around Value and Sequence

// Package stringx provides owned byte string values and sequences of them.
//
// Package: stringx
// Title: Owned String Values for xlstr
// Description: Value owns its storage exclusively and changes only through
//              Append, AppendValue and RepeatInPlace. Every other operation
//              returns a new value. Sequence holds values split from one
//              content and joins them back with Zip.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// # Overview
//
// A Value stores its content followed by a zero sentinel, so content never
// contains a zero byte. Construction from input that holds one keeps the
// bytes before it, and every string argument to a Value method is read the
// same way. The length is found by scanning to the sentinel.
//
// All classification is ASCII and byte oriented. ToUpper and ToLower touch
// only ASCII letters; Trim strips the C locale whitespace set
// " \t\n\v\f\r"; IsAlphabetic and IsAlphanumeric are true for empty content.
//
// # Ownership
//
// Clone and Assign copy. Move and Take transfer the buffer and leave the
// source empty. Release resets a value to empty content. A Value must be
// handled through its pointer; copying a non-zero Value struct and mutating
// the copy panics.
//
// View returns a borrowed slice of the content. Append, AppendValue and
// RepeatInPlace may relocate the buffer, so views taken before them must
// not be used afterwards:
//
//	v := stringx.From("abc")
//	view := v.View()
//	v.Append("def") // view is no longer valid
//
// # Split, Zip and Replace
//
// Split cuts a value at every occurrence of a token. Zip joins a sequence
// with a token strictly between elements. For any non-empty token t,
// v.MustSplit(t).Zip(t) equals v. Replace is Split followed by Zip:
//
//	v := stringx.From("banana")
//	r, _ := v.Replace("an", "X") // "bXXa"
//
// # Errors
//
// Out of range positions never fail: At returns 0 and Slice clamps. A
// missing substring yields -1. Degenerate input is rejected with an
// *mdwerror.Error built by core/errors:
//
//   - STRINGX_EMPTY_TOKEN from Split and Replace with an empty token
//   - STRINGX_EMPTY_PAD from PadEnd and PadStart with an empty pad when
//     padding is needed
//
// The Must variants panic with the same error. Rejections are logged at
// warn level through the logger installed with SetLogger.
//
// # Thread Safety
//
// Distinct values are independent. A single value shared between
// goroutines needs external synchronisation if it is mutated.
package stringx
