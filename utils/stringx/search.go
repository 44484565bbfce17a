// File: search.go
// Title: Substring Search
// Description: Prefix, suffix and substring queries over Value content.
//              Search arguments are taken up to their first zero byte.
// Author: msto63
// Version: v0.1.1
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation
// - 2025-10-19 v0.1.1: *Value argument forms of every query

package stringx

import (
	"bytes"
)

// StartsWith reports whether v begins with sub
func (v *Value) StartsWith(sub string) bool {
	return bytes.HasPrefix(v.View(), []byte(cstring(sub)))
}

// EndsWith reports whether v ends with sub. It is false when sub is longer
// than v.
func (v *Value) EndsWith(sub string) bool {
	return bytes.HasSuffix(v.View(), []byte(cstring(sub)))
}

// Includes reports whether sub occurs in v. An empty sub is always found.
func (v *Value) Includes(sub string) bool {
	return v.IndexOf(sub) >= 0
}

// IndexOf returns the position of the leftmost occurrence of sub in v, or
// -1 if sub does not occur. An empty sub is found at 0.
func (v *Value) IndexOf(sub string) int {
	return bytes.Index(v.View(), []byte(cstring(sub)))
}

// LastIndexOf returns the rightmost starting position of sub in v, counting
// overlapping occurrences, or -1 if sub does not occur. An empty sub is
// found at Size().
//
// The search restarts one byte past each hit until no further occurrence
// exists, so "aXaXa" yields 2 for "aXa".
func (v *Value) LastIndexOf(sub string) int {
	src := v.View()
	needle := []byte(cstring(sub))
	if len(needle) == 0 {
		return len(src)
	}

	last := -1
	for from := 0; from <= len(src)-len(needle); {
		i := bytes.Index(src[from:], needle)
		if i < 0 {
			break
		}
		last = from + i
		from = last + 1
	}
	return last
}

// Value argument forms. o may be v itself.

// StartsWithValue reports whether v begins with the content of o
func (v *Value) StartsWithValue(o *Value) bool {
	return bytes.HasPrefix(v.View(), o.View())
}

// EndsWithValue reports whether v ends with the content of o
func (v *Value) EndsWithValue(o *Value) bool {
	return bytes.HasSuffix(v.View(), o.View())
}

// IncludesValue reports whether the content of o occurs in v
func (v *Value) IncludesValue(o *Value) bool {
	return bytes.Contains(v.View(), o.View())
}

// IndexOfValue is IndexOf with the content of o
func (v *Value) IndexOfValue(o *Value) int {
	return bytes.Index(v.View(), o.View())
}

// LastIndexOfValue is LastIndexOf with the content of o
func (v *Value) LastIndexOfValue(o *Value) int {
	return v.LastIndexOf(o.Content())
}
