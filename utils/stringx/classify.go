// File: classify.go
// Title: Character Classification
// Description: ASCII character class predicates over Value content.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// IsAlphabetic reports whether every byte of v is an ASCII letter. It is
// true for empty content.
func (v *Value) IsAlphabetic() bool {
	for _, c := range v.View() {
		if !isAlpha(c) {
			return false
		}
	}
	return true
}

// IsAlphanumeric reports whether every byte of v is an ASCII letter or
// digit. It is true for empty content.
func (v *Value) IsAlphanumeric() bool {
	for _, c := range v.View() {
		if !isAlpha(c) && !isDigit(c) {
			return false
		}
	}
	return true
}
