// File: transform.go
// Title: Value Transformations
// Description: Pure operations producing new values: concatenation,
//              slicing, repetition, padding, ASCII case conversion and
//              whitespace trimming. The receiver is never modified.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation of PadLeft, PadRight and Center
// - 2025-10-19 v0.2.0: Reworked as byte-oriented Value methods

package stringx

import (
	"math"

	"github.com/msto63/xlstr/core/errors"
)

// Concat returns a new value holding v followed by every part in order.
// Each part is taken up to its first zero byte.
func (v *Value) Concat(parts ...string) *Value {
	src := v.View()
	size := len(src) + 1
	for _, part := range parts {
		size += len(cstring(part))
	}

	buf := make([]byte, 0, size)
	buf = append(buf, src...)
	for _, part := range parts {
		buf = append(buf, cstring(part)...)
	}
	return wrap(append(buf, 0))
}

// ConcatValue returns a new value holding v followed by o
func (v *Value) ConcatValue(o *Value) *Value {
	return v.Concat(string(o.View()))
}

// Slice returns the bytes in the half-open range [start, end). end is
// clamped to Size() and a negative start to 0. An empty range yields an
// empty value.
func (v *Value) Slice(start, end int) *Value {
	n := v.Size()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= n || end <= start {
		return New()
	}
	return owned(v.buf[start:end])
}

// Repeat returns v repeated count times. A count of zero or less yields an
// empty value.
func (v *Value) Repeat(count int) *Value {
	src := v.View()
	if count <= 0 || len(src) == 0 {
		return New()
	}
	if count > (math.MaxInt-1)/len(src) {
		panic("stringx: repeat count overflows buffer size")
	}

	buf := make([]byte, len(src)*count+1)
	for i := 0; i < count; i++ {
		copy(buf[i*len(src):], src)
	}
	return wrap(buf)
}

// PadEnd returns v extended to target bytes by cycling through pad. If v
// already holds target bytes or more, a copy of v is returned. An empty
// pad is rejected when padding is required.
func (v *Value) PadEnd(target int, pad string) (*Value, error) {
	n := v.Size()
	if target <= n {
		return v.Clone(), nil
	}
	pad = cstring(pad)
	if pad == "" {
		return nil, reject(errors.StringxEmptyPad("pad_end", target))
	}

	buf := make([]byte, target+1)
	copy(buf, v.View())
	fill(buf[n:target], pad)
	return wrap(buf), nil
}

// PadStart returns v prefixed up to target bytes by cycling through pad.
// If v already holds target bytes or more, a copy of v is returned. An
// empty pad is rejected when padding is required.
func (v *Value) PadStart(target int, pad string) (*Value, error) {
	n := v.Size()
	if target <= n {
		return v.Clone(), nil
	}
	pad = cstring(pad)
	if pad == "" {
		return nil, reject(errors.StringxEmptyPad("pad_start", target))
	}

	buf := make([]byte, target+1)
	fill(buf[:target-n], pad)
	copy(buf[target-n:], v.View())
	return wrap(buf), nil
}

// MustPadEnd is like PadEnd but panics on error
func (v *Value) MustPadEnd(target int, pad string) *Value {
	result, err := v.PadEnd(target, pad)
	if err != nil {
		panic(err)
	}
	return result
}

// PadEndValue is PadEnd with the content of pad
func (v *Value) PadEndValue(target int, pad *Value) (*Value, error) {
	return v.PadEnd(target, pad.Content())
}

// PadStartValue is PadStart with the content of pad
func (v *Value) PadStartValue(target int, pad *Value) (*Value, error) {
	return v.PadStart(target, pad.Content())
}

// MustPadStart is like PadStart but panics on error
func (v *Value) MustPadStart(target int, pad string) *Value {
	result, err := v.PadStart(target, pad)
	if err != nil {
		panic(err)
	}
	return result
}

func fill(dst []byte, pad string) {
	for i := range dst {
		dst[i] = pad[i%len(pad)]
	}
}

// ToUpper returns a copy of v with ASCII lower case letters mapped to
// upper case. Other bytes are unchanged.
func (v *Value) ToUpper() *Value {
	result := v.Clone()
	for i, c := range result.buf[:len(result.buf)-1] {
		if 'a' <= c && c <= 'z' {
			result.buf[i] = c - 'a' + 'A'
		}
	}
	return result
}

// ToLower returns a copy of v with ASCII upper case letters mapped to
// lower case. Other bytes are unchanged.
func (v *Value) ToLower() *Value {
	result := v.Clone()
	for i, c := range result.buf[:len(result.buf)-1] {
		if 'A' <= c && c <= 'Z' {
			result.buf[i] = c - 'A' + 'a'
		}
	}
	return result
}

// isSpace matches the C locale whitespace class
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Trim returns v without leading and trailing whitespace
func (v *Value) Trim() *Value {
	src := v.View()
	start, end := 0, len(src)
	for start < end && isSpace(src[start]) {
		start++
	}
	for end > start && isSpace(src[end-1]) {
		end--
	}
	return owned(src[start:end])
}

// TrimLeft returns v without leading whitespace
func (v *Value) TrimLeft() *Value {
	src := v.View()
	start := 0
	for start < len(src) && isSpace(src[start]) {
		start++
	}
	return owned(src[start:])
}

// TrimRight returns v without trailing whitespace
func (v *Value) TrimRight() *Value {
	src := v.View()
	end := len(src)
	for end > 0 && isSpace(src[end-1]) {
		end--
	}
	return owned(src[:end])
}
