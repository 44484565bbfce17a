// File: value.go
// Title: Owned String Value
// Description: Implements Value, a heap-owned byte string terminated by a
//              zero sentinel. Covers construction, ownership transfer and
//              read access. Content never contains a zero byte.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation of package level helpers
// - 2025-10-19 v0.2.0: Value type with move semantics and copy check
// - 2025-10-19 v0.2.1: noCopy marker, Size never negative

package stringx

import (
	"bytes"
	"strings"
)

// Value is an owned byte string. The backing buffer holds the content
// followed by a single zero sentinel, and no two values share a buffer.
//
// Values are used through *Value. The zero Value is an empty value ready
// to use. A non-zero Value must not be copied by value: go vet reports
// such copies, and mutating one panics. Reading a copy never panics, but
// its content is unspecified once the original has been mutated.
type Value struct {
	_    noCopy
	addr *Value // self pointer for the copy check
	buf  []byte // content followed by the zero sentinel
}

// noCopy makes go vet's copylocks check flag Values copied by value
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New returns an empty value
func New() *Value {
	return wrap([]byte{0})
}

// wrap returns a value owning buf, which must end in the sentinel
func wrap(buf []byte) *Value {
	v := &Value{buf: buf}
	v.addr = v
	return v
}

// From returns a value owning a copy of content. Bytes from the first
// zero byte onward are dropped.
func From(content string) *Value {
	content = cstring(content)
	buf := make([]byte, len(content)+1)
	copy(buf, content)
	return wrap(buf)
}

// FromBytes returns a value owning a copy of b up to its first zero byte
func FromBytes(b []byte) *Value {
	return owned(b)
}

// owned allocates a new value holding exactly content plus the sentinel
func owned(content []byte) *Value {
	if i := bytes.IndexByte(content, 0); i >= 0 {
		content = content[:i]
	}
	buf := make([]byte, len(content)+1)
	copy(buf, content)
	return wrap(buf)
}

// cstring returns s up to its first zero byte
func cstring(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

func (v *Value) copyCheck() {
	if v.addr == nil {
		v.addr = v
	} else if v.addr != v {
		panic("stringx: illegal use of non-zero Value copied by value")
	}
}

// Clone returns a deep copy of v
func (v *Value) Clone() *Value {
	return owned(v.View())
}

// Assign replaces the content of v with a fresh copy of src's content.
// Assigning a value to itself leaves it unchanged.
func (v *Value) Assign(src *Value) {
	v.copyCheck()
	if src == v {
		return
	}
	v.buf = owned(src.View()).buf
}

// Move transfers the buffer of v to a new value and leaves v empty.
// No bytes are copied.
func (v *Value) Move() *Value {
	v.copyCheck()
	buf := v.buf
	if buf == nil {
		buf = []byte{0}
	}
	v.buf = []byte{0}
	return wrap(buf)
}

// Take transfers the buffer of src to v and leaves src empty. The previous
// buffer of v is dropped. v.Take(v) is a no-op, and Take(nil) empties v.
func (v *Value) Take(src *Value) {
	v.copyCheck()
	if src == v {
		return
	}
	if src == nil {
		v.buf = []byte{0}
		return
	}
	src.copyCheck()
	v.buf = src.buf
	if v.buf == nil {
		v.buf = []byte{0}
	}
	src.buf = []byte{0}
}

// Release drops the buffer of v and resets it to empty content. It may be
// called any number of times.
func (v *Value) Release() {
	v.copyCheck()
	v.buf = []byte{0}
}

// Size returns the number of content bytes before the sentinel. It is
// recomputed on every call and never negative: a buffer without a
// sentinel, which only a by-value copy can observe, counts in full.
func (v *Value) Size() int {
	if v == nil {
		return 0
	}
	if n := bytes.IndexByte(v.buf, 0); n >= 0 {
		return n
	}
	return len(v.buf)
}

// View returns the content as a borrowed slice. The slice must not be
// modified and is only valid until the next Append, AppendValue,
// RepeatInPlace, Assign, Take, Move or Release on v.
func (v *Value) View() []byte {
	n := v.Size()
	if n == 0 {
		return nil
	}
	return v.buf[:n:n]
}

// Bytes returns a copy of the content
func (v *Value) Bytes() []byte {
	return append([]byte(nil), v.View()...)
}

// Content returns the content as a string
func (v *Value) Content() string {
	return string(v.View())
}

// String implements fmt.Stringer
func (v *Value) String() string {
	return v.Content()
}

// At returns the byte at position i, or 0 if i is outside [0, Size())
func (v *Value) At(i int) byte {
	if i < 0 || i >= v.Size() {
		return 0
	}
	return v.buf[i]
}

// IsEmpty reports whether v has no content
func (v *Value) IsEmpty() bool {
	return v.Size() == 0
}

// Equal reports whether v and o have the same content
func (v *Value) Equal(o *Value) bool {
	return bytes.Equal(v.View(), o.View())
}

// EqualString reports whether the content of v equals s up to its first
// zero byte
func (v *Value) EqualString(s string) bool {
	return string(v.View()) == cstring(s)
}

// Compare compares the contents of v and o byte-wise. The result is 0 if
// they are equal, -1 if v sorts before o and +1 otherwise.
func (v *Value) Compare(o *Value) int {
	return bytes.Compare(v.View(), o.View())
}
