// File: sequence.go
// Title: Value Sequence
// Description: Implements Sequence, an ordered collection of uniquely owned
//              values, together with Split, Zip and Replace which convert
//              between a single value and a sequence of its segments.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

import (
	"bytes"

	"github.com/msto63/xlstr/core/errors"
)

// Sequence is an ordered list of values. Every element is owned by the
// sequence and shares no storage with values outside it. Duplicates are
// allowed.
type Sequence struct {
	items []*Value
}

// NewSequence returns a sequence holding a copy of every content in order
func NewSequence(contents ...string) *Sequence {
	s := &Sequence{items: make([]*Value, 0, len(contents))}
	for _, content := range contents {
		s.items = append(s.items, From(content))
	}
	return s
}

// Split cuts v at every occurrence of token, scanning left to right for the
// leftmost match. Each segment, including empty ones and the remainder after
// the last match, becomes a new value. Content without token yields a single
// element equal to v. An empty token is rejected.
func (v *Value) Split(token string) (*Sequence, error) {
	token = cstring(token)
	if token == "" {
		return nil, reject(errors.StringxEmptyToken("split", v.Content()))
	}

	src := v.View()
	sep := []byte(token)
	s := &Sequence{items: make([]*Value, 0, bytes.Count(src, sep)+1)}
	for {
		i := bytes.Index(src, sep)
		if i < 0 {
			break
		}
		s.items = append(s.items, owned(src[:i]))
		src = src[i+len(sep):]
	}
	s.items = append(s.items, owned(src))
	return s, nil
}

// SplitValue is Split with the content of token. For non-empty v,
// v.SplitValue(v) yields two empty elements.
func (v *Value) SplitValue(token *Value) (*Sequence, error) {
	return v.Split(token.Content())
}

// MustSplit is like Split but panics on error
func (v *Value) MustSplit(token string) *Sequence {
	s, err := v.Split(token)
	if err != nil {
		panic(err)
	}
	return s
}

// Replace returns v with every occurrence of search replaced by repl. It is
// exactly v.Split(search) followed by Zip(repl), so an empty search is
// rejected.
func (v *Value) Replace(search, repl string) (*Value, error) {
	s, err := v.Split(search)
	if err != nil {
		return nil, err
	}
	return s.Zip(repl), nil
}

// ReplaceValue is Replace with the contents of search and repl
func (v *Value) ReplaceValue(search, repl *Value) (*Value, error) {
	return v.Replace(search.Content(), repl.Content())
}

// ZipValue is Zip with the content of token
func (s *Sequence) ZipValue(token *Value) *Value {
	return s.Zip(token.Content())
}

// MustReplace is like Replace but panics on error
func (v *Value) MustReplace(search, repl string) *Value {
	result, err := v.Replace(search, repl)
	if err != nil {
		panic(err)
	}
	return result
}

// Zip joins the elements of s into a new value with token strictly between
// consecutive elements. An empty sequence yields an empty value and a single
// element is returned as a copy without token.
func (s *Sequence) Zip(token string) *Value {
	switch s.Len() {
	case 0:
		return New()
	case 1:
		return s.items[0].Clone()
	}

	token = cstring(token)
	size := len(token)*(len(s.items)-1) + 1
	for _, item := range s.items {
		size += item.Size()
	}

	buf := make([]byte, 0, size)
	for i, item := range s.items {
		if i > 0 {
			buf = append(buf, token...)
		}
		buf = append(buf, item.View()...)
	}
	return wrap(append(buf, 0))
}

// Len returns the number of elements
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// At returns the element at position i, or nil if i is out of range. The
// element remains owned by s.
func (s *Sequence) At(i int) *Value {
	if i < 0 || i >= s.Len() {
		return nil
	}
	return s.items[i]
}

// Push appends a copy of v
func (s *Sequence) Push(v *Value) {
	s.items = append(s.items, v.Clone())
}

// PushString appends a new value holding content
func (s *Sequence) PushString(content string) {
	s.items = append(s.items, From(content))
}

// Clone returns a deep copy of s
func (s *Sequence) Clone() *Sequence {
	clone := &Sequence{items: make([]*Value, 0, s.Len())}
	for i := 0; i < s.Len(); i++ {
		clone.items = append(clone.items, s.items[i].Clone())
	}
	return clone
}

// Contents returns the content of every element in order
func (s *Sequence) Contents() []string {
	contents := make([]string, s.Len())
	for i := range contents {
		contents[i] = s.items[i].Content()
	}
	return contents
}

// Each calls fn for every element in order
func (s *Sequence) Each(fn func(i int, v *Value)) {
	for i := 0; i < s.Len(); i++ {
		fn(i, s.items[i])
	}
}

// Filter returns a new sequence with copies of the elements for which keep
// returns true
func (s *Sequence) Filter(keep func(v *Value) bool) *Sequence {
	result := &Sequence{}
	s.Each(func(_ int, v *Value) {
		if keep(v) {
			result.items = append(result.items, v.Clone())
		}
	})
	return result
}

// Map returns a new sequence holding copies of fn applied to every
// element. A nil result is stored as an empty value.
func (s *Sequence) Map(fn func(v *Value) *Value) *Sequence {
	result := &Sequence{items: make([]*Value, 0, s.Len())}
	s.Each(func(_ int, v *Value) {
		result.items = append(result.items, fn(v).Clone())
	})
	return result
}

// Equal reports whether s and o hold equal contents in the same order
func (s *Sequence) Equal(o *Sequence) bool {
	if s.Len() != o.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if !s.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}
