// File: hash.go
// Title: Content Hashing
// Description: xxHash64 digests of value and sequence content for use as
//              map keys and for de-duplication.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns the xxHash64 digest of the content of v. Equal contents
// have equal hashes.
func (v *Value) Hash() uint64 {
	return xxhash.Sum64(v.View())
}

// Hash returns a digest of the element contents of s in order. Each
// element is prefixed with its length, so ["ab", "c"] and ["a", "bc"]
// hash differently.
func (s *Sequence) Hash() uint64 {
	digest := xxhash.New()
	var prefix [binary.MaxVarintLen64]byte
	s.Each(func(_ int, v *Value) {
		n := binary.PutUvarint(prefix[:], uint64(v.Size()))
		_, _ = digest.Write(prefix[:n])
		_, _ = digest.Write(v.View())
	})
	return digest.Sum64()
}

// Unique returns a new sequence with copies of the first occurrence of
// every distinct content, in order
func (s *Sequence) Unique() *Sequence {
	seen := make(map[uint64][]*Value, s.Len())
	result := &Sequence{}
	s.Each(func(_ int, v *Value) {
		h := v.Hash()
		for _, prev := range seen[h] {
			if prev.Equal(v) {
				return
			}
		}
		seen[h] = append(seen[h], v)
		result.items = append(result.items, v.Clone())
	})
	return result
}
