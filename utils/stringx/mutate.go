// File: mutate.go
// Title: In-Place Mutation
// Description: The two operations that change a Value in place: appending
//              and repeating. Both keep the identity of the value and may
//              relocate its buffer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

import (
	"math"

	mdwlog "github.com/msto63/xlstr/core/log"
)

// Append appends content up to its first zero byte to v. Views obtained
// from v before the call are invalidated.
func (v *Value) Append(content string) {
	v.copyCheck()
	content = cstring(content)
	if content == "" {
		if v.buf == nil {
			v.buf = []byte{0}
		}
		return
	}

	n := v.Size()
	v.ensure(n + len(content) + 1)
	copy(v.buf[n:], content)
	v.buf[len(v.buf)-1] = 0
}

// AppendValue appends the content of o to v. o may be v itself.
func (v *Value) AppendValue(o *Value) {
	v.Append(string(o.View()))
}

// RepeatInPlace replaces the content of v by itself repeated count times.
// A count of zero or less leaves v empty. Views obtained from v before the
// call are invalidated.
func (v *Value) RepeatInPlace(count int) {
	v.copyCheck()
	n := v.Size()
	if count <= 0 || n == 0 {
		v.truncate()
		return
	}
	if count > (math.MaxInt-1)/n {
		panic("stringx: repeat count overflows buffer size")
	}

	v.ensure(n*count + 1)
	for i := 1; i < count; i++ {
		copy(v.buf[i*n:], v.buf[:n])
	}
	v.buf[len(v.buf)-1] = 0
}

// truncate empties v while keeping its capacity
func (v *Value) truncate() {
	if cap(v.buf) == 0 {
		v.buf = []byte{0}
		return
	}
	v.buf = v.buf[:1]
	v.buf[0] = 0
}

// ensure resizes the buffer of v to exactly size bytes, keeping the current
// content. The buffer grows in place when capacity allows, otherwise the
// content moves to a new buffer with room for further growth.
func (v *Value) ensure(size int) {
	if size <= cap(v.buf) {
		v.buf = v.buf[:size]
		return
	}

	newCap := 2 * cap(v.buf)
	if newCap < size {
		newCap = size
	}
	buf := make([]byte, size, newCap)
	copy(buf, v.View())

	logger().Debug("buffer relocated", mdwlog.Fields{
		"old_capacity": cap(v.buf),
		"new_capacity": newCap,
	})
	v.buf = buf
}
