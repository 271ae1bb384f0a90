// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"sync"
	"unsafe"
)

// BytesToString is a zero-copy []byte->string conversion. The returned
// string aliases b's backing array: the caller must not mutate b after
// this call. Grounded directly on zero_copy_strings.go.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBytes is a zero-copy string->[]byte conversion. The returned
// slice is read-only; writing to it is undefined behavior.
func StringToBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// StringBuffer is the UTF-8 string buffer: a growable byte buffer whose
// bytes are intended to be well-formed UTF-8. ByteLen is O(1); RuneCount
// is O(n) and does not itself validate — callers that need a correctness
// guarantee must call ValidateUTF8 first.
type StringBuffer struct {
	buf []byte
}

// NewStringBuffer allocates a StringBuffer with the given initial capacity.
func NewStringBuffer(capacity int) *StringBuffer {
	return &StringBuffer{buf: make([]byte, 0, capacity)}
}

func (b *StringBuffer) WriteString(s string) { b.buf = append(b.buf, s...) }
func (b *StringBuffer) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}
func (b *StringBuffer) WriteBytes(p []byte) { b.buf = append(b.buf, p...) }

// ByteLen is the number of stored bytes ("byte length" view).
func (b *StringBuffer) ByteLen() int { return len(b.buf) }

// RuneCount is the number of Unicode scalars ("character count" view):
// linear-time, and does not validate — call ValidateUTF8 first if that
// guarantee is needed.
func (b *StringBuffer) RuneCount() int { return RuneCount(b.buf) }

// Slice returns the byte range [lo,hi). Both indices must fall on UTF-8
// boundaries (the first byte of a scalar, or one past the end); violations
// are fatal.
func (b *StringBuffer) Slice(lo, hi int) []byte {
	if lo < 0 || hi > len(b.buf) || lo > hi {
		Panic("rt: StringBuffer.Slice: out of range [%d:%d) len=%d", lo, hi, len(b.buf))
	}
	if !isBoundary(b.buf, lo) || !isBoundary(b.buf, hi) {
		Panic("rt: StringBuffer.Slice: [%d:%d) is not on a UTF-8 boundary", lo, hi)
	}
	return b.buf[lo:hi]
}

// String returns the buffer's contents as a zero-copy string view. The
// caller must not write to the StringBuffer afterward without first
// copying, exactly as BytesToString warns.
func (b *StringBuffer) String() string { return BytesToString(b.buf) }

// StringCopy returns an independent copy of the buffer's contents.
func (b *StringBuffer) StringCopy() string { return string(b.buf) }

func (b *StringBuffer) Reset()        { b.buf = b.buf[:0] }
func (b *StringBuffer) Bytes() []byte { return b.buf }
func (b *StringBuffer) Cap() int      { return cap(b.buf) }

// isBoundary reports whether byte index i is not a continuation byte
// (10xxxxxx) boundary rule.
func isBoundary(buf []byte, i int) bool {
	if i == len(buf) {
		return true
	}
	return buf[i]&0xC0 != 0x80
}

// InternString deduplicates s against a process-wide pool, in the style
// of StringPool/InternString in zero_copy_strings.go.
var globalStringPool = struct {
	mu   sync.RWMutex
	pool map[string]string
}{pool: make(map[string]string)}

func InternString(s string) string {
	globalStringPool.mu.RLock()
	if cached, ok := globalStringPool.pool[s]; ok {
		globalStringPool.mu.RUnlock()
		return cached
	}
	globalStringPool.mu.RUnlock()

	globalStringPool.mu.Lock()
	defer globalStringPool.mu.Unlock()
	if cached, ok := globalStringPool.pool[s]; ok {
		return cached
	}
	globalStringPool.pool[s] = s
	return s
}
