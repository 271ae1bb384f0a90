// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

// Slice is a non-owning borrowed view over a backing array. Go's slice
// header already carries element size via its static type, so Slice[T]
// only needs to track ptr and length explicitly; re-slicing still panics
// with the module's own message rather than relying on Go's own
// (recoverable) out-of-range panic text.
type Slice[T any] struct {
	ptr    []T
	length int
}

// NewSlice wraps data as a borrowed, non-owning view.
func NewSlice[T any](data []T) Slice[T] {
	return Slice[T]{ptr: data, length: len(data)}
}

func (s Slice[T]) Len() int { return s.length }

func (s Slice[T]) Get(i int) T {
	if i < 0 || i >= s.length {
		Panic("rt: Slice.Get: index %d out of range [0,%d)", i, s.length)
	}
	return s.ptr[i]
}

// Sub returns the sub-slice [lo,hi). Violating 0 <= lo <= hi <= length is
// fatal.
func (s Slice[T]) Sub(lo, hi int) Slice[T] {
	if lo < 0 || hi > s.length || lo > hi {
		Panic("rt: Slice.Sub: [%d:%d) out of range [0,%d]", lo, hi, s.length)
	}
	return Slice[T]{ptr: s.ptr[lo:hi], length: hi - lo}
}

// Raw exposes the underlying Go slice for interop with stdlib APIs. The
// caller inherits the same "valid only while the owner lives and is not
// mutated" contract as the view itself.
func (s Slice[T]) Raw() []T { return s.ptr[:s.length] }
