// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomicIntLoadStore(t *testing.T) {
	a := NewAtomic(int64(5))
	assert.Equal(t, int64(5), a.Load())
	a.Store(10)
	assert.Equal(t, int64(10), a.Load())
}

func TestAtomicBoolRoundTrip(t *testing.T) {
	a := NewAtomic(false)
	assert.False(t, a.Load())
	a.Store(true)
	assert.True(t, a.Load())
}

func TestAtomicSwap(t *testing.T) {
	a := NewAtomic(uint32(1))
	old := a.Swap(2)
	assert.Equal(t, uint32(1), old)
	assert.Equal(t, uint32(2), a.Load())
}

func TestAtomicCompareAndSwap(t *testing.T) {
	a := NewAtomic(int32(1))
	assert.True(t, a.CompareAndSwap(1, 2))
	assert.Equal(t, int32(2), a.Load())
	assert.False(t, a.CompareAndSwap(1, 3))
	assert.Equal(t, int32(2), a.Load())
}

func TestAtomicPointerLoadStoreSwap(t *testing.T) {
	x, y := 1, 2
	p := NewAtomicPointer(&x)
	assert.Same(t, &x, p.Load())
	old := p.Swap(&y)
	assert.Same(t, &x, old)
	assert.Same(t, &y, p.Load())
}

func TestAtomicPointerCompareAndSwap(t *testing.T) {
	x, y := 1, 2
	p := NewAtomicPointer(&x)
	assert.True(t, p.CompareAndSwap(&x, &y))
	assert.Same(t, &y, p.Load())
	assert.False(t, p.CompareAndSwap(&x, &y))
}
