// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceGetSub(t *testing.T) {
	s := NewSlice([]int{1, 2, 3, 4, 5})
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 3, s.Get(2))

	sub := s.Sub(1, 4)
	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, []int{2, 3, 4}, sub.Raw())
}

func TestSliceOutOfBoundsPanics(t *testing.T) {
	s := NewSlice([]byte("hello"))
	assert.Panics(t, func() { s.Get(10) })
	assert.Panics(t, func() { s.Sub(3, 1) })
	assert.Panics(t, func() { s.Sub(0, 100) })
}
