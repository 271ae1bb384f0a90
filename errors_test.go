// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpErrorMessageWithComponent(t *testing.T) {
	e := &OpError{Op: "alloc.Allocate", Component: "allocator", Err: errors.New("oom")}
	assert.Contains(t, e.Error(), "alloc.Allocate")
	assert.Contains(t, e.Error(), "allocator")
	assert.Contains(t, e.Error(), "oom")
}

func TestOpErrorMessageWithoutComponent(t *testing.T) {
	e := &OpError{Op: "swisstable.Insert", Err: errors.New("bad key")}
	assert.NotContains(t, e.Error(), "()")
	assert.Contains(t, e.Error(), "swisstable.Insert")
}

func TestOpErrorUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	e := &OpError{Op: "op", Err: sentinel}
	assert.ErrorIs(t, e, sentinel)
}

func TestWrapOpReturnsNilForNilErr(t *testing.T) {
	assert.Nil(t, wrapOp("op", "component", nil))
}

func TestWrapOpWrapsNonNilErr(t *testing.T) {
	err := wrapOp("op", "component", errors.New("bad"))
	opErr, ok := err.(*OpError)
	assert.True(t, ok)
	assert.Equal(t, "op", opErr.Op)
}

func TestPanicWritesAndPanics(t *testing.T) {
	assert.PanicsWithValue(t, "boom 42", func() {
		Panic("boom %d", 42)
	})
}

func TestAssertPanicsOnFalseCondition(t *testing.T) {
	assert.Panics(t, func() { Assert(false, "must hold") })
	assert.NotPanics(t, func() { Assert(true, "must hold") })
}
