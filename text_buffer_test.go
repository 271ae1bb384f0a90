// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToStringAndBack(t *testing.T) {
	b := []byte("hello")
	s := BytesToString(b)
	assert.Equal(t, "hello", s)

	back := StringToBytes(s)
	assert.Equal(t, b, back)
}

func TestBytesToStringEmpty(t *testing.T) {
	assert.Equal(t, "", BytesToString(nil))
}

func TestStringToBytesEmpty(t *testing.T) {
	assert.Nil(t, StringToBytes(""))
}

func TestStringBufferWriteAndByteLen(t *testing.T) {
	buf := NewStringBuffer(8)
	buf.WriteString("héllo")
	assert.Equal(t, len("héllo"), buf.ByteLen())
}

func TestStringBufferRuneCount(t *testing.T) {
	buf := NewStringBuffer(8)
	buf.WriteString("héllo")
	assert.Equal(t, 5, buf.RuneCount())
}

func TestStringBufferWriteByteAndBytes(t *testing.T) {
	buf := NewStringBuffer(4)
	require.NoError(t, buf.WriteByte('a'))
	buf.WriteBytes([]byte("bc"))
	assert.Equal(t, "abc", buf.StringCopy())
}

func TestStringBufferSliceOnBoundary(t *testing.T) {
	buf := NewStringBuffer(8)
	buf.WriteString("héllo")
	got := buf.Slice(0, 1)
	assert.Equal(t, "h", string(got))
}

func TestStringBufferSliceOffBoundaryPanics(t *testing.T) {
	buf := NewStringBuffer(8)
	buf.WriteString("héllo") // 'é' is a 2-byte sequence starting at index 1
	assert.Panics(t, func() { buf.Slice(1, 2) })
}

func TestStringBufferSliceOutOfRangePanics(t *testing.T) {
	buf := NewStringBuffer(8)
	buf.WriteString("ab")
	assert.Panics(t, func() { buf.Slice(0, 5) })
}

func TestStringBufferResetAndCap(t *testing.T) {
	buf := NewStringBuffer(16)
	buf.WriteString("abc")
	assert.Equal(t, 16, buf.Cap())
	buf.Reset()
	assert.Equal(t, 0, buf.ByteLen())
	assert.Equal(t, 16, buf.Cap())
}

func TestInternStringDeduplicates(t *testing.T) {
	a := InternString("shared-key-text")
	b := InternString("shared-key-text")
	assert.Equal(t, a, b)
}
