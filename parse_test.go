// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntBasic(t *testing.T) {
	v, outcome := ParseInt("42", 10)
	assert.Equal(t, ParseOK, outcome)
	assert.EqualValues(t, 42, v)

	v, outcome = ParseInt("-17", 0)
	assert.Equal(t, ParseOK, outcome)
	assert.EqualValues(t, -17, v)

	v, outcome = ParseInt("0x2A", 0)
	assert.Equal(t, ParseOK, outcome)
	assert.EqualValues(t, 42, v)

	_, outcome = ParseInt("not a number", 10)
	assert.Equal(t, ParseInvalid, outcome)

	_, outcome = ParseInt("99999999999999999999999", 10)
	assert.Equal(t, ParseOverflow, outcome)
}

func TestParseFloatFastPath(t *testing.T) {
	v, outcome := ParseFloat("3.14159")
	assert.Equal(t, ParseOK, outcome)
	assert.InDelta(t, 3.14159, v, 1e-9)

	v, outcome = ParseFloat("-0.5")
	assert.Equal(t, ParseOK, outcome)
	assert.InDelta(t, -0.5, v, 1e-12)

	v, outcome = ParseFloat("100")
	assert.Equal(t, ParseOK, outcome)
	assert.InDelta(t, 100.0, v, 1e-12)
}

func TestParseFloatFallsBackToStrconv(t *testing.T) {
	v, outcome := ParseFloat("6.022e23")
	assert.Equal(t, ParseOK, outcome)
	assert.InDelta(t, 6.022e23, v, 1e17)

	_, outcome = ParseFloat("not a float")
	assert.Equal(t, ParseInvalid, outcome)
}

func TestParseFloatOverflow(t *testing.T) {
	_, outcome := ParseFloat("1e400")
	assert.Equal(t, ParseRange, outcome)
}
