// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutcomeString(t *testing.T) {
	assert.Equal(t, "OK", ParseOK.String())
	assert.Equal(t, "INVALID", ParseInvalid.String())
	assert.Equal(t, "RANGE", ParseRange.String())
	assert.Equal(t, "OVERFLOW", ParseOverflow.String())
	assert.Equal(t, "UNDERFLOW", ParseUnderflow.String())
	assert.Equal(t, "UNKNOWN", ParseOutcome(99).String())
}
