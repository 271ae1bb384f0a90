// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testharness

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResultPassed(t *testing.T) {
	assert.True(t, Result{}.Passed())
	assert.False(t, Result{Err: errors.New("boom")}.Passed())
}

func TestResultString(t *testing.T) {
	pass := Result{Fixture: "f", Case: "c", Duration: time.Millisecond}
	assert.Contains(t, pass.String(), "PASS f/c")

	fail := Result{Fixture: "f", Case: "c", Err: errors.New("bad"), Duration: time.Millisecond}
	assert.Contains(t, fail.String(), "FAIL f/c")
	assert.Contains(t, fail.String(), "bad")
}

func TestFilterMatchesEmptyPatternMatchesAll(t *testing.T) {
	assert.True(t, filterMatches("", "anything"))
}

func TestFilterMatchesSubstring(t *testing.T) {
	assert.True(t, filterMatches("suite/", "suite/case1"))
	assert.False(t, filterMatches("suite/", "other/case1"))
	assert.True(t, filterMatches("case1", "suite/case1"))
}

func TestFilterMatchesTreatsRegexMetacharactersLiterally(t *testing.T) {
	assert.True(t, filterMatches("foo(bar", "foo(bar)baz"))
	assert.False(t, filterMatches("foo(bar", "foobar"))
}
