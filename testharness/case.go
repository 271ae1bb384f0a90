// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testharness implements a test and benchmark runner: fixtures
// with setup/teardown at both suite and case granularity, a sequential or
// parallel Runner, a calibrated benchmark loop, and pluggable reporters
// selected by the REPORTER environment variable.
package testharness

import (
	"fmt"
	"strings"
	"time"
)

// Case is a single named test.
type Case struct {
	Name string
	Run  func() error
}

// Fixture groups Cases under shared setup/teardown, run once per suite
// (SetupAll/TeardownAll) and once per Case (SetupEach/TeardownEach).
type Fixture struct {
	Name  string
	Cases []Case

	SetupAll     func() error
	TeardownAll  func() error
	SetupEach    func() error
	TeardownEach func() error
}

// Result is one Case's outcome.
type Result struct {
	Fixture  string
	Case     string
	Err      error
	Duration time.Duration
}

func (r Result) Passed() bool { return r.Err == nil }

func (r Result) String() string {
	if r.Passed() {
		return fmt.Sprintf("PASS %s/%s (%s)", r.Fixture, r.Case, r.Duration)
	}
	return fmt.Sprintf("FAIL %s/%s (%s): %v", r.Fixture, r.Case, r.Duration, r.Err)
}

// filterMatches reports whether name matches the TEST_FILTER pattern
// (a plain substring match; an empty pattern matches everything).
func filterMatches(pattern, name string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(name, pattern)
}
