// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testharness

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []Result {
	return []Result{
		{Fixture: "suite", Case: "pass"},
		{Fixture: "suite", Case: "fail", Err: errors.New("boom")},
	}
}

func TestTextReporterSummarizesPassFail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (TextReporter{}).Report(&buf, sampleResults()))
	out := buf.String()
	assert.Contains(t, out, "PASS suite/pass")
	assert.Contains(t, out, "FAIL suite/fail")
	assert.Contains(t, out, "1 passed, 1 failed, 2 total")
}

func TestTAPReporterFormatsPlan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (TAPReporter{}).Report(&buf, sampleResults()))
	out := buf.String()
	assert.Contains(t, out, "1..2")
	assert.Contains(t, out, "ok 1 - suite/pass")
	assert.Contains(t, out, "not ok 2 - suite/fail")
	assert.Contains(t, out, "boom")
}

func TestJUnitReporterGroupsByFixture(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (JUnitReporter{}).Report(&buf, sampleResults()))
	out := buf.String()
	assert.Contains(t, out, `<testsuite name="suite" tests="2" failures="1">`)
	assert.Contains(t, out, `name="pass"`)
	assert.Contains(t, out, `name="fail"`)
}

func TestReporterFromEnvDefaultsToText(t *testing.T) {
	t.Setenv("REPORTER", "")
	r := ReporterFromEnv()
	_, ok := r.(TextReporter)
	assert.True(t, ok)
}

func TestReporterFromEnvSelectsTAP(t *testing.T) {
	t.Setenv("REPORTER", "tap")
	r := ReporterFromEnv()
	_, ok := r.(TAPReporter)
	assert.True(t, ok)
}

func TestReporterFromEnvSelectsJUnit(t *testing.T) {
	t.Setenv("REPORTER", "junit")
	r := ReporterFromEnv()
	_, ok := r.(JUnitReporter)
	assert.True(t, ok)
}

func TestRunAndReportWritesJUnitFileWhenSet(t *testing.T) {
	t.Setenv("REPORTER", "text")
	path := t.TempDir() + "/out.xml"
	t.Setenv("JUNIT_FILE", path)

	require.NoError(t, RunAndReport(sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<testsuites>")
}

func TestPanicToErrWrapsNonErrorValue(t *testing.T) {
	err := panicToErr("boom")
	assert.Contains(t, err.Error(), "boom")
}

func TestPanicToErrWrapsErrorValue(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := panicToErr(sentinel)
	assert.ErrorIs(t, err, sentinel)
}
