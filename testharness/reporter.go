// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testharness

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Reporter renders a completed run's Results.
type Reporter interface {
	Report(w io.Writer, results []Result) error
}

// ReporterFromEnv selects a Reporter by the REPORTER environment variable
// ("text", "tap", "junit"; default "text").
func ReporterFromEnv() Reporter {
	switch os.Getenv("REPORTER") {
	case "tap":
		return TAPReporter{}
	case "junit":
		return JUnitReporter{}
	default:
		return TextReporter{}
	}
}

// RunAndReport runs results through ReporterFromEnv, writing to stdout,
// and additionally to JUNIT_FILE if that environment variable is set and
// the selected reporter is JUnitReporter — or always, if JUNIT_FILE is
// set regardless of REPORTER, since CI setups commonly want both a human
// console report and a machine-readable JUnit file from one run.
func RunAndReport(results []Result) error {
	reporter := ReporterFromEnv()
	if err := reporter.Report(os.Stdout, results); err != nil {
		return err
	}
	if path := os.Getenv("JUNIT_FILE"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("rt/testharness: create JUNIT_FILE %q: %w", path, err)
		}
		defer f.Close()
		if err := (JUnitReporter{}).Report(f, results); err != nil {
			return err
		}
	}
	return nil
}

// TextReporter prints one line per Result plus a summary: a plain
// stdout diagnostic style rather than a structured logger.
type TextReporter struct{}

func (TextReporter) Report(w io.Writer, results []Result) error {
	passed, failed := 0, 0
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
		if r.Passed() {
			passed++
		} else {
			failed++
		}
	}
	_, err := fmt.Fprintf(w, "\n%d passed, %d failed, %d total\n", passed, failed, len(results))
	return err
}

// TAPReporter emits Test Anything Protocol output.
type TAPReporter struct{}

func (TAPReporter) Report(w io.Writer, results []Result) error {
	if _, err := fmt.Fprintf(w, "1..%d\n", len(results)); err != nil {
		return err
	}
	for i, r := range results {
		name := r.Fixture + "/" + r.Case
		if r.Passed() {
			if _, err := fmt.Fprintf(w, "ok %d - %s\n", i+1, name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "not ok %d - %s\n", i+1, name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  ---\n  message: %q\n  ...\n", r.Err.Error()); err != nil {
			return err
		}
	}
	return nil
}

// JUnitReporter emits a JUnit XML report, grouping Results by Fixture
// into <testsuite> elements.
type JUnitReporter struct{}

type junitTestsuites struct {
	XMLName xml.Name         `xml:"testsuites"`
	Suites  []junitTestsuite `xml:"testsuite"`
}

type junitTestsuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Cases    []junitTestcase `xml:"testcase"`
}

type junitTestcase struct {
	Name    string        `xml:"name,attr"`
	Time    float64       `xml:"time,attr"`
	Failure *junitFailure `xml:"failure,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
}

func (JUnitReporter) Report(w io.Writer, results []Result) error {
	order := []string{}
	bySuite := map[string]*junitTestsuite{}
	for _, r := range results {
		suite, ok := bySuite[r.Fixture]
		if !ok {
			suite = &junitTestsuite{Name: r.Fixture}
			bySuite[r.Fixture] = suite
			order = append(order, r.Fixture)
		}
		tc := junitTestcase{Name: r.Case, Time: r.Duration.Seconds()}
		suite.Tests++
		if !r.Passed() {
			suite.Failures++
			tc.Failure = &junitFailure{Message: r.Err.Error()}
		}
		suite.Cases = append(suite.Cases, tc)
	}

	doc := junitTestsuites{}
	for _, name := range order {
		doc.Suites = append(doc.Suites, *bySuite[name])
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return enc.Encode(doc)
}
