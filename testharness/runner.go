// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testharness

import (
	"os"
	"sync"
	"time"
)

// Runner executes Fixtures' Cases, sequentially or with N worker
// goroutines pulling from a shared, mutex-guarded index — the same shape
// as a Worker pool over a plain slice rather than a channel, since the
// full work list is known up front.
type Runner struct {
	Fixtures []Fixture
	Parallel int // 0 or 1 = sequential
	Filter   string
}

// NewRunnerFromEnv builds a Runner reading TEST_FILTER from the
// environment.
func NewRunnerFromEnv(fixtures []Fixture, parallel int) *Runner {
	return &Runner{Fixtures: fixtures, Parallel: parallel, Filter: os.Getenv("TEST_FILTER")}
}

// Run executes every matching Case and returns all Results in
// Fixture-then-Case order (parallel mode still reports in that order,
// even though execution is unordered).
func (r *Runner) Run() []Result {
	type job struct {
		fixture *Fixture
		c       Case
		slot    int
	}
	var jobs []job
	results := make([]Result, 0)
	slotOf := make([]int, 0)

	for fi := range r.Fixtures {
		f := &r.Fixtures[fi]
		for _, c := range f.Cases {
			if !filterMatches(r.Filter, f.Name+"/"+c.Name) {
				continue
			}
			slot := len(results)
			results = append(results, Result{Fixture: f.Name, Case: c.Name})
			slotOf = append(slotOf, slot)
			jobs = append(jobs, job{fixture: f, c: c, slot: slot})
		}
	}

	if r.Parallel <= 1 {
		for _, j := range jobs {
			results[j.slot] = r.runOne(j.fixture, j.c)
		}
		return results
	}

	var mu sync.Mutex
	next := 0
	var wg sync.WaitGroup
	for w := 0; w < r.Parallel; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				mu.Lock()
				if next >= len(jobs) {
					mu.Unlock()
					return
				}
				j := jobs[next]
				next++
				mu.Unlock()

				res := r.runOne(j.fixture, j.c)
				mu.Lock()
				results[j.slot] = res
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return results
}

func (r *Runner) runOne(f *Fixture, c Case) (res Result) {
	start := time.Now()
	var err error
	defer func() {
		if rec := recover(); rec != nil {
			res = Result{Fixture: f.Name, Case: c.Name, Err: panicToErr(rec), Duration: time.Since(start)}
		}
	}()

	if f.SetupEach != nil {
		if err = f.SetupEach(); err != nil {
			return Result{Fixture: f.Name, Case: c.Name, Err: err, Duration: time.Since(start)}
		}
	}
	err = c.Run()
	if f.TeardownEach != nil {
		if tErr := f.TeardownEach(); tErr != nil && err == nil {
			err = tErr
		}
	}
	return Result{Fixture: f.Name, Case: c.Name, Err: err, Duration: time.Since(start)}
}

// RunSuite runs SetupAll/TeardownAll around a full Run, so a Fixture
// whose SetupAll fails reports every one of its Cases as failed rather
// than panicking the whole Runner.
func RunSuite(fixtures []Fixture, parallel int) []Result {
	var results []Result
	for i := range fixtures {
		f := &fixtures[i]
		if f.SetupAll != nil {
			if err := f.SetupAll(); err != nil {
				for _, c := range f.Cases {
					results = append(results, Result{Fixture: f.Name, Case: c.Name, Err: err})
				}
				continue
			}
		}
		runner := &Runner{Fixtures: []Fixture{*f}, Parallel: parallel, Filter: os.Getenv("TEST_FILTER")}
		results = append(results, runner.Run()...)
		if f.TeardownAll != nil {
			_ = f.TeardownAll()
		}
	}
	return results
}
