// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"context"
	"sync/atomic"
)

// CancelChecker provides cheap, periodic context-cancellation checking
// inside a tight loop, for use from any Task's resumeFunc. A full
// ctx.Done() select is relatively expensive to run every iteration of a
// hot loop, so Check only does it every checkInterval calls and caches
// the answer.
type CancelChecker struct {
	ctx           context.Context
	checkInterval int64
	counter       atomic.Int64
	cancelled     atomic.Bool
}

// NewCancelChecker builds a checker over ctx, probing cancellation every
// checkInterval calls to Check (minimum 1).
func NewCancelChecker(ctx context.Context, checkInterval int64) *CancelChecker {
	if ctx == nil {
		ctx = context.Background()
	}
	if checkInterval < 1 {
		checkInterval = 1
	}
	return &CancelChecker{ctx: ctx, checkInterval: checkInterval}
}

// Check reports whether ctx is done, checking the channel only once
// every checkInterval calls.
func (c *CancelChecker) Check() bool {
	if c.cancelled.Load() {
		return true
	}
	n := c.counter.Add(1)
	if n%c.checkInterval != 0 {
		return false
	}
	return c.CheckNow()
}

// CheckNow forces an immediate, uncached check.
func (c *CancelChecker) CheckNow() bool {
	select {
	case <-c.ctx.Done():
		c.cancelled.Store(true)
		return true
	default:
		return false
	}
}

// Err returns the context's error if it is done, else nil.
func (c *CancelChecker) Err() error { return c.ctx.Err() }

// SpawnCancellable schedules resumeFn on sched, completing the Task with
// TaskDone instead of running resumeFn once a step's check observes ctx
// cancelled. The checker probes ctx only once every 64 steps, so resumeFn
// can run further steps after ctx is cancelled.
func SpawnCancellable(sched *Scheduler, ctx context.Context, resumeFn resumeFunc) *Task {
	checker := NewCancelChecker(ctx, 64)
	return sched.Spawn(func(wc *WorkerContext) TaskStatus {
		if checker.Check() {
			return TaskDone
		}
		return resumeFn(wc)
	})
}
