// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCancelCheckerNotCancelled(t *testing.T) {
	c := NewCancelChecker(context.Background(), 1)
	assert.False(t, c.Check())
	assert.NoError(t, c.Err())
}

func TestCancelCheckerDetectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewCancelChecker(ctx, 1)
	cancel()
	assert.True(t, c.Check())
	assert.Error(t, c.Err())
}

func TestCancelCheckerOnlyProbesEveryInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewCancelChecker(ctx, 4)
	cancel()

	assert.False(t, c.Check())
	assert.False(t, c.Check())
	assert.False(t, c.Check())
	assert.True(t, c.Check())
}

func TestCancelCheckerCachesCancelledState(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewCancelChecker(ctx, 100)
	cancel()
	assert.True(t, c.CheckNow())
	assert.True(t, c.Check())
}

func TestNewCancelCheckerDefaultsNilContextAndInterval(t *testing.T) {
	c := NewCancelChecker(nil, 0)
	assert.NotNil(t, c.ctx)
	assert.Equal(t, int64(1), c.checkInterval)
}

func TestSpawnCancellableStopsResumeFnOnceCancellationIsObserved(t *testing.T) {
	sched := NewScheduler(1)
	defer sched.Close()

	ctx, cancel := context.WithCancel(context.Background())
	runs := 0
	task := SpawnCancellable(sched, ctx, func(wc *WorkerContext) TaskStatus {
		runs++
		return TaskReady
	})
	cancel()

	wc := &WorkerContext{task: task}
	var status TaskStatus
	for i := 0; i < 64; i++ {
		status = task.resumeFn(wc)
		if status == TaskDone {
			break
		}
	}
	assert.Equal(t, TaskDone, status)
}
