// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusString(t *testing.T) {
	assert.Equal(t, "ready", TaskReady.String())
	assert.Equal(t, "yielded", TaskYielded.String())
	assert.Equal(t, "done", TaskDone.String())
	assert.Equal(t, "unknown", TaskStatus(99).String())
}

func TestNewTaskStartsReady(t *testing.T) {
	task := NewTask(1, func(wc *WorkerContext) TaskStatus { return TaskDone })
	assert.Equal(t, TaskReady, task.status)
	assert.Equal(t, int64(1), task.id)
}

func TestWorkerContextAwaitIORecordsSuspension(t *testing.T) {
	task := NewTask(1, nil)
	wc := &WorkerContext{task: task}
	wc.AwaitIO(7)
	assert.Equal(t, suspendIO, task.suspension.kind)
	assert.Equal(t, 7, task.suspension.fd)
}

func TestWorkerContextAwaitAfterRecordsDeadline(t *testing.T) {
	task := NewTask(2, nil)
	wc := &WorkerContext{task: task}
	wc.AwaitAfter(1000)
	assert.Equal(t, suspendAfter, task.suspension.kind)
	assert.Equal(t, int64(1000), task.suspension.deadline)
}

func TestWorkerContextTaskID(t *testing.T) {
	task := NewTask(42, nil)
	wc := &WorkerContext{task: task}
	assert.Equal(t, int64(42), wc.TaskID())
}
