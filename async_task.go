// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

// TaskStatus is a Task's lifecycle state.
type TaskStatus int32

const (
	TaskReady TaskStatus = iota
	TaskYielded
	TaskDone
)

func (s TaskStatus) String() string {
	switch s {
	case TaskReady:
		return "ready"
	case TaskYielded:
		return "yielded"
	case TaskDone:
		return "done"
	default:
		return "unknown"
	}
}

// suspendKey names what a yielded Task is waiting on: an I/O readiness
// event, a timer deadline, or nothing (a plain voluntary yield).
type suspendKey struct {
	kind     suspendKind
	fd       int
	deadline int64 // WallMillis at which an after-suspension resumes
}

type suspendKind int

const (
	suspendNone suspendKind = iota
	suspendIO
	suspendAfter
)

// resumeFunc is a single step of a Task's execution. It returns the
// status the Task is in once control returns to the scheduler: Ready
// means "call me again immediately" (cooperative yield with no wait
// condition), Yielded means "call me again once WorkerContext's recorded
// suspension is satisfied," Done means the task finished.
type resumeFunc func(ctx *WorkerContext) TaskStatus

// Task is the scheduler's unit of work {id, status, resumeFn,
// suspension} record. It holds no continuation to run after it completes.
type Task struct {
	id         int64
	status     TaskStatus
	resumeFn   resumeFunc
	suspension suspendKey
}

// NewTask wraps resumeFn as a Task ready to run.
func NewTask(id int64, resumeFn resumeFunc) *Task {
	return &Task{id: id, status: TaskReady, resumeFn: resumeFn}
}

// WorkerContext is passed to a resumeFunc on every step, letting it
// record a suspension before yielding control back to the scheduler.
type WorkerContext struct {
	task *Task
}

// AwaitIO suspends the calling task until fd becomes ready, as reported
// by the scheduler's EventLoop. The resumeFunc must return TaskYielded
// immediately after calling AwaitIO.
func (wc *WorkerContext) AwaitIO(fd int) {
	wc.task.suspension = suspendKey{kind: suspendIO, fd: fd}
}

// AwaitAfter suspends the calling task until deadlineMillis (WallMillis
// units) has passed. The resumeFunc must return TaskYielded immediately
// after calling AwaitAfter.
func (wc *WorkerContext) AwaitAfter(deadlineMillis int64) {
	wc.task.suspension = suspendKey{kind: suspendAfter, deadline: deadlineMillis}
}

// TaskID returns the id of the task currently executing in this context.
func (wc *WorkerContext) TaskID() int64 { return wc.task.id }
