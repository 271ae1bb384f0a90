// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"sync"
	"sync/atomic"
)

// taskDeque is a Chase-Lev work-stealing deque specialized to *Task: the
// owning Worker pushes/pops its own end (LIFO, lock-free), and peer
// Workers steal from the opposite end (FIFO, mutex-guarded) when their
// own deque runs dry.
type taskDeque struct {
	tasks  []*Task
	bottom atomic.Int64 // owner's end
	top    atomic.Int64 // thieves' end
	mu     sync.Mutex
}

func newTaskDeque(capacity int) *taskDeque {
	return &taskDeque{tasks: make([]*Task, capacity)}
}

// PushBottom adds a task at the owner's end. Reports false if the deque
// is full (the caller should fall back to the scheduler's global queue).
func (d *taskDeque) PushBottom(t *Task) bool {
	b := d.bottom.Load()
	top := d.top.Load()
	if b-top >= int64(len(d.tasks)) {
		return false
	}
	d.tasks[b%int64(len(d.tasks))] = t
	d.bottom.Store(b + 1)
	return true
}

// PopBottom removes a task from the owner's end. Only the owning Worker
// calls this.
func (d *taskDeque) PopBottom() (*Task, bool) {
	b := d.bottom.Load() - 1
	d.bottom.Store(b)
	top := d.top.Load()

	if top > b {
		d.bottom.Store(top)
		return nil, false
	}
	t := d.tasks[b%int64(len(d.tasks))]
	if top == b {
		if !d.top.CompareAndSwap(top, top+1) {
			d.bottom.Store(b + 1)
			return nil, false
		}
		d.bottom.Store(b + 1)
	}
	return t, true
}

// Steal takes a task from the thief end. Any Worker but the owner calls
// this.
func (d *taskDeque) Steal() (*Task, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	top := d.top.Load()
	b := d.bottom.Load()
	if top >= b {
		return nil, false
	}
	t := d.tasks[top%int64(len(d.tasks))]
	if !d.top.CompareAndSwap(top, top+1) {
		return nil, false
	}
	return t, true
}

func (d *taskDeque) Len() int {
	size := d.bottom.Load() - d.top.Load()
	if size < 0 {
		return 0
	}
	return int(size)
}
