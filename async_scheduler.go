// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
)

// globalQueueCapacity bounds the Scheduler's shared overflow FIFO: the
// buffered channel is sized to a fixed ceiling on in-flight work rather
// than left unbounded.
const globalQueueCapacity = 4096

// Scheduler owns N Workers, each with its own taskDeque, feeding from a
// shared global FIFO whenever a Worker's local deque is empty.
// New work always enters through the global FIFO; Workers redistribute it
// into their own deques and steal from each other from there, which keeps
// Spawn itself simple and callable from any goroutine, not just a Worker.
type Scheduler struct {
	workers []*Worker
	global  chan *Task
	nextID  atomic.Int64
	loop    EventLoop
	timers  *timerWheel

	wg      sync.WaitGroup
	closing atomic.Bool
}

// NewScheduler starts a Scheduler with numWorkers goroutines. Pass 0 to
// use NumCPU.
func NewScheduler(numWorkers int) *Scheduler {
	if numWorkers <= 0 {
		numWorkers = NumCPU()
	}
	s := &Scheduler{
		global: make(chan *Task, globalQueueCapacity),
		loop:   newEventLoop(),
		timers: newTimerWheel(),
	}
	s.workers = make([]*Worker, numWorkers)
	for i := range s.workers {
		s.workers[i] = &Worker{sched: s, id: i, deque: newTaskDeque(256)}
	}
	s.wg.Add(numWorkers + 1)
	for _, w := range s.workers {
		go w.run()
	}
	go s.driveTimersAndIO()
	return s
}

// Spawn schedules resumeFn as a new Task on the global FIFO.
func (s *Scheduler) Spawn(resumeFn resumeFunc) *Task {
	t := NewTask(s.nextID.Add(1), resumeFn)
	s.enqueueGlobal(t)
	return t
}

func (s *Scheduler) enqueueGlobal(t *Task) {
	select {
	case s.global <- t:
	default:
		Panic("rt: Scheduler: global queue full (capacity %d)", globalQueueCapacity)
	}
}

// Close stops all Workers once their current task steps complete. It does
// not wait for queued-but-not-started tasks to run.
func (s *Scheduler) Close() {
	s.closing.Store(true)
	close(s.global)
	s.loop.Wakeup()
	s.wg.Wait()
}

// Worker runs Tasks from its own deque, falling back to the shared global
// FIFO, and then to stealing from a random peer's deque.
type Worker struct {
	sched *Scheduler
	id    int
	deque *taskDeque
}

func (w *Worker) run() {
	defer w.sched.wg.Done()
	ctx := &WorkerContext{}
	idle := 0
	for {
		t, ok := w.next()
		if !ok {
			if w.sched.closing.Load() {
				return
			}
			idle++
			if idle > 64 {
				SpinPause()
			}
			continue
		}
		idle = 0

		ctx.task = t
		status := t.resumeFn(ctx)
		t.status = status
		switch status {
		case TaskDone:
			// nothing further to schedule
		case TaskReady:
			w.requeue(t)
		case TaskYielded:
			w.parkYielded(t)
		}
	}
}

func (w *Worker) next() (*Task, bool) {
	if t, ok := w.deque.PopBottom(); ok {
		return t, true
	}
	select {
	case t, ok := <-w.sched.global:
		if ok {
			return t, true
		}
	default:
	}
	return w.stealFromPeer()
}

func (w *Worker) stealFromPeer() (*Task, bool) {
	n := len(w.sched.workers)
	if n <= 1 {
		return nil, false
	}
	start := rand.IntN(n)
	for i := 0; i < n; i++ {
		peer := w.sched.workers[(start+i)%n]
		if peer == w {
			continue
		}
		if t, ok := peer.deque.Steal(); ok {
			return t, true
		}
	}
	return nil, false
}

func (w *Worker) requeue(t *Task) {
	if w.deque.PushBottom(t) {
		return
	}
	w.sched.enqueueGlobal(t)
}

func (w *Worker) parkYielded(t *Task) {
	switch t.suspension.kind {
	case suspendIO:
		w.sched.loop.Register(t.suspension.fd, t)
	case suspendAfter:
		w.sched.timers.schedule(t.suspension.deadline, t)
	default:
		w.requeue(t)
	}
}

// driveTimersAndIO runs the EventLoop tick and timer-wheel expiry on a
// dedicated goroutine, requeuing any Task whose wait condition is
// satisfied back onto the global FIFO.
func (s *Scheduler) driveTimersAndIO() {
	defer s.wg.Done()
	for !s.closing.Load() {
		ready := s.loop.Tick()
		for _, t := range ready {
			s.redispatch(t)
		}
		for _, t := range s.timers.expired(WallMillis()) {
			s.redispatch(t)
		}
	}
}

func (s *Scheduler) redispatch(t *Task) {
	t.status = TaskReady
	s.enqueueGlobal(t)
}
