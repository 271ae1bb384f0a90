// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package rt

import (
	"sync"

	"golang.org/x/sys/unix"
)

// epollLoop is the default Linux EventLoop, built on the simpler,
// broadly-available golang.org/x/sys/unix epoll_* syscalls rather than
// io_uring, since the EventLoop contract only needs readiness
// notification, not a submission-queue protocol.
type epollLoop struct {
	epfd int

	mu      sync.Mutex
	waiting map[int]*Task

	wakeupR int
	wakeupW int
}

func newEventLoop() EventLoop {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		Panic("rt: epollLoop: EpollCreate1: %v", err)
	}
	r, w, err := pipe2CloExec()
	if err != nil {
		Panic("rt: epollLoop: pipe2: %v", err)
	}
	l := &epollLoop{epfd: epfd, waiting: make(map[int]*Task), wakeupR: r, wakeupW: w}
	if err := unix.EpollCtl(l.epfd, unix.EPOLL_CTL_ADD, r, &unix.EpollEvent{
		Events: unix.EPOLLIN,
		Fd:     int32(r),
	}); err != nil {
		Panic("rt: epollLoop: EpollCtl(wakeup): %v", err)
	}
	return l
}

func pipe2CloExec() (r, w int, err error) {
	var fds [2]int
	if err := unix.Pipe2(fds[:], unix.O_CLOEXEC|unix.O_NONBLOCK); err != nil {
		return 0, 0, err
	}
	return fds[0], fds[1], nil
}

func (l *epollLoop) Register(fd int, t *Task) {
	l.mu.Lock()
	l.waiting[fd] = t
	l.mu.Unlock()
	ev := &unix.EpollEvent{
		Events: unix.EPOLLIN | unix.EPOLLOUT | unix.EPOLLONESHOT,
		Fd:     int32(fd),
	}
	if err := unix.EpollCtl(l.epfd, unix.EPOLL_CTL_ADD, fd, ev); err == unix.EEXIST {
		_ = unix.EpollCtl(l.epfd, unix.EPOLL_CTL_MOD, fd, ev)
	}
}

func (l *epollLoop) Cancel(fd int) {
	l.mu.Lock()
	delete(l.waiting, fd)
	l.mu.Unlock()
	_ = unix.EpollCtl(l.epfd, unix.EPOLL_CTL_DEL, fd, nil)
}

func (l *epollLoop) Tick() []*Task {
	var events [64]unix.EpollEvent
	n, err := unix.EpollWait(l.epfd, events[:], eventLoopPollMillis)
	if err != nil || n <= 0 {
		return nil
	}
	ready := make([]*Task, 0, n)
	l.mu.Lock()
	for i := 0; i < n; i++ {
		fd := int(events[i].Fd)
		if fd == l.wakeupR {
			var buf [64]byte
			for {
				if _, err := unix.Read(l.wakeupR, buf[:]); err != nil {
					break
				}
			}
			continue
		}
		if t, ok := l.waiting[fd]; ok {
			ready = append(ready, t)
			delete(l.waiting, fd)
		}
	}
	l.mu.Unlock()
	return ready
}

func (l *epollLoop) Wakeup() {
	_, _ = unix.Write(l.wakeupW, []byte{0})
}
