//go:build linux

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"golang.org/x/sys/unix"
)

// PinCurrentThread requests that the calling OS thread run only on cpu.
// Best-effort: this is a POSIX affinity request, a no-op
// elsewhere. The caller must have called runtime.LockOSThread first, or
// the Go scheduler may move the goroutine to an unpinned thread on its
// next reschedule.
func PinCurrentThread(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	return unix.SchedSetaffinity(0, &set)
}
