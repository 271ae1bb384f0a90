//go:build amd64

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

// rdtscAMD64 reads the timestamp counter; implemented in
// platform_rdtsc_amd64.s.
func rdtscAMD64() uint64

// ReadCycleCounter returns the CPU's timestamp counter and true if a
// cycle counter is available on this platform.
func ReadCycleCounter() (uint64, bool) { return rdtscAMD64(), true }
