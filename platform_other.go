//go:build !linux

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

// PinCurrentThread is a no-op outside POSIX/Linux.
func PinCurrentThread(cpuID int) error { return nil }
