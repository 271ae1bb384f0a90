//go:build !amd64

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

// ReadCycleCounter reports false on platforms with no portable
// timestamp-counter instruction wired up.
func ReadCycleCounter() (uint64, bool) { return 0, false }
