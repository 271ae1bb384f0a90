// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import "sync/atomic"

// FenceAcquire, FenceRelease and FenceSeqCst are documented no-ops: Go's
// memory model already gives sync/atomic operations acquire/release
// semantics (https://go.dev/ref/mem), so a free-standing fence instruction
// has no additional effect a correct caller can observe. They are kept as
// named calls so call sites that conceptually need a standalone fence
// still read that way; Arc's drop path (sync_arc.go) calls FenceAcquire
// at the point a weaker memory model would require one, even though on
// Go's model the preceding atomic Add already supplies it.
func FenceAcquire() { atomic.LoadUint32(&fenceSink) }
func FenceRelease() { atomic.AddUint32(&fenceSink, 0) }
func FenceSeqCst()  { atomic.AddUint32(&fenceSink, 0) }

var fenceSink uint32
