// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import "sync"

// sizeClasses are the free-list buckets of the allocator's hot tier,
// grounded on SizedBytePool in pool_sized.go, which used the identical
// bucket-ladder idea for []byte reuse; here it is generalized into the
// allocator's tier 1.
var sizeClasses = [8]int{16, 32, 64, 128, 256, 512, 1024, 2048}

// classIndexFor returns the smallest size class that fits size, or -1 if
// size exceeds the largest class (2048 bytes), in which case the caller
// falls through to tier 3 (system fallback).
func classIndexFor(size int) int {
	for i, c := range sizeClasses {
		if size <= c {
			return i
		}
	}
	return -1
}

// sizeClassPool is the per-allocator free-list tier: one sync.Pool per
// size class. sync.Pool is documented as effectively per-P, which is the
// closest idiomatic stand-in Go offers for a per-thread cache, so
// pop/push still avoid a shared lock on the fast path.
type sizeClassPool struct {
	pools [8]*sync.Pool
}

func newSizeClassPool() *sizeClassPool {
	p := &sizeClassPool{}
	for i, size := range sizeClasses {
		size := size
		p.pools[i] = &sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		}
	}
	return p
}

// get returns a buffer from class idx, minting a fresh one through New when
// the pool is empty (the caller can't tell the difference, nor does it
// need to: both paths return a buffer of exactly sizeClasses[idx] bytes).
func (p *sizeClassPool) get(idx int) []byte {
	bp := p.pools[idx].Get().(*[]byte)
	buf := *bp
	return buf[:sizeClasses[idx]]
}

// put returns buf to class idx. Capacity must exactly equal the class size;
// callers are responsible for only returning buffers this pool issued.
func (p *sizeClassPool) put(idx int, buf []byte) {
	buf = buf[:sizeClasses[idx]]
	p.pools[idx].Put(&buf)
}
