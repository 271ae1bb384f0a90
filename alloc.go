// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// Config holds the Allocator's compile-time switches, re-expressed as
// constructor options resolved once at Allocator construction rather than
// build tags, because none of them change a public type's shape (only the
// SwissTable backend selector does that, and it is its own per-table
// TableOption in swisstable.go). Only AllocTracking and AllocStats are
// read; AllocThreadSafe, RDTSCEnabled and StrtodFallback are stored but
// nothing consults them, so WithoutThreadSafety has no effect.
type Config struct {
	AllocTracking   bool // ALLOC_TRACKING
	AllocStats      bool // ALLOC_STATS
	AllocThreadSafe bool // ALLOC_THREAD_SAFE, default true
	RDTSCEnabled    bool // RDTSC_ENABLED, default true
	StrtodFallback  bool // STRTOD_FALLBACK, default true
}

// DefaultConfig returns the Allocator's default configuration.
func DefaultConfig() Config {
	return Config{
		AllocTracking:   false,
		AllocStats:      false,
		AllocThreadSafe: true,
		RDTSCEnabled:    true,
		StrtodFallback:  true,
	}
}

// ConfigOption mutates a Config; used by NewAllocator and the benchmark
// harness's Config builders.
type ConfigOption func(*Config)

func WithAllocTracking() ConfigOption { return func(c *Config) { c.AllocTracking = true } }
func WithAllocStats() ConfigOption    { return func(c *Config) { c.AllocStats = true } }
func WithoutThreadSafety() ConfigOption {
	return func(c *Config) { c.AllocThreadSafe = false }
}

// AllocStats are the atomic counters exposed when Config.AllocStats is set.
type AllocStats struct {
	ArenaAllocs    atomic.Int64
	FreelistAllocs atomic.Int64
	SystemAllocs   atomic.Int64
	Frees          atomic.Int64
	BytesAllocated atomic.Int64
}

// trackedMeta is the tracking-header equivalent, recording the size class
// only. Rather
// than splicing a C-style header in front of the returned bytes (not
// expressible safely over a Go slice), it is kept in a side table keyed by
// the backing array's address, consulted only on Free: header present iff
// tracking is on; otherwise free has no way to identify the originating
// size class and must defer to the GC to reclaim it.
type trackedMeta struct {
	class int // index into sizeClasses, or -1 if this came from the arena/system tier
}

// Allocator is the tiered allocator: a per-goroutine size-class
// free-list over a per-goroutine bump arena over a system fallback.
type Allocator struct {
	cfg       Config
	classPool *sizeClassPool
	arenas    *arenaPool
	mu        sync.Mutex // not used by any method
	stats     AllocStats
	tracking  sync.Map // uintptr(backing array addr) -> trackedMeta
}

// NewAllocator constructs an Allocator with DefaultConfig modified by opts.
func NewAllocator(opts ...ConfigOption) *Allocator {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Allocator{
		cfg:       cfg,
		classPool: newSizeClassPool(),
		arenas:    newArenaPool(),
	}
}

// Stats returns a snapshot of the allocator's stats counters. Only
// meaningful when the allocator was constructed WithAllocStats.
func (a *Allocator) Stats() AllocStats {
	var s AllocStats
	s.ArenaAllocs.Store(a.stats.ArenaAllocs.Load())
	s.FreelistAllocs.Store(a.stats.FreelistAllocs.Load())
	s.SystemAllocs.Store(a.stats.SystemAllocs.Load())
	s.Frees.Store(a.stats.Frees.Load())
	s.BytesAllocated.Store(a.stats.BytesAllocated.Load())
	return s
}

func (a *Allocator) countBytes(n int) {
	if a.cfg.AllocStats {
		a.stats.BytesAllocated.Add(int64(n))
	}
}

func addrOf(buf []byte) uintptr {
	if len(buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&buf[0]))
}

// Allocate returns a buffer of exactly size bytes using the tiered
// strategy: sizes up to the largest size class (2048 bytes) come from the
// size-class free-list, which mints a fresh buffer when it is empty, and
// larger sizes from the system (Go heap) fallback. The bump-arena branch
// only accepts sizes <= arenaMaxAlloc (256), which the size classes
// already cover, so Allocate never reaches it. Any
// request that cannot be satisfied (size < 0, or a Go allocation failure)
// escalates to Panic.
func (a *Allocator) Allocate(size int) []byte {
	if size < 0 {
		Panic("rt: Allocate: negative size %d", size)
	}
	if size == 0 {
		return nil
	}

	idx := classIndexFor(size)
	if idx >= 0 {
		buf := a.classPool.get(idx)[:size]
		if a.cfg.AllocStats {
			a.stats.FreelistAllocs.Add(1)
		}
		if a.cfg.AllocTracking {
			a.tracking.Store(addrOf(buf), trackedMeta{class: idx})
		}
		a.countBytes(size)
		return buf
	}

	if size <= arenaMaxAlloc {
		var out []byte
		a.arenas.withArena(size, func(buf []byte) { out = buf })
		if a.cfg.AllocStats {
			a.stats.ArenaAllocs.Add(1)
		}
		a.countBytes(size)
		return out
	}

	buf := make([]byte, size)
	if a.cfg.AllocStats {
		a.stats.SystemAllocs.Add(1)
	}
	if a.cfg.AllocTracking {
		a.tracking.Store(addrOf(buf), trackedMeta{class: -1})
	}
	a.countBytes(size)
	return buf
}

// AllocateZeroed is Allocate(nmemb*size) with the product overflow-checked
// and a Panic on overflow.
func (a *Allocator) AllocateZeroed(nmemb, size int) []byte {
	if nmemb < 0 || size < 0 {
		Panic("rt: AllocateZeroed: negative nmemb=%d size=%d", nmemb, size)
	}
	if nmemb == 0 || size == 0 {
		return nil
	}
	total := nmemb * size
	if total/nmemb != size {
		Panic("rt: AllocateZeroed: overflow computing %d*%d", nmemb, size)
	}
	// make() already zero-fills; Allocate's arena/free-list tiers reuse
	// buffers that may carry stale bytes, so zero explicitly there.
	buf := a.Allocate(total)
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// Reallocate behaves as Allocate + copy + Free when the size class changes,
// or returns buf unchanged when the new size still fits the same class
// in-place.
func (a *Allocator) Reallocate(buf []byte, newSize int) []byte {
	if newSize <= 0 {
		a.Free(buf)
		return nil
	}
	oldIdx := classIndexFor(len(buf))
	newIdx := classIndexFor(newSize)
	if oldIdx >= 0 && oldIdx == newIdx {
		return buf[:newSize]
	}
	out := a.Allocate(newSize)
	copy(out, buf)
	a.Free(buf)
	return out
}

// Free returns buf to its originating free-list when tracking identified
// one. Otherwise it only counts the free (when AllocStats is set): without
// AllocTracking enabled, free always defers to the system allocator — on
// Go's garbage-collected heap, that means simply dropping the reference
// and letting the collector reclaim it. Free tolerates nil.
func (a *Allocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	if a.cfg.AllocStats {
		a.stats.Frees.Add(1)
	}
	if !a.cfg.AllocTracking {
		return
	}
	key := addrOf(buf)
	v, ok := a.tracking.LoadAndDelete(key)
	if !ok {
		return
	}
	meta := v.(trackedMeta)
	if meta.class >= 0 {
		a.classPool.put(meta.class, buf[:cap(buf)])
	}
	// class == -1 (arena or system tier): no free-list to return to;
	// arena memory is reclaimed only when the whole chunk is GC'd, and
	// system allocations are just dropped, matching "arena memory is
	// owned by its thread; cross-thread free is fatal" — we sidestep that
	// hazard entirely by never recycling arena bytes through Free.
}

// DuplicateString is the allocator's dedicated fast path for copying a
// short string via the current arena.
func (a *Allocator) DuplicateString(s string) string {
	return a.arenas.DuplicateString(s)
}
