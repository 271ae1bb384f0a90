// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"runtime"
	"sync/atomic"
	"time"
)

// SIMDLevel enumerates the widest SIMD dialect the platform layer detected
// on this CPU.
type SIMDLevel int

const (
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX
	SIMDAVX2
	SIMDAVX512
	SIMDNEON
	SIMDSVE
)

func (l SIMDLevel) String() string {
	switch l {
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX512"
	case SIMDNEON:
		return "NEON"
	case SIMDSVE:
		return "SVE"
	default:
		return "NONE"
	}
}

// Detected is filled in by the architecture-specific platform_*.go file at
// package init and never mutated afterward.
var Detected = struct {
	SIMD SIMDLevel
	Arch string
	OS   string
}{
	SIMD: detectSIMD(),
	Arch: runtime.GOARCH,
	OS:   runtime.GOOS,
}

// NumCPU returns the number of logical CPUs usable by the current process,
// the basis for the async runtime's default worker count.
func NumCPU() int { return runtime.NumCPU() }

// MonotonicNano returns a monotonic timestamp in nanoseconds from an
// arbitrary fixed epoch, never running backward. Go's runtime clock is
// already monotonic; time.Time carries a monotonic reading internally that
// time.Since reads from, so this builds on it instead of re-deriving one
// from a platform syscall.
var processEpoch = time.Now()

func MonotonicNano() int64 {
	return int64(time.Since(processEpoch))
}

// WallMillis returns the wall-clock time in milliseconds since the Unix
// epoch.
func WallMillis() int64 {
	return time.Now().UnixMilli()
}

// SpinPause executes one platform spin-wait hint. Architecture-specific
// files implement spinPauseOnce with a PAUSE/YIELD instruction in assembly,
// with no feature detection; SpinPause itself also yields the goroutine
// back to the scheduler every 256 calls so a spin loop can't starve other
// goroutines on GOMAXPROCS=1.
var spinPauseCounter atomic.Uint32

func SpinPause() {
	spinPauseOnce()
	if spinPauseCounter.Add(1)&0xFF == 0 {
		runtime.Gosched()
	}
}

// PrefetchHint describes the intended access pattern for Prefetch,
// mirroring a read/write x locality hint pair.
type PrefetchHint struct {
	Write    bool
	Locality int // 0 (no temporal locality) .. 3 (high temporal locality)
}

// Prefetch issues a best-effort prefetch hint for the memory at ptr. On
// platforms or builds without an asm prefetch stub this is a no-op: a
// missed prefetch hint changes performance, never correctness, which is
// the contract promises ("best-effort").
func Prefetch(ptr uintptr, hint PrefetchHint) {
	prefetchImpl(ptr, hint)
}
