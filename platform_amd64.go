//go:build amd64

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import "golang.org/x/sys/cpu"

// detectSIMD reports the widest amd64 SIMD dialect available, grounded
// on simsys_amd64.go's hasAVX2 helper and generalized to the full
// SIMDLevel enum.
func detectSIMD() SIMDLevel {
	switch {
	case cpu.X86.HasAVX512F:
		return SIMDAVX512
	case cpu.X86.HasAVX2:
		return SIMDAVX2
	case cpu.X86.HasAVX:
		return SIMDAVX
	case cpu.X86.HasSSE2:
		return SIMDSSE2
	default:
		return SIMDNone
	}
}

// amd64Pause executes the PAUSE instruction; implemented in
// platform_pause_amd64.s.
func amd64Pause()

func spinPauseOnce() { amd64Pause() }
