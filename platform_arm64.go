//go:build arm64

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import "golang.org/x/sys/cpu"

func detectSIMD() SIMDLevel {
	switch {
	case cpu.ARM64.HasSVE:
		return SIMDSVE
	case cpu.ARM64.HasASIMD:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// YIELD is a hint instruction on ARM64, implemented in
// platform_pause_arm64.s.
func arm64Yield()

func spinPauseOnce() { arm64Yield() }
