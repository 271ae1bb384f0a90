//go:build arm64

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

// PRFM hint is emitted via the asm stub; locality is folded into a single
// PLDL1KEEP hint since ARM64's PRFM encodes locality directly in the
// instruction and we don't need the full cross product at this level.
func arm64Prefetch(ptr uintptr)

func prefetchImpl(ptr uintptr, _ PrefetchHint) {
	arm64Prefetch(ptr)
}
