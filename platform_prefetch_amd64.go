//go:build amd64

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

// prefetchAMD64 issues PREFETCHT0/PREFETCHNTA depending on locality;
// implemented in platform_prefetch_amd64.s.
func prefetchAMD64(ptr uintptr, locality int)

func prefetchImpl(ptr uintptr, hint PrefetchHint) {
	locality := hint.Locality
	if locality < 0 {
		locality = 0
	}
	if locality > 3 {
		locality = 3
	}
	prefetchAMD64(ptr, locality)
}
