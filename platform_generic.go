//go:build !amd64 && !arm64

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import "runtime"

func detectSIMD() SIMDLevel { return SIMDNone }

// spinPauseOnce has no native spin hint on this architecture; a Gosched
// is the closest Go equivalent to a compiler barrier here.
func spinPauseOnce() { runtime.Gosched() }

func prefetchImpl(ptr uintptr, hint PrefetchHint) {}
