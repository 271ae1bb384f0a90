// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testharness

import "fmt"

// panicToErr converts a recovered panic value into an error so a Case
// that panics is reported as a failed Result rather than crashing the
// whole Runner.
func panicToErr(rec any) error {
	if err, ok := rec.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", rec)
}
