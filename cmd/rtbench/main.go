// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/corelang/rt"
	"github.com/corelang/rt/testharness"
)

func main() {
	target := flag.Duration("target", time.Second, "approximate time to spend measuring each benchmark")
	repeats := flag.Int("repeats", 5, "number of measured samples per benchmark")
	flag.Parse()

	results := []testharness.BenchResult{
		testharness.RunBenchmark(testharness.BenchConfig{Name: "swisstable_v1_insert", Target: *target, Repeats: *repeats, AutoCalibrate: true, BytesPerOp: 16, Fn: benchInsert(rt.BackendV1)}),
		testharness.RunBenchmark(testharness.BenchConfig{Name: "swisstable_v2_insert", Target: *target, Repeats: *repeats, AutoCalibrate: true, BytesPerOp: 16, Fn: benchInsert(rt.BackendV2)}),
		testharness.RunBenchmark(testharness.BenchConfig{Name: "swisstable_v3_insert", Target: *target, Repeats: *repeats, AutoCalibrate: true, BytesPerOp: 16, Fn: benchInsert(rt.BackendV3)}),
		testharness.RunBenchmark(testharness.BenchConfig{Name: "allocator_allocate", Target: *target, Repeats: *repeats, AutoCalibrate: true, BytesPerOp: 64, Fn: benchAllocate}),
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(os.Stdout, "%-28s %12d iters  %10.1f ns/op  %8.1f MB/s  p99=%.1fns\n",
			r.Name, r.Iterations, r.NsPerOp, r.MBPerSec, r.P99); err != nil {
			log.Fatalf("rtbench: write result: %v", err)
		}
	}
}

func benchInsert(backend rt.Backend) func(n int) {
	return func(n int) {
		table := rt.NewSwissTable[int, int](rt.WithBackend[int](backend), rt.WithTableHasher[int](rt.IntHasher))
		for i := 0; i < n; i++ {
			table.Insert(i, i)
		}
	}
}

func benchAllocate(n int) {
	alloc := rt.NewAllocator()
	for i := 0; i < n; i++ {
		b := alloc.Allocate(64)
		alloc.Free(b)
	}
}
