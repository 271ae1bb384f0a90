// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testharness

import (
	"math"
	"runtime"
	"sort"
	"time"

	"github.com/corelang/rt"
)

// BenchConfig controls a calibrated, repeated benchmark run.
type BenchConfig struct {
	Name string
	Fn   func(n int) // run the benchmarked operation n times

	Iters         int           // fixed iteration count per repeat; 0 triggers calibration
	Target        time.Duration // total time the calibrator aims to spend measuring per repeat
	WarmupIters   int           // iterations to discard before measuring, if > 0
	WarmupTime    time.Duration // alternative to WarmupIters: warm up until this much time has elapsed
	PinCPU        bool          // best-effort pin the calling OS thread to CPU 0 for the run
	Repeats       int           // number of measured samples; defaults to 1
	AutoCalibrate bool          // calibrate Iters from Target when Iters == 0
	BytesPerOp    int64         // enables MB/s reporting when > 0
}

// BenchResult reports a benchmark's outcome across its repeated samples.
type BenchResult struct {
	Name        string
	Iterations  int // iterations run per repeat
	Repeats     int
	NsPerOp     float64 // mean ns/op across repeats
	CyclesPerOp float64 // 0 if no cycle counter is available on this platform
	MBPerSec    float64 // 0 if BytesPerOp was unset

	Min, Median, Mean, StdDev, P90, P95, P99 float64 // ns/op distribution across repeats
}

// RunBenchmark calibrates the iteration count when cfg.Iters == 0 and
// cfg.AutoCalibrate is set (doubling n from 1 until one run takes at least
// Target/8, then scaling n to land near Target), warms up, then runs
// cfg.Repeats measured samples and reports the ns/op distribution across
// them plus cycles/op and MB/s when available.
func RunBenchmark(cfg BenchConfig) BenchResult {
	if cfg.Target <= 0 {
		cfg.Target = time.Second
	}
	if cfg.Repeats <= 0 {
		cfg.Repeats = 1
	}

	if cfg.PinCPU {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		_ = rt.PinCurrentThread(0)
	}

	n := cfg.Iters
	if n <= 0 {
		if cfg.AutoCalibrate {
			n = calibrate(cfg.Fn, cfg.Target)
		} else {
			n = 1
		}
	}

	warmUp(cfg, n)

	nsSamples := make([]float64, cfg.Repeats)
	var cycleSamples []float64
	for i := 0; i < cfg.Repeats; i++ {
		c0, hasCycles := rt.ReadCycleCounter()
		start := time.Now()
		cfg.Fn(n)
		elapsed := time.Since(start)
		if hasCycles {
			c1, _ := rt.ReadCycleCounter()
			cycleSamples = append(cycleSamples, float64(c1-c0)/float64(n))
		}
		nsSamples[i] = float64(elapsed.Nanoseconds()) / float64(n)
	}

	s := summarize(nsSamples)
	result := BenchResult{
		Name:       cfg.Name,
		Iterations: n,
		Repeats:    cfg.Repeats,
		NsPerOp:    s.mean,
		Min:        s.min,
		Median:     s.median,
		Mean:       s.mean,
		StdDev:     s.stddev,
		P90:        s.p90,
		P95:        s.p95,
		P99:        s.p99,
	}
	if len(cycleSamples) > 0 {
		result.CyclesPerOp = mean(cycleSamples)
	}
	if cfg.BytesPerOp > 0 && s.median > 0 {
		secondsPerOp := s.median / 1e9
		result.MBPerSec = (float64(cfg.BytesPerOp) / secondsPerOp) / (1 << 20)
	}
	return result
}

func calibrate(fn func(n int), target time.Duration) int {
	threshold := target / 8
	n := 1
	var elapsed time.Duration
	for {
		elapsed = timeCall(fn, n)
		if elapsed >= threshold || n > 1<<30 {
			break
		}
		n *= 2
	}
	if elapsed > 0 {
		scaled := int(float64(n) * (float64(target) / float64(elapsed)))
		if scaled > n {
			n = scaled
		}
	}
	return n
}

func warmUp(cfg BenchConfig, n int) {
	switch {
	case cfg.WarmupIters > 0:
		cfg.Fn(cfg.WarmupIters)
	case cfg.WarmupTime > 0:
		deadline := time.Now().Add(cfg.WarmupTime)
		for time.Now().Before(deadline) {
			cfg.Fn(n)
		}
	}
}

func timeCall(fn func(n int), n int) time.Duration {
	start := time.Now()
	fn(n)
	return time.Since(start)
}

type sampleStats struct {
	min, median, mean, stddev, p90, p95, p99 float64
}

// summarize computes min/median/mean/stddev/p90/p95/p99 over samples
// without mutating the caller's slice.
func summarize(samples []float64) sampleStats {
	if len(samples) == 0 {
		return sampleStats{}
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	m := mean(sorted)
	var sumSq float64
	for _, v := range sorted {
		d := v - m
		sumSq += d * d
	}
	stddev := math.Sqrt(sumSq / float64(len(sorted)))

	return sampleStats{
		min:    sorted[0],
		median: percentile(sorted, 50),
		mean:   m,
		stddev: stddev,
		p90:    percentile(sorted, 90),
		p95:    percentile(sorted, 95),
		p99:    percentile(sorted, 99),
	}
}

func mean(samples []float64) float64 {
	var sum float64
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}

// percentile returns the p-th percentile (0-100) of a sorted slice using
// linear interpolation between the two closest ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
