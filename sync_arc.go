// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"math"
	"sync/atomic"
)

// rcSaturationLimit bounds a single-goroutine Rc's strong count; Clone
// panics rather than let the count wrap.
const rcSaturationLimit = math.MaxInt / 2

// Rc is a single-goroutine, non-atomic reference-counted cell. Its counts
// are plain ints, so sharing an Rc across goroutines without external
// synchronization is a misuse the type does not guard against. The strong
// count's last drop releases the implicit weak reference every strong
// handle collectively holds; once weak also reaches zero the value is
// unreachable through any remaining Weak handle.
type Rc[T any] struct {
	box *rcBox[T]
}

type rcBox[T any] struct {
	value  T
	strong int
	weak   int
}

// NewRc wraps value in a new reference-counted cell with strong count 1
// and the one implicit weak reference the strong count holds.
func NewRc[T any](value T) Rc[T] {
	return Rc[T]{box: &rcBox[T]{value: value, strong: 1, weak: 1}}
}

// Clone increments the strong count and returns a new handle sharing the
// same underlying value. Panics if the count would saturate.
func (r Rc[T]) Clone() Rc[T] {
	if r.box.strong >= rcSaturationLimit {
		Panic("rt: Rc strong count saturated")
	}
	r.box.strong++
	return r
}

// Get returns the shared value.
func (r Rc[T]) Get() T { return r.box.value }

// Set replaces the shared value, visible to every clone.
func (r Rc[T]) Set(value T) { r.box.value = value }

// GetMut returns a mutable pointer to the shared value and true, but only
// when this handle is the sole strong owner (strong count == 1); otherwise
// it returns (nil, false), since any other live handle could observe a
// concurrent mutation through this pointer.
func (r Rc[T]) GetMut() (*T, bool) {
	if r.box.strong != 1 {
		return nil, false
	}
	return &r.box.value, true
}

// Drop decrements the strong count, returning true if this was the last
// live strong handle. On that transition the implicit weak reference held
// by the strong-count group is released too.
func (r Rc[T]) Drop() bool {
	r.box.strong--
	if r.box.strong == 0 {
		r.box.weak--
		return true
	}
	return false
}

// RefCount returns the current strong count.
func (r Rc[T]) RefCount() int { return r.box.strong }

// Downgrade returns a non-owning Weak handle to the same value, without
// affecting the strong count.
func (r Rc[T]) Downgrade() RcWeak[T] {
	r.box.weak++
	return RcWeak[T]{box: r.box}
}

// RcWeak is a non-owning handle that does not keep its value's strong
// count alive; Upgrade must be called to get a usable Rc back.
type RcWeak[T any] struct {
	box *rcBox[T]
}

// Upgrade returns a new strong handle if the value still has at least one
// live strong owner, or (_, false) if every strong handle has already
// dropped.
func (w RcWeak[T]) Upgrade() (Rc[T], bool) {
	if w.box.strong == 0 {
		var zero Rc[T]
		return zero, false
	}
	w.box.strong++
	return Rc[T]{box: w.box}, true
}

// Drop releases this weak handle's hold on the weak count.
func (w RcWeak[T]) Drop() { w.box.weak-- }

// arcSaturationLimit bounds Arc's atomic strong count the same way
// rcSaturationLimit bounds Rc's.
const arcSaturationLimit = math.MaxInt64 / 2

// Arc is Rc's atomically reference-counted counterpart, safe to Clone and
// Drop concurrently from multiple goroutines; the counts are atomic.Int64
// values updated with Add.
// Reads/writes of the guarded value itself are not synchronized by Arc —
// pair it with a Mutex[T]/RwLock[T] when the value is mutated concurrently.
type Arc[T any] struct {
	box *arcBox[T]
}

type arcBox[T any] struct {
	value  T
	strong atomic.Int64
	weak   atomic.Int64
}

// NewArc wraps value in a new atomically reference-counted cell with
// strong count 1 and the one implicit weak reference the strong count
// holds.
func NewArc[T any](value T) Arc[T] {
	box := &arcBox[T]{value: value}
	box.strong.Store(1)
	box.weak.Store(1)
	return Arc[T]{box: box}
}

// Clone atomically increments the strong count and returns a new handle
// sharing the same underlying value. Panics if the count would saturate.
func (a Arc[T]) Clone() Arc[T] {
	if a.box.strong.Add(1) > arcSaturationLimit {
		Panic("rt: Arc strong count saturated")
	}
	return a
}

// Get returns the shared value.
func (a Arc[T]) Get() T { return a.box.value }

// GetMut returns a mutable pointer to the shared value and true, but only
// when this handle is the sole strong owner (strong count == 1); otherwise
// it returns (nil, false).
func (a Arc[T]) GetMut() (*T, bool) {
	if a.box.strong.Load() != 1 {
		return nil, false
	}
	return &a.box.value, true
}

// Drop atomically decrements the strong count, returning true if this was
// the last live strong handle. On that transition the implicit weak
// reference held by the strong-count group is released too.
func (a Arc[T]) Drop() bool {
	if a.box.strong.Add(-1) == 0 {
		FenceAcquire()
		a.box.weak.Add(-1)
		return true
	}
	return false
}

// RefCount returns the current strong count.
func (a Arc[T]) RefCount() int64 { return a.box.strong.Load() }

// Downgrade returns a non-owning Weak handle to the same value, without
// affecting the strong count.
func (a Arc[T]) Downgrade() Weak[T] {
	a.box.weak.Add(1)
	return Weak[T]{box: a.box}
}

// Weak is a non-owning handle that does not keep its value's strong count
// alive; Upgrade must be called to get a usable Arc back. Upgrade uses a
// CAS loop rather than a plain load-then-add, since a concurrent Drop
// could take the strong count to zero between the load and the increment.
type Weak[T any] struct {
	box *arcBox[T]
}

// Upgrade returns a new strong handle if the value still has at least one
// live strong owner, or (_, false) if every strong handle has already
// dropped.
func (w Weak[T]) Upgrade() (Arc[T], bool) {
	for {
		cur := w.box.strong.Load()
		if cur == 0 {
			var zero Arc[T]
			return zero, false
		}
		if w.box.strong.CompareAndSwap(cur, cur+1) {
			return Arc[T]{box: w.box}, true
		}
	}
}

// Drop releases this weak handle's hold on the weak count.
func (w Weak[T]) Drop() { w.box.weak.Add(-1) }
