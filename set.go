// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

// Set is a SwissTable-backed set: the map minus the value slot. Built
// directly on SwissTable rather than duplicating its probe logic, using
// struct{} as the value type.
type Set[K comparable] struct {
	table *SwissTable[K, struct{}]
}

// NewSet constructs an empty set. Options are the same TableOption values
// accepted by NewSwissTable, letting callers pick a Backend or Hasher.
func NewSet[K comparable](opts ...TableOption[K]) *Set[K] {
	return &Set[K]{table: NewSwissTable[K, struct{}](opts...)}
}

// Insert adds key to the set, reporting whether it was newly added (false
// if it was already present).
func (s *Set[K]) Insert(key K) (added bool) {
	_, existed := s.table.Lookup(key)
	s.table.Insert(key, struct{}{})
	return !existed
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.table.Lookup(key)
	return ok
}

// Delete removes key, reporting whether it was present.
func (s *Set[K]) Delete(key K) bool { return s.table.Delete(key) }

func (s *Set[K]) Len() int      { return s.table.Len() }
func (s *Set[K]) IsEmpty() bool { return s.table.IsEmpty() }

// ForEach calls fn for every member. fn must not mutate the set.
func (s *Set[K]) ForEach(fn func(key K)) {
	s.table.ForEach(func(key K, _ struct{}) { fn(key) })
}

// Union inserts every member of other into s.
func (s *Set[K]) Union(other *Set[K]) {
	other.ForEach(func(key K) { s.Insert(key) })
}

// Intersect removes every member of s not present in other.
func (s *Set[K]) Intersect(other *Set[K]) {
	var toRemove []K
	s.ForEach(func(key K) {
		if !other.Contains(key) {
			toRemove = append(toRemove, key)
		}
	})
	for _, key := range toRemove {
		s.table.Delete(key)
	}
}
