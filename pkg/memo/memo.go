// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package memo provides memoizing caches over pure unary functions.
//
// A Memoizer owns a calculation and a map of previously computed results.
// The first Value call for a key invokes the calculation and stores the
// result; every later call for the same key returns the stored result
// without invoking the calculation again.
//
// Memoizer is not safe for concurrent use. Synced wraps the same contract
// behind a lock for callers that share one cache between goroutines.
package memo

import "time"

// Calculator computes the value for a key.
type Calculator[K comparable, V any] interface {
	Calculate(key K) V
}

// Func adapts an ordinary function to the Calculator interface.
type Func[K comparable, V any] func(K) V

// Calculate calls f(key).
func (f Func[K, V]) Calculate(key K) V {
	return f(key)
}

// Memoizer caches the results of a Calculator by input key.
// It is not safe for concurrent use; callers must synchronize externally
// or use Synced.
type Memoizer[K comparable, V any] struct {
	calc     Calculator[K, V]
	entries  map[K]V
	observer Observer
	capacity int
	hits     int64
	misses   int64
}

// New creates an empty memoizer around calc.
func New[K comparable, V any](calc Calculator[K, V], opts ...Option) *Memoizer[K, V] {
	if calc == nil {
		panic("memo: nil calculator")
	}
	o := buildOptions(opts)
	return &Memoizer[K, V]{
		calc:     calc,
		entries:  make(map[K]V, o.capacity),
		observer: o.observer,
		capacity: o.capacity,
	}
}

// NewFunc creates an empty memoizer around fn.
func NewFunc[K comparable, V any](fn func(K) V, opts ...Option) *Memoizer[K, V] {
	if fn == nil {
		panic("memo: nil function")
	}
	return New[K, V](Func[K, V](fn), opts...)
}

// Value returns the cached result for key, calculating and storing it on
// the first call. A panic raised by the calculation propagates unchanged and
// leaves no entry behind.
func (m *Memoizer[K, V]) Value(key K) V {
	if v, ok := m.entries[key]; ok {
		m.hits++
		m.observer.Hit()
		return v
	}

	m.misses++
	m.observer.Miss()

	start := time.Now()
	v := m.calc.Calculate(key)
	m.observer.Calculated(time.Since(start))

	m.entries[key] = v
	return v
}

// Peek returns the cached result for key without calculating it.
func (m *Memoizer[K, V]) Peek(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Len returns the number of cached entries.
func (m *Memoizer[K, V]) Len() int {
	return len(m.entries)
}

// Stats returns a snapshot of the cache counters.
func (m *Memoizer[K, V]) Stats() Stats {
	return Stats{
		Len:    len(m.entries),
		Hits:   m.hits,
		Misses: m.misses,
	}
}

// Reset drops every cached entry and zeroes the counters.
func (m *Memoizer[K, V]) Reset() {
	m.entries = make(map[K]V, m.capacity)
	m.hits = 0
	m.misses = 0
}
