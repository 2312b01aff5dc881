// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package memo

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Synced is a Memoizer that is safe for concurrent use.
//
// Concurrent misses on the same key share one calculation, so the
// calculation still runs at most once per distinct key.
type Synced[K comparable, V any] struct {
	mu       sync.RWMutex
	entries  map[K]V
	calc     Calculator[K, V]
	group    singleflight.Group
	flights  map[K]uint64
	nextID   uint64
	observer Observer
	capacity int
	hits     atomic.Int64
	misses   atomic.Int64
}

// calcPanic carries a calculation panic through singleflight so it can be
// re-raised with its original value.
type calcPanic struct {
	value any
}

func (p *calcPanic) Error() string {
	return fmt.Sprintf("memo: calculation panicked: %v", p.value)
}

// NewSynced creates an empty concurrency-safe memoizer around calc.
func NewSynced[K comparable, V any](calc Calculator[K, V], opts ...Option) *Synced[K, V] {
	if calc == nil {
		panic("memo: nil calculator")
	}
	o := buildOptions(opts)
	return &Synced[K, V]{
		entries:  make(map[K]V, o.capacity),
		flights:  make(map[K]uint64),
		calc:     calc,
		observer: o.observer,
		capacity: o.capacity,
	}
}

// NewSyncedFunc creates an empty concurrency-safe memoizer around fn.
func NewSyncedFunc[K comparable, V any](fn func(K) V, opts ...Option) *Synced[K, V] {
	if fn == nil {
		panic("memo: nil function")
	}
	return NewSynced[K, V](Func[K, V](fn), opts...)
}

// Value returns the cached result for key, calculating it once on first use.
func (s *Synced[K, V]) Value(key K) V {
	if v, ok := s.Peek(key); ok {
		s.hits.Add(1)
		s.observer.Hit()
		return v
	}

	id := s.flight(key)
	calculated := false
	res, err, _ := s.group.Do(strconv.FormatUint(id, 10), func() (any, error) {
		defer s.land(key, id)
		// The previous flight for this key may have landed since Peek.
		if v, ok := s.Peek(key); ok {
			return v, nil
		}
		calculated = true
		s.misses.Add(1)
		s.observer.Miss()
		return s.calculate(key)
	})
	if p, ok := err.(*calcPanic); ok {
		panic(p.value)
	}

	if !calculated {
		s.hits.Add(1)
		s.observer.Hit()
	}
	v, _ := res.(V)
	return v
}

// flight returns the singleflight id for key, allocating one if no
// calculation for key is in progress. Ids are never reused, so distinct keys
// never share a flight.
func (s *Synced[K, V]) flight(key K) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.flights[key]; ok {
		return id
	}
	s.nextID++
	s.flights[key] = s.nextID
	return s.nextID
}

// land forgets the flight id once its calculation is done.
func (s *Synced[K, V]) land(key K, id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flights[key] == id {
		delete(s.flights, key)
	}
}

func (s *Synced[K, V]) calculate(key K) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &calcPanic{value: r}
		}
	}()

	start := time.Now()
	result := s.calc.Calculate(key)
	s.observer.Calculated(time.Since(start))

	s.mu.Lock()
	s.entries[key] = result
	s.mu.Unlock()
	return result, nil
}

// Peek returns the cached result for key without calculating it.
func (s *Synced[K, V]) Peek(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

// Len returns the number of cached entries.
func (s *Synced[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stats returns a snapshot of the cache counters.
func (s *Synced[K, V]) Stats() Stats {
	return Stats{
		Len:    s.Len(),
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
	}
}

// Reset drops every cached entry and zeroes the counters.
// Calculations already in flight still store their result.
func (s *Synced[K, V]) Reset() {
	s.mu.Lock()
	s.entries = make(map[K]V, s.capacity)
	s.mu.Unlock()
	s.hits.Store(0)
	s.misses.Store(0)
}
