// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package memo

import "time"

// Observer receives cache events. Callbacks run inline with Value; an
// Observer given to Synced must be safe for concurrent use.
type Observer interface {
	Hit()
	Miss()
	Calculated(d time.Duration)
}

type nopObserver struct{}

func (nopObserver) Hit()                     {}
func (nopObserver) Miss()                    {}
func (nopObserver) Calculated(time.Duration) {}

// Option configures a Memoizer or Synced.
type Option func(*options)

type options struct {
	observer Observer
	capacity int
}

// WithObserver reports hits, misses and calculation time to obs.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithCapacityHint preallocates room for n entries.
func WithCapacityHint(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{observer: nopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len    int
	Hits   int64
	Misses int64
}

// HitRate returns the fraction of lookups answered from the cache.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
