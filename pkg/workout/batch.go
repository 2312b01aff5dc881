// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package workout

import (
	"context"

	"github.com/cicd-ai-toolkit/memo/pkg/errors"
	"github.com/cicd-ai-toolkit/memo/pkg/memo"
	"github.com/cicd-ai-toolkit/memo/pkg/perf"
)

// Request asks for one plan.
type Request struct {
	Intensity uint32
	Random    uint32
}

// ConcurrentPlanner generates plans from many goroutines over one shared
// cache. Each intensity is still calculated at most once.
type ConcurrentPlanner struct {
	opts  Options
	cache *memo.Synced[uint32, uint32]
}

// NewConcurrentPlanner creates a concurrency-safe planner.
func NewConcurrentPlanner(opts Options) (*ConcurrentPlanner, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	p := &ConcurrentPlanner{opts: opts}
	p.cache = memo.NewSyncedFunc(p.opts.calculation(), p.opts.memoOptions()...)
	return p, nil
}

// Generate returns the plan for intensity and random.
func (p *ConcurrentPlanner) Generate(intensity, random uint32) Plan {
	return p.opts.plan(intensity, random, p.cache.Value)
}

// GenerateAll plans every request with at most concurrency plans in
// progress. Plans are returned in request order.
func (p *ConcurrentPlanner) GenerateAll(ctx context.Context, requests []Request, concurrency int) ([]Plan, error) {
	plans, err := perf.Map(ctx, requests, func(r Request) (Plan, error) {
		return p.Generate(r.Intensity, r.Random), nil
	}, concurrency)
	if err != nil {
		return nil, errors.CanceledError("batch planning stopped", err)
	}
	return plans, nil
}

// Stats returns the cache counters.
func (p *ConcurrentPlanner) Stats() memo.Stats {
	return p.cache.Stats()
}
