// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package workout generates workout plans whose amounts come from an
// expensive calculation hidden behind a memo cache.
package workout

import (
	"fmt"
	"time"

	"github.com/cicd-ai-toolkit/memo/pkg/errors"
	"github.com/cicd-ai-toolkit/memo/pkg/memo"
	"github.com/cicd-ai-toolkit/memo/pkg/observability"
)

// Kind names a step of a plan.
type Kind string

const (
	KindPushups Kind = "pushups"
	KindSitups  Kind = "situps"
	KindRest    Kind = "rest"
	KindRun     Kind = "run"
)

// Step is one instruction of a plan.
type Step struct {
	Kind   Kind
	Amount uint32
}

// Plan is the workout generated for one intensity and random number.
type Plan struct {
	Intensity uint32
	Random    uint32
	Steps     []Step
}

// Category returns "low", "rest" or "run" depending on the plan shape, or
// "empty" for a zero Plan.
func (p Plan) Category() string {
	if len(p.Steps) == 0 {
		return "empty"
	}
	switch p.Steps[0].Kind {
	case KindPushups:
		return "low"
	case KindRest:
		return "rest"
	default:
		return "run"
	}
}

// Lines renders the plan as human readable instructions.
func (p Plan) Lines() []string {
	lines := make([]string, 0, len(p.Steps))
	for i, s := range p.Steps {
		switch s.Kind {
		case KindPushups:
			lines = append(lines, fmt.Sprintf("Today, do %d pushups!", s.Amount))
		case KindSitups:
			prefix := "Today"
			if i > 0 {
				prefix = "Next"
			}
			lines = append(lines, fmt.Sprintf("%s, do %d situps!", prefix, s.Amount))
		case KindRest:
			lines = append(lines, "Take a break today! Remember to stay hydrated!")
		case KindRun:
			lines = append(lines, fmt.Sprintf("Today, run for %d minutes!", s.Amount))
		}
	}
	return lines
}

// PlanRecorder is notified of every generated plan.
type PlanRecorder interface {
	RecordPlan(kind string)
}

// Options configures a planner.
type Options struct {
	// Delay is how long the expensive calculation takes.
	Delay time.Duration
	// LowIntensityLimit: intensities below it get pushups and situps.
	LowIntensityLimit uint32
	// RestNumber is the random number that turns a run day into a rest day.
	RestNumber uint32

	Logger   observability.Logger
	Observer memo.Observer
	Recorder PlanRecorder
}

func (o *Options) validate() error {
	if o.LowIntensityLimit == 0 {
		return errors.ValidationError("low intensity limit must be positive", nil)
	}
	if o.Delay < 0 {
		return errors.ValidationError(fmt.Sprintf("delay must not be negative, got %s", o.Delay), nil)
	}
	if o.Logger == nil {
		o.Logger = observability.NewNopLogger()
	}
	return nil
}

// calculation is the slow function the cache protects. It returns its input.
func (o *Options) calculation() func(uint32) uint32 {
	return func(intensity uint32) uint32 {
		o.Logger.Info("calculating slowly", observability.Uint32("intensity", intensity),
			observability.Duration("delay", o.Delay))
		time.Sleep(o.Delay)
		return intensity
	}
}

func (o *Options) memoOptions() []memo.Option {
	if o.Observer == nil {
		return nil
	}
	return []memo.Option{memo.WithObserver(o.Observer)}
}

// plan builds the plan for one request, reading amounts through value.
func (o *Options) plan(intensity, random uint32, value func(uint32) uint32) Plan {
	p := Plan{Intensity: intensity, Random: random}

	switch {
	case intensity < o.LowIntensityLimit:
		p.Steps = []Step{
			{Kind: KindPushups, Amount: value(intensity)},
			{Kind: KindSitups, Amount: value(intensity)},
		}
	case random == o.RestNumber:
		p.Steps = []Step{{Kind: KindRest}}
	default:
		p.Steps = []Step{{Kind: KindRun, Amount: value(intensity)}}
	}

	if o.Recorder != nil {
		o.Recorder.RecordPlan(p.Category())
	}
	o.Logger.Debug("plan generated", observability.Uint32("intensity", intensity),
		observability.Uint32("random", random), observability.String("category", p.Category()))
	return p
}

// Planner generates plans one at a time. The cache lives as long as the
// planner, so repeated intensities are calculated once.
// It is not safe for concurrent use; see ConcurrentPlanner.
type Planner struct {
	opts  Options
	cache *memo.Memoizer[uint32, uint32]
}

// NewPlanner creates a planner.
func NewPlanner(opts Options) (*Planner, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	p := &Planner{opts: opts}
	p.cache = memo.NewFunc(p.opts.calculation(), p.opts.memoOptions()...)
	return p, nil
}

// Generate returns the plan for intensity and random.
func (p *Planner) Generate(intensity, random uint32) Plan {
	return p.opts.plan(intensity, random, p.cache.Value)
}

// Stats returns the cache counters.
func (p *Planner) Stats() memo.Stats {
	return p.cache.Stats()
}
