package workout

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cicd-ai-toolkit/memo/pkg/errors"
	"github.com/cicd-ai-toolkit/memo/pkg/observability"
)

func testOptions() Options {
	return Options{
		LowIntensityLimit: 25,
		RestNumber:        3,
	}
}

func TestGenerateLowIntensity(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions()
	opts.Logger = observability.NewLoggerTo(&buf, "info")

	p, err := NewPlanner(opts)
	require.NoError(t, err)

	plan := p.Generate(10, 7)
	assert.Equal(t, "low", plan.Category())
	assert.Equal(t, []string{"Today, do 10 pushups!", "Next, do 10 situps!"}, plan.Lines())

	// The second step reads the cached value.
	stats := p.Stats()
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, 1, strings.Count(buf.String(), "calculating slowly"))
}

func TestGenerateRest(t *testing.T) {
	p, err := NewPlanner(testOptions())
	require.NoError(t, err)

	plan := p.Generate(30, 3)
	assert.Equal(t, "rest", plan.Category())
	assert.Equal(t, []string{"Take a break today! Remember to stay hydrated!"}, plan.Lines())
	assert.Equal(t, int64(0), p.Stats().Misses, "rest days skip the calculation")
}

func TestGenerateRun(t *testing.T) {
	p, err := NewPlanner(testOptions())
	require.NoError(t, err)

	plan := p.Generate(30, 7)
	assert.Equal(t, "run", plan.Category())
	assert.Equal(t, []string{"Today, run for 30 minutes!"}, plan.Lines())
}

func TestGenerateBoundary(t *testing.T) {
	p, err := NewPlanner(testOptions())
	require.NoError(t, err)

	assert.Equal(t, "low", p.Generate(24, 3).Category())
	assert.Equal(t, "rest", p.Generate(25, 3).Category())
	assert.Equal(t, "run", p.Generate(25, 4).Category())
}

func TestPlannerCachesAcrossPlans(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions()
	opts.Logger = observability.NewLoggerTo(&buf, "info")

	p, err := NewPlanner(opts)
	require.NoError(t, err)

	p.Generate(40, 1)
	p.Generate(40, 2)
	p.Generate(10, 1)

	stats := p.Stats()
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, 2, stats.Len)
	assert.Equal(t, 2, strings.Count(buf.String(), "calculating slowly"))
}

func TestNewPlannerValidation(t *testing.T) {
	_, err := NewPlanner(Options{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrValidation))

	opts := testOptions()
	opts.Delay = -1
	_, err = NewPlanner(opts)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrValidation))

	_, err = NewConcurrentPlanner(Options{})
	assert.Error(t, err)
}

func TestPlanMetrics(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry(), "test")
	opts := testOptions()
	opts.Observer = m
	opts.Recorder = m

	p, err := NewPlanner(opts)
	require.NoError(t, err)

	p.Generate(10, 0)
	p.Generate(30, 3)
	p.Generate(30, 0)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CacheMisses))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheHits))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PlansTotal.WithLabelValues("low")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PlansTotal.WithLabelValues("rest")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PlansTotal.WithLabelValues("run")))
}

func TestEmptyPlan(t *testing.T) {
	var p Plan
	assert.Equal(t, "empty", p.Category())
	assert.Empty(t, p.Lines())
}

type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *countingRecorder) RecordPlan(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[kind]++
}

func TestConcurrentPlannerGenerateAll(t *testing.T) {
	var buf bytes.Buffer
	rec := &countingRecorder{counts: make(map[string]int)}
	opts := testOptions()
	opts.Logger = observability.NewLoggerTo(&buf, "info")
	opts.Recorder = rec

	p, err := NewConcurrentPlanner(opts)
	require.NoError(t, err)

	var requests []Request
	for i := 0; i < 10; i++ {
		requests = append(requests, Request{Intensity: 10, Random: 1}, Request{Intensity: 40, Random: uint32(i)})
	}

	plans, err := p.GenerateAll(context.Background(), requests, 4)
	require.NoError(t, err)
	require.Len(t, plans, len(requests))

	for i, plan := range plans {
		assert.Equal(t, requests[i].Intensity, plan.Intensity, "plans keep request order")
	}

	// Two distinct intensities: two calculations regardless of scheduling.
	assert.Equal(t, 2, strings.Count(buf.String(), "calculating slowly"))
	assert.Equal(t, int64(2), p.Stats().Misses)

	assert.Equal(t, 10, rec.counts["low"])
	assert.Equal(t, 1, rec.counts["rest"])
	assert.Equal(t, 9, rec.counts["run"])
}

func TestConcurrentPlannerCanceled(t *testing.T) {
	p, err := NewConcurrentPlanner(testOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.GenerateAll(ctx, []Request{{Intensity: 1}, {Intensity: 2}}, 1)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrCanceled))
	assert.ErrorIs(t, err, context.Canceled)
}
