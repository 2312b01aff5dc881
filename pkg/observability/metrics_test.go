// Package observability tests
package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordCacheHit(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry(), "test")

	m.RecordCacheHit(true)
	m.RecordCacheHit(true)
	m.RecordCacheHit(false)

	if val := testutil.ToFloat64(m.CacheHits); val != 2 {
		t.Errorf("Expected 2 hits, got %f", val)
	}
	if val := testutil.ToFloat64(m.CacheMisses); val != 1 {
		t.Errorf("Expected 1 miss, got %f", val)
	}
}

func TestMetricsObserver(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry(), "test")

	m.Miss()
	m.Calculated(20 * time.Millisecond)
	m.Hit()

	if val := testutil.ToFloat64(m.CacheHits); val != 1 {
		t.Errorf("Expected 1 hit, got %f", val)
	}
	if val := testutil.ToFloat64(m.CacheMisses); val != 1 {
		t.Errorf("Expected 1 miss, got %f", val)
	}
	if n := testutil.CollectAndCount(m.CalculationSeconds); n != 1 {
		t.Errorf("Expected 1 histogram series, got %d", n)
	}
}

func TestRecordPlan(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry(), "test")

	m.RecordPlan("low")
	m.RecordPlan("low")
	m.RecordPlan("rest")

	if val := testutil.ToFloat64(m.PlansTotal.WithLabelValues("low")); val != 2 {
		t.Errorf("Expected 2 low plans, got %f", val)
	}
	if val := testutil.ToFloat64(m.PlansTotal.WithLabelValues("rest")); val != 1 {
		t.Errorf("Expected 1 rest plan, got %f", val)
	}
}

func TestSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "memo")

	m.Miss()
	m.Calculated(time.Second)
	m.Hit()
	m.Hit()
	m.RecordPlan("run")

	samples, err := Snapshot(reg)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	got := make(map[string]float64, len(samples))
	for _, s := range samples {
		got[s.Name] = s.Value
	}

	want := map[string]float64{
		"memo_cache_hits_total":          2,
		"memo_cache_misses_total":        1,
		"memo_calculation_seconds_count": 1,
		"memo_calculation_seconds_sum":   1,
		`memo_plans_total{kind="run"}`:   1,
	}
	for name, value := range want {
		if got[name] != value {
			t.Errorf("Expected %s = %f, got %f", name, value, got[name])
		}
	}

	for i := 1; i < len(samples); i++ {
		if samples[i-1].Name > samples[i].Name {
			t.Errorf("Samples not sorted: %s before %s", samples[i-1].Name, samples[i].Name)
		}
	}
}

func TestNewMetricsDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg, "dup")

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	NewMetrics(reg, "dup")
}
