// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package observability

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds the Prometheus metrics for memoized calculations.
// It satisfies memo.Observer.
type Metrics struct {
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	CalculationSeconds prometheus.Histogram
	PlansTotal         *prometheus.CounterVec
}

// NewMetrics registers the metrics on reg under the given namespace.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of lookups answered from the cache",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of lookups that ran the calculation",
		}),
		CalculationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_seconds",
			Help:      "Time spent in the wrapped calculation",
			Buckets:   []float64{.001, .01, .1, .5, 1, 2.5, 5},
		}),
		PlansTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_total",
			Help:      "Total number of workout plans generated by kind",
		}, []string{"kind"}),
	}
}

// RecordCacheHit records a cache hit/miss.
func (m *Metrics) RecordCacheHit(hit bool) {
	if hit {
		m.CacheHits.Inc()
		return
	}
	m.CacheMisses.Inc()
}

// RecordPlan records a generated plan of the given kind.
func (m *Metrics) RecordPlan(kind string) {
	m.PlansTotal.WithLabelValues(kind).Inc()
}

// Hit implements memo.Observer.
func (m *Metrics) Hit() { m.RecordCacheHit(true) }

// Miss implements memo.Observer.
func (m *Metrics) Miss() { m.RecordCacheHit(false) }

// Calculated implements memo.Observer.
func (m *Metrics) Calculated(d time.Duration) {
	m.CalculationSeconds.Observe(d.Seconds())
}

// Sample is one gathered metric value.
type Sample struct {
	Name  string
	Value float64
}

// Snapshot gathers g and flattens it into samples sorted by name.
// Histograms contribute their _count and _sum series.
func Snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var samples []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			name := mf.GetName() + formatLabels(metric.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				samples = append(samples, Sample{Name: name, Value: metric.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				samples = append(samples, Sample{Name: name, Value: metric.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				samples = append(samples,
					Sample{Name: mf.GetName() + "_count" + formatLabels(metric.GetLabel()), Value: float64(h.GetSampleCount())},
					Sample{Name: mf.GetName() + "_sum" + formatLabels(metric.GetLabel()), Value: h.GetSampleSum()},
				)
			}
		}
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
