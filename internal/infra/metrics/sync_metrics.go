// Package metrics exposes Prometheus instrumentation for sync jobs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	namespace = "storeradar"
	subsystem = "sync"
)

// SyncJobMetrics records duration and outcome of scheduled sync jobs.
type SyncJobMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	items    *prometheus.CounterVec
}

// NewSyncJobMetrics registers the sync metrics on reg. A nil reg yields a no-op recorder.
func NewSyncJobMetrics(reg prometheus.Registerer) *SyncJobMetrics {
	if reg == nil {
		return &SyncJobMetrics{}
	}

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "job_duration_seconds",
		Help:      "Duration of sync jobs in seconds.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 3600},
	}, []string{"job"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "job_success_total",
		Help:      "Successful sync job executions.",
	}, []string{"job"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "job_failure_total",
		Help:      "Failed sync job executions.",
	}, []string{"job"})
	items := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "items_total",
		Help:      "Items processed by sync steps, by outcome.",
	}, []string{"step", "outcome"})
	reg.MustRegister(duration, success, failure, items)

	return &SyncJobMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		items:    items,
	}
}

// ObserveDuration records the duration for the named job.
func (m *SyncJobMetrics) ObserveDuration(job string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(job)).Observe(duration.Seconds())
}

func (m *SyncJobMetrics) IncSuccess(job string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(job)).Inc()
}

func (m *SyncJobMetrics) IncFailure(job string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(job)).Inc()
}

// AddItems counts finished items of a step.
func (m *SyncJobMetrics) AddItems(step string, succeeded, failed int) {
	if m == nil || m.items == nil {
		return
	}
	if succeeded > 0 {
		m.items.WithLabelValues(normalizeLabel(step), "succeeded").Add(float64(succeeded))
	}
	if failed > 0 {
		m.items.WithLabelValues(normalizeLabel(step), "failed").Add(float64(failed))
	}
}

func normalizeLabel(job string) string {
	if job == "" {
		return "unknown"
	}

	return job
}

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewFromRegistry is the Fx constructor for SyncJobMetrics.
func NewFromRegistry(reg *prometheus.Registry) *SyncJobMetrics {
	return NewSyncJobMetrics(reg)
}
