package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncJobMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewSyncJobMetrics(reg)
	job := "price-sync"
	metrics.ObserveDuration(job, 250*time.Millisecond)
	metrics.IncSuccess(job)
	metrics.IncFailure(job)
	metrics.IncFailure(job)
	metrics.AddItems("stores", 3, 1)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := fetchCounterValue(mfs, "storeradar_sync_job_success_total", "job", job)
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 0)

	got, err = fetchCounterValue(mfs, "storeradar_sync_job_failure_total", "job", job)
	require.NoError(t, err)
	assert.InDelta(t, 2, got, 0)

	got, err = fetchCounterValue(mfs, "storeradar_sync_items_total", "outcome", "succeeded")
	require.NoError(t, err)
	assert.InDelta(t, 3, got, 0)

	mf := findMetricFamily(mfs, "storeradar_sync_job_duration_seconds")
	require.NotNil(t, mf)
	assert.Greater(t, mf.GetMetric()[0].GetHistogram().GetSampleSum(), 0.0)
}

func TestSyncJobMetrics_NilSafe(t *testing.T) {
	var nilMetrics *SyncJobMetrics
	assert.NotPanics(t, func() {
		nilMetrics.IncSuccess("x")
		NewSyncJobMetrics(nil).IncFailure("")
		NewSyncJobMetrics(nil).AddItems("stores", 1, 1)
	})
}

func TestNewRegistry_GathersRuntimeMetrics(t *testing.T) {
	mfs, err := NewRegistry().Gather()
	require.NoError(t, err)
	assert.NotNil(t, findMetricFamily(mfs, "go_goroutines"))
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}

	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}

	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}

	return false
}
