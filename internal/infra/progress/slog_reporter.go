// Package progress renders sync progress to logs or a terminal bar.
package progress

import (
	"context"
	"log/slog"
	"sync"

	"storeradar/internal/domain/service"
	"storeradar/internal/infra/metrics"
)

const defaultLogEvery = 100

// SlogReporter logs every n-th update and the final counts of each step.
type SlogReporter struct {
	logger  *slog.Logger
	metrics *metrics.SyncJobMetrics
	every   int

	mu   sync.Mutex
	last map[string]int
}

// NewSlogReporter builds a reporter for the server process. m may be nil.
func NewSlogReporter(logger *slog.Logger, m *metrics.SyncJobMetrics) *SlogReporter {
	return &SlogReporter{
		logger:  logger,
		metrics: m,
		every:   defaultLogEvery,
		last:    map[string]int{},
	}
}

var _ service.ProgressReporter = (*SlogReporter)(nil)

func (r *SlogReporter) Report(p service.Progress) {
	r.mu.Lock()
	due := p.Processed-r.last[p.Step] >= r.every
	if due {
		r.last[p.Step] = p.Processed
	}
	r.mu.Unlock()

	if !due {
		return
	}
	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "sync progress", attrs(p)...)
}

func (r *SlogReporter) Done(p service.Progress) {
	r.mu.Lock()
	delete(r.last, p.Step)
	r.mu.Unlock()

	r.metrics.AddItems(p.Step, p.Succeeded, p.Failed)
	r.logger.LogAttrs(context.Background(), slog.LevelInfo, "sync step finished", attrs(p)...)
}

func attrs(p service.Progress) []slog.Attr {
	return []slog.Attr{
		slog.String("step", p.Step),
		slog.Int("processed", p.Processed),
		slog.Int("total", p.Total),
		slog.Int("succeeded", p.Succeeded),
		slog.Int("failed", p.Failed),
	}
}
