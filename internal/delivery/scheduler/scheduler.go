package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storeradar/config"
	"storeradar/internal/delivery"
	deliverycontext "storeradar/internal/delivery/context"
	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	"storeradar/internal/domain/lifecycle"
	"storeradar/internal/domain/service"
	"storeradar/internal/infra/metrics"
	"storeradar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultInterval = 24 * time.Hour

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	SyncUC        usecase.SyncUsecase
	PriceChangeUC usecase.PriceChangeUsecase
	Lock          service.SyncLock
	Metrics       *metrics.SyncJobMetrics `optional:"true"`
}

// Scheduler runs every registered job once per interval, the first cycle at start.
type Scheduler struct {
	enabled  bool
	interval time.Duration
	registry *Registry
	lock     service.SyncLock
	metrics  *metrics.SyncJobMetrics
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New builds the scheduler delivery from the sync config.
func New(params Params) (delivery.Delivery, error) {
	if params.Lock == nil {
		return nil, errors.New("sync lock is required")
	}

	loc, err := time.LoadLocation(constants.SeoulTimezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", constants.SeoulTimezone)
	}

	syncCfg := params.Cfg.Sync
	if syncCfg == nil {
		syncCfg = &config.SyncConfig{}
	}
	offset := syncCfg.PriceDayOffset
	day := func() entity.InspectDay {
		return inspectDayDaysAgo(time.Now(), loc, offset)
	}

	interval := syncCfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	s := &Scheduler{
		enabled:  syncCfg.Enabled,
		interval: interval,
		registry: NewRegistry(newSyncJobs(params.SyncUC, params.PriceChangeUC, day)...),
		lock:     params.Lock,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}

	params.Lc.Append(fx.StopHook(s.stop))

	return s, nil
}

// Serve blocks until ctx is canceled or the app stops. It returns immediately when disabled.
func (s *Scheduler) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Sync scheduler disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.mu.Lock()
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()
	defer close(done)

	s.logger.Info("Starting sync scheduler",
		slog.Duration("interval", s.interval),
		slog.Int("jobs", len(s.registry.Jobs())),
	)

	s.runCycleAndLog(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sync scheduler stopped")

			return nil
		case <-ticker.C:
			s.runCycleAndLog(ctx)
		}
	}
}

func (s *Scheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()

	waitCtx, waitCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer waitCancel()

	select {
	case <-done:
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "sync scheduler did not stop in time")
	}
}

func (s *Scheduler) runCycleAndLog(ctx context.Context) {
	if err := s.runCycle(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Scheduled sync cycle failed", slog.Any("error", err))
	}
}

// runCycle runs every job in order under the sync lock. A failed job does not stop later ones
// and is not retried until the next cycle.
func (s *Scheduler) runCycle(ctx context.Context) error {
	locked, err := s.lock.Acquire(ctx)
	if err != nil {
		return errors.Wrap(err, "acquire sync lock")
	}
	if !locked {
		s.logger.InfoContext(ctx, "Another instance holds the sync lock, skipping cycle")

		return nil
	}
	defer func() {
		// Release even when ctx was canceled mid-cycle.
		if err := s.lock.Release(context.WithoutCancel(ctx)); err != nil {
			s.logger.ErrorContext(ctx, "Failed to release sync lock", slog.Any("error", err))
		}
	}()

	cycleID := deliverycontext.NewRequestID()
	logger := s.logger.With(slog.String("request_id", cycleID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, cycleID), logger)

	logger.InfoContext(ctx, "Scheduled sync cycle starting")
	for _, job := range s.registry.Jobs() {
		if ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}
		s.runJob(ctx, logger, job)
	}
	logger.InfoContext(ctx, "Scheduled sync cycle complete")

	return nil
}

func (s *Scheduler) runJob(ctx context.Context, logger *slog.Logger, job Job) {
	jobLogger := logger.With(slog.String("job", job.Name()))
	jobLogger.InfoContext(ctx, "Sync job starting")

	start := time.Now()
	err := job.Run(ctx)
	duration := time.Since(start)
	s.metrics.ObserveDuration(job.Name(), duration)

	if err != nil {
		s.metrics.IncFailure(job.Name())
		jobLogger.ErrorContext(ctx, "Sync job failed",
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)

		return
	}

	s.metrics.IncSuccess(job.Name())
	jobLogger.InfoContext(ctx, "Sync job completed", slog.Duration("duration", duration))
}
