package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storeradar/config"
	deliverycontext "storeradar/internal/delivery/context"
	"storeradar/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultGormSlowThreshold = 200 * time.Millisecond
	// Batch upserts and the INSERT ... SELECT differencing legitimately run long.
	bulkGormSlowThreshold = 5 * time.Second
)

// gormSlogLogger routes gorm output through the request or sync-cycle logger when one is on the context.
type gormSlogLogger struct {
	logger            *slog.Logger
	level             logger.LogLevel
	slowThreshold     time.Duration
	bulkSlowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:            baseLogger,
		level:             level,
		slowThreshold:     defaultGormSlowThreshold,
		bulkSlowThreshold: bulkGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, minLevel logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < minLevel {
		return
	}
	log := l.loggerFor(ctx)
	if log == nil {
		return
	}

	log.LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	log := l.loggerFor(ctx)
	if log == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case l.shouldLogError(err):
		sql, rows := sqlAndRowsFn()
		log.LogAttrs(ctx, slog.LevelError, "Database query failed",
			append(queryAttrs(sql, rows, elapsed), slog.String("error", err.Error()))...)
	case l.level >= logger.Warn && elapsed > l.slowThreshold:
		sql, rows := sqlAndRowsFn()
		threshold := l.thresholdFor(sql)
		if elapsed <= threshold {
			if l.level >= logger.Info {
				log.LogAttrs(ctx, slog.LevelDebug, "Database query", queryAttrs(sql, rows, elapsed)...)
			}

			return
		}
		log.LogAttrs(ctx, slog.LevelWarn, "Slow database query",
			append(queryAttrs(sql, rows, elapsed), slog.Duration("threshold", threshold))...)
	case l.level >= logger.Info:
		sql, rows := sqlAndRowsFn()
		log.LogAttrs(ctx, slog.LevelDebug, "Database query", queryAttrs(sql, rows, elapsed)...)
	}
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.logger
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// thresholdFor gives multi-row writes the bulk threshold.
func (l *gormSlogLogger) thresholdFor(sql string) time.Duration {
	trimmed := strings.ToUpper(strings.TrimSpace(sql))
	if strings.HasPrefix(trimmed, "INSERT") && (strings.Contains(trimmed, "ON CONFLICT") || strings.Contains(trimmed, "SELECT")) {
		return l.bulkSlowThreshold
	}

	return l.slowThreshold
}

func queryAttrs(sql string, rows int64, elapsed time.Duration) []slog.Attr {
	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

// shouldLogError skips not-found lookups; the repositories translate those into sentinels.
func (l *gormSlogLogger) shouldLogError(err error) bool {
	if err == nil || l.level < logger.Error {
		return false
	}

	return !errors.Is(err, gorm.ErrRecordNotFound)
}
