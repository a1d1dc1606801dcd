package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storeradar/config"
	deliverycontext "storeradar/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 3 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("not found is silent", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("errors carry the request id", func(t *testing.T) {
		var base, scoped bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

		ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "cycle-1")))
		l.Trace(ctx, time.Now(), sqlFn("UPDATE user_preferences"), errors.New("boom"))

		assert.Empty(t, base.String())
		assert.Contains(t, scoped.String(), `"msg":"Database query failed"`)
		assert.Contains(t, scoped.String(), `"request_id":"cycle-1"`)
		assert.Contains(t, scoped.String(), `"error":"boom"`)
	})

	t.Run("bulk insert uses the bulk threshold", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

		begin := time.Now().Add(-time.Second)
		l.Trace(context.Background(), begin, sqlFn("INSERT INTO prices (...) VALUES (...) ON CONFLICT DO UPDATE"), nil)
		assert.Empty(t, buf.String())

		l.Trace(context.Background(), begin, sqlFn("SELECT * FROM prices"), nil)
		assert.Contains(t, buf.String(), `"msg":"Slow database query"`)
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))

		assert.Empty(t, buf.String())
	})

	t.Run("debug env logs every query", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = true
		l := newGormSlogLogger(newBufferLogger(&buf), cfg)

		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)

		assert.Contains(t, buf.String(), `"msg":"Database query"`)
	})
}
