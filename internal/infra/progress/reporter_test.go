package progress

import (
	"bytes"
	"log/slog"
	"testing"

	"storeradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestSlogReporter_ThrottlesAndLogsDone(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewSlogReporter(logger, nil)
	r.every = 2

	for i := 1; i <= 4; i++ {
		r.Report(service.Progress{Step: "stores", Processed: i, Total: 4, Succeeded: i})
	}
	r.Done(service.Progress{Step: "stores", Processed: 4, Total: 4, Succeeded: 3, Failed: 1})

	out := buf.String()
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(`"msg":"sync progress"`)))
	assert.Contains(t, out, `"msg":"sync step finished"`)
	assert.Contains(t, out, `"failed":1`)
}

func TestBarReporter_WritesCounts(t *testing.T) {
	var buf bytes.Buffer
	r := NewBarReporter(&buf)

	r.Report(service.Progress{Step: "prices", Processed: 1, Total: 2, Succeeded: 1})
	r.Done(service.Progress{Step: "prices", Processed: 2, Total: 2, Succeeded: 1, Failed: 1})

	assert.Contains(t, buf.String(), "prices ok=1 failed=1")
	assert.Nil(t, r.bar)
}
