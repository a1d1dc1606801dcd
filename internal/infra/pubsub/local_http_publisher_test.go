package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storeradar/config"
	"storeradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishPriceChangeEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := newLocalHTTPPublisher(server.URL, server.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishPriceChangeEvent(context.Background(), &service.PriceChangeEvent{
		RequestID:   "req-1",
		InspectDay:  "20240105",
		PreviousDay: "20240104",
		Inserted:    3,
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "20240105", received.Message.Attributes["inspect_day"])
	assert.Equal(t, "3", received.Message.Attributes["inserted"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.PriceChangeEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "20240104", event.PreviousDay)
	assert.Equal(t, int64(3), event.Inserted)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := newLocalHTTPPublisher(server.URL, server.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishPriceChangeEvent(context.Background(), &service.PriceChangeEvent{InspectDay: "20240105"})
	assert.ErrorContains(t, err, "500")
}

func TestNewEventPublisher_Providers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "unset uses noop", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9999/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: logger,
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.cfg == nil {
				assert.NoError(t, publisher.PublishPriceChangeEvent(context.Background(), &service.PriceChangeEvent{}))
			}
		})
	}
}
