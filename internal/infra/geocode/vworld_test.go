package geocode

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	domainerrors "storeradar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func respond(status int, body string) roundTripFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     http.Header{},
		}, nil
	}
}

func newTestClient(rt roundTripFunc) *VWorldClient {
	return NewVWorldClient("vw-key", nil,
		WithBaseURL("http://vworld.test/req/address"),
		WithHTTPClient(&http.Client{Transport: rt}),
	)
}

func TestVWorldClient_GeocodeSuccess(t *testing.T) {
	var captured *http.Request
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req

		return respond(http.StatusOK, `{"response":{"status":"OK","result":{"crs":"EPSG:4326","point":{"x":"127.0437","y":"37.5447"}}}}`)(req)
	})

	point, found, err := client.Geocode(context.Background(), "서울특별시 성동구 뚝섬로 379")
	require.NoError(t, err)
	require.True(t, found)
	assert.InDelta(t, 127.0437, point.Lon(), 1e-9)
	assert.InDelta(t, 37.5447, point.Lat(), 1e-9)

	q := captured.URL.Query()
	assert.Equal(t, "서울특별시 성동구 뚝섬로 379", q.Get("address"))
	assert.Equal(t, "getCoord", q.Get("request"))
	assert.Equal(t, "epsg:4326", q.Get("crs"))
	assert.Equal(t, "road", q.Get("type"))
	assert.Equal(t, "vw-key", q.Get("key"))
	assert.Equal(t, "StoreRader/1.0", captured.Header.Get("User-Agent"))
}

func TestVWorldClient_NoResultCases(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not found status", body: `{"response":{"status":"NOT_FOUND"}}`},
		{name: "error status", body: `{"response":{"status":"ERROR","error":{"code":"INVALID_KEY"}}}`},
		{name: "not json", body: `<html>oops</html>`},
		{name: "missing point", body: `{"response":{"status":"OK","result":{}}}`},
		{name: "bad coordinates", body: `{"response":{"status":"OK","result":{"point":{"x":"east","y":"37.1"}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(respond(http.StatusOK, tt.body))

			_, found, err := client.Geocode(context.Background(), "somewhere")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestVWorldClient_TransportErrors(t *testing.T) {
	client := newTestClient(respond(http.StatusBadGateway, "upstream down"))
	_, found, err := client.Geocode(context.Background(), "somewhere")
	require.Error(t, err)
	assert.False(t, found)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindTransport))

	client = newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("timeout")
	})
	_, _, err = client.Geocode(context.Background(), "somewhere")
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindTransport))
	assert.NotContains(t, err.Error(), "vw-key")
}
