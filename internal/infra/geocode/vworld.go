// Package geocode resolves store addresses through the vWorld address API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storeradar/config"
	"storeradar/internal/domain/constants"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/service"
	"storeradar/internal/errors"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	defaultBaseURL     = "https://api.vworld.kr/req/address"
	defaultUserAgent   = "StoreRader/1.0"
	statusOK           = "OK"
	errorBodyReadLimit = 1024
)

// VWorldClient implements service.Geocoder.
type VWorldClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	logger     *slog.Logger
}

// Option configures optional client behavior.
type Option func(*VWorldClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *VWorldClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the vWorld endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *VWorldClient) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// NewVWorldClient builds a geocoder for the given API key.
func NewVWorldClient(apiKey string, logger *slog.Logger, opts ...Option) *VWorldClient {
	client := &VWorldClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     strings.TrimSpace(apiKey),
		userAgent:  defaultUserAgent,
		logger:     logger,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client
}

// Params holds dependencies for the geocoder, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New is the Fx constructor for service.Geocoder.
func New(params Params) service.Geocoder {
	cfg := params.Config.Geocoder

	return NewVWorldClient(cfg.APIKey, params.Logger,
		WithBaseURL(cfg.BaseURL),
		WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
}

type vworldResponse struct {
	Response struct {
		Status string `json:"status"`
		Result *struct {
			Point *struct {
				X string `json:"x"`
				Y string `json:"y"`
			} `json:"point"`
		} `json:"result"`
	} `json:"response"`
}

// Geocode returns the road-address point for address. Anything short of an OK
// status with a parsable point is reported as not found.
func (c *VWorldClient) Geocode(ctx context.Context, address string) (orb.Point, bool, error) {
	op := "geocode.VWorld"

	query := url.Values{}
	query.Set("service", "address")
	query.Set("request", "getCoord")
	query.Set("version", "2.0")
	query.Set("crs", "epsg:4326")
	query.Set("address", address)
	query.Set("refine", "true")
	query.Set("simple", "false")
	query.Set("type", "road")
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return orb.Point{}, false, domainerrors.New(domainerrors.KindTransport, op, "build request", redact(err))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return orb.Point{}, false, domainerrors.New(domainerrors.KindTransport, op, "request failed", redact(err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))

		return orb.Point{}, false, domainerrors.New(domainerrors.KindTransport, op,
			fmt.Sprintf("unexpected status %d", resp.StatusCode),
			errors.New(strings.TrimSpace(string(snippet)))).WithCode("UPSTREAM_STATUS")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return orb.Point{}, false, domainerrors.New(domainerrors.KindTransport, op, "read body", redact(err))
	}

	var payload vworldResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		c.debug(ctx, "Geocoder returned unparsable body", address, slog.Any("error", err))

		return orb.Point{}, false, nil
	}

	if payload.Response.Status != statusOK || payload.Response.Result == nil || payload.Response.Result.Point == nil {
		c.debug(ctx, "Geocoder returned no result", address, slog.String("status", payload.Response.Status))

		return orb.Point{}, false, nil
	}

	lon, errX := strconv.ParseFloat(strings.TrimSpace(payload.Response.Result.Point.X), 64)
	lat, errY := strconv.ParseFloat(strings.TrimSpace(payload.Response.Result.Point.Y), 64)
	if errX != nil || errY != nil {
		c.debug(ctx, "Geocoder returned unparsable point", address)

		return orb.Point{}, false, nil
	}

	return orb.Point{lon, lat}, true, nil
}

func (c *VWorldClient) debug(ctx context.Context, msg, address string, attrs ...any) {
	if c.logger == nil {
		return
	}
	args := append([]any{slog.String("api", constants.APIGeocode), slog.String("address", address)}, attrs...)
	c.logger.DebugContext(ctx, msg, args...)
}

// redact drops the request URL from transport errors so the API key never reaches logs.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}

	return err
}
