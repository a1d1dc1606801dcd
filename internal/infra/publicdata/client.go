// Package publicdata talks to the government product/store/price catalog API.
package publicdata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storeradar/config"
	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/service"
	"storeradar/internal/errors"
	"storeradar/internal/util"

	"go.uber.org/fx"
)

const (
	defaultBaseURL          = "http://openapi.price.go.kr/openApiImpl/ProductPriceInfoService/"
	defaultUserAgent        = "StoreRader/1.0"
	errorBodyReadLimit      = 1024
	goodsEndpoint           = "getProductInfoSvc.do"
	storesEndpoint          = "getStoreInfoSvc.do"
	pricesEndpoint          = "getProductPriceInfoSvc.do"
	regionsEndpoint         = "getStandardInfoSvc.do"
	regionClassCode         = "AR"
	archiveLatestPartition  = "latest"
	archiveCatalogPartition = "all"
)

// Client fetches raw XML payloads. It does not retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
	userAgent  string
	archive    service.PayloadArchive
	logger     *slog.Logger
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the catalog base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithArchive stores every successful payload in archive.
func WithArchive(archive service.PayloadArchive) Option {
	return func(c *Client) {
		c.archive = archive
	}
}

// NewClient builds a catalog client. serviceKey is sent verbatim because the
// portal issues it already URL-encoded.
func NewClient(serviceKey string, logger *slog.Logger, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		serviceKey: strings.TrimSpace(serviceKey),
		userAgent:  defaultUserAgent,
		logger:     logger,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if !strings.HasSuffix(client.baseURL, "/") {
		client.baseURL += "/"
	}

	return client
}

// Params holds dependencies for the catalog client, injected by Fx.
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Archive service.PayloadArchive
}

// New is the Fx constructor for service.PublicDataClient.
func New(params Params) service.PublicDataClient {
	cfg := params.Config.PublicData

	return NewClient(cfg.ServiceKey, params.Logger,
		WithBaseURL(cfg.BaseURL),
		WithUserAgent(cfg.UserAgent),
		WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		WithArchive(params.Archive),
	)
}

func (c *Client) FetchGoods(ctx context.Context) (string, error) {
	query := "serviceKey=" + c.serviceKey

	return c.fetch(ctx, constants.APIGoods, goodsEndpoint, query,
		archiveKey(constants.APIGoods, archiveLatestPartition, archiveCatalogPartition))
}

func (c *Client) FetchStores(ctx context.Context) (string, error) {
	query := "serviceKey=" + c.serviceKey

	return c.fetch(ctx, constants.APIStores, storesEndpoint, query,
		archiveKey(constants.APIStores, archiveLatestPartition, archiveCatalogPartition))
}

func (c *Client) FetchPrices(ctx context.Context, day entity.InspectDay, storeID string) (string, error) {
	query := "goodInspectDay=" + url.QueryEscape(day.String()) +
		"&entpId=" + url.QueryEscape(storeID) +
		"&ServiceKey=" + c.serviceKey

	return c.fetch(ctx, constants.APIPrices, pricesEndpoint, query,
		archiveKey(constants.APIPrices, day.String(), storeID))
}

func (c *Client) FetchRegions(ctx context.Context) (string, error) {
	query := "classCode=" + regionClassCode + "&ServiceKey=" + c.serviceKey

	return c.fetch(ctx, constants.APIRegions, regionsEndpoint, query,
		archiveKey(constants.APIRegions, archiveLatestPartition, archiveCatalogPartition))
}

func (c *Client) fetch(ctx context.Context, api, endpoint, query, key string) (string, error) {
	op := "publicdata.Fetch." + api

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+query, nil)
	if err != nil {
		return "", domainerrors.New(domainerrors.KindTransport, op, "build request", redact(err))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domainerrors.New(domainerrors.KindTransport, op, "request failed", redact(err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))

		return "", domainerrors.New(domainerrors.KindTransport, op,
			fmt.Sprintf("unexpected status %d", resp.StatusCode),
			errors.New(strings.TrimSpace(string(snippet)))).WithCode("UPSTREAM_STATUS")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domainerrors.New(domainerrors.KindTransport, op, "read body", redact(err))
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "Fetched upstream payload",
			slog.String("api", api),
			slog.String("size", util.FormatBytes(int64(len(body)))),
		)
	}
	c.archivePayload(ctx, key, body)

	return string(body), nil
}

func (c *Client) archivePayload(ctx context.Context, key string, body []byte) {
	if c.archive == nil {
		return
	}

	if err := c.archive.Save(ctx, key, body); err != nil && c.logger != nil {
		c.logger.WarnContext(ctx, "Failed to archive upstream payload",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func archiveKey(api, partition, name string) string {
	return api + "/" + partition + "/" + name + ".xml"
}

// redact drops the request URL from transport errors so the service key never reaches logs.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}

	return err
}
