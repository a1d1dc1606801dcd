package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storeradar/config"
	apimiddleware "storeradar/internal/delivery/api/middleware"
	"storeradar/internal/delivery/api/router"
	"storeradar/internal/delivery/api/router/handler"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/infra/metrics"
	mockSvc "storeradar/internal/mocks/service"
	mockUsecase "storeradar/internal/mocks/usecase"
	"storeradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type apiFixtures struct {
	echo          *echo.Echo
	syncUC        *mockUsecase.MockSyncUsecase
	priceChangeUC *mockUsecase.MockPriceChangeUsecase
	preferenceUC  *mockUsecase.MockPreferenceUsecase
	tokenSvc      *mockSvc.MockTokenService
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Metrics.Enabled = true

	return cfg
}

func createTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := newTestConfig()

	f := apiFixtures{
		syncUC:        mockUsecase.NewMockSyncUsecase(t),
		priceChangeUC: mockUsecase.NewMockPriceChangeUsecase(t),
		preferenceUC:  mockUsecase.NewMockPreferenceUsecase(t),
		tokenSvc:      mockSvc.NewMockTokenService(t),
	}

	f.echo = NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		SyncHandler: handler.NewSyncHandler(handler.SyncHandlerParams{
			SyncUC:        f.syncUC,
			PriceChangeUC: f.priceChangeUC,
			Logger:        logger,
		}),
		PriceChangeHandler: handler.NewPriceChangeHandler(handler.PriceChangeHandlerParams{
			PriceChangeUC: f.priceChangeUC,
		}),
		PreferenceHandler: handler.NewPreferenceHandler(handler.PreferenceHandlerParams{
			PreferenceUC: f.preferenceUC,
			Logger:       logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(f.tokenSvc),
		Registry:       metrics.NewRegistry(),
		Config:         cfg,
	}).RegisterRoutes(f.echo)

	return f
}

func (f apiFixtures) do(t *testing.T, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	fx := createTestAPI(t)

	rec, _ := fx.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec, _ = fx.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAPI_SyncPrices(t *testing.T) {
	fx := createTestAPI(t)

	fx.syncUC.EXPECT().SyncPrices(mock.Anything, entity.InspectDay("20240105")).
		Return(&entity.PriceSyncResult{InspectDay: "20240105", Stores: 3, StoresSynced: 2, StoresNoData: 1, Upserted: 40}, nil)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/sync/prices?inspect_day=20240105", "", map[string]string{"X-Request-Id": "req-7"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-7", env.Meta.RequestID)

	var result entity.PriceSyncResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 40, result.Upserted)
	assert.Equal(t, 1, result.StoresNoData)
}

func TestAPI_SyncPrices_RejectsBadInspectDay(t *testing.T) {
	for _, target := range []string{"/api/v1/sync/prices", "/api/v1/sync/prices?inspect_day=2024-01-05", "/api/v1/sync/price-changes?inspect_day=abc"} {
		t.Run(target, func(t *testing.T) {
			fx := createTestAPI(t)

			rec, env := fx.do(t, http.MethodPost, target, "", nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "INVALID_INSPECT_DAY", env.Error.Code)
			assert.NotEmpty(t, env.Meta.RequestID)
		})
	}
}

func TestAPI_SyncCatalog_UpstreamFailureIsBadGateway(t *testing.T) {
	fx := createTestAPI(t)

	upstream := domainerrors.New(domainerrors.KindTransport, "publicdata.FetchGoods", "catalog unavailable", nil).
		WithCode("UPSTREAM_STATUS")
	fx.syncUC.EXPECT().SyncCatalog(mock.Anything).Return(&entity.CatalogSyncResult{}, errors.Wrap(upstream, "fetch goods"))

	rec, env := fx.do(t, http.MethodPost, "/api/v1/sync/catalog", "", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UPSTREAM_STATUS", env.Error.Code)
	assert.Empty(t, env.Error.Details, "5xx responses never carry details")
}

func TestAPI_SyncRegions_UnclassifiedErrorIsInternal(t *testing.T) {
	fx := createTestAPI(t)

	fx.syncUC.EXPECT().SyncRegions(mock.Anything).Return(nil, errors.New("driver: bad connection"))

	rec, env := fx.do(t, http.MethodPost, "/api/v1/sync/regions", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "bad connection")
}

func TestAPI_SyncPriceChanges(t *testing.T) {
	fx := createTestAPI(t)

	fx.priceChangeUC.EXPECT().SyncPriceChanges(mock.Anything, entity.InspectDay("20240105")).Return(12, nil)
	fx.priceChangeUC.EXPECT().SyncPriceChanges(mock.Anything, entity.InspectDay("20240101")).
		Return(0, domainerrors.ErrNoPreviousInspectDay.WithDetails("no prices before 20240101"))

	rec, env := fx.do(t, http.MethodPost, "/api/v1/sync/price-changes?inspect_day=20240105", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"inspect_day":"20240105","inserted":12}`, string(env.Data))

	rec, env = fx.do(t, http.MethodPost, "/api/v1/sync/price-changes?inspect_day=20240101", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NO_PREVIOUS_INSPECT_DAY", env.Error.Code)
	assert.JSONEq(t, `"no prices before 20240101"`, string(env.Error.Details))
}

func TestAPI_GetPriceTrend(t *testing.T) {
	fx := createTestAPI(t)

	fx.priceChangeUC.EXPECT().GetPriceTrend(mock.Anything, "up").Return([]*entity.PriceTrend{
		{GoodID: "G3", GoodName: "Rice", AvgDiff: 60, MinDiff: 60, MaxDiff: 60, Count: 1, InspectDay: "20240105"},
	}, nil)
	fx.priceChangeUC.EXPECT().GetPriceTrend(mock.Anything, "").Return(nil, nil)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/price-changes?status=up", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"good_id":"G3","good_name":"Rice","avg_diff":60,"min_diff":60,"max_diff":60,"change_count":1,"inspect_day":"20240105"}]`, string(env.Data))

	rec, env = fx.do(t, http.MethodGet, "/api/v1/price-changes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestAPI_Preferences_RequireBearerToken(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/preferences", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)

	rec, env = fx.do(t, http.MethodGet, "/api/v1/preferences", "", map[string]string{echo.HeaderAuthorization: "Basic abc"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)

	fx.tokenSvc.EXPECT().ValidateToken("expired").Return("", errors.New("token is expired"))
	rec, env = fx.do(t, http.MethodGet, "/api/v1/preferences", "", bearer("expired"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestAPI_GetPreference(t *testing.T) {
	fx := createTestAPI(t)

	fx.tokenSvc.EXPECT().ValidateToken("good").Return("17", nil)
	fx.tokenSvc.EXPECT().ValidateToken("stranger").Return("18", nil)
	fx.preferenceUC.EXPECT().GetPreference(mock.Anything, "17").
		Return(&entity.UserPreference{UserID: 17, WeightPrice: 0.524, WeightDistance: 0.476, SelectionCount: 10}, nil)
	fx.preferenceUC.EXPECT().GetPreference(mock.Anything, "18").
		Return(nil, domainerrors.ErrPreferenceNotFound.WithDetails("user 18"))

	rec, env := fx.do(t, http.MethodGet, "/api/v1/preferences", "", bearer("good"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":17,"w_price":0.524,"w_distance":0.476,"selection_count":10}`, string(env.Data))

	rec, env = fx.do(t, http.MethodGet, "/api/v1/preferences", "", bearer("stranger"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PREFERENCE_NOT_FOUND", env.Error.Code)
}

func TestAPI_InitPreference(t *testing.T) {
	fx := createTestAPI(t)

	fx.tokenSvc.EXPECT().ValidateToken("good").Return("17", nil)
	fx.preferenceUC.EXPECT().InitPreference(mock.Anything, "17").Return(nil).Once()
	fx.preferenceUC.EXPECT().GetPreference(mock.Anything, "17").
		Return(&entity.UserPreference{UserID: 17, WeightPrice: 0.5, WeightDistance: 0.5}, nil)

	rec, _ := fx.do(t, http.MethodPost, "/api/v1/preferences", "", bearer("good"))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAPI_RecordSelection(t *testing.T) {
	fx := createTestAPI(t)

	fx.tokenSvc.EXPECT().ValidateToken("good").Return("17", nil)
	fx.preferenceUC.EXPECT().RecordSelection(mock.Anything, "17", &usecase.SelectionInput{
		StoreID:        "S1",
		GoodID:         "G1",
		PreferenceType: entity.PreferencePrice,
		Price:          1500,
	}).Return(&entity.UserPreference{UserID: 17, WeightPrice: 0.5, WeightDistance: 0.5, SelectionCount: 1}, nil).Once()

	rec, env := fx.do(t, http.MethodPost, "/api/v1/preferences/selections",
		`{"store_id":"S1","good_id":"G1","preference_type":"price","price":1500}`, bearer("good"))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"selection_count":1`)
}

func TestAPI_RecordSelection_ValidationFailure(t *testing.T) {
	fx := createTestAPI(t)

	fx.tokenSvc.EXPECT().ValidateToken("good").Return("17", nil)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/preferences/selections",
		`{"store_id":"S1","preference_type":"rating","price":-5}`, bearer("good"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t, `{"good_id":"required","preference_type":"oneof=price distance","price":"gte=0"}`, string(env.Error.Details))
}

func TestAPI_UnknownRoute(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestNewServer_RegistersStopHook(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)

	srv, err := NewServer(ServerParams{
		Lc:     lc,
		Cfg:    newTestConfig(),
		Logger: logger,
		RouterParams: router.RouterParams{
			SyncHandler:        handler.NewSyncHandler(handler.SyncHandlerParams{Logger: logger}),
			PriceChangeHandler: handler.NewPriceChangeHandler(handler.PriceChangeHandlerParams{}),
			PreferenceHandler:  handler.NewPreferenceHandler(handler.PreferenceHandlerParams{Logger: logger}),
			AuthMiddleware:     apimiddleware.NewAuthMiddleware(mockSvc.NewMockTokenService(t)),
			Config:             newTestConfig(),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, srv)

	lc.RequireStart()
	lc.RequireStop()
}
