package handler

import (
	"log/slog"
	"net/http"

	"storeradar/internal/delivery/api/response"
	"storeradar/internal/domain/entity"
	"storeradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const inspectDayParam = "inspect_day"

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	SyncUC        usecase.SyncUsecase
	PriceChangeUC usecase.PriceChangeUsecase
	Logger        *slog.Logger
}

// SyncHandler triggers catalog synchronization runs on demand.
type SyncHandler struct {
	syncUC        usecase.SyncUsecase
	priceChangeUC usecase.PriceChangeUsecase
	logger        *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC:        params.SyncUC,
		priceChangeUC: params.PriceChangeUC,
		logger:        params.Logger,
	}
}

// SyncCatalog runs goods sync followed by store sync.
func (h *SyncHandler) SyncCatalog(c echo.Context) error {
	result, err := h.syncUC.SyncCatalog(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// SyncPrices syncs prices of every known store for ?inspect_day=YYYYMMDD.
func (h *SyncHandler) SyncPrices(c echo.Context) error {
	day, err := entity.ParseInspectDay(c.QueryParam(inspectDayParam))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.syncUC.SyncPrices(c.Request().Context(), day)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *SyncHandler) SyncRegions(c echo.Context) error {
	result, err := h.syncUC.SyncRegions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// SyncPriceChanges differences ?inspect_day=YYYYMMDD against the previous priced day.
func (h *SyncHandler) SyncPriceChanges(c echo.Context) error {
	day, err := entity.ParseInspectDay(c.QueryParam(inspectDayParam))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	inserted, err := h.priceChangeUC.SyncPriceChanges(c.Request().Context(), day)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &entity.PriceChangeSyncResult{
		InspectDay: day,
		Inserted:   inserted,
	})
}
