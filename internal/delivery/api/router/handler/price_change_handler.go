package handler

import (
	"net/http"

	"storeradar/internal/delivery/api/response"
	"storeradar/internal/domain/entity"
	"storeradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PriceChangeHandlerParams holds dependencies for PriceChangeHandler, injected by Fx.
type PriceChangeHandlerParams struct {
	fx.In

	PriceChangeUC usecase.PriceChangeUsecase
}

// PriceChangeHandler serves price trend queries.
type PriceChangeHandler struct {
	priceChangeUC usecase.PriceChangeUsecase
}

// NewPriceChangeHandler is the constructor for PriceChangeHandler
func NewPriceChangeHandler(params PriceChangeHandlerParams) *PriceChangeHandler {
	return &PriceChangeHandler{priceChangeUC: params.PriceChangeUC}
}

// GetPriceTrend returns the top goods by average change. ?status=up ranks rising
// prices; anything else ranks falling ones.
func (h *PriceChangeHandler) GetPriceTrend(c echo.Context) error {
	trends, err := h.priceChangeUC.GetPriceTrend(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if trends == nil {
		trends = []*entity.PriceTrend{}
	}

	return response.Success(c, http.StatusOK, trends)
}
