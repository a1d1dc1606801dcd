package handler

import (
	"log/slog"
	"net/http"

	"storeradar/internal/delivery/api/middleware"
	"storeradar/internal/delivery/api/response"
	"storeradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
	Logger       *slog.Logger
}

// PreferenceHandler exposes the caller's adaptive ranking weights.
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
	logger       *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: params.PreferenceUC,
		logger:       params.Logger,
	}
}

// InitPreference creates default weights for the caller, keeping existing ones.
func (h *PreferenceHandler) InitPreference(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ctx := c.Request().Context()
	if err := h.preferenceUC.InitPreference(ctx, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	pref, err := h.preferenceUC.GetPreference(ctx, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pref)
}

func (h *PreferenceHandler) GetPreference(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pref, err := h.preferenceUC.GetPreference(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pref)
}

// RecordSelection logs a store pick and returns the caller's current weights.
func (h *PreferenceHandler) RecordSelection(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.SelectionInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid selection input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	pref, err := h.preferenceUC.RecordSelection(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pref)
}
