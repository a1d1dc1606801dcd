// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storeradar/config"
	"storeradar/internal/delivery/api/middleware"
	"storeradar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SyncHandler        *handler.SyncHandler
	PriceChangeHandler *handler.PriceChangeHandler
	PreferenceHandler  *handler.PreferenceHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Registry           *prometheus.Registry `optional:"true"`
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	syncHandler        *handler.SyncHandler
	priceChangeHandler *handler.PriceChangeHandler
	preferenceHandler  *handler.PreferenceHandler
	authMiddleware     *middleware.AuthMiddleware
	registry           *prometheus.Registry
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		syncHandler:        params.SyncHandler,
		priceChangeHandler: params.PriceChangeHandler,
		preferenceHandler:  params.PreferenceHandler,
		authMiddleware:     params.AuthMiddleware,
		registry:           params.Registry,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled && r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})))
	}

	apiV1 := e.Group("/api/v1")

	// Sync triggers
	syncGroup := apiV1.Group("/sync")
	{
		syncGroup.POST("/catalog", r.syncHandler.SyncCatalog)
		syncGroup.POST("/prices", r.syncHandler.SyncPrices)
		syncGroup.POST("/regions", r.syncHandler.SyncRegions)
		syncGroup.POST("/price-changes", r.syncHandler.SyncPriceChanges)
	}

	apiV1.GET("/price-changes", r.priceChangeHandler.GetPriceTrend)

	// Preference routes act on the token subject
	preferencesGroup := apiV1.Group("/preferences")
	preferencesGroup.Use(r.authMiddleware.Authenticate)
	{
		preferencesGroup.POST("", r.preferenceHandler.InitPreference)
		preferencesGroup.GET("", r.preferenceHandler.GetPreference)
		preferencesGroup.POST("/selections", r.preferenceHandler.RecordSelection)
	}
}
