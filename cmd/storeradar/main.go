package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"storeradar/internal/app"
	"storeradar/internal/delivery"
	"storeradar/internal/delivery/api"
	"storeradar/internal/delivery/api/middleware"
	"storeradar/internal/delivery/api/router/handler"
	"storeradar/internal/delivery/scheduler"
	"storeradar/internal/domain/service"
	"storeradar/internal/infra/progress"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		app.Infra(),
		app.Repositories(),
		app.Services(),
		app.Usecases(),
		injectProgress(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

// injectProgress routes sync progress to the log and the item counters.
func injectProgress() fx.Option {
	return fx.Provide(
		fx.Annotate(
			progress.NewSlogReporter,
			fx.As(new(service.ProgressReporter)),
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSyncHandler,
			handler.NewPriceChangeHandler,
			handler.NewPreferenceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer launches every delivery once the app has started, so the
// database ping and Redis ping hooks run before the first request or sync cycle.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.StartHook(func() {
		for _, delivery := range params.Deliveries {
			go func() {
				if err := delivery.Serve(ctx); err != nil {
					slog.Error("Failed to start server", slog.Any("error", err))
					os.Exit(1)
				}
			}()
		}
	}))
}
