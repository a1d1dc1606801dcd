// Package app groups the fx providers shared by the server and the CLIs.
package app

import (
	"context"

	"storeradar/config"
	"storeradar/internal/infra/archive"
	"storeradar/internal/infra/auth"
	"storeradar/internal/infra/geocode"
	"storeradar/internal/infra/lock"
	logs "storeradar/internal/infra/log"
	"storeradar/internal/infra/metrics"
	"storeradar/internal/infra/persistence/postgres"
	"storeradar/internal/infra/publicdata"
	"storeradar/internal/infra/pubsub"
	"storeradar/internal/usecase/impl"

	"go.uber.org/fx"
)

// Infra provides config, logging, the database and the optional side systems.
func Infra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.NewRegistry,
		metrics.NewFromRegistry,
		archive.New,
		lock.New,
		pubsub.NewEventPublisher,
	)
}

func Repositories() fx.Option {
	return fx.Provide(
		postgres.NewGoodRepository,
		postgres.NewStoreRepository,
		postgres.NewPriceRepository,
		postgres.NewRegionRepository,
		postgres.NewPriceChangeRepository,
		postgres.NewPreferenceRepository,
		postgres.NewTransactionManager,
	)
}

// Services provides the upstream clients and token decoding.
func Services() fx.Option {
	return fx.Provide(
		publicdata.New,
		publicdata.NewDecoder,
		geocode.New,
		auth.NewJWTService,
	)
}

func Usecases() fx.Option {
	return fx.Provide(
		impl.NewSyncService,
		impl.NewPriceChangeService,
		impl.NewPreferenceService,
	)
}
