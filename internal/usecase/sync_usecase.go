// Package usecase defines the application's business operations.
package usecase

import (
	"context"

	"storeradar/internal/domain/entity"
)

// SyncUsecase pulls the public price catalog into the local store.
type SyncUsecase interface {
	// SyncCatalog runs goods sync then store sync. A goods failure skips stores.
	SyncCatalog(ctx context.Context) (*entity.CatalogSyncResult, error)

	// SyncGoods aborts on the first failed upsert.
	SyncGoods(ctx context.Context) (*entity.GoodsSyncResult, error)

	// SyncStores geocodes and upserts stores, skipping items that cannot be located.
	SyncStores(ctx context.Context) (*entity.StoreSyncResult, error)

	// SyncPrices fetches one inspect day for every known store. Failures are isolated per store.
	SyncPrices(ctx context.Context, day entity.InspectDay) (*entity.PriceSyncResult, error)

	// SyncRegions inserts unseen region codes.
	SyncRegions(ctx context.Context) (*entity.RegionSyncResult, error)
}
