package scheduler

import (
	"context"
	"time"

	"storeradar/internal/domain/entity"
	"storeradar/internal/usecase"
)

// Job names, also used as metric labels.
const (
	JobCatalogSync     = "catalog-sync"
	JobRegionSync      = "region-sync"
	JobPriceSync       = "price-sync"
	JobPriceChangeSync = "price-change-sync"
)

// dayFunc yields the inspect day a cycle targets.
type dayFunc func() entity.InspectDay

// newSyncJobs returns the cycle in execution order. Price jobs resolve their
// inspect day when they run, so a cycle crossing midnight stays consistent per job.
func newSyncJobs(syncUC usecase.SyncUsecase, priceChangeUC usecase.PriceChangeUsecase, day dayFunc) []Job {
	return []Job{
		jobFunc{name: JobCatalogSync, run: func(ctx context.Context) error {
			_, err := syncUC.SyncCatalog(ctx)

			return err
		}},
		jobFunc{name: JobRegionSync, run: func(ctx context.Context) error {
			_, err := syncUC.SyncRegions(ctx)

			return err
		}},
		jobFunc{name: JobPriceSync, run: func(ctx context.Context) error {
			_, err := syncUC.SyncPrices(ctx, day())

			return err
		}},
		jobFunc{name: JobPriceChangeSync, run: func(ctx context.Context) error {
			_, err := priceChangeUC.SyncPriceChanges(ctx, day())

			return err
		}},
	}
}

// inspectDayDaysAgo formats the calendar day offsetDays before now in loc.
func inspectDayDaysAgo(now time.Time, loc *time.Location, offsetDays int) entity.InspectDay {
	return entity.InspectDayOf(now.In(loc).AddDate(0, 0, -offsetDays))
}
