package repository

import (
	"context"

	"storeradar/internal/domain/entity"
)

// GoodRepository persists catalog goods keyed by the upstream good id.
type GoodRepository interface {
	// Upsert inserts the good or replaces its mutable fields.
	Upsert(ctx context.Context, good *entity.Good) error
}

// StoreRepository persists stores keyed by the upstream store id.
type StoreRepository interface {
	// Upsert inserts the store or replaces its mutable fields, coordinates included.
	Upsert(ctx context.Context, store *entity.Store) error

	// ListStoreIDs returns every known upstream store id in ascending order.
	ListStoreIDs(ctx context.Context) ([]string, error)
}

// PriceRepository persists price observations keyed by (good, store, inspect day).
type PriceRepository interface {
	// Upsert inserts the observation or replaces price, flags and discount window
	// and refreshes created_at.
	Upsert(ctx context.Context, price *entity.Price) error

	// FindPrevDay returns the greatest inspect day strictly before day.
	// Returns ErrNoPreviousInspectDay when none exists.
	FindPrevDay(ctx context.Context, day entity.InspectDay) (entity.InspectDay, error)
}

// RegionRepository persists region codes. Existing codes are never updated.
type RegionRepository interface {
	// InsertIfAbsent reports whether a new row was written.
	InsertIfAbsent(ctx context.Context, region *entity.Region) (bool, error)
}
