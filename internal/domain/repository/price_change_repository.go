package repository

import (
	"context"

	"storeradar/internal/domain/entity"
)

// PriceChangeRepository derives and queries day-over-day price deltas.
type PriceChangeRepository interface {
	// InsertDiff writes one row per (good, store) pair priced on both days,
	// tagged with latest, and returns how many rows were written.
	InsertDiff(ctx context.Context, latest, prev entity.InspectDay) (int64, error)

	// FindTrend groups the changes of the most recent differenced day by good and
	// returns up to limit groups ranked by average diff.
	FindTrend(ctx context.Context, direction entity.TrendDirection, limit int) ([]*entity.PriceTrend, error)
}
