package usecase

import (
	"context"

	"storeradar/internal/domain/entity"
)

// PriceChangeUsecase derives day-over-day price deltas and reports trends.
type PriceChangeUsecase interface {
	// SyncPriceChanges differences latest against the closest earlier inspect day
	// and returns the number of change rows written.
	SyncPriceChanges(ctx context.Context, latest entity.InspectDay) (int64, error)

	// GetPriceTrend returns the top goods by average change on the latest
	// differenced day. Any direction other than "up" means "down".
	GetPriceTrend(ctx context.Context, direction string) ([]*entity.PriceTrend, error)
}
