package service

import (
	"context"

	"storeradar/internal/domain/entity"
)

// PublicDataClient fetches raw XML payloads from the government price catalog.
// Non-2xx responses and transport failures are both returned as KindTransport errors.
type PublicDataClient interface {
	FetchGoods(ctx context.Context) (string, error)
	FetchStores(ctx context.Context) (string, error)
	FetchPrices(ctx context.Context, day entity.InspectDay, storeID string) (string, error)
	FetchRegions(ctx context.Context) (string, error)
}
