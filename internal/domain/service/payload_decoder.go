package service

import "storeradar/internal/domain/entity"

// PayloadDecoder maps raw catalog XML onto typed items.
// Malformed documents and missing required elements are KindDecode errors.
type PayloadDecoder interface {
	DecodeGoods(raw string) ([]entity.GoodItem, error)
	DecodeStores(raw string) ([]entity.StoreItem, error)
	DecodePrices(raw string) ([]entity.PriceItem, error)
	DecodeRegions(raw string) ([]entity.RegionItem, error)

	// HasPriceData reports whether a price payload carries any item at all.
	HasPriceData(raw string) bool
}
