package entity

// GoodsSyncResult summarizes a goods sync.
type GoodsSyncResult struct {
	Total    int `json:"total"`
	Upserted int `json:"upserted"`
}

// StoreSyncResult summarizes a store sync. Failed counts geocoding misses and per-item errors.
type StoreSyncResult struct {
	Total     int `json:"total"`
	Upserted  int `json:"upserted"`
	NoAddress int `json:"no_address"`
	Failed    int `json:"failed"`
}

// CatalogSyncResult combines the goods and store passes.
type CatalogSyncResult struct {
	Goods  *GoodsSyncResult `json:"goods"`
	Stores *StoreSyncResult `json:"stores"`
}

// StoreFailure records why one store was abandoned during price sync.
type StoreFailure struct {
	StoreID string `json:"store_id"`
	Reason  string `json:"reason"`
}

// PriceSyncResult summarizes a price sync for one inspect day.
type PriceSyncResult struct {
	InspectDay    InspectDay     `json:"inspect_day"`
	Stores        int            `json:"stores"`
	StoresSynced  int            `json:"stores_synced"`
	StoresNoData  int            `json:"stores_no_data"`
	StoresFailed  int            `json:"stores_failed"`
	Upserted      int            `json:"upserted"`
	SkippedBlank  int            `json:"skipped_blank"`
	FailedItems   int            `json:"failed_items"`
	StoreFailures []StoreFailure `json:"store_failures,omitempty"`
}

// RegionSyncResult summarizes a region sync.
type RegionSyncResult struct {
	Total    int `json:"total"`
	Inserted int `json:"inserted"`
}

// PriceChangeSyncResult summarizes one differencing run.
type PriceChangeSyncResult struct {
	InspectDay  InspectDay `json:"inspect_day"`
	PreviousDay InspectDay `json:"previous_day,omitempty"`
	Inserted    int64      `json:"inserted"`
}
