package entity

// The item types below mirror one upstream XML record each. Optional fields are
// nil when the element is missing or blank.

// GoodItem is one record of the goods catalog payload.
type GoodItem struct {
	GoodID       string
	GoodName     string
	TotalCount   *string
	TotalDivCode *string
}

// StoreItem is one record of the store catalog payload.
type StoreItem struct {
	StoreID        string
	StoreName      string
	Phone          *string
	PostalCode     *string
	LotAddress     *string
	RoadAddress    *string
	AreaCode       string
	AreaDetailCode string
}

// PriceItem is one record of the per-store price payload. Price is kept raw
// because the upstream sends blanks for unpriced goods.
type PriceItem struct {
	InspectDay    string
	StoreID       string
	GoodID        string
	Price         string
	PlusOne       *string
	Discounted    *string
	DiscountStart *string
	DiscountEnd   *string
}

// RegionItem is one record of the standard region code payload.
type RegionItem struct {
	Code       string
	Name       string
	ParentCode string
}
