package entity

import "time"

// Price is one observation of a good at a store on an inspect day.
// GoodID and StoreID hold the upstream identifiers.
type Price struct {
	ID            int64
	GoodID        string
	StoreID       string
	InspectDay    InspectDay
	Price         int
	PlusOne       string // Y/N
	Discounted    string // Y/N
	DiscountStart *string
	DiscountEnd   *string
	CreatedAt     time.Time
}
