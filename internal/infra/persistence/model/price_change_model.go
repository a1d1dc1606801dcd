package model

import "time"

// PriceChangeModel is the GORM-specific struct for the 'price_change' table.
// Rows are append-only and intentionally carry no uniqueness constraint.
type PriceChangeModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	GoodID        string `gorm:"type:varchar(32);not null"`
	StoreID       string `gorm:"type:varchar(32);not null"`
	PreviousPrice int    `gorm:"not null"`
	CurrentPrice  int    `gorm:"not null"`
	Diff          int    `gorm:"not null"`
	InspectDay    string `gorm:"type:char(8);not null;index"`
	CreatedAt     time.Time
}

func (PriceChangeModel) TableName() string {
	return "price_change"
}

// PriceTrendRow is the scan target of the trend aggregate.
type PriceTrendRow struct {
	GoodID      string
	GoodName    string
	AvgDiff     float64
	MinDiff     int
	MaxDiff     int
	ChangeCount int64
	InspectDay  string
}
