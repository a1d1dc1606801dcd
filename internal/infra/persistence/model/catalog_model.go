package model

import (
	"time"
)

// GoodModel is the GORM-specific struct for the 'goods' table.
type GoodModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	GoodID       string  `gorm:"type:varchar(32);not null;uniqueIndex"`
	GoodName     string  `gorm:"type:varchar(255);not null"`
	TotalCnt     *int    `gorm:"column:total_cnt"`
	TotalDivCode *string `gorm:"type:varchar(16)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (GoodModel) TableName() string {
	return "goods"
}

// StoreModel is the GORM-specific struct for the 'stores' table.
// Latitude and Longitude are written together or not at all.
type StoreModel struct {
	ID             int64    `gorm:"primaryKey;autoIncrement"`
	StoreID        string   `gorm:"type:varchar(32);not null;uniqueIndex"`
	StoreName      string   `gorm:"type:varchar(255);not null"`
	TelNo          *string  `gorm:"type:varchar(32)"`
	PostNo         *string  `gorm:"type:varchar(16)"`
	LotAddr        *string  `gorm:"type:varchar(255)"`
	RoadAddr       *string  `gorm:"type:varchar(255)"`
	Latitude       *float64 `gorm:"type:double precision"`
	Longitude      *float64 `gorm:"type:double precision"`
	AreaCode       string   `gorm:"type:varchar(16);not null"`
	AreaDetailCode string   `gorm:"type:varchar(16);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (StoreModel) TableName() string {
	return "stores"
}

// PriceModel is the GORM-specific struct for the 'prices' table.
// good_id and store_id hold upstream identifiers.
type PriceModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	GoodID        string  `gorm:"type:varchar(32);not null;uniqueIndex:ux_prices_good_store_day,priority:1"`
	StoreID       string  `gorm:"type:varchar(32);not null;uniqueIndex:ux_prices_good_store_day,priority:2"`
	InspectDay    string  `gorm:"type:char(8);not null;uniqueIndex:ux_prices_good_store_day,priority:3;index"`
	Price         int     `gorm:"not null"`
	IsOnePlusOne  string  `gorm:"type:char(1);not null;default:N"`
	IsDiscount    string  `gorm:"type:char(1);not null;default:N"`
	DiscountStart *string `gorm:"type:char(8)"`
	DiscountEnd   *string `gorm:"type:char(8)"`
	CreatedAt     time.Time
}

func (PriceModel) TableName() string {
	return "prices"
}

// RegionModel is the GORM-specific struct for the 'regions' table.
type RegionModel struct {
	Code       string `gorm:"type:varchar(16);primaryKey"`
	Name       string `gorm:"type:varchar(64);not null"`
	ParentCode string `gorm:"type:varchar(16);not null"`
	Level      int16  `gorm:"not null"`
}

func (RegionModel) TableName() string {
	return "regions"
}
