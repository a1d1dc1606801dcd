package entity

import "time"

// PriceChange is a derived day-over-day delta. Rows are append-only.
type PriceChange struct {
	ID            int64
	GoodID        string
	StoreID       string
	PreviousPrice int
	CurrentPrice  int
	Diff          int
	InspectDay    InspectDay
	CreatedAt     time.Time
}

// TrendDirection selects rising or falling prices.
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
)

// ParseTrendDirection falls back to TrendDown for anything but "up".
func ParseTrendDirection(s string) TrendDirection {
	if TrendDirection(s) == TrendUp {
		return TrendUp
	}

	return TrendDown
}

// PriceTrend aggregates the price changes of one good on the latest differenced day.
type PriceTrend struct {
	GoodID     string     `json:"good_id"`
	GoodName   string     `json:"good_name"`
	AvgDiff    int        `json:"avg_diff"`
	MinDiff    int        `json:"min_diff"`
	MaxDiff    int        `json:"max_diff"`
	Count      int64      `json:"change_count"`
	InspectDay InspectDay `json:"inspect_day"`
}
