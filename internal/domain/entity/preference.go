package entity

import "time"

// PreferenceType is the ranking dimension a user favored for one selection.
type PreferenceType string

const (
	PreferencePrice    PreferenceType = "price"
	PreferenceDistance PreferenceType = "distance"
)

// Valid reports whether t is a known preference type.
func (t PreferenceType) Valid() bool {
	return t == PreferencePrice || t == PreferenceDistance
}

// UserPreference holds the price/distance weights of one user.
// WeightDistance is always 1 - WeightPrice.
type UserPreference struct {
	UserID         int64   `json:"user_id"`
	WeightPrice    float64 `json:"w_price"`
	WeightDistance float64 `json:"w_distance"`
	SelectionCount int     `json:"selection_count"`
}

// UserSelectionLog is one append-only selection event.
type UserSelectionLog struct {
	ID             int64
	UserID         int64
	StoreID        string
	GoodID         string
	PreferenceType PreferenceType
	Price          int
	CreatedAt      time.Time
}
