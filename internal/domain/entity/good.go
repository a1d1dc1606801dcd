package entity

import "time"

// Good is a catalog product keyed by the upstream goodId.
type Good struct {
	ID           int64
	GoodID       string
	Name         string
	TotalCount   *int
	DivisionCode *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
