package repository

import (
	"context"

	"storeradar/internal/domain/entity"
)

// PreferenceRepository stores the adaptive price/distance weights per user.
type PreferenceRepository interface {
	// CreateDefault inserts 0.5/0.5 weights unless the user already has a row.
	CreateDefault(ctx context.Context, userID int64) error

	// Find returns ErrPreferenceNotFound for unknown users.
	Find(ctx context.Context, userID int64) (*entity.UserPreference, error)

	// IncrementSelectionCount atomically adds one and returns the new count.
	IncrementSelectionCount(ctx context.Context, userID int64) (int, error)

	UpdateWeights(ctx context.Context, userID int64, weightPrice, weightDistance float64) error
}

// SelectionLogRepository appends user selection events.
type SelectionLogRepository interface {
	Insert(ctx context.Context, log *entity.UserSelectionLog) error

	// RecentPreferenceTypes returns the preference types of the user's latest
	// limit selections, newest first.
	RecentPreferenceTypes(ctx context.Context, userID int64, limit int) ([]entity.PreferenceType, error)
}
