package usecase

import (
	"context"

	"storeradar/internal/domain/entity"
)

// SelectionInput is one store pick made by a user.
type SelectionInput struct {
	StoreID        string                `json:"store_id" validate:"required,max=32"`
	GoodID         string                `json:"good_id" validate:"required,max=32"`
	PreferenceType entity.PreferenceType `json:"preference_type" validate:"required,oneof=price distance"`
	Price          int                   `json:"price" validate:"gte=0"`
}

// PreferenceUsecase adapts per-user price/distance weights from selections.
// userID is the token subject and must be a decimal integer.
type PreferenceUsecase interface {
	// RecordSelection logs the selection and, on every tenth one, re-blends the weights.
	RecordSelection(ctx context.Context, userID string, input *SelectionInput) (*entity.UserPreference, error)

	GetPreference(ctx context.Context, userID string) (*entity.UserPreference, error)

	// InitPreference creates default weights; existing weights are kept.
	InitPreference(ctx context.Context, userID string) error
}
