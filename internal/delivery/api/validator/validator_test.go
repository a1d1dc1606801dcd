package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type selection struct {
	StoreID        string `json:"store_id" validate:"required,max=32"`
	PreferenceType string `json:"preference_type" validate:"required,oneof=price distance"`
	Price          int    `json:"price" validate:"gte=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&selection{StoreID: "S1", PreferenceType: "price", Price: 10}))

	err := v.Validate(&selection{PreferenceType: "rating", Price: -1})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"store_id":        "required",
		"preference_type": "oneof=price distance",
		"price":           "gte=0",
	}, FieldErrors(err))
}

func TestFieldErrors_NotValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
}
