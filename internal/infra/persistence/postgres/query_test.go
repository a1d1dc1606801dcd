package postgres

import (
	"sync"
	"testing"

	"storeradar/internal/infra/persistence/model"
	"storeradar/internal/infra/persistence/postgres/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gen/field"
	"gorm.io/gorm/schema"
)

// Regenerate with `go run ./cmd/gen` when this fails.
func TestGeneratedQueryMatchesModels(t *testing.T) {
	q := query.Use(newTestDB(t))

	tests := []struct {
		name   string
		model  any
		table  string
		lookup func(string) (field.OrderExpr, bool)
	}{
		{name: "goods", model: &model.GoodModel{}, table: q.GoodModel.TableName(), lookup: q.GoodModel.GetFieldByName},
		{name: "stores", model: &model.StoreModel{}, table: q.StoreModel.TableName(), lookup: q.StoreModel.GetFieldByName},
		{name: "prices", model: &model.PriceModel{}, table: q.PriceModel.TableName(), lookup: q.PriceModel.GetFieldByName},
		{name: "user_preferences", model: &model.UserPreferenceModel{}, table: q.UserPreferenceModel.TableName(), lookup: q.UserPreferenceModel.GetFieldByName},
		{name: "user_selection_log", model: &model.UserSelectionLogModel{}, table: q.UserSelectionLogModel.TableName(), lookup: q.UserSelectionLogModel.GetFieldByName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := schema.Parse(tt.model, &sync.Map{}, schema.NamingStrategy{})
			require.NoError(t, err)

			assert.Equal(t, s.Table, tt.table)
			for _, column := range s.DBNames {
				_, ok := tt.lookup(column)
				assert.True(t, ok, "generated query is missing column %s", column)
			}
		})
	}
}
