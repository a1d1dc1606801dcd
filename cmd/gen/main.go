package main

import (
	"storeradar/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Regions and price changes stay off this list: their repositories need
// RowsAffected from ON CONFLICT DO NOTHING or run hand-written aggregate SQL.
func main() {
	models := []any{
		model.GoodModel{},
		model.StoreModel{},
		model.PriceModel{},
		model.UserPreferenceModel{},
		model.UserSelectionLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
