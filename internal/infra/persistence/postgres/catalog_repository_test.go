package postgres

import (
	"context"
	"testing"

	"storeradar/internal/domain/entity"
	"storeradar/internal/domain/repository"
	"storeradar/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoodRepository_UpsertReplacesMutableFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoodRepository(db)
	ctx := context.Background()

	count := 12
	require.NoError(t, repo.Upsert(ctx, &entity.Good{GoodID: "G1", Name: "Milk", TotalCount: &count, DivisionCode: strPtr("ML")}))

	require.NoError(t, repo.Upsert(ctx, &entity.Good{GoodID: "G1", Name: "Whole Milk"}))

	var goods []model.GoodModel
	require.NoError(t, db.Find(&goods).Error)
	require.Len(t, goods, 1)
	assert.Equal(t, "Whole Milk", goods[0].GoodName)
	assert.Nil(t, goods[0].TotalCnt)
	assert.Nil(t, goods[0].TotalDivCode)
}

func TestStoreRepository_UpsertAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	point := orb.Point{127.0276, 37.4979}
	require.NoError(t, repo.Upsert(ctx, &entity.Store{
		StoreID: "200", Name: "B Mart", RoadAddress: strPtr("Seoul road 1"),
		Location: &point, AreaCode: "020100000", AreaDetailCode: "020101000",
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.Store{
		StoreID: "100", Name: "A Mart", LotAddress: strPtr("Seoul lot 2"),
		AreaCode: "020100000", AreaDetailCode: "020101000",
	}))

	moved := orb.Point{126.9780, 37.5665}
	require.NoError(t, repo.Upsert(ctx, &entity.Store{
		StoreID: "200", Name: "B Mart Renamed", RoadAddress: strPtr("Seoul road 9"),
		Location: &moved, AreaCode: "020100000", AreaDetailCode: "020102000",
	}))

	ids, err := repo.ListStoreIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"100", "200"}, ids)

	var stored model.StoreModel
	require.NoError(t, db.Where("store_id = ?", "200").First(&stored).Error)
	assert.Equal(t, "B Mart Renamed", stored.StoreName)
	assert.Equal(t, "020102000", stored.AreaDetailCode)
	require.NotNil(t, stored.Latitude)
	require.NotNil(t, stored.Longitude)
	assert.InDelta(t, 37.5665, *stored.Latitude, 1e-9)
	assert.InDelta(t, 126.9780, *stored.Longitude, 1e-9)

	store := stored.ToDomain()
	require.NotNil(t, store.Location)
	assert.InDelta(t, 126.9780, store.Location.Lon(), 1e-9)
}

func TestPriceRepository_UpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPriceRepository(db)
	ctx := context.Background()

	price := &entity.Price{GoodID: "G1", StoreID: "S1", InspectDay: "20240105", Price: 1000, PlusOne: "N", Discounted: "N"}
	require.NoError(t, repo.Upsert(ctx, price))

	again := &entity.Price{GoodID: "G1", StoreID: "S1", InspectDay: "20240105", Price: 900, PlusOne: "Y", Discounted: "Y",
		DiscountStart: strPtr("20240101"), DiscountEnd: strPtr("20240110")}
	require.NoError(t, repo.Upsert(ctx, again))

	var rows []model.PriceModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 900, rows[0].Price)
	assert.Equal(t, "Y", rows[0].IsOnePlusOne)
	assert.Equal(t, "Y", rows[0].IsDiscount)
	require.NotNil(t, rows[0].DiscountEnd)
	assert.Equal(t, "20240110", *rows[0].DiscountEnd)
}

func TestPriceRepository_FindPrevDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewPriceRepository(db)
	ctx := context.Background()

	for _, day := range []entity.InspectDay{"20240101", "20240103", "20240105"} {
		require.NoError(t, repo.Upsert(ctx, &entity.Price{GoodID: "G1", StoreID: "S1", InspectDay: day, Price: 100, PlusOne: "N", Discounted: "N"}))
	}

	prev, err := repo.FindPrevDay(ctx, "20240105")
	require.NoError(t, err)
	assert.Equal(t, entity.InspectDay("20240103"), prev)

	prev, err = repo.FindPrevDay(ctx, "20240102")
	require.NoError(t, err)
	assert.Equal(t, entity.InspectDay("20240101"), prev)

	_, err = repo.FindPrevDay(ctx, "20240101")
	assert.ErrorIs(t, err, repository.ErrNoPreviousInspectDay)
}

func TestRegionRepository_InsertIfAbsentKeepsExisting(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegionRepository(db)
	ctx := context.Background()

	inserted, err := repo.InsertIfAbsent(ctx, &entity.Region{Code: "020100000", Name: "Seoul", ParentCode: "020000000", Level: 1})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertIfAbsent(ctx, &entity.Region{Code: "020100000", Name: "Renamed", ParentCode: "020000000", Level: 1})
	require.NoError(t, err)
	assert.False(t, inserted)

	var region model.RegionModel
	require.NoError(t, db.First(&region, "code = ?", "020100000").Error)
	assert.Equal(t, "Seoul", region.Name)
}
