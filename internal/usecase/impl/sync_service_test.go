package impl

import (
	"context"
	"testing"

	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/service"
	mockRepo "storeradar/internal/mocks/repository"
	mockSvc "storeradar/internal/mocks/service"
	"storeradar/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// syncServiceFixtures holds all test dependencies for sync service tests.
type syncServiceFixtures struct {
	service    usecase.SyncUsecase
	client     *mockSvc.MockPublicDataClient
	decoder    *mockSvc.MockPayloadDecoder
	geocoder   *mockSvc.MockGeocoder
	progress   *mockSvc.MockProgressReporter
	goodRepo   *mockRepo.MockGoodRepository
	storeRepo  *mockRepo.MockStoreRepository
	priceRepo  *mockRepo.MockPriceRepository
	regionRepo *mockRepo.MockRegionRepository
}

func createTestSyncService(t *testing.T) syncServiceFixtures {
	f := syncServiceFixtures{
		client:     mockSvc.NewMockPublicDataClient(t),
		decoder:    mockSvc.NewMockPayloadDecoder(t),
		geocoder:   mockSvc.NewMockGeocoder(t),
		progress:   mockSvc.NewMockProgressReporter(t),
		goodRepo:   mockRepo.NewMockGoodRepository(t),
		storeRepo:  mockRepo.NewMockStoreRepository(t),
		priceRepo:  mockRepo.NewMockPriceRepository(t),
		regionRepo: mockRepo.NewMockRegionRepository(t),
	}
	f.service = NewSyncService(SyncServiceParams{
		Client:     f.client,
		Decoder:    f.decoder,
		Geocoder:   f.geocoder,
		GoodRepo:   f.goodRepo,
		StoreRepo:  f.storeRepo,
		PriceRepo:  f.priceRepo,
		RegionRepo: f.regionRepo,
		Progress:   f.progress,
		Logger:     newDiscardLogger(),
	})

	return f
}

func (f syncServiceFixtures) allowProgress() {
	f.progress.EXPECT().Report(mock.Anything).Return().Maybe()
	f.progress.EXPECT().Done(mock.Anything).Return().Maybe()
}

func TestSyncService_SyncGoods(t *testing.T) {
	fx := createTestSyncService(t)
	fx.allowProgress()
	ctx := context.Background()

	fx.client.EXPECT().FetchGoods(ctx).Return("<goods/>", nil)
	fx.decoder.EXPECT().DecodeGoods("<goods/>").Return([]entity.GoodItem{
		{GoodID: "G1", GoodName: "Milk", TotalCount: strPtr("12"), TotalDivCode: strPtr("ML")},
		{GoodID: "G2", GoodName: "Eggs", TotalCount: strPtr("a dozen")},
	}, nil)

	var saved []*entity.Good
	fx.goodRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Good")).
		RunAndReturn(func(_ context.Context, good *entity.Good) error {
			saved = append(saved, good)

			return nil
		}).Times(2)

	result, err := fx.service.SyncGoods(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.GoodsSyncResult{Total: 2, Upserted: 2}, result)

	require.Len(t, saved, 2)
	require.NotNil(t, saved[0].TotalCount)
	assert.Equal(t, 12, *saved[0].TotalCount)
	assert.Nil(t, saved[1].TotalCount, "unparsable count is absent")
}

func TestSyncService_SyncGoods_AbortsOnFirstFailure(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	fx.client.EXPECT().FetchGoods(ctx).Return("<goods/>", nil)
	fx.decoder.EXPECT().DecodeGoods("<goods/>").Return([]entity.GoodItem{
		{GoodID: "G1", GoodName: "Milk"},
		{GoodID: "G2", GoodName: "Eggs"},
		{GoodID: "G3", GoodName: "Rice"},
	}, nil)

	fx.goodRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(g *entity.Good) bool { return g.GoodID == "G1" })).Return(nil).Once()
	fx.goodRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(g *entity.Good) bool { return g.GoodID == "G2" })).
		Return(domainerrors.New(domainerrors.KindConstraint, "goodRepository.Upsert", "boom", nil)).Once()

	result, err := fx.service.SyncGoods(ctx)
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindConstraint))
	assert.Equal(t, 1, result.Upserted)
}

func TestSyncService_SyncGoods_FetchFailure(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	fx.client.EXPECT().FetchGoods(ctx).
		Return("", domainerrors.New(domainerrors.KindTransport, "publicdata.FetchGoods", "dial", nil))

	result, err := fx.service.SyncGoods(ctx)
	assert.Nil(t, result)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindTransport))
}

func TestSyncService_SyncStores_IsolatesItems(t *testing.T) {
	fx := createTestSyncService(t)
	fx.allowProgress()
	ctx := context.Background()

	fx.client.EXPECT().FetchStores(ctx).Return("<stores/>", nil)
	fx.decoder.EXPECT().DecodeStores("<stores/>").Return([]entity.StoreItem{
		{StoreID: "S0", StoreName: "Nowhere"},
		{StoreID: "S1", StoreName: "Road", RoadAddress: strPtr("road 1"), LotAddress: strPtr("lot 1")},
		{StoreID: "S2", StoreName: "Lot", LotAddress: strPtr("lot 2")},
		{StoreID: "S3", StoreName: "Flaky", RoadAddress: strPtr("road 3")},
	}, nil)

	fx.geocoder.EXPECT().Geocode(ctx, "road 1").Return(orb.Point{127.0, 37.5}, true, nil)
	fx.geocoder.EXPECT().Geocode(ctx, "lot 2").Return(orb.Point{}, false, nil)
	fx.geocoder.EXPECT().Geocode(ctx, "road 3").
		Return(orb.Point{}, false, domainerrors.New(domainerrors.KindTransport, "geocode.Geocode", "timeout", nil))

	fx.storeRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(s *entity.Store) bool {
		return s.StoreID == "S1" && s.Location != nil && s.Location.Lon() == 127.0 && s.Location.Lat() == 37.5
	})).Return(nil).Once()

	result, err := fx.service.SyncStores(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.StoreSyncResult{Total: 4, Upserted: 1, NoAddress: 1, Failed: 2}, result)
}

func TestSyncService_SyncStores_ReportsRunningCounts(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	fx.client.EXPECT().FetchStores(ctx).Return("<stores/>", nil)
	fx.decoder.EXPECT().DecodeStores("<stores/>").Return([]entity.StoreItem{
		{StoreID: "S1", RoadAddress: strPtr("road 1")},
		{StoreID: "S2", RoadAddress: strPtr("road 2")},
	}, nil)
	fx.geocoder.EXPECT().Geocode(ctx, "road 1").Return(orb.Point{1, 2}, true, nil)
	fx.geocoder.EXPECT().Geocode(ctx, "road 2").Return(orb.Point{}, false, nil)
	fx.storeRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

	fx.progress.EXPECT().Report(mock.MatchedBy(func(p service.Progress) bool {
		return p.Processed == 1 && p.Succeeded == 1 && p.Failed == 0
	})).Return().Once()
	fx.progress.EXPECT().Report(mock.MatchedBy(func(p service.Progress) bool {
		return p.Processed == 2 && p.Succeeded == 1 && p.Failed == 1
	})).Return().Once()
	fx.progress.EXPECT().Done(mock.MatchedBy(func(p service.Progress) bool {
		return p.Step == "stores" && p.Total == 2
	})).Return().Once()

	_, err := fx.service.SyncStores(ctx)
	require.NoError(t, err)
}

func TestSyncService_SyncPrices_PerStoreIsolation(t *testing.T) {
	fx := createTestSyncService(t)
	fx.allowProgress()
	ctx := context.Background()
	day := entity.InspectDay("20240105")

	fx.storeRepo.EXPECT().ListStoreIDs(ctx).Return([]string{"S1", "S2", "S3", "S4"}, nil)

	// S1 has no data for the day.
	fx.client.EXPECT().FetchPrices(ctx, day, "S1").Return("<empty/>", nil)
	fx.decoder.EXPECT().HasPriceData("<empty/>").Return(false)

	// S2 carries a blank price between two real ones.
	fx.client.EXPECT().FetchPrices(ctx, day, "S2").Return("<s2/>", nil)
	fx.decoder.EXPECT().HasPriceData("<s2/>").Return(true)
	fx.decoder.EXPECT().DecodePrices("<s2/>").Return([]entity.PriceItem{
		{InspectDay: "20240105", StoreID: "S2", GoodID: "G1", Price: "1500"},
		{InspectDay: "20240105", StoreID: "S2", GoodID: "G2", Price: ""},
		{InspectDay: "20240105", StoreID: "S2", GoodID: "G3", Price: "2000", PlusOne: strPtr("Y")},
	}, nil)

	// S3 cannot be fetched.
	fx.client.EXPECT().FetchPrices(ctx, day, "S3").
		Return("", domainerrors.New(domainerrors.KindTransport, "publicdata.FetchPrices", "502", nil))

	// S4 returns a malformed document.
	fx.client.EXPECT().FetchPrices(ctx, day, "S4").Return("<s4", nil)
	fx.decoder.EXPECT().HasPriceData("<s4").Return(true)
	fx.decoder.EXPECT().DecodePrices("<s4").
		Return(nil, domainerrors.New(domainerrors.KindDecode, "publicdata.Decode", "unexpected EOF", nil))

	var saved []*entity.Price
	fx.priceRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Price")).
		RunAndReturn(func(_ context.Context, p *entity.Price) error {
			saved = append(saved, p)

			return nil
		})

	result, err := fx.service.SyncPrices(ctx, day)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Stores)
	assert.Equal(t, 1, result.StoresSynced)
	assert.Equal(t, 1, result.StoresNoData)
	assert.Equal(t, 2, result.StoresFailed)
	assert.Equal(t, 2, result.Upserted)
	assert.Equal(t, 1, result.SkippedBlank)
	require.Len(t, result.StoreFailures, 2)
	assert.Equal(t, "S3", result.StoreFailures[0].StoreID)

	require.Len(t, saved, 2)
	assert.Equal(t, 1500, saved[0].Price)
	assert.Equal(t, "N", saved[0].PlusOne)
	assert.Equal(t, "N", saved[0].Discounted)
	assert.Equal(t, "Y", saved[1].PlusOne)
	assert.Equal(t, day, saved[1].InspectDay)
}

func TestSyncService_SyncPrices_SkipsUnparsablePrice(t *testing.T) {
	fx := createTestSyncService(t)
	fx.allowProgress()
	ctx := context.Background()
	day := entity.InspectDay("20240105")

	fx.storeRepo.EXPECT().ListStoreIDs(ctx).Return([]string{"S1"}, nil)
	fx.client.EXPECT().FetchPrices(ctx, day, "S1").Return("<s1/>", nil)
	fx.decoder.EXPECT().HasPriceData("<s1/>").Return(true)
	fx.decoder.EXPECT().DecodePrices("<s1/>").Return([]entity.PriceItem{
		{InspectDay: "20240105", StoreID: "S1", GoodID: "G1", Price: "1,500"},
		{InspectDay: "20240105", StoreID: "S1", GoodID: "G2", Price: " 900 "},
	}, nil)
	fx.priceRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(p *entity.Price) bool {
		return p.GoodID == "G2" && p.Price == 900
	})).Return(nil).Once()

	result, err := fx.service.SyncPrices(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 1, result.FailedItems)
	assert.Equal(t, 1, result.Upserted)
	assert.Equal(t, 1, result.StoresSynced)
}

func TestSyncService_SyncPrices_AllStoresFailed(t *testing.T) {
	fx := createTestSyncService(t)
	fx.allowProgress()
	ctx := context.Background()
	day := entity.InspectDay("20240105")

	fx.storeRepo.EXPECT().ListStoreIDs(ctx).Return([]string{"S1", "S2"}, nil)
	fx.client.EXPECT().FetchPrices(ctx, day, mock.Anything).Return("", errors.New("connection reset"))

	result, err := fx.service.SyncPrices(ctx, day)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "every store")
	assert.Equal(t, 2, result.StoresFailed)
}

func TestSyncService_SyncPrices_NoStores(t *testing.T) {
	fx := createTestSyncService(t)
	fx.allowProgress()
	ctx := context.Background()

	fx.storeRepo.EXPECT().ListStoreIDs(ctx).Return(nil, nil)

	result, err := fx.service.SyncPrices(ctx, "20240105")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stores)
}

func TestSyncService_SyncRegions(t *testing.T) {
	fx := createTestSyncService(t)
	fx.allowProgress()
	ctx := context.Background()

	fx.client.EXPECT().FetchRegions(ctx).Return("<regions/>", nil)
	fx.decoder.EXPECT().DecodeRegions("<regions/>").Return([]entity.RegionItem{
		{Code: "020100000", Name: "Seoul", ParentCode: "020000000"},
		{Code: "020101000", Name: "Jongno", ParentCode: "020100000"},
	}, nil)

	fx.regionRepo.EXPECT().InsertIfAbsent(ctx, &entity.Region{Code: "020100000", Name: "Seoul", ParentCode: "020000000", Level: 1}).
		Return(false, nil)
	fx.regionRepo.EXPECT().InsertIfAbsent(ctx, &entity.Region{Code: "020101000", Name: "Jongno", ParentCode: "020100000", Level: 2}).
		Return(true, nil)

	result, err := fx.service.SyncRegions(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.RegionSyncResult{Total: 2, Inserted: 1}, result)
}

func TestSyncService_SyncCatalog_GoodsFailureSkipsStores(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	fx.client.EXPECT().FetchGoods(ctx).Return("<bad", nil)
	fx.decoder.EXPECT().DecodeGoods("<bad").
		Return(nil, domainerrors.New(domainerrors.KindDecode, "publicdata.Decode", "unexpected EOF", nil))

	result, err := fx.service.SyncCatalog(ctx)
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindDecode))
	assert.Nil(t, result.Goods)
	assert.Nil(t, result.Stores)
	fx.client.AssertNotCalled(t, "FetchStores", mock.Anything)
}

func TestSyncService_SyncCatalog(t *testing.T) {
	fx := createTestSyncService(t)
	fx.allowProgress()
	ctx := context.Background()

	fx.client.EXPECT().FetchGoods(ctx).Return("<goods/>", nil)
	fx.decoder.EXPECT().DecodeGoods("<goods/>").Return(nil, nil)
	fx.client.EXPECT().FetchStores(ctx).Return("<stores/>", nil)
	fx.decoder.EXPECT().DecodeStores("<stores/>").Return(nil, nil)

	result, err := fx.service.SyncCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Goods.Total)
	assert.Equal(t, 0, result.Stores.Total)
}
