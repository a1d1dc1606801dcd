// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	"storeradar/internal/domain/repository"
	"storeradar/internal/domain/service"
	"storeradar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/multierr"
)

// syncService implements the SyncUsecase interface.
type syncService struct {
	client     service.PublicDataClient
	decoder    service.PayloadDecoder
	geocoder   service.Geocoder
	goodRepo   repository.GoodRepository
	storeRepo  repository.StoreRepository
	priceRepo  repository.PriceRepository
	regionRepo repository.RegionRepository
	progress   service.ProgressReporter
	logger     *slog.Logger
}

// SyncServiceParams holds dependencies for SyncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	Client     service.PublicDataClient
	Decoder    service.PayloadDecoder
	Geocoder   service.Geocoder
	GoodRepo   repository.GoodRepository
	StoreRepo  repository.StoreRepository
	PriceRepo  repository.PriceRepository
	RegionRepo repository.RegionRepository
	Progress   service.ProgressReporter `optional:"true"`
	Logger     *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	progress := params.Progress
	if progress == nil {
		progress = noopProgress{}
	}

	return &syncService{
		client:     params.Client,
		decoder:    params.Decoder,
		geocoder:   params.Geocoder,
		goodRepo:   params.GoodRepo,
		storeRepo:  params.StoreRepo,
		priceRepo:  params.PriceRepo,
		regionRepo: params.RegionRepo,
		progress:   progress,
		logger:     params.Logger,
	}
}

type noopProgress struct{}

func (noopProgress) Report(service.Progress) {}
func (noopProgress) Done(service.Progress)   {}

func (s *syncService) SyncCatalog(ctx context.Context) (*entity.CatalogSyncResult, error) {
	result := &entity.CatalogSyncResult{}

	goods, err := s.SyncGoods(ctx)
	result.Goods = goods
	if err != nil {
		return result, err
	}

	stores, err := s.SyncStores(ctx)
	result.Stores = stores
	if err != nil {
		return result, err
	}

	return result, nil
}

// SyncGoods is strict: the first failed upsert aborts the run.
func (s *syncService) SyncGoods(ctx context.Context) (*entity.GoodsSyncResult, error) {
	raw, err := s.client.FetchGoods(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch goods")
	}

	items, err := s.decoder.DecodeGoods(raw)
	if err != nil {
		return nil, err
	}

	result := &entity.GoodsSyncResult{Total: len(items)}
	for _, item := range items {
		good := &entity.Good{
			GoodID:       item.GoodID,
			Name:         item.GoodName,
			TotalCount:   parseCount(item.TotalCount),
			DivisionCode: item.TotalDivCode,
		}
		if err := s.goodRepo.Upsert(ctx, good); err != nil {
			return result, errors.Wrapf(err, "goods sync aborted at good %s", item.GoodID)
		}
		result.Upserted++
	}

	s.progress.Done(service.Progress{
		Step:      constants.StepGoods,
		Processed: result.Total,
		Total:     result.Total,
		Succeeded: result.Upserted,
	})
	s.logger.InfoContext(ctx, "Goods sync completed",
		slog.Int("total", result.Total),
		slog.Int("upserted", result.Upserted),
	)

	return result, nil
}

// SyncStores is best effort: a store that cannot be geocoded or saved is counted and skipped.
func (s *syncService) SyncStores(ctx context.Context) (*entity.StoreSyncResult, error) {
	raw, err := s.client.FetchStores(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch stores")
	}

	items, err := s.decoder.DecodeStores(raw)
	if err != nil {
		return nil, err
	}

	result := &entity.StoreSyncResult{Total: len(items)}
	var itemErrs error
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := s.syncStore(ctx, item, result); err != nil {
			result.Failed++
			itemErrs = multierr.Append(itemErrs, err)
		}

		s.progress.Report(service.Progress{
			Step:      constants.StepStores,
			Processed: i + 1,
			Total:     result.Total,
			Succeeded: result.Upserted,
			Failed:    result.Failed,
		})
	}

	s.progress.Done(service.Progress{
		Step:      constants.StepStores,
		Processed: result.Total,
		Total:     result.Total,
		Succeeded: result.Upserted,
		Failed:    result.Failed,
	})
	s.logIsolatedErrors(ctx, "Store sync", itemErrs)
	s.logger.InfoContext(ctx, "Store sync completed",
		slog.Int("total", result.Total),
		slog.Int("upserted", result.Upserted),
		slog.Int("no_address", result.NoAddress),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

// syncStore returns an error only for failures that are not plain geocoding misses.
func (s *syncService) syncStore(ctx context.Context, item entity.StoreItem, result *entity.StoreSyncResult) error {
	store := &entity.Store{
		StoreID:        item.StoreID,
		Name:           item.StoreName,
		Phone:          item.Phone,
		PostalCode:     item.PostalCode,
		LotAddress:     item.LotAddress,
		RoadAddress:    item.RoadAddress,
		AreaCode:       item.AreaCode,
		AreaDetailCode: item.AreaDetailCode,
	}

	address, ok := store.GeocodeAddress()
	if !ok {
		result.NoAddress++

		return nil
	}

	point, found, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return errors.Wrapf(err, "geocode store %s", item.StoreID)
	}
	if !found {
		result.Failed++
		s.logger.DebugContext(ctx, "Store address not geocoded",
			slog.String("store_id", item.StoreID),
			slog.String("address", address),
		)

		return nil
	}

	store.Location = &point
	if err := s.storeRepo.Upsert(ctx, store); err != nil {
		return errors.Wrapf(err, "upsert store %s", item.StoreID)
	}
	result.Upserted++

	return nil
}

// SyncPrices isolates failures per store. It fails only when every store failed.
func (s *syncService) SyncPrices(ctx context.Context, day entity.InspectDay) (*entity.PriceSyncResult, error) {
	storeIDs, err := s.storeRepo.ListStoreIDs(ctx)
	if err != nil {
		return nil, err
	}

	result := &entity.PriceSyncResult{InspectDay: day, Stores: len(storeIDs)}
	var storeErrs error
	for i, storeID := range storeIDs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		noData, err := s.syncStorePrices(ctx, day, storeID, result)
		switch {
		case err != nil:
			result.StoresFailed++
			result.StoreFailures = append(result.StoreFailures, entity.StoreFailure{StoreID: storeID, Reason: err.Error()})
			storeErrs = multierr.Append(storeErrs, errors.Wrapf(err, "store %s", storeID))
		case noData:
			result.StoresNoData++
			s.logger.WarnContext(ctx, "No price data for store",
				slog.String("store_id", storeID),
				slog.String("inspect_day", day.String()),
			)
		default:
			result.StoresSynced++
		}

		s.progress.Report(service.Progress{
			Step:      constants.StepPrices,
			Processed: i + 1,
			Total:     result.Stores,
			Succeeded: result.StoresSynced + result.StoresNoData,
			Failed:    result.StoresFailed,
		})
	}

	s.progress.Done(service.Progress{
		Step:      constants.StepPrices,
		Processed: result.Stores,
		Total:     result.Stores,
		Succeeded: result.StoresSynced + result.StoresNoData,
		Failed:    result.StoresFailed,
	})
	s.logIsolatedErrors(ctx, "Price sync", storeErrs)
	s.logger.InfoContext(ctx, "Price sync completed",
		slog.String("inspect_day", day.String()),
		slog.Int("stores", result.Stores),
		slog.Int("stores_synced", result.StoresSynced),
		slog.Int("stores_no_data", result.StoresNoData),
		slog.Int("stores_failed", result.StoresFailed),
		slog.Int("upserted", result.Upserted),
		slog.Int("skipped_blank", result.SkippedBlank),
		slog.Int("failed_items", result.FailedItems),
	)

	if result.Stores > 0 && result.StoresFailed == result.Stores {
		return result, errors.Wrap(storeErrs, "price sync failed for every store")
	}

	return result, nil
}

// syncStorePrices reports noData when the payload carries no price record.
// Any returned error abandons the rest of this store only.
func (s *syncService) syncStorePrices(ctx context.Context, day entity.InspectDay, storeID string, result *entity.PriceSyncResult) (noData bool, err error) {
	raw, err := s.client.FetchPrices(ctx, day, storeID)
	if err != nil {
		return false, err
	}
	if !s.decoder.HasPriceData(raw) {
		return true, nil
	}

	items, err := s.decoder.DecodePrices(raw)
	if err != nil {
		return false, err
	}

	for _, item := range items {
		rawPrice := strings.TrimSpace(item.Price)
		if rawPrice == "" {
			result.SkippedBlank++

			continue
		}

		value, err := strconv.Atoi(rawPrice)
		if err != nil {
			result.FailedItems++
			s.logger.DebugContext(ctx, "Skipping unparsable price",
				slog.String("store_id", storeID),
				slog.String("good_id", item.GoodID),
				slog.String("price", rawPrice),
			)

			continue
		}

		price := &entity.Price{
			GoodID:        item.GoodID,
			StoreID:       firstNonEmpty(item.StoreID, storeID),
			InspectDay:    itemInspectDay(item.InspectDay, day),
			Price:         value,
			PlusOne:       flagOrNo(item.PlusOne),
			Discounted:    flagOrNo(item.Discounted),
			DiscountStart: item.DiscountStart,
			DiscountEnd:   item.DiscountEnd,
		}
		if err := s.priceRepo.Upsert(ctx, price); err != nil {
			return false, err
		}
		result.Upserted++
	}

	return false, nil
}

// SyncRegions stops at the first failed insert.
func (s *syncService) SyncRegions(ctx context.Context) (*entity.RegionSyncResult, error) {
	raw, err := s.client.FetchRegions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch regions")
	}

	items, err := s.decoder.DecodeRegions(raw)
	if err != nil {
		return nil, err
	}

	result := &entity.RegionSyncResult{Total: len(items)}
	for _, item := range items {
		region := &entity.Region{
			Code:       item.Code,
			Name:       item.Name,
			ParentCode: item.ParentCode,
			Level:      entity.RegionLevel(item.ParentCode),
		}
		inserted, err := s.regionRepo.InsertIfAbsent(ctx, region)
		if err != nil {
			return result, errors.Wrapf(err, "region sync aborted at region %s", item.Code)
		}
		if inserted {
			result.Inserted++
		}
	}

	s.progress.Done(service.Progress{
		Step:      constants.StepRegions,
		Processed: result.Total,
		Total:     result.Total,
		Succeeded: result.Inserted,
	})
	s.logger.InfoContext(ctx, "Region sync completed",
		slog.Int("total", result.Total),
		slog.Int("inserted", result.Inserted),
	)

	return result, nil
}

func (s *syncService) logIsolatedErrors(ctx context.Context, step string, err error) {
	errs := multierr.Errors(err)
	if len(errs) == 0 {
		return
	}

	const sample = 5
	messages := make([]string, 0, sample)
	for _, e := range errs[:min(sample, len(errs))] {
		messages = append(messages, e.Error())
	}
	s.logger.WarnContext(ctx, step+" finished with isolated failures",
		slog.Int("count", len(errs)),
		slog.Any("sample", messages),
	)
}

// parseCount yields nil for absent or non-integer counts.
func parseCount(raw *string) *int {
	if raw == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return nil
	}

	return &n
}

func flagOrNo(flag *string) string {
	if flag == nil || strings.TrimSpace(*flag) == "" {
		return constants.FlagNo
	}

	return strings.TrimSpace(*flag)
}

func itemInspectDay(raw string, fallback entity.InspectDay) entity.InspectDay {
	day, err := entity.ParseInspectDay(raw)
	if err != nil {
		return fallback
	}

	return day
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
