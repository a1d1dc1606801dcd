package postgres

import (
	"context"
	"time"

	"storeradar/internal/domain/entity"
	"storeradar/internal/domain/repository"
	"storeradar/internal/infra/persistence/model"
	"storeradar/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type goodRepository struct {
	q *query.Query
}

// NewGoodRepository is the constructor for goodRepository.
func NewGoodRepository(db *gorm.DB) repository.GoodRepository {
	return &goodRepository{
		q: query.Use(db),
	}
}

// Upsert inserts the good or, on a known good id, replaces name, count and division code.
func (repo *goodRepository) Upsert(ctx context.Context, good *entity.Good) error {
	now := time.Now()
	goodM := model.FromGoodDomain(good)
	goodM.CreatedAt = now
	goodM.UpdatedAt = now

	err := repo.q.GoodModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "good_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"good_name", "total_cnt", "total_div_code", "updated_at"}),
		}).
		Create(goodM)
	if err != nil {
		return translateError(err, "goodRepository.Upsert", "failed to upsert good "+good.GoodID)
	}

	good.UpdatedAt = now

	return nil
}

type storeRepository struct {
	q *query.Query
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		q: query.Use(db),
	}
}

// Upsert inserts the store or replaces every mutable column, coordinates included.
func (repo *storeRepository) Upsert(ctx context.Context, store *entity.Store) error {
	now := time.Now()
	storeM := model.FromStoreDomain(store)
	storeM.CreatedAt = now
	storeM.UpdatedAt = now

	err := repo.q.StoreModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "store_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"store_name", "tel_no", "post_no", "lot_addr", "road_addr",
				"latitude", "longitude", "area_code", "area_detail_code", "updated_at",
			}),
		}).
		Create(storeM)
	if err != nil {
		return translateError(err, "storeRepository.Upsert", "failed to upsert store "+store.StoreID)
	}

	store.UpdatedAt = now

	return nil
}

// ListStoreIDs returns all upstream store ids, ascending.
func (repo *storeRepository) ListStoreIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := repo.q.StoreModel.WithContext(ctx).
		Order(repo.q.StoreModel.StoreID.Asc()).
		Pluck(repo.q.StoreModel.StoreID, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store ids")
	}

	return ids, nil
}

type priceRepository struct {
	q *query.Query
}

// NewPriceRepository is the constructor for priceRepository.
func NewPriceRepository(db *gorm.DB) repository.PriceRepository {
	return &priceRepository{
		q: query.Use(db),
	}
}

// Upsert writes one observation. A repeat of (good, store, day) replaces the
// price, flags and discount window and refreshes created_at.
func (repo *priceRepository) Upsert(ctx context.Context, price *entity.Price) error {
	priceM := model.FromPriceDomain(price)
	priceM.CreatedAt = time.Now()

	err := repo.q.PriceModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "good_id"}, {Name: "store_id"}, {Name: "inspect_day"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"price", "is_one_plus_one", "is_discount", "discount_start", "discount_end", "created_at",
			}),
		}).
		Create(priceM)
	if err != nil {
		return translateError(err, "priceRepository.Upsert",
			"failed to upsert price "+price.GoodID+"@"+price.StoreID+"/"+price.InspectDay.String())
	}

	price.CreatedAt = priceM.CreatedAt

	return nil
}

// FindPrevDay reads from the primary so a sync that just wrote day sees its own rows.
func (repo *priceRepository) FindPrevDay(ctx context.Context, day entity.InspectDay) (entity.InspectDay, error) {
	p := repo.q.PriceModel
	priceM, err := p.WithContext(ctx).
		WriteDB().
		Select(p.InspectDay).
		Where(p.InspectDay.Lt(day.String())).
		Order(p.InspectDay.Desc()).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrNoPreviousInspectDay
		}

		return "", errors.Wrap(err, "failed to find previous inspect day")
	}

	return entity.InspectDay(priceM.InspectDay), nil
}

// regionRepository stays on plain gorm: InsertIfAbsent needs RowsAffected,
// which the generated Create does not return.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{db: db}
}

// InsertIfAbsent leaves existing codes untouched.
func (repo *regionRepository) InsertIfAbsent(ctx context.Context, region *entity.Region) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).
		Create(model.FromRegionDomain(region))
	if result.Error != nil {
		return false, translateError(result.Error, "regionRepository.InsertIfAbsent", "failed to insert region "+region.Code)
	}

	return result.RowsAffected > 0, nil
}
