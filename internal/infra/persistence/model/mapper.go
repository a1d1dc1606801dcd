package model

import (
	"math"

	"storeradar/internal/domain/entity"

	"github.com/paulmach/orb"
)

// FromGoodDomain converts a domain entity to a GORM model.
func FromGoodDomain(good *entity.Good) *GoodModel {
	return &GoodModel{
		ID:           good.ID,
		GoodID:       good.GoodID,
		GoodName:     good.Name,
		TotalCnt:     good.TotalCount,
		TotalDivCode: good.DivisionCode,
		CreatedAt:    good.CreatedAt,
		UpdatedAt:    good.UpdatedAt,
	}
}

// FromStoreDomain converts a domain entity to a GORM model.
func FromStoreDomain(store *entity.Store) *StoreModel {
	return &StoreModel{
		ID:             store.ID,
		StoreID:        store.StoreID,
		StoreName:      store.Name,
		TelNo:          store.Phone,
		PostNo:         store.PostalCode,
		LotAddr:        store.LotAddress,
		RoadAddr:       store.RoadAddress,
		Latitude:       store.Latitude(),
		Longitude:      store.Longitude(),
		AreaCode:       store.AreaCode,
		AreaDetailCode: store.AreaDetailCode,
		CreatedAt:      store.CreatedAt,
		UpdatedAt:      store.UpdatedAt,
	}
}

// ToDomain converts a store model back to the domain entity.
func (m *StoreModel) ToDomain() *entity.Store {
	store := &entity.Store{
		ID:             m.ID,
		StoreID:        m.StoreID,
		Name:           m.StoreName,
		Phone:          m.TelNo,
		PostalCode:     m.PostNo,
		LotAddress:     m.LotAddr,
		RoadAddress:    m.RoadAddr,
		AreaCode:       m.AreaCode,
		AreaDetailCode: m.AreaDetailCode,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Latitude != nil && m.Longitude != nil {
		store.Location = &orb.Point{*m.Longitude, *m.Latitude}
	}

	return store
}

// FromPriceDomain converts a domain entity to a GORM model.
func FromPriceDomain(price *entity.Price) *PriceModel {
	return &PriceModel{
		ID:            price.ID,
		GoodID:        price.GoodID,
		StoreID:       price.StoreID,
		InspectDay:    price.InspectDay.String(),
		Price:         price.Price,
		IsOnePlusOne:  price.PlusOne,
		IsDiscount:    price.Discounted,
		DiscountStart: price.DiscountStart,
		DiscountEnd:   price.DiscountEnd,
		CreatedAt:     price.CreatedAt,
	}
}

// FromRegionDomain converts a domain entity to a GORM model.
func FromRegionDomain(region *entity.Region) *RegionModel {
	return &RegionModel{
		Code:       region.Code,
		Name:       region.Name,
		ParentCode: region.ParentCode,
		Level:      region.Level,
	}
}

// ToDomain converts a preference model to the domain entity.
func (m *UserPreferenceModel) ToDomain() *entity.UserPreference {
	return &entity.UserPreference{
		UserID:         m.ID,
		WeightPrice:    m.WPrice,
		WeightDistance: m.WDistance,
		SelectionCount: m.SelectionCount,
	}
}

// FromSelectionLogDomain converts a domain entity to a GORM model.
func FromSelectionLogDomain(log *entity.UserSelectionLog) *UserSelectionLogModel {
	return &UserSelectionLogModel{
		ID:             log.ID,
		UserID:         log.UserID,
		StoreID:        log.StoreID,
		GoodID:         log.GoodID,
		PreferenceType: string(log.PreferenceType),
		Price:          log.Price,
		CreatedAt:      log.CreatedAt,
	}
}

// ToDomain converts an aggregate row to the domain trend. The average is
// rounded half away from zero, matching a numeric-to-integer cast in Postgres.
func (r *PriceTrendRow) ToDomain() *entity.PriceTrend {
	return &entity.PriceTrend{
		GoodID:     r.GoodID,
		GoodName:   r.GoodName,
		AvgDiff:    int(math.Round(r.AvgDiff)),
		MinDiff:    r.MinDiff,
		MaxDiff:    r.MaxDiff,
		Count:      r.ChangeCount,
		InspectDay: entity.InspectDay(r.InspectDay),
	}
}
