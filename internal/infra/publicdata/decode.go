package publicdata

import (
	"encoding/xml"
	"strings"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/service"
)

type goodsEnvelope struct {
	Result struct {
		Items []struct {
			GoodID       *string `xml:"goodId"`
			GoodName     *string `xml:"goodName"`
			TotalCount   *string `xml:"goodTotalCnt"`
			TotalDivCode *string `xml:"goodTotalDivCode"`
		} `xml:"item"`
	} `xml:"result"`
}

type storesEnvelope struct {
	Result struct {
		Items []struct {
			StoreID        *string `xml:"entpId"`
			StoreName      *string `xml:"entpName"`
			Phone          *string `xml:"entpTelno"`
			PostalCode     *string `xml:"postNo"`
			LotAddress     *string `xml:"plmkAddrBasic"`
			RoadAddress    *string `xml:"roadAddrBasic"`
			AreaCode       *string `xml:"entpAreaCode"`
			AreaDetailCode *string `xml:"areaDetailCode"`
		} `xml:"iros.openapi.service.vo.entpInfoVO"`
	} `xml:"result"`
}

type pricesEnvelope struct {
	Result struct {
		Items []struct {
			InspectDay    *string `xml:"goodInspectDay"`
			StoreID       *string `xml:"entpId"`
			GoodID        *string `xml:"goodId"`
			Price         *string `xml:"goodPrice"`
			PlusOne       *string `xml:"plusoneYn"`
			Discounted    *string `xml:"goodDcYn"`
			DiscountStart *string `xml:"goodDcStartDay"`
			DiscountEnd   *string `xml:"goodDcEndDay"`
		} `xml:"iros.openapi.service.vo.goodPriceVO"`
	} `xml:"result"`
}

type regionsEnvelope struct {
	Result struct {
		Items []struct {
			Code       *string `xml:"code"`
			CodeName   *string `xml:"codeName"`
			ParentCode *string `xml:"highCode"`
		} `xml:"iros.openapi.service.vo.stdInfoVO"`
	} `xml:"result"`
}

// Decoder implements service.PayloadDecoder with encoding/xml.
type Decoder struct{}

// NewDecoder returns the catalog XML decoder.
func NewDecoder() service.PayloadDecoder {
	return Decoder{}
}

func (Decoder) DecodeGoods(raw string) ([]entity.GoodItem, error) {
	var env goodsEnvelope
	if err := unmarshal(constants.APIGoods, raw, &env); err != nil {
		return nil, err
	}

	items := make([]entity.GoodItem, 0, len(env.Result.Items))
	for i, it := range env.Result.Items {
		if it.GoodID == nil || it.GoodName == nil {
			return nil, missingField(constants.APIGoods, i, "goodId/goodName")
		}
		items = append(items, entity.GoodItem{
			GoodID:       strings.TrimSpace(*it.GoodID),
			GoodName:     strings.TrimSpace(*it.GoodName),
			TotalCount:   optional(it.TotalCount),
			TotalDivCode: optional(it.TotalDivCode),
		})
	}

	return items, nil
}

func (Decoder) DecodeStores(raw string) ([]entity.StoreItem, error) {
	var env storesEnvelope
	if err := unmarshal(constants.APIStores, raw, &env); err != nil {
		return nil, err
	}

	items := make([]entity.StoreItem, 0, len(env.Result.Items))
	for i, it := range env.Result.Items {
		if it.StoreID == nil || it.StoreName == nil || it.AreaCode == nil || it.AreaDetailCode == nil {
			return nil, missingField(constants.APIStores, i, "entpId/entpName/entpAreaCode/areaDetailCode")
		}
		items = append(items, entity.StoreItem{
			StoreID:        strings.TrimSpace(*it.StoreID),
			StoreName:      strings.TrimSpace(*it.StoreName),
			Phone:          optional(it.Phone),
			PostalCode:     optional(it.PostalCode),
			LotAddress:     optional(it.LotAddress),
			RoadAddress:    optional(it.RoadAddress),
			AreaCode:       strings.TrimSpace(*it.AreaCode),
			AreaDetailCode: strings.TrimSpace(*it.AreaDetailCode),
		})
	}

	return items, nil
}

func (Decoder) DecodePrices(raw string) ([]entity.PriceItem, error) {
	var env pricesEnvelope
	if err := unmarshal(constants.APIPrices, raw, &env); err != nil {
		return nil, err
	}

	items := make([]entity.PriceItem, 0, len(env.Result.Items))
	for i, it := range env.Result.Items {
		if it.InspectDay == nil || it.StoreID == nil || it.GoodID == nil {
			return nil, missingField(constants.APIPrices, i, "goodInspectDay/entpId/goodId")
		}
		// A missing goodPrice element is treated like a blank one.
		var price string
		if it.Price != nil {
			price = *it.Price
		}
		items = append(items, entity.PriceItem{
			InspectDay:    strings.TrimSpace(*it.InspectDay),
			StoreID:       strings.TrimSpace(*it.StoreID),
			GoodID:        strings.TrimSpace(*it.GoodID),
			Price:         price,
			PlusOne:       optional(it.PlusOne),
			Discounted:    optional(it.Discounted),
			DiscountStart: optional(it.DiscountStart),
			DiscountEnd:   optional(it.DiscountEnd),
		})
	}

	return items, nil
}

func (Decoder) DecodeRegions(raw string) ([]entity.RegionItem, error) {
	var env regionsEnvelope
	if err := unmarshal(constants.APIRegions, raw, &env); err != nil {
		return nil, err
	}

	items := make([]entity.RegionItem, 0, len(env.Result.Items))
	for i, it := range env.Result.Items {
		if it.Code == nil || it.CodeName == nil || it.ParentCode == nil {
			return nil, missingField(constants.APIRegions, i, "code/codeName/highCode")
		}
		items = append(items, entity.RegionItem{
			Code:       strings.TrimSpace(*it.Code),
			Name:       strings.TrimSpace(*it.CodeName),
			ParentCode: strings.TrimSpace(*it.ParentCode),
		})
	}

	return items, nil
}

func (Decoder) HasPriceData(raw string) bool {
	return strings.Contains(raw, constants.NoPriceDataMarker)
}

func unmarshal(api, raw string, v any) error {
	if err := xml.Unmarshal([]byte(raw), v); err != nil {
		return domainerrors.New(domainerrors.KindDecode, "publicdata.Decode", api+" payload is not valid XML", err)
	}

	return nil
}

func missingField(api string, index int, fields string) error {
	return domainerrors.Newf(domainerrors.KindDecode, "publicdata.Decode", nil,
		"%s item %d is missing required element %s", api, index, fields)
}

// optional turns a missing or blank element into nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
