package publicdata

import (
	"testing"

	domainerrors "storeradar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodsXML = `<?xml version="1.0" encoding="UTF-8"?>
<response>
  <result>
    <item>
      <goodId>1</goodId>
      <goodName>신라면(120g)</goodName>
      <goodTotalCnt>120</goodTotalCnt>
      <goodTotalDivCode>G</goodTotalDivCode>
    </item>
    <item>
      <goodId>2</goodId>
      <goodName>생수(2L)</goodName>
      <goodTotalCnt> </goodTotalCnt>
    </item>
  </result>
</response>`

const storesXML = `<response><result>
  <iros.openapi.service.vo.entpInfoVO>
    <entpId>100</entpId>
    <entpName>이마트 성수점</entpName>
    <entpTelno>02-000-0000</entpTelno>
    <postNo>04783</postNo>
    <plmkAddrBasic>서울특별시 성동구 성수동2가 333-16</plmkAddrBasic>
    <roadAddrBasic>서울특별시 성동구 뚝섬로 379</roadAddrBasic>
    <xMapCoord>127.0</xMapCoord>
    <yMapCoord>37.5</yMapCoord>
    <entpAreaCode>020100000</entpAreaCode>
    <areaDetailCode>020101000</areaDetailCode>
  </iros.openapi.service.vo.entpInfoVO>
  <iros.openapi.service.vo.entpInfoVO>
    <entpId>101</entpId>
    <entpName>동네마트</entpName>
    <entpAreaCode>020100000</entpAreaCode>
    <areaDetailCode>020101000</areaDetailCode>
  </iros.openapi.service.vo.entpInfoVO>
</result></response>`

const pricesXML = `<response><result>
  <iros.openapi.service.vo.goodPriceVO>
    <goodInspectDay>20240105</goodInspectDay>
    <entpId>100</entpId>
    <goodId>1</goodId>
    <goodPrice>1500</goodPrice>
    <plusoneYn>Y</plusoneYn>
    <goodDcYn>N</goodDcYn>
    <goodDcStartDay>20240101</goodDcStartDay>
    <goodDcEndDay></goodDcEndDay>
  </iros.openapi.service.vo.goodPriceVO>
  <iros.openapi.service.vo.goodPriceVO>
    <goodInspectDay>20240105</goodInspectDay>
    <entpId>100</entpId>
    <goodId>2</goodId>
    <goodPrice></goodPrice>
  </iros.openapi.service.vo.goodPriceVO>
</result></response>`

const regionsXML = `<response><result>
  <iros.openapi.service.vo.stdInfoVO>
    <code>020100000</code>
    <codeName>서울특별시</codeName>
    <highCode>020000000</highCode>
  </iros.openapi.service.vo.stdInfoVO>
  <iros.openapi.service.vo.stdInfoVO>
    <code>020101000</code>
    <codeName>종로구</codeName>
    <highCode>020100000</highCode>
  </iros.openapi.service.vo.stdInfoVO>
</result></response>`

func TestDecoder_DecodeGoods(t *testing.T) {
	items, err := NewDecoder().DecodeGoods(goodsXML)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "1", items[0].GoodID)
	assert.Equal(t, "신라면(120g)", items[0].GoodName)
	require.NotNil(t, items[0].TotalCount)
	assert.Equal(t, "120", *items[0].TotalCount)
	require.NotNil(t, items[0].TotalDivCode)
	assert.Equal(t, "G", *items[0].TotalDivCode)

	assert.Nil(t, items[1].TotalCount, "blank element decodes as absent")
	assert.Nil(t, items[1].TotalDivCode, "missing element decodes as absent")
}

func TestDecoder_DecodeStores(t *testing.T) {
	items, err := NewDecoder().DecodeStores(storesXML)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "100", items[0].StoreID)
	require.NotNil(t, items[0].RoadAddress)
	assert.Equal(t, "서울특별시 성동구 뚝섬로 379", *items[0].RoadAddress)
	assert.Equal(t, "020101000", items[0].AreaDetailCode)

	assert.Nil(t, items[1].RoadAddress)
	assert.Nil(t, items[1].LotAddress)
	assert.Nil(t, items[1].Phone)
}

func TestDecoder_DecodePrices(t *testing.T) {
	d := NewDecoder()
	assert.True(t, d.HasPriceData(pricesXML))

	items, err := d.DecodePrices(pricesXML)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "1500", items[0].Price)
	require.NotNil(t, items[0].PlusOne)
	assert.Equal(t, "Y", *items[0].PlusOne)
	assert.Nil(t, items[0].DiscountEnd)
	assert.Equal(t, "", items[1].Price)
	assert.Nil(t, items[1].PlusOne)
}

func TestDecoder_HasPriceData_NoItems(t *testing.T) {
	assert.False(t, NewDecoder().HasPriceData(`<response><result></result></response>`))
}

func TestDecoder_DecodeRegions(t *testing.T) {
	items, err := NewDecoder().DecodeRegions(regionsXML)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "020000000", items[0].ParentCode)
	assert.Equal(t, "종로구", items[1].Name)
}

func TestDecoder_MalformedXMLIsDecodeKind(t *testing.T) {
	_, err := NewDecoder().DecodeGoods(`<response><result><item>`)
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindDecode))
}

func TestDecoder_MissingRequiredElementIsDecodeKind(t *testing.T) {
	_, err := NewDecoder().DecodeRegions(`<response><result>
  <iros.openapi.service.vo.stdInfoVO><code>1</code><codeName>x</codeName></iros.openapi.service.vo.stdInfoVO>
</result></response>`)
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindDecode))
	assert.Contains(t, err.Error(), "highCode")
}
