package entity

import (
	"testing"
	"time"

	domainerrors "storeradar/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInspectDay(t *testing.T) {
	day, err := ParseInspectDay("20240131")
	require.NoError(t, err)
	assert.Equal(t, InspectDay("20240131"), day)

	for _, bad := range []string{"", "2024013", "2024-01-31", "2024013a", "202401311"} {
		_, err := ParseInspectDay(bad)
		assert.Error(t, err, bad)
		assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation), bad)
	}
}

func TestInspectDay_OrderingAndFormatting(t *testing.T) {
	loc := time.FixedZone("KST", 9*3600)
	assert.Equal(t, InspectDay("20240305"), InspectDayOf(time.Date(2024, 3, 5, 23, 0, 0, 0, loc)))
	assert.True(t, InspectDay("20231231").Before("20240101"))
	assert.False(t, InspectDay("20240101").Before("20240101"))
}

func TestParseTrendDirection_DefaultsToDown(t *testing.T) {
	assert.Equal(t, TrendUp, ParseTrendDirection("up"))
	assert.Equal(t, TrendDown, ParseTrendDirection("down"))
	assert.Equal(t, TrendDown, ParseTrendDirection("sideways"))
	assert.Equal(t, TrendDown, ParseTrendDirection(""))
}

func TestRegionLevel(t *testing.T) {
	assert.Equal(t, int16(1), RegionLevel("020000000"))
	assert.Equal(t, int16(2), RegionLevel("020100000"))
	assert.Equal(t, int16(2), RegionLevel(""))
}

func TestStore_GeocodeAddress(t *testing.T) {
	road := " 서울특별시 중구 세종대로 110 "
	lot := "서울특별시 중구 태평로1가 31"
	blank := "  "

	addr, ok := (&Store{RoadAddress: &road, LotAddress: &lot}).GeocodeAddress()
	assert.True(t, ok)
	assert.Equal(t, "서울특별시 중구 세종대로 110", addr)

	addr, ok = (&Store{RoadAddress: &blank, LotAddress: &lot}).GeocodeAddress()
	assert.True(t, ok)
	assert.Equal(t, lot, addr)

	_, ok = (&Store{}).GeocodeAddress()
	assert.False(t, ok)
}

func TestStore_Coordinates(t *testing.T) {
	s := &Store{}
	assert.Nil(t, s.Latitude())
	assert.Nil(t, s.Longitude())

	s.Location = &orb.Point{126.9779, 37.5663}
	require.NotNil(t, s.Latitude())
	assert.InDelta(t, 37.5663, *s.Latitude(), 1e-9)
	assert.InDelta(t, 126.9779, *s.Longitude(), 1e-9)
}
