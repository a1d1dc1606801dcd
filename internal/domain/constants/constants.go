package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Catalog API families, also used as archive prefixes and error context.
const (
	APIGoods   = "goods"
	APIStores  = "stores"
	APIPrices  = "prices"
	APIRegions = "regions"
	APIGeocode = "geocode"
)

// TopLevelRegionParentCode marks regions that sit directly under the national root.
const TopLevelRegionParentCode = "020000000"

// NoPriceDataMarker is present in every price payload that carries at least one item.
const NoPriceDataMarker = "goodPriceVO"

// FlagNo is the catalog's "N" value for promotion and discount flags.
const FlagNo = "N"

// Trend and preference tuning
const (
	PriceTrendLimit          = 50
	PreferenceRecomputeEvery = 10
	PreferenceSmoothingAlpha = 0.2
	PreferenceTargetFloor    = 0.2
	PreferenceTargetSpan     = 0.6
	DefaultPreferenceWeight  = 0.5
)

// SeoulTimezone is used to derive scheduled inspect days.
const SeoulTimezone = "Asia/Seoul"

// Progress step names, also used as metric labels.
const (
	StepGoods   = "goods"
	StepStores  = "stores"
	StepPrices  = "prices"
	StepRegions = "regions"
)
