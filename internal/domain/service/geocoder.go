package service

import (
	"context"

	"github.com/paulmach/orb"
)

// Geocoder resolves a postal address to a point.
// found is false, with a nil error, when the service has no usable result.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (point orb.Point, found bool, err error)
}
