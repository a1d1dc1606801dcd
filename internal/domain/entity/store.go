package entity

import (
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// Store is a retail outlet keyed by the upstream entpId.
// Location is set only after a successful geocode; x is longitude, y is latitude.
type Store struct {
	ID             int64
	StoreID        string
	Name           string
	Phone          *string
	PostalCode     *string
	LotAddress     *string
	RoadAddress    *string
	Location       *orb.Point
	AreaCode       string
	AreaDetailCode string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GeocodeAddress picks the road address, falling back to the lot address.
// ok is false when neither is usable.
func (s *Store) GeocodeAddress() (address string, ok bool) {
	if s.RoadAddress != nil && strings.TrimSpace(*s.RoadAddress) != "" {
		return strings.TrimSpace(*s.RoadAddress), true
	}
	if s.LotAddress != nil && strings.TrimSpace(*s.LotAddress) != "" {
		return strings.TrimSpace(*s.LotAddress), true
	}

	return "", false
}

// Latitude returns the y coordinate, or nil when not geocoded.
func (s *Store) Latitude() *float64 {
	if s.Location == nil {
		return nil
	}
	lat := s.Location.Lat()

	return &lat
}

// Longitude returns the x coordinate, or nil when not geocoded.
func (s *Store) Longitude() *float64 {
	if s.Location == nil {
		return nil
	}
	lon := s.Location.Lon()

	return &lon
}
