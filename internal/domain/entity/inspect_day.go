package entity

import (
	"time"

	domainerrors "storeradar/internal/domain/errors"
)

const inspectDayLayout = "20060102"

// InspectDay is the catalog snapshot key in YYYYMMDD form.
// Lexicographic order equals chronological order, so it is compared as a string.
type InspectDay string

// ParseInspectDay validates an 8-digit day string.
func ParseInspectDay(s string) (InspectDay, error) {
	if len(s) != len(inspectDayLayout) {
		return "", domainerrors.ErrInvalidInspectDay.WithDetails(s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", domainerrors.ErrInvalidInspectDay.WithDetails(s)
		}
	}

	return InspectDay(s), nil
}

// InspectDayOf formats t in its own location.
func InspectDayOf(t time.Time) InspectDay {
	return InspectDay(t.Format(inspectDayLayout))
}

func (d InspectDay) String() string {
	return string(d)
}

// Before reports whether d is an earlier snapshot than other.
func (d InspectDay) Before(other InspectDay) bool {
	return d < other
}
