package entity

import "storeradar/internal/domain/constants"

// Region is an administrative area code.
type Region struct {
	Code       string
	Name       string
	ParentCode string
	Level      int16
}

// RegionLevel is 1 for regions directly under the top-level sentinel, 2 otherwise.
func RegionLevel(parentCode string) int16 {
	if parentCode == constants.TopLevelRegionParentCode {
		return 1
	}

	return 2
}
