package model

import (
	"fmt"
	"strings"
)

// Region identifiers have the form <MapID>-<LocalID>, e.g. "PP99-46d".
type Region struct {
	Name string `json:"name"`
	Map  string `json:"map"`
}

// MapOf returns the map a region identifier belongs to.
func MapOf(region string) string {
	if i := strings.IndexByte(region, '-'); i >= 0 {
		return region[:i]
	}
	return region
}

// ParseRegion splits a region identifier into its map and local parts.
func ParseRegion(name string) (Region, error) {
	i := strings.IndexByte(name, '-')
	if i <= 0 || i == len(name)-1 {
		return Region{}, fmt.Errorf("%w: %q", ErrInvalidRegion, name)
	}
	return Region{Name: name, Map: name[:i]}, nil
}

// InMap reports whether region belongs to mapID.
func InMap(region, mapID string) bool {
	return MapOf(region) == mapID
}
