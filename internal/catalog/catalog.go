// Package catalog records which literature maps have usable data. Callers
// consult it before handing a dataset to the translator; the translator
// and merger themselves never filter.
package catalog

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownMap = errors.New("unknown map")
	ErrIneligible = errors.New("map excluded from translation")
)

// Catalog holds the map lists. The zero value is empty; use Default or New.
type Catalog struct {
	AllMaps              []string
	MappingFailures      []string
	ConnectivityFailures []string
	IntramapOverlaps     []string
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(nil, nil, nil, nil)
}

// New builds a catalog, falling back to the built-in list for every nil or
// empty argument.
func New(all, mappingFailures, connFailures, intramap []string) *Catalog {
	return &Catalog{
		AllMaps:              orDefault(all, defaultAllMaps),
		MappingFailures:      orDefault(mappingFailures, defaultMappingFailures),
		ConnectivityFailures: orDefault(connFailures, defaultConnectivityFailures),
		IntramapOverlaps:     orDefault(intramap, defaultIntramapOverlaps),
	}
}

func orDefault(list, fallback []string) []string {
	if len(list) == 0 {
		list = fallback
	}
	return slices.Clone(list)
}

// MappingSuccesses returns the maps whose relation data can be used, in
// AllMaps order.
func (c *Catalog) MappingSuccesses() []string {
	return c.without(c.MappingFailures, c.IntramapOverlaps)
}

// ConnectivitySuccesses returns the maps whose relation and connectivity
// data can both be used, in AllMaps order.
func (c *Catalog) ConnectivitySuccesses() []string {
	return c.without(c.ConnectivityFailures, c.MappingFailures, c.IntramapOverlaps)
}

func (c *Catalog) without(excluded ...[]string) []string {
	skip := make(map[string]bool)
	for _, list := range excluded {
		for _, m := range list {
			skip[m] = true
		}
	}
	var out []string
	for _, m := range c.AllMaps {
		if !skip[m] {
			out = append(out, m)
		}
	}
	return out
}

// Known reports whether mapID is in AllMaps.
func (c *Catalog) Known(mapID string) bool {
	return slices.Contains(c.AllMaps, mapID)
}

// Eligible returns nil when a connectivity dataset reported in mapID may be
// translated.
func (c *Catalog) Eligible(mapID string) error {
	if !c.Known(mapID) {
		return fmt.Errorf("%w: %s", ErrUnknownMap, mapID)
	}
	switch {
	case slices.Contains(c.MappingFailures, mapID):
		return fmt.Errorf("%w: %s has unusable mapping data", ErrIneligible, mapID)
	case slices.Contains(c.IntramapOverlaps, mapID):
		return fmt.Errorf("%w: %s has overlapping regions within the map", ErrIneligible, mapID)
	case slices.Contains(c.ConnectivityFailures, mapID):
		return fmt.Errorf("%w: %s has unusable connectivity data", ErrIneligible, mapID)
	}
	return nil
}

// EligibleTarget returns nil when mapID can serve as a translation target.
// Only its relation data matters.
func (c *Catalog) EligibleTarget(mapID string) error {
	if !c.Known(mapID) {
		return fmt.Errorf("%w: %s", ErrUnknownMap, mapID)
	}
	if !slices.Contains(c.MappingSuccesses(), mapID) {
		return fmt.Errorf("%w: %s cannot be a target map", ErrIneligible, mapID)
	}
	return nil
}

// Sorted returns a sorted copy of list.
func Sorted(list []string) []string {
	out := slices.Clone(list)
	slices.Sort(out)
	return out
}
