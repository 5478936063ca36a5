package usecase

import (
	"math"
	"sort"

	"github.com/tripwise/flight-offers/internal/domain"
)

// ComputeDefaultFilters derives the initial filter configuration for offers.
//
// The price range spans floor(min price) to ceil(max price); every set filter
// is empty and both time ranges are the full day, so the result excludes
// nothing. An empty offer list yields the fallback price range [0, 10000].
func ComputeDefaultFilters(offers []domain.Offer) domain.FilterConfiguration {
	minPrice, maxPrice := findPriceRange(offers)
	return domain.NewFilterConfiguration(domain.PriceRange{Min: minPrice, Max: maxPrice})
}

// ComputeBounds derives the filter choices available for offers.
//
// Stops are distinct and ascending; airlines and cabin classes are distinct
// in order of first occurrence. Prices are rounded outward like the defaults.
func ComputeBounds(offers []domain.Offer) domain.FilterBounds {
	minPrice, maxPrice := findPriceRange(offers)

	bounds := domain.FilterBounds{
		Stops:        []int{},
		Airlines:     []string{},
		CabinClasses: []string{},
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
	}

	seenStops := make(map[int]struct{})
	seenAirlines := make(map[string]struct{})
	seenCabins := make(map[string]struct{})

	for _, o := range offers {
		if _, ok := seenStops[o.Outbound.Stops]; !ok {
			seenStops[o.Outbound.Stops] = struct{}{}
			bounds.Stops = append(bounds.Stops, o.Outbound.Stops)
		}
		if _, ok := seenAirlines[o.Outbound.Carrier]; !ok {
			seenAirlines[o.Outbound.Carrier] = struct{}{}
			bounds.Airlines = append(bounds.Airlines, o.Outbound.Carrier)
		}
		if _, ok := seenCabins[o.CabinClass]; !ok {
			seenCabins[o.CabinClass] = struct{}{}
			bounds.CabinClasses = append(bounds.CabinClasses, o.CabinClass)
		}
	}

	sort.Ints(bounds.Stops)
	return bounds
}

// findPriceRange returns the floored minimum and ceiled maximum price,
// or the fallback range when there are no offers.
func findPriceRange(offers []domain.Offer) (min, max float64) {
	if len(offers) == 0 {
		return domain.FallbackMinPrice, domain.FallbackMaxPrice
	}

	min = math.MaxFloat64
	max = -math.MaxFloat64

	for _, o := range offers {
		if o.Price.Total < min {
			min = o.Price.Total
		}
		if o.Price.Total > max {
			max = o.Price.Total
		}
	}
	return math.Floor(min), math.Ceil(max)
}

// activeGroups reports which filter groups restrict results relative to bounds,
// in the order price, stops, airlines, cabin classes, departure, arrival.
func activeGroups(cfg domain.FilterConfiguration, bounds domain.FilterBounds) []bool {
	return []bool{
		cfg.PriceRange.Min > bounds.MinPrice || cfg.PriceRange.Max < bounds.MaxPrice,
		len(cfg.Stops) > 0,
		len(cfg.Airlines) > 0,
		len(cfg.CabinClasses) > 0,
		!cfg.DepartureTimeRange.IsFull(),
		!cfg.ArrivalTimeRange.IsFull(),
	}
}

// IsFilterActive reports whether cfg narrows the offers described by bounds.
func IsFilterActive(cfg domain.FilterConfiguration, bounds domain.FilterBounds) bool {
	return ActiveFilterCount(cfg, bounds) > 0
}

// ActiveFilterCount returns how many filter groups in cfg narrow the offers described by bounds.
func ActiveFilterCount(cfg domain.FilterConfiguration, bounds domain.FilterBounds) int {
	count := 0
	for _, active := range activeGroups(cfg, bounds) {
		if active {
			count++
		}
	}
	return count
}
