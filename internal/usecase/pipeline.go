package usecase

import "github.com/tripwise/flight-offers/internal/domain"

// ApplyFiltersAndSort filters offers with cfg and stably sorts the survivors by key.
//
// Behavior:
//   - Filtering preserves input order; sorting is stable, so ties keep it too
//   - Unrecognised sort keys leave the filtered offers in input order
//   - Never returns more offers than it was given, nor any offer it was not given
//   - Does NOT mutate the offers slice
func (e *Engine) ApplyFiltersAndSort(offers []domain.Offer, cfg domain.FilterConfiguration, key domain.SortKey) []domain.Offer {
	filtered := e.ApplyFilters(offers, cfg)
	return e.SortOffers(filtered, key)
}

// ApplyFiltersAndSort runs the filter/sort pipeline reading hours in local time.
//
// Example usage:
//
//	cfg := ComputeDefaultFilters(offers).ToggleStop(0)
//	direct := ApplyFiltersAndSort(offers, cfg, domain.SortPriceAsc)
func ApplyFiltersAndSort(offers []domain.Offer, cfg domain.FilterConfiguration, key domain.SortKey) []domain.Offer {
	return defaultEngine.ApplyFiltersAndSort(offers, cfg, key)
}
