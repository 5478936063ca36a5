package http

import (
	"github.com/tripwise/flight-offers/internal/domain"
	"github.com/tripwise/flight-offers/internal/usecase"
)

// FilterOffersResponse is the result of filtering and sorting client-supplied offers.
type FilterOffersResponse struct {
	Offers            []domain.Offer             `json:"offers"`
	Filters           domain.FilterConfiguration `json:"filters"`
	Bounds            domain.FilterBounds        `json:"bounds"`
	SortBy            domain.SortKey             `json:"sortBy"`
	FiltersActive     bool                       `json:"filtersActive"`
	ActiveFilterCount int                        `json:"activeFilterCount"`
	TotalOffers       int                        `json:"totalOffers"`
	FilteredOffers    int                        `json:"filteredOffers"`
}

// DefaultsResponse holds the default filters and the available choices for a set of offers.
type DefaultsResponse struct {
	Defaults domain.FilterConfiguration `json:"defaults"`
	Bounds   domain.FilterBounds        `json:"bounds"`
}

// ToFilterOffersResponse assembles the response for a filter request.
func ToFilterOffersResponse(all, filtered []domain.Offer, filters domain.FilterConfiguration, sortBy domain.SortKey) *FilterOffersResponse {
	bounds := usecase.ComputeBounds(all)
	if filtered == nil {
		filtered = []domain.Offer{}
	}

	return &FilterOffersResponse{
		Offers:            filtered,
		Filters:           filters,
		Bounds:            bounds,
		SortBy:            sortBy,
		FiltersActive:     usecase.IsFilterActive(filters, bounds),
		ActiveFilterCount: usecase.ActiveFilterCount(filters, bounds),
		TotalOffers:       len(all),
		FilteredOffers:    len(filtered),
	}
}

// ToDefaultsResponse computes the defaults and bounds for offers.
func ToDefaultsResponse(offers []domain.Offer) *DefaultsResponse {
	return &DefaultsResponse{
		Defaults: usecase.ComputeDefaultFilters(offers),
		Bounds:   usecase.ComputeBounds(offers),
	}
}
