package http

import (
	"github.com/tripwise/flight-offers/internal/domain"
	"github.com/tripwise/flight-offers/internal/usecase"
)

// ToDomainCriteria converts a SearchOffersRequest to domain.SearchCriteria.
func ToDomainCriteria(req *SearchOffersRequest) domain.SearchCriteria {
	adults := req.Adults
	if adults < 1 {
		adults = 1
	}

	return domain.SearchCriteria{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        adults,
		TravelClass:   req.TravelClass,
	}
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
// Filters are applied on top of the defaults the use case derives from the offers.
func ToSearchOptions(req *SearchOffersRequest) usecase.SearchOptions {
	opts := usecase.SearchOptions{
		SortBy: domain.ParseSortKey(req.SortBy),
	}
	if req.Filters != nil {
		opts.Refine = req.Filters.Overlay
	}
	return opts
}

// Overlay returns base with every group present in the DTO replaced.
// A nil DTO returns a copy of base.
func (f *FilterDTO) Overlay(base domain.FilterConfiguration) (domain.FilterConfiguration, error) {
	if f == nil {
		return base.Clone(), nil
	}

	b := domain.NewFilterBuilder(base)
	if f.PriceRange != nil {
		b.PriceRange(f.PriceRange.Min, f.PriceRange.Max)
	}
	if f.Stops != nil {
		b.Stops(f.Stops...)
	}
	if f.Airlines != nil {
		b.Airlines(f.Airlines...)
	}
	if f.CabinClasses != nil {
		b.CabinClasses(f.CabinClasses...)
	}
	if f.DepartureTimeRange != nil {
		b.DepartureTimeRange(f.DepartureTimeRange.Start, f.DepartureTimeRange.End)
	}
	if f.ArrivalTimeRange != nil {
		b.ArrivalTimeRange(f.ArrivalTimeRange.Start, f.ArrivalTimeRange.End)
	}
	return b.Build()
}
