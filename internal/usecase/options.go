package usecase

import "github.com/tripwise/flight-offers/internal/domain"

// SearchOptions contains optional parameters for a flight offer search.
type SearchOptions struct {
	// Filters is the configuration to apply; nil applies the defaults derived from the offers
	Filters *domain.FilterConfiguration

	// Refine, when set, adjusts the configuration chosen above once the
	// defaults for the fetched offers are known
	Refine func(base domain.FilterConfiguration) (domain.FilterConfiguration, error)

	// SortBy specifies how to order the results (default: price-asc)
	SortBy domain.SortKey
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.DefaultSortKey,
	}
}
