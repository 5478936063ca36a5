package domain

// SearchResponse is the result of a flight offer search after filtering and sorting.
type SearchResponse struct {
	// Criteria contains the normalised search parameters
	Criteria SearchCriteria `json:"criteria"`

	// Offers contains the filtered offers in sort order
	Offers []Offer `json:"offers"`

	// Carriers maps carrier codes to display names
	Carriers map[string]string `json:"carriers"`

	// Filters is the configuration that was applied
	Filters FilterConfiguration `json:"filters"`

	// Defaults is the configuration derived from the unfiltered offers
	Defaults FilterConfiguration `json:"defaults"`

	// Bounds lists the filter choices available for the unfiltered offers
	Bounds FilterBounds `json:"bounds"`

	// SortBy is the sort key that was applied
	SortBy SortKey `json:"sortBy"`

	// FiltersActive reports whether Filters differs from the unrestricted defaults
	FiltersActive bool `json:"filtersActive"`

	// ActiveFilterCount is the number of filter groups currently restricting results
	ActiveFilterCount int `json:"activeFilterCount"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalOffers is the number of offers returned by the provider
	TotalOffers int `json:"totalOffers"`

	// FilteredOffers is the number of offers left after filtering
	FilteredOffers int `json:"filteredOffers"`

	// Provider is the name of the provider that served the search
	Provider string `json:"provider"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`

	// CacheHit indicates whether the offers came from cache
	CacheHit bool `json:"cacheHit"`
}
