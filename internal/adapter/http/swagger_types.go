package http

// SwaggerSearchResponse documents the search API response.
// @Description Filtered and sorted offers with the filter state for the client
type SwaggerSearchResponse struct {
	// Criteria contains the normalised search parameters
	Criteria SwaggerSearchCriteria `json:"criteria"`

	// Offers contains the offers left after filtering, in sort order
	Offers []SwaggerOffer `json:"offers"`

	// Carriers maps carrier codes to display names
	Carriers map[string]string `json:"carriers"`

	// Filters is the configuration that was applied
	Filters SwaggerFilterConfiguration `json:"filters"`

	// Defaults is the configuration that excludes nothing
	Defaults SwaggerFilterConfiguration `json:"defaults"`

	// Bounds lists the choices available for the unfiltered offers
	Bounds SwaggerFilterBounds `json:"bounds"`

	SortBy            string `json:"sortBy" example:"price-asc"`
	FiltersActive     bool   `json:"filtersActive" example:"true"`
	ActiveFilterCount int    `json:"activeFilterCount" example:"2"`

	Metadata SwaggerSearchMetadata `json:"metadata"`
}

// SwaggerSearchCriteria documents the echoed search parameters.
// @Description Normalised search criteria
type SwaggerSearchCriteria struct {
	Origin        string `json:"origin" example:"JFK"`
	Destination   string `json:"destination" example:"LHR"`
	DepartureDate string `json:"departureDate" example:"2025-12-15"`
	ReturnDate    string `json:"returnDate,omitempty" example:"2025-12-22"`
	Adults        int    `json:"adults" example:"1"`
	TravelClass   string `json:"travelClass,omitempty" example:"ECONOMY"`
}

// SwaggerSearchMetadata documents the search execution metadata.
// @Description Metadata about the search execution
type SwaggerSearchMetadata struct {
	TotalOffers    int    `json:"totalOffers" example:"9"`
	FilteredOffers int    `json:"filteredOffers" example:"4"`
	Provider       string `json:"provider" example:"amadeus"`
	SearchTimeMs   int64  `json:"searchTimeMs" example:"842"`
	CacheHit       bool   `json:"cacheHit" example:"false"`
}

// SwaggerOffer documents a single priced itinerary.
// @Description Flight offer
type SwaggerOffer struct {
	ID             string          `json:"id" example:"1"`
	Price          SwaggerPrice    `json:"price"`
	Outbound       SwaggerSegment  `json:"outbound"`
	Return         *SwaggerSegment `json:"return,omitempty"`
	CabinClass     string          `json:"cabinClass" example:"ECONOMY"`
	BookingClass   string          `json:"bookingClass,omitempty" example:"O"`
	SeatsAvailable *int            `json:"seatsAvailable,omitempty" example:"9"`
}

// SwaggerPrice documents the offer price.
// @Description Total price for all travellers
type SwaggerPrice struct {
	Total    float64 `json:"total" example:"612.4"`
	Currency string  `json:"currency" example:"USD"`
}

// SwaggerSegment documents one leg of an offer.
// @Description Outbound or return leg
type SwaggerSegment struct {
	Departure    SwaggerEndpoint `json:"departure"`
	Arrival      SwaggerEndpoint `json:"arrival"`
	Duration     string          `json:"duration" example:"PT7H"`
	Stops        int             `json:"stops" example:"0"`
	Carrier      string          `json:"carrier" example:"BA"`
	FlightNumber string          `json:"flightNumber" example:"BA117"`
}

// SwaggerEndpoint documents a departure or arrival point.
// @Description Airport and local time
type SwaggerEndpoint struct {
	Airport string `json:"airport" example:"JFK"`
	Time    string `json:"time" example:"2025-12-15T18:30:00"`
}

// SwaggerFilterConfiguration documents the filter state.
// @Description Filter configuration; empty sets accept everything
type SwaggerFilterConfiguration struct {
	PriceRange         PriceRangeDTO `json:"priceRange"`
	Stops              []int         `json:"stops" example:"0"`
	Airlines           []string      `json:"airlines" example:"BA"`
	CabinClasses       []string      `json:"cabinClasses" example:"ECONOMY"`
	DepartureTimeRange HourRangeDTO  `json:"departureTimeRange"`
	ArrivalTimeRange   HourRangeDTO  `json:"arrivalTimeRange"`
}

// SwaggerFilterBounds documents the available filter choices.
// @Description Filter choices present in the unfiltered offers
type SwaggerFilterBounds struct {
	Stops        []int    `json:"stops" example:"0,1,2"`
	Airlines     []string `json:"airlines" example:"BA,VS,AA"`
	CabinClasses []string `json:"cabinClasses" example:"ECONOMY,BUSINESS"`
	MinPrice     float64  `json:"minPrice" example:"349"`
	MaxPrice     float64  `json:"maxPrice" example:"4210"`
}
