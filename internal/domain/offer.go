// Package domain contains the core business entities and rules for the flight offer service.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

// Cabin classes reported by the flight search provider.
const (
	CabinEconomy        = "ECONOMY"
	CabinPremiumEconomy = "PREMIUM_ECONOMY"
	CabinBusiness       = "BUSINESS"
	CabinFirst          = "FIRST"
)

// Offer represents one priced flight itinerary returned by a search.
// Offers are read-only once a search has produced them.
type Offer struct {
	// ID is the provider identifier, unique within one search response
	ID string `json:"id"`

	// Price contains the total fare for all travellers
	Price Price `json:"price"`

	// Outbound is the outgoing leg and is always present
	Outbound Segment `json:"outbound"`

	// Return is the inbound leg of a round trip, nil for one-way offers
	Return *Segment `json:"return"`

	// CabinClass is the uppercase fare tier (e.g., "ECONOMY", "BUSINESS")
	CabinClass string `json:"cabinClass"`

	// BookingClass is the single-letter booking code, if the provider sent one
	BookingClass string `json:"bookingClass,omitempty"`

	// SeatsAvailable is the number of bookable seats, if known
	SeatsAvailable *int `json:"seatsAvailable,omitempty"`
}

// Price contains pricing information for an offer.
type Price struct {
	// Total is the non-negative decimal amount
	Total float64 `json:"total"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// Segment is one directional leg of an offer.
type Segment struct {
	Departure Endpoint `json:"departure"`
	Arrival   Endpoint `json:"arrival"`

	// Duration is the provider duration string (e.g., "PT2H30M")
	Duration string `json:"duration"`

	// Stops is the number of intermediate stops (0 = direct)
	Stops int `json:"stops"`

	// Carrier is the IATA code of the marketing airline of the first flight
	Carrier string `json:"carrier"`

	// FlightNumber is the carrier code followed by the flight number (e.g., "BA117")
	FlightNumber string `json:"flightNumber"`
}

// Endpoint is the departure or arrival point of a segment.
type Endpoint struct {
	// Airport is the IATA airport code (e.g., "JFK")
	Airport string `json:"airport"`

	// Time is the provider timestamp, usually naive local airport time
	Time string `json:"time"`
}

// IsRoundTrip reports whether the offer carries a return leg.
func (o Offer) IsRoundTrip() bool {
	return o.Return != nil
}

// DurationMinutes returns the parsed outbound duration in minutes (0 when unknown).
func (s Segment) DurationMinutes() int {
	return ParseDurationMinutes(s.Duration)
}

// OfferSet is the result of one provider search.
type OfferSet struct {
	// Offers in the order returned by the provider
	Offers []Offer `json:"offers"`

	// Carriers maps carrier codes to display names
	Carriers map[string]string `json:"carriers"`
}
