package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// SearchCriteria defines the parameters for a flight offer search.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult travellers (default: 1)
	Adults int `json:"adults"`

	// TravelClass optionally restricts the cabin (ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST)
	TravelClass string `json:"travelClass,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// validTravelClasses defines the cabins the provider accepts.
var validTravelClasses = map[string]bool{
	CabinEconomy:        true,
	CabinPremiumEconomy: true,
	CabinBusiness:       true,
	CabinFirst:          true,
}

// Validate checks if the search criteria is valid.
// Returns an error wrapping ErrInvalidRequest if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return WrapInvalidRequest("origin is required")
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return WrapInvalidRequest("origin must be a valid 3-letter IATA code, got %q", s.Origin)
	}

	if s.Destination == "" {
		return WrapInvalidRequest("destination is required")
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return WrapInvalidRequest("destination must be a valid 3-letter IATA code, got %q", s.Destination)
	}

	if s.Origin == s.Destination {
		return WrapInvalidRequest("origin and destination must be different")
	}

	departure, err := time.Parse(dateLayout, s.DepartureDate)
	if err != nil {
		return WrapInvalidRequest("departureDate must be a valid YYYY-MM-DD date, got %q", s.DepartureDate)
	}

	if s.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, s.ReturnDate)
		if err != nil {
			return WrapInvalidRequest("returnDate must be a valid YYYY-MM-DD date, got %q", s.ReturnDate)
		}
		if ret.Before(departure) {
			return WrapInvalidRequest("returnDate must not be before departureDate")
		}
	}

	if s.Adults < 1 {
		return WrapInvalidRequest("adults must be at least 1")
	}
	if s.Adults > 9 {
		return WrapInvalidRequest("adults cannot exceed 9")
	}

	if s.TravelClass != "" && !validTravelClasses[s.TravelClass] {
		return WrapInvalidRequest("travelClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST; got %q", s.TravelClass)
	}

	return nil
}

// SetDefaults normalises codes and applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	s.TravelClass = strings.ToUpper(strings.TrimSpace(s.TravelClass))
	if s.Adults == 0 {
		s.Adults = 1
	}
}

// CacheKey returns a key identifying searches that yield the same offers.
func (s SearchCriteria) CacheKey() string {
	return fmt.Sprintf("offers:%s:%s:%s:%s:%d:%s",
		s.Origin, s.Destination, s.DepartureDate, s.ReturnDate, s.Adults, s.TravelClass)
}
