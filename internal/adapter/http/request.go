// Package http provides the HTTP handler layer for the flight offer API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tripwise/flight-offers/internal/domain"
)

// SearchOffersRequest represents the request body for an offer search.
type SearchOffersRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin" example:"JFK"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination" example:"LHR"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2025-12-15"`

	// ReturnDate is the optional inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty" example:"2025-12-22"`

	// Adults is the number of adult travellers (1-9, default 1)
	Adults int `json:"adults,omitempty" example:"1"`

	// TravelClass optionally restricts the cabin searched
	TravelClass string `json:"travelClass,omitempty" example:"ECONOMY"`

	// Filters are overlaid on the defaults derived from the offers found
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy is one of price-asc, price-desc, duration-asc, duration-desc,
	// stops-asc, departure-asc, departure-desc
	SortBy string `json:"sortBy,omitempty" example:"price-asc"`
}

// FilterOffersRequest asks the server to filter and sort offers the client already holds.
type FilterOffersRequest struct {
	Offers  []domain.Offer `json:"offers"`
	Filters *FilterDTO     `json:"filters,omitempty"`
	SortBy  string         `json:"sortBy,omitempty" example:"duration-asc"`
}

// DefaultsRequest asks for the default filters and bounds of a set of offers.
type DefaultsRequest struct {
	Offers []domain.Offer `json:"offers"`
}

// FilterDTO holds the filter groups a client wants to change.
// Omitted groups keep their default value, which excludes nothing.
// Example: {"stops": [0], "airlines": ["BA"], "departureTimeRange": {"start": 6, "end": 12}}
type FilterDTO struct {
	// PriceRange bounds the total price, inclusive
	PriceRange *PriceRangeDTO `json:"priceRange,omitempty"`

	// Stops lists accepted outbound stop counts; empty accepts all
	Stops []int `json:"stops,omitempty" example:"0,1"`

	// Airlines lists accepted outbound carrier codes; empty accepts all
	Airlines []string `json:"airlines,omitempty" example:"BA,VS"`

	// CabinClasses lists accepted cabins; empty accepts all
	CabinClasses []string `json:"cabinClasses,omitempty" example:"ECONOMY"`

	// DepartureTimeRange bounds the outbound departure hour, inclusive
	DepartureTimeRange *HourRangeDTO `json:"departureTimeRange,omitempty"`

	// ArrivalTimeRange bounds the outbound arrival hour, inclusive
	ArrivalTimeRange *HourRangeDTO `json:"arrivalTimeRange,omitempty"`
}

// PriceRangeDTO is an inclusive price interval.
type PriceRangeDTO struct {
	Min float64 `json:"min" example:"0"`
	Max float64 `json:"max" example:"1500"`
}

// HourRangeDTO is an inclusive interval of hours within [0, 24].
type HourRangeDTO struct {
	Start int `json:"start" example:"6"`
	End   int `json:"end" example:"18"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	carrierCodePattern = regexp.MustCompile(`^[A-Z0-9]{2}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid travel classes.
var validClasses = map[string]bool{
	domain.CabinEconomy:        true,
	domain.CabinPremiumEconomy: true,
	domain.CabinBusiness:       true,
	domain.CabinFirst:          true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and normalises its codes.
func (r *SearchOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Origin = validateAirport(errs, "origin", r.Origin)
	r.Destination = validateAirport(errs, "destination", r.Destination)
	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}

	departure, ok := validateDate(errs, "departureDate", r.DepartureDate, true)
	if ret, retOK := validateDate(errs, "returnDate", r.ReturnDate, false); ok && retOK && !ret.IsZero() && ret.Before(departure) {
		errs.Add("returnDate", "returnDate must not be before departureDate")
	}

	if r.Adults < 0 || r.Adults > 9 {
		errs.Add("adults", "adults must be between 1 and 9")
	}

	r.TravelClass = strings.ToUpper(strings.TrimSpace(r.TravelClass))
	if r.TravelClass != "" && !validClasses[r.TravelClass] {
		errs.Add("travelClass", "travelClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST")
	}

	validateSortBy(errs, r.SortBy)
	r.Filters.validate(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the filter request.
func (r *FilterOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Offers == nil {
		errs.Add("offers", "offers is required")
	}
	validateSortBy(errs, r.SortBy)
	r.Filters.validate(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the defaults request.
func (r *DefaultsRequest) Validate() error {
	if r.Offers == nil {
		errs := &ValidationErrors{}
		errs.Add("offers", "offers is required")
		return errs
	}
	return nil
}

func validateAirport(errs *ValidationErrors, field, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		errs.Add(field, field+" is required")
		return code
	}
	if !airportCodePattern.MatchString(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
	}
	return code
}

// validateDate parses value as YYYY-MM-DD. The boolean is false when the value is invalid.
func validateDate(errs *ValidationErrors, field, value string, required bool) (time.Time, bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
			return time.Time{}, false
		}
		return time.Time{}, true
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}, false
	}

	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}, false
	}
	return d, true
}

func validateSortBy(errs *ValidationErrors, sortBy string) {
	if sortBy == "" {
		return
	}
	if !domain.ParseSortKey(sortBy).IsValid() {
		keys := make([]string, len(domain.SortKeys))
		for i, k := range domain.SortKeys {
			keys[i] = string(k)
		}
		errs.Add("sortBy", "sortBy must be one of: "+strings.Join(keys, ", "))
	}
}

func (f *FilterDTO) validate(errs *ValidationErrors) {
	if f == nil {
		return
	}

	if pr := f.PriceRange; pr != nil {
		if pr.Min < 0 || pr.Max < 0 {
			errs.Add("filters.priceRange", "price bounds must not be negative")
		} else if pr.Min > pr.Max {
			errs.Add("filters.priceRange", "min must be less than or equal to max")
		}
	}

	for i, s := range f.Stops {
		if s < 0 {
			errs.Add(fmt.Sprintf("filters.stops[%d]", i), "stop counts must not be negative")
		}
	}

	for i, code := range f.Airlines {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if !carrierCodePattern.MatchString(normalized) {
			errs.Add(fmt.Sprintf("filters.airlines[%d]", i), "airline code must be 2 letters or digits")
		}
		f.Airlines[i] = normalized
	}

	for i, cabin := range f.CabinClasses {
		normalized := strings.ToUpper(strings.TrimSpace(cabin))
		if !validClasses[normalized] {
			errs.Add(fmt.Sprintf("filters.cabinClasses[%d]", i), "cabin must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST")
		}
		f.CabinClasses[i] = normalized
	}

	f.DepartureTimeRange.validate(errs, "filters.departureTimeRange")
	f.ArrivalTimeRange.validate(errs, "filters.arrivalTimeRange")
}

func (h *HourRangeDTO) validate(errs *ValidationErrors, field string) {
	if h == nil {
		return
	}
	if h.Start < domain.MinHour || h.End > domain.MaxHour || h.Start > domain.MaxHour || h.End < domain.MinHour {
		errs.Add(field, fmt.Sprintf("hours must be between %d and %d", domain.MinHour, domain.MaxHour))
		return
	}
	if h.Start > h.End {
		errs.Add(field, "start must be less than or equal to end")
	}
}
