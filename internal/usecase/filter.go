// Package usecase provides the business logic for flight offer search, filtering and sorting.
package usecase

import (
	"slices"
	"time"

	"github.com/tripwise/flight-offers/internal/domain"
)

// Predicate decides whether an offer passes one filter condition.
type Predicate func(offer domain.Offer, cfg domain.FilterConfiguration) bool

// NamedPredicate pairs a predicate with a stable name for logging and tests.
type NamedPredicate struct {
	Name  string
	Check Predicate
}

// Predicates returns the filter conditions in evaluation order.
// An offer is included only when every predicate passes.
//
// Only the outbound segment is inspected for stops, carrier and time
// filters; the return leg is not separately filterable.
func Predicates(loc *time.Location) []NamedPredicate {
	return []NamedPredicate{
		{Name: "price", Check: PriceInRange},
		{Name: "stops", Check: StopsAccepted},
		{Name: "airline", Check: CarrierAccepted},
		{Name: "cabin_class", Check: CabinClassAccepted},
		{Name: "departure_time", Check: DepartureHourWithin(loc)},
		{Name: "arrival_time", Check: ArrivalHourWithin(loc)},
	}
}

// PriceInRange checks the offer total against the inclusive price range.
func PriceInRange(offer domain.Offer, cfg domain.FilterConfiguration) bool {
	return cfg.PriceRange.Contains(offer.Price.Total)
}

// StopsAccepted checks the outbound stop count. An empty set accepts all.
func StopsAccepted(offer domain.Offer, cfg domain.FilterConfiguration) bool {
	return len(cfg.Stops) == 0 || slices.Contains(cfg.Stops, offer.Outbound.Stops)
}

// CarrierAccepted checks the outbound carrier. An empty set accepts all.
func CarrierAccepted(offer domain.Offer, cfg domain.FilterConfiguration) bool {
	return len(cfg.Airlines) == 0 || slices.Contains(cfg.Airlines, offer.Outbound.Carrier)
}

// CabinClassAccepted checks the cabin class. An empty set accepts all.
func CabinClassAccepted(offer domain.Offer, cfg domain.FilterConfiguration) bool {
	return len(cfg.CabinClasses) == 0 || slices.Contains(cfg.CabinClasses, offer.CabinClass)
}

// DepartureHourWithin checks the outbound departure hour, read in loc.
func DepartureHourWithin(loc *time.Location) Predicate {
	return func(offer domain.Offer, cfg domain.FilterConfiguration) bool {
		return hourWithin(offer.Outbound.Departure.Time, cfg.DepartureTimeRange, loc)
	}
}

// ArrivalHourWithin checks the outbound arrival hour, read in loc.
func ArrivalHourWithin(loc *time.Location) Predicate {
	return func(offer domain.Offer, cfg domain.FilterConfiguration) bool {
		return hourWithin(offer.Outbound.Arrival.Time, cfg.ArrivalTimeRange, loc)
	}
}

// hourWithin reports whether the hour of ts falls in r.
// An unparseable timestamp only passes an unrestricted range.
func hourWithin(ts string, r domain.HourRange, loc *time.Location) bool {
	hour := domain.HourOfDayIn(ts, loc)
	if hour == domain.InvalidHour {
		return r.IsFull()
	}
	return r.Contains(hour)
}

// Engine filters and sorts offers. Hours are read in the engine's location.
// An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	loc         *time.Location
	predicates  []NamedPredicate
	comparators map[domain.SortKey]Comparator
}

// NewEngine creates an Engine reading hours in loc (time.Local when nil).
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{
		loc:         loc,
		predicates:  Predicates(loc),
		comparators: Comparators(loc),
	}
}

// Location returns the timezone used for hour extraction.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Included reports whether offer passes every filter condition in cfg.
func (e *Engine) Included(offer domain.Offer, cfg domain.FilterConfiguration) bool {
	for _, p := range e.predicates {
		if !p.Check(offer, cfg) {
			return false
		}
	}
	return true
}

// FailedPredicate returns the name of the first condition offer fails, or "" if it passes all.
func (e *Engine) FailedPredicate(offer domain.Offer, cfg domain.FilterConfiguration) string {
	for _, p := range e.predicates {
		if !p.Check(offer, cfg) {
			return p.Name
		}
	}
	return ""
}

// ApplyFilters returns a new slice holding the offers that pass cfg, in input order.
// It never mutates offers.
func (e *Engine) ApplyFilters(offers []domain.Offer, cfg domain.FilterConfiguration) []domain.Offer {
	result := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		if e.Included(o, cfg) {
			result = append(result, o)
		}
	}
	return result
}

// defaultEngine reads hours in the process-local timezone.
var defaultEngine = NewEngine(time.Local)

// Included reports whether offer passes cfg, reading hours in local time.
func Included(offer domain.Offer, cfg domain.FilterConfiguration) bool {
	return defaultEngine.Included(offer, cfg)
}

// ApplyFilters filters offers with cfg, reading hours in local time.
func ApplyFilters(offers []domain.Offer, cfg domain.FilterConfiguration) []domain.Offer {
	return defaultEngine.ApplyFilters(offers, cfg)
}
