package usecase

import (
	"cmp"
	"sort"
	"time"

	"github.com/tripwise/flight-offers/internal/domain"
)

// Comparator orders two offers: negative if a sorts first, positive if b does, 0 if tied.
type Comparator func(a, b domain.Offer) int

// noOrder is used for unrecognised sort keys and keeps input order.
func noOrder(domain.Offer, domain.Offer) int { return 0 }

// Comparators returns the comparator for every recognised sort key.
// Departure keys parse timestamps in loc.
func Comparators(loc *time.Location) map[domain.SortKey]Comparator {
	return map[domain.SortKey]Comparator{
		domain.SortPriceAsc:  comparePrice,
		domain.SortPriceDesc: reverse(comparePrice),
		domain.SortDurationAsc: func(a, b domain.Offer) int {
			return cmp.Compare(a.Outbound.DurationMinutes(), b.Outbound.DurationMinutes())
		},
		domain.SortDurationDesc: func(a, b domain.Offer) int {
			return cmp.Compare(b.Outbound.DurationMinutes(), a.Outbound.DurationMinutes())
		},
		domain.SortStopsAsc: func(a, b domain.Offer) int {
			return cmp.Compare(a.Outbound.Stops, b.Outbound.Stops)
		},
		domain.SortDepartureAsc:  departureComparator(loc, false),
		domain.SortDepartureDesc: departureComparator(loc, true),
	}
}

func comparePrice(a, b domain.Offer) int {
	return cmp.Compare(a.Price.Total, b.Price.Total)
}

func reverse(c Comparator) Comparator {
	return func(a, b domain.Offer) int { return c(b, a) }
}

// departureComparator orders by outbound departure instant.
// Offers whose departure cannot be parsed sort after all others in both directions.
func departureComparator(loc *time.Location, descending bool) Comparator {
	return func(a, b domain.Offer) int {
		ta, errA := domain.ParseTimestamp(a.Outbound.Departure.Time, loc)
		tb, errB := domain.ParseTimestamp(b.Outbound.Departure.Time, loc)

		switch {
		case errA != nil && errB != nil:
			return 0
		case errA != nil:
			return 1
		case errB != nil:
			return -1
		case descending:
			return tb.Compare(ta)
		default:
			return ta.Compare(tb)
		}
	}
}

// ComparatorFor returns the comparator for key, or a no-op comparator if key is not recognised.
func (e *Engine) ComparatorFor(key domain.SortKey) Comparator {
	if c, ok := e.comparators[key]; ok {
		return c
	}
	return noOrder
}

// SortOffers returns a stably sorted copy of offers. Ties keep their input order.
// It never mutates offers.
func (e *Engine) SortOffers(offers []domain.Offer, key domain.SortKey) []domain.Offer {
	result := make([]domain.Offer, len(offers))
	copy(result, offers)

	if len(result) < 2 {
		return result
	}

	compare := e.ComparatorFor(key)
	sort.SliceStable(result, func(i, j int) bool {
		return compare(result[i], result[j]) < 0
	})
	return result
}

// ComparatorFor returns the comparator for key using local time.
func ComparatorFor(key domain.SortKey) Comparator {
	return defaultEngine.ComparatorFor(key)
}

// SortOffers sorts a copy of offers by key using local time.
func SortOffers(offers []domain.Offer, key domain.SortKey) []domain.Offer {
	return defaultEngine.SortOffers(offers, key)
}
