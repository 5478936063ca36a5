package amadeus

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tripwise/flight-offers/internal/domain"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// Normalize converts an Amadeus flight offers response into a domain OfferSet.
// Offers that cannot be normalized are skipped; the order of the rest is kept.
func Normalize(resp FlightOffersResponse) *domain.OfferSet {
	offers := make([]domain.Offer, 0, len(resp.Data))
	for _, o := range resp.Data {
		normalized, err := normalizeOffer(o)
		if err != nil {
			continue
		}
		offers = append(offers, normalized)
	}

	carriers := make(map[string]string, len(resp.Dictionaries.Carriers))
	for code, name := range resp.Dictionaries.Carriers {
		carriers[strings.ToUpper(code)] = name
	}

	return &domain.OfferSet{
		Offers:   offers,
		Carriers: carriers,
	}
}

// normalizeOffer converts a single Amadeus offer to a domain Offer.
func normalizeOffer(o FlightOffer) (domain.Offer, error) {
	if len(o.Itineraries) == 0 {
		return domain.Offer{}, errors.New("offer has no itineraries")
	}

	total, err := parsePrice(o.Price)
	if err != nil {
		return domain.Offer{}, err
	}

	outbound, err := normalizeItinerary(o.Itineraries[0])
	if err != nil {
		return domain.Offer{}, fmt.Errorf("outbound: %w", err)
	}

	offer := domain.Offer{
		ID: o.ID,
		Price: domain.Price{
			Total:    total,
			Currency: o.Price.Currency,
		},
		Outbound:       outbound,
		CabinClass:     domain.CabinEconomy,
		SeatsAvailable: o.NumberOfBookableSeats,
	}

	if len(o.Itineraries) > 1 {
		ret, err := normalizeItinerary(o.Itineraries[1])
		if err != nil {
			return domain.Offer{}, fmt.Errorf("return: %w", err)
		}
		offer.Return = &ret
	}

	if fare, ok := firstFareDetail(o.TravelerPricings); ok {
		if fare.Cabin != "" {
			offer.CabinClass = strings.ToUpper(fare.Cabin)
		}
		offer.BookingClass = fare.Class
	}

	return offer, nil
}

// normalizeItinerary collapses an itinerary's segments into one domain Segment.
// Stops are counted as connections between segments.
func normalizeItinerary(it Itinerary) (domain.Segment, error) {
	if len(it.Segments) == 0 {
		return domain.Segment{}, errors.New("itinerary has no segments")
	}

	first := it.Segments[0]
	last := it.Segments[len(it.Segments)-1]
	carrier := strings.ToUpper(first.CarrierCode)

	return domain.Segment{
		Departure: domain.Endpoint{
			Airport: first.Departure.IataCode,
			Time:    first.Departure.At,
		},
		Arrival: domain.Endpoint{
			Airport: last.Arrival.IataCode,
			Time:    last.Arrival.At,
		},
		Duration:     it.Duration,
		Stops:        len(it.Segments) - 1,
		Carrier:      carrier,
		FlightNumber: carrier + first.Number,
	}, nil
}

// parsePrice reads the total price, falling back to the grand total.
func parsePrice(p OfferPrice) (float64, error) {
	raw := p.Total
	if raw == "" {
		raw = p.GrandTotal
	}

	total, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", raw, err)
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, fmt.Errorf("non-finite price %q", raw)
	}
	if total < 0 {
		return 0, fmt.Errorf("negative price %q", raw)
	}
	return total, nil
}

// firstFareDetail returns the fare detail of the first segment for the first traveller.
func firstFareDetail(pricings []TravelerPricing) (FareDetailBySegment, bool) {
	if len(pricings) == 0 || len(pricings[0].FareDetailsBySegment) == 0 {
		return FareDetailBySegment{}, false
	}
	return pricings[0].FareDetailsBySegment[0], true
}
