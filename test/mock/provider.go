// Package mock provides test doubles for the flight offer service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tripwise/flight-offers/internal/domain"
)

// Provider is a configurable mock implementation of domain.FlightOfferProvider.
// It supports configurable delays, errors, and responses for testing
// timeouts, failures and caching.
type Provider struct {
	name      string
	offers    []domain.Offer
	carriers  map[string]string
	err       error
	delay     time.Duration
	callCount int
	lastQuery domain.SearchCriteria
	mu        sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

// WithOffers configures the provider to return the given offers.
func (p *Provider) WithOffers(offers []domain.Offer) *Provider {
	p.offers = offers
	return p
}

// WithCarriers configures the carrier dictionary returned with the offers.
func (p *Provider) WithCarriers(carriers map[string]string) *Provider {
	p.carriers = carriers
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.FlightOfferProvider.Search.
// It respects context cancellation, applies the configured delay,
// and returns the configured offers or error.
func (p *Provider) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.OfferSet, error) {
	p.mu.Lock()
	p.callCount++
	p.lastQuery = criteria
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	return &domain.OfferSet{
		Offers:   p.offers,
		Carriers: p.carriers,
	}, nil
}

// CallCount returns the number of times Search was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// LastCriteria returns the criteria of the most recent Search call.
func (p *Provider) LastCriteria() domain.SearchCriteria {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastQuery
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.FlightOfferProvider at compile time.
var _ domain.FlightOfferProvider = (*Provider)(nil)

// sampleCarriers cycles through the carriers used by SampleOffers.
var sampleCarriers = []struct{ code, name string }{
	{"BA", "BRITISH AIRWAYS"},
	{"VS", "VIRGIN ATLANTIC"},
	{"AA", "AMERICAN AIRLINES"},
}

// SampleCarriers returns the carrier dictionary matching SampleOffers.
func SampleCarriers() map[string]string {
	out := make(map[string]string, len(sampleCarriers))
	for _, c := range sampleCarriers {
		out[c.code] = c.name
	}
	return out
}

// SampleOffers returns count JFK to LHR offers with realistic values.
//
// Offer i departs at 06:00 plus 2i hours on 2025-12-15, costs 300 + 50i USD,
// has i%3 stops and is flown by BA, VS and AA in turn. Every third offer
// is sold in business class.
func SampleOffers(count int) []domain.Offer {
	offers := make([]domain.Offer, count)

	base := time.Date(2025, 12, 15, 6, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		departure := base.Add(time.Duration(i*2) * time.Hour)
		flying := 7*time.Hour + time.Duration(i%3)*90*time.Minute
		arrival := departure.Add(flying + 5*time.Hour)
		carrier := sampleCarriers[i%len(sampleCarriers)].code

		cabin := domain.CabinEconomy
		if i%3 == 2 {
			cabin = domain.CabinBusiness
		}

		offers[i] = domain.Offer{
			ID:    fmt.Sprintf("%d", i+1),
			Price: domain.Price{Total: 300 + float64(i*50), Currency: "USD"},
			Outbound: domain.Segment{
				Departure:    domain.Endpoint{Airport: "JFK", Time: departure.Format("2006-01-02T15:04:05")},
				Arrival:      domain.Endpoint{Airport: "LHR", Time: arrival.Format("2006-01-02T15:04:05")},
				Duration:     isoDuration(flying),
				Stops:        i % 3,
				Carrier:      carrier,
				FlightNumber: fmt.Sprintf("%s%d", carrier, 100+i),
			},
			CabinClass: cabin,
		}
	}

	return offers
}

// isoDuration formats d the way the provider reports durations (e.g., "PT8H30M").
func isoDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("PT%dH%dM", minutes/60, minutes%60)
}
