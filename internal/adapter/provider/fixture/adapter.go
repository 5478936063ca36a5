// Package fixture implements a flight offer provider that serves recorded
// Amadeus flight-offers responses from a JSON file. It backs local development
// and integration tests when no API credentials are available.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tripwise/flight-offers/internal/adapter/provider/amadeus"
	"github.com/tripwise/flight-offers/internal/domain"
)

// ProviderName is the unique identifier for the fixture provider.
const ProviderName = "fixture"

// DefaultPath is the recorded response shipped with the repository.
const DefaultPath = "docs/response-mock/flight_offers.json"

// Adapter serves offers from a recorded flight-offers response.
type Adapter struct {
	path  string
	delay time.Duration
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithDelay makes every search wait d before answering, to mimic network latency.
func WithDelay(d time.Duration) Option {
	return func(a *Adapter) {
		a.delay = d
	}
}

// NewAdapter creates a fixture adapter reading from path.
// An empty path uses DefaultPath.
func NewAdapter(path string, opts ...Option) *Adapter {
	if path == "" {
		path = DefaultPath
	}
	a := &Adapter{path: path}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search reads the recorded response and returns the offers flying from
// criteria.Origin to criteria.Destination. Empty codes match any airport.
func (a *Adapter) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.OfferSet, error) {
	if err := a.wait(ctx); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName,
			fmt.Errorf("%w: failed to read fixture: %v", domain.ErrProviderUnavailable, err))
	}

	var resp amadeus.FlightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("failed to parse fixture: %w", err))
	}

	set := amadeus.Normalize(resp)
	set.Offers = matchRoute(set.Offers, criteria.Origin, criteria.Destination)
	return set, nil
}

// wait honours the configured delay and the caller's cancellation.
func (a *Adapter) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(a.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// matchRoute keeps offers whose outbound leg connects origin and destination.
func matchRoute(offers []domain.Offer, origin, destination string) []domain.Offer {
	out := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		if origin != "" && o.Outbound.Departure.Airport != origin {
			continue
		}
		if destination != "" && o.Outbound.Arrival.Airport != destination {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Ensure Adapter implements domain.FlightOfferProvider at compile time.
var _ domain.FlightOfferProvider = (*Adapter)(nil)
