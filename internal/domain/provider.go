package domain

import (
	"context"
	"sort"
	"sync"
)

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// FlightOfferProvider searches flight offers from an external source.
type FlightOfferProvider interface {
	// Name returns the unique provider identifier.
	Name() string

	// Search returns the offers matching criteria, in provider order.
	Search(ctx context.Context, criteria SearchCriteria) (*OfferSet, error)
}

// ProviderRegistry holds the configured providers by name.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]FlightOfferProvider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]FlightOfferProvider),
	}
}

// Register adds p, replacing any provider with the same name. Nil is ignored.
func (r *ProviderRegistry) Register(p FlightOfferProvider) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Get returns the provider registered under name, or nil.
func (r *ProviderRegistry) Get(name string) FlightOfferProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[name]
}

// GetAll returns all registered providers ordered by name.
func (r *ProviderRegistry) GetAll() []FlightOfferProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]FlightOfferProvider, 0, len(r.providers))
	for _, name := range r.namesLocked() {
		all = append(all, r.providers[name])
	}
	return all
}

// Names returns the registered provider names in sorted order.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *ProviderRegistry) namesLocked() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
