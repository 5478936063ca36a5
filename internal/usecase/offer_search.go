package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/tripwise/flight-offers/internal/domain"
	"github.com/tripwise/flight-offers/internal/infrastructure/logger"
	"github.com/tripwise/flight-offers/internal/infrastructure/timeutil"
)

// Default timeout and cache values.
const (
	DefaultSearchTimeout        = 10 * time.Second
	DefaultCacheTTL             = 5 * time.Minute
	DefaultCacheCleanupInterval = 10 * time.Minute
)

// OfferSearchUseCase defines the interface for flight offer search operations.
type OfferSearchUseCase interface {
	// Search fetches offers for criteria, then filters and sorts them per opts.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// SearchTimeout bounds a single provider call
	SearchTimeout time.Duration

	// CacheTTL is how long provider results are reused; zero keeps the default
	CacheTTL time.Duration

	// CacheCleanupInterval is how often expired results are evicted
	CacheCleanupInterval time.Duration

	// Location is the timezone used to read departure and arrival hours
	Location *time.Location

	// Clock supplies the current time for search timing
	Clock timeutil.Clock

	// Logger receives search diagnostics
	Logger *logger.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SearchTimeout:        DefaultSearchTimeout,
		CacheTTL:             DefaultCacheTTL,
		CacheCleanupInterval: DefaultCacheCleanupInterval,
		Location:             time.Local,
		Clock:                timeutil.NewRealClock(),
		Logger:               logger.Nop(),
	}
}

// offerSearchUseCase fetches offers from one provider, caches them per criteria,
// and runs the filter/sort pipeline on every request.
type offerSearchUseCase struct {
	provider domain.FlightOfferProvider
	engine   *Engine
	cache    *cache.Cache
	group    singleflight.Group
	clock    timeutil.Clock
	timeout  time.Duration
	log      *logger.Logger
}

// NewOfferSearchUseCase creates a new OfferSearchUseCase backed by provider.
// If config is nil, default values are used.
func NewOfferSearchUseCase(provider domain.FlightOfferProvider, config *Config) OfferSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.SearchTimeout > 0 {
			cfg.SearchTimeout = config.SearchTimeout
		}
		if config.CacheTTL > 0 {
			cfg.CacheTTL = config.CacheTTL
		}
		if config.CacheCleanupInterval > 0 {
			cfg.CacheCleanupInterval = config.CacheCleanupInterval
		}
		if config.Location != nil {
			cfg.Location = config.Location
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
		if config.Logger != nil {
			cfg.Logger = config.Logger
		}
	}

	return &offerSearchUseCase{
		provider: provider,
		engine:   NewEngine(cfg.Location),
		cache:    cache.New(cfg.CacheTTL, cfg.CacheCleanupInterval),
		clock:    cfg.Clock,
		timeout:  cfg.SearchTimeout,
		log:      cfg.Logger.WithProvider(provider.Name()),
	}
}

// Search implements OfferSearchUseCase.Search.
//
// Offers are fetched once per distinct criteria while cached; concurrent identical
// searches share a single provider call. When opts.Filters is nil the defaults
// derived from the fetched offers are applied, which exclude nothing.
func (uc *offerSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error) {
	start := uc.clock.Now()

	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	if opts.Filters != nil {
		if err := opts.Filters.Validate(); err != nil {
			return nil, err
		}
	}
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = domain.DefaultSortKey
	}

	set, cacheHit, err := uc.fetch(ctx, criteria)
	if err != nil {
		return nil, err
	}

	defaults := ComputeDefaultFilters(set.Offers)
	bounds := ComputeBounds(set.Offers)

	filters := defaults
	if opts.Filters != nil {
		filters = opts.Filters.Clone()
	}
	if opts.Refine != nil {
		refined, err := opts.Refine(filters)
		if err != nil {
			return nil, err
		}
		if err := refined.Validate(); err != nil {
			return nil, err
		}
		filters = refined
	}

	offers := uc.engine.ApplyFiltersAndSort(set.Offers, filters, sortBy)

	activeCount := ActiveFilterCount(filters, bounds)
	uc.log.WithSearch(criteria.Origin, criteria.Destination, criteria.DepartureDate).
		SearchCompleted(logger.SearchSummary{
			Total:       len(set.Offers),
			Filtered:    len(offers),
			ActiveCount: activeCount,
			SortBy:      string(sortBy),
			CacheHit:    cacheHit,
		})

	return &domain.SearchResponse{
		Criteria:          criteria,
		Offers:            offers,
		Carriers:          set.Carriers,
		Filters:           filters,
		Defaults:          defaults,
		Bounds:            bounds,
		SortBy:            sortBy,
		FiltersActive:     IsFilterActive(filters, bounds),
		ActiveFilterCount: activeCount,
		Metadata: domain.SearchMetadata{
			TotalOffers:    len(set.Offers),
			FilteredOffers: len(offers),
			Provider:       uc.provider.Name(),
			SearchTimeMs:   uc.clock.Now().Sub(start).Milliseconds(),
			CacheHit:       cacheHit,
		},
	}, nil
}

// fetch returns the provider's offers for criteria, from cache when possible.
func (uc *offerSearchUseCase) fetch(ctx context.Context, criteria domain.SearchCriteria) (*domain.OfferSet, bool, error) {
	key := criteria.CacheKey()

	if cached, found := uc.cache.Get(key); found {
		if set, ok := cached.(*domain.OfferSet); ok {
			return set, true, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, false, classifyProviderError(uc.provider.Name(), err)
	}

	// The shared call outlives any single caller; queryProvider still bounds it
	// with the search timeout.
	shared := context.WithoutCancel(ctx)
	ch := uc.group.DoChan(key, func() (interface{}, error) {
		set, err := uc.queryProvider(shared, criteria)
		if err != nil {
			return nil, err
		}
		// Cached before the call is released so late arrivals find it.
		uc.cache.Set(key, set, cache.DefaultExpiration)
		return set, nil
	})

	select {
	case <-ctx.Done():
		return nil, false, classifyProviderError(uc.provider.Name(), ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, false, res.Err
		}
		if res.Shared {
			uc.log.Debug().Str("criteria", key).Msg("shared in-flight provider call")
		}
		return res.Val.(*domain.OfferSet), false, nil
	}
}

// queryProvider calls the provider with a timeout and panic recovery.
func (uc *offerSearchUseCase) queryProvider(ctx context.Context, criteria domain.SearchCriteria) (set *domain.OfferSet, err error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	name := uc.provider.Name()
	start := uc.clock.Now()

	defer func() {
		if r := recover(); r != nil {
			set = nil
			err = fmt.Errorf("%w: provider panic: %v", domain.ErrSearchFailed, r)
		}
	}()

	set, err = uc.provider.Search(ctx, criteria)
	if err != nil {
		uc.log.ProviderFailed(err, uc.clock.Now().Sub(start))
		return nil, classifyProviderError(name, err)
	}
	if set == nil {
		set = &domain.OfferSet{}
	}
	if set.Offers == nil {
		set.Offers = []domain.Offer{}
	}
	if set.Carriers == nil {
		set.Carriers = map[string]string{}
	}
	return set, nil
}

// classifyProviderError makes sure provider failures match ErrSearchFailed while
// keeping timeout, unavailability and validation causes visible to errors.Is.
func classifyProviderError(provider string, err error) error {
	switch {
	case domain.IsInvalidRequest(err):
		return err
	case errors.Is(err, context.DeadlineExceeded) && !domain.IsProviderTimeout(err):
		return fmt.Errorf("%w: %w", domain.ErrSearchFailed, domain.NewProviderTimeoutError(provider))
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", domain.ErrSearchFailed, err)
	case domain.IsSearchFailed(err):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.ErrSearchFailed, err)
	}
}

// Ensure offerSearchUseCase implements OfferSearchUseCase at compile time.
var _ OfferSearchUseCase = (*offerSearchUseCase)(nil)
