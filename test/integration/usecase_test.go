package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwise/flight-offers/internal/adapter/provider/fixture"
	"github.com/tripwise/flight-offers/internal/domain"
	"github.com/tripwise/flight-offers/internal/infrastructure/timeutil"
	"github.com/tripwise/flight-offers/internal/usecase"
	"github.com/tripwise/flight-offers/test/mock"
	"github.com/tripwise/flight-offers/test/testutil"
)

func TestOfferSearch_FixtureProvider(t *testing.T) {
	uc := CreateUseCase(fixture.NewAdapter(testutil.MockPath(t, testutil.FixtureFile)))

	result, err := uc.Search(context.Background(), DefaultSearchCriteria(), usecase.DefaultSearchOptions())

	require.NoError(t, err)
	assert.Len(t, result.Offers, 9)
	assert.Equal(t, "7", result.Offers[0].ID)
	assert.Equal(t, fixture.ProviderName, result.Metadata.Provider)
}

func TestOfferSearch_FullFilterConfiguration(t *testing.T) {
	uc := CreateUseCase(fixture.NewAdapter(testutil.MockPath(t, testutil.FixtureFile)))

	filters, err := domain.NewFilterBuilder(domain.NewFilterConfiguration(domain.PriceRange{Min: 349, Max: 4210})).
		Stops(0, 1).
		DepartureTimeRange(15, 24).
		Build()
	require.NoError(t, err)

	result, err := uc.Search(context.Background(), DefaultSearchCriteria(), usecase.SearchOptions{
		Filters: &filters,
		SortBy:  domain.SortDepartureAsc,
	})

	require.NoError(t, err)
	// 16:40 EI, 18:30 BA, 19:50 DL, 21:05 VS, 22:30 BA
	assert.Equal(t, []string{"5", "1", "6", "2", "8"}, testutil.OfferIDs(result.Offers))
	assert.Equal(t, []string{"EI", "BA", "DL", "VS", "BA"}, testutil.Carriers(result.Offers))
	assert.Equal(t, 2, result.ActiveFilterCount)
}

func TestOfferSearch_ProviderSeesNormalisedCriteria(t *testing.T) {
	provider := mock.NewProvider("mock").WithOffers(mock.SampleOffers(1))
	uc := CreateUseCase(provider)

	criteria := domain.SearchCriteria{Origin: " jfk", Destination: "lhr", DepartureDate: "2025-12-15", TravelClass: "economy"}
	_, err := uc.Search(context.Background(), criteria, usecase.DefaultSearchOptions())

	require.NoError(t, err)
	assert.Equal(t, domain.SearchCriteria{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2025-12-15",
		Adults:        1,
		TravelClass:   domain.CabinEconomy,
	}, provider.LastCriteria())
}

func TestOfferSearch_InvalidCriteriaSkipProvider(t *testing.T) {
	provider := mock.NewProvider("mock")
	uc := CreateUseCase(provider)

	criteria := DefaultSearchCriteria()
	criteria.Destination = criteria.Origin

	_, err := uc.Search(context.Background(), criteria, usecase.DefaultSearchOptions())

	require.Error(t, err)
	assert.True(t, domain.IsInvalidRequest(err))
	assert.Zero(t, provider.CallCount())
}

func TestOfferSearch_ProviderTimeout(t *testing.T) {
	provider := mock.NewProvider("mock").
		WithDelay(500 * time.Millisecond).
		WithOffers(mock.SampleOffers(2))

	uc := CreateUseCaseWithConfig(provider, &usecase.Config{SearchTimeout: 30 * time.Millisecond})

	start := time.Now()
	_, err := uc.Search(context.Background(), DefaultSearchCriteria(), usecase.DefaultSearchOptions())
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, domain.IsSearchFailed(err))
	assert.True(t, domain.IsProviderTimeout(err))
	assert.Less(t, elapsed, 400*time.Millisecond, "search should stop at the timeout")
}

func TestOfferSearch_ContextCancellation(t *testing.T) {
	provider := mock.NewProvider("mock").WithDelay(time.Second)
	uc := CreateUseCase(provider)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := uc.Search(ctx, DefaultSearchCriteria(), usecase.DefaultSearchOptions())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOfferSearch_FailuresAreNotCached(t *testing.T) {
	provider := mock.NewProvider("mock").WithError(errors.New("temporary outage"))
	uc := CreateUseCase(provider)

	_, err := uc.Search(context.Background(), DefaultSearchCriteria(), usecase.DefaultSearchOptions())
	require.Error(t, err)

	provider.WithError(nil).WithOffers(mock.SampleOffers(3))

	result, err := uc.Search(context.Background(), DefaultSearchCriteria(), usecase.DefaultSearchOptions())
	require.NoError(t, err)
	assert.Len(t, result.Offers, 3)
	assert.False(t, result.Metadata.CacheHit)
	assert.Equal(t, 2, provider.CallCount())
}

func TestOfferSearch_CacheExpires(t *testing.T) {
	provider := mock.NewProvider("mock").WithOffers(mock.SampleOffers(2))
	uc := CreateUseCaseWithConfig(provider, &usecase.Config{
		CacheTTL:             30 * time.Millisecond,
		CacheCleanupInterval: 10 * time.Millisecond,
	})

	_, err := uc.Search(context.Background(), DefaultSearchCriteria(), usecase.DefaultSearchOptions())
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	result, err := uc.Search(context.Background(), DefaultSearchCriteria(), usecase.DefaultSearchOptions())
	require.NoError(t, err)
	assert.False(t, result.Metadata.CacheHit)
	assert.Equal(t, 2, provider.CallCount())
}

func TestOfferSearch_DistinctCriteriaAreCachedSeparately(t *testing.T) {
	provider := mock.NewProvider("mock").WithOffers(mock.SampleOffers(2))
	uc := CreateUseCase(provider)

	oneWay := DefaultSearchCriteria()
	roundTrip := DefaultSearchCriteria()
	roundTrip.ReturnDate = "2025-12-22"

	for _, c := range []domain.SearchCriteria{oneWay, roundTrip, oneWay, roundTrip} {
		_, err := uc.Search(context.Background(), c, usecase.DefaultSearchOptions())
		require.NoError(t, err)
	}

	assert.Equal(t, 2, provider.CallCount())
}

func TestOfferSearch_SearchTimeUsesClock(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC))
	provider := mock.NewProvider("mock").WithOffers(mock.SampleOffers(1))

	uc := CreateUseCaseWithConfig(provider, &usecase.Config{Clock: clock})

	result, err := uc.Search(context.Background(), DefaultSearchCriteria(), usecase.DefaultSearchOptions())

	require.NoError(t, err)
	assert.Zero(t, result.Metadata.SearchTimeMs)
}

func TestOfferSearch_EmptyProviderResult(t *testing.T) {
	provider := mock.NewProvider("mock")
	uc := CreateUseCase(provider)

	result, err := uc.Search(context.Background(), DefaultSearchCriteria(), usecase.DefaultSearchOptions())

	require.NoError(t, err)
	assert.NotNil(t, result.Offers)
	assert.Empty(t, result.Offers)
	assert.NotNil(t, result.Carriers)
	assert.Equal(t, domain.PriceRange{Min: domain.FallbackMinPrice, Max: domain.FallbackMaxPrice}, result.Defaults.PriceRange)
}
