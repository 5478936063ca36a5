package amadeus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwise/flight-offers/internal/domain"
	"github.com/tripwise/flight-offers/internal/infrastructure/retry"
	"github.com/tripwise/flight-offers/internal/infrastructure/timeutil"
)

// fakeAPI is a minimal stand-in for the Amadeus token and flight-offers endpoints.
type fakeAPI struct {
	tokenCalls  atomic.Int32
	searchCalls atomic.Int32

	// tokenStatus, when non-zero, is returned by the token endpoint
	tokenStatus int

	// searchStatuses are returned by successive search calls; 200 once exhausted
	searchStatuses []int

	lastQuery  atomic.Value
	lastBearer atomic.Value
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(tokenPath, func(w http.ResponseWriter, r *http.Request) {
		n := f.tokenCalls.Add(1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "key", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))

		if f.tokenStatus != 0 {
			w.WriteHeader(f.tokenStatus)
			_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"Client credentials are invalid"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"type":"amadeusOAuth2Token","access_token":"token-%d","token_type":"Bearer","expires_in":1799}`, n)
	})

	mux.HandleFunc(flightOffersPath, func(w http.ResponseWriter, r *http.Request) {
		n := int(f.searchCalls.Add(1))
		f.lastQuery.Store(r.URL.Query())
		f.lastBearer.Store(r.Header.Get("Authorization"))

		if n <= len(f.searchStatuses) && f.searchStatuses[n-1] != http.StatusOK {
			status := f.searchStatuses[n-1]
			w.WriteHeader(status)
			_, _ = fmt.Fprintf(w, `{"errors":[{"status":%d,"code":477,"title":"INVALID FORMAT","detail":"departureDate is in the past"}]}`, status)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.amadeus+json")
		_, _ = w.Write([]byte(sampleResponse))
	})

	return mux
}

func newTestClient(t *testing.T, api *fakeAPI, clock timeutil.Clock) *Client {
	t.Helper()
	srv := httptest.NewServer(api.handler(t))
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:   srv.URL,
		APIKey:    "key",
		APISecret: "secret",
		Retry: retry.Config{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
			Multiplier:   2,
		},
		Clock: clock,
	})
}

func testCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2025-12-15",
		Adults:        2,
	}
}

func TestClient_Name(t *testing.T) {
	assert.Equal(t, "amadeus", NewClient(Config{}).Name())
}

func TestClient_Search_Success(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api, nil)

	criteria := testCriteria()
	criteria.ReturnDate = "2025-12-22"
	criteria.TravelClass = "business"

	set, err := client.Search(context.Background(), criteria)
	require.NoError(t, err)

	require.Len(t, set.Offers, 2)
	assert.Equal(t, "BA117", set.Offers[0].Outbound.FlightNumber)
	assert.Equal(t, "AER LINGUS", set.Carriers["EI"])

	query := api.lastQuery.Load().(url.Values)
	assert.Equal(t, "JFK", query.Get("originLocationCode"))
	assert.Equal(t, "LHR", query.Get("destinationLocationCode"))
	assert.Equal(t, "2025-12-15", query.Get("departureDate"))
	assert.Equal(t, "2025-12-22", query.Get("returnDate"))
	assert.Equal(t, "2", query.Get("adults"))
	assert.Equal(t, "BUSINESS", query.Get("travelClass"))
	assert.Equal(t, "50", query.Get("max"))
	assert.Equal(t, "USD", query.Get("currencyCode"))
	assert.Equal(t, "Bearer token-1", api.lastBearer.Load())
}

func TestClient_Search_ReusesToken(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api, timeutil.NewMockClock(time.Now()))

	for i := 0; i < 3; i++ {
		_, err := client.Search(context.Background(), testCriteria())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), api.tokenCalls.Load())
	assert.Equal(t, int32(3), api.searchCalls.Load())
}

func TestClient_Search_RefreshesExpiredToken(t *testing.T) {
	api := &fakeAPI{}
	clock := timeutil.NewMockClock(time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC))
	client := newTestClient(t, api, clock)

	_, err := client.Search(context.Background(), testCriteria())
	require.NoError(t, err)

	// Still inside the lifetime minus the safety margin.
	clock.Advance(29 * time.Minute)
	_, err = client.Search(context.Background(), testCriteria())
	require.NoError(t, err)
	assert.Equal(t, int32(1), api.tokenCalls.Load())

	clock.Advance(time.Minute)
	_, err = client.Search(context.Background(), testCriteria())
	require.NoError(t, err)
	assert.Equal(t, int32(2), api.tokenCalls.Load())
	assert.Equal(t, "Bearer token-2", api.lastBearer.Load())
}

func TestClient_Search_RetriesServerErrors(t *testing.T) {
	api := &fakeAPI{searchStatuses: []int{http.StatusInternalServerError, http.StatusTooManyRequests}}
	client := newTestClient(t, api, nil)

	set, err := client.Search(context.Background(), testCriteria())
	require.NoError(t, err)

	assert.Len(t, set.Offers, 2)
	assert.Equal(t, int32(3), api.searchCalls.Load())
}

func TestClient_Search_GivesUpAfterMaxAttempts(t *testing.T) {
	api := &fakeAPI{searchStatuses: []int{
		http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusServiceUnavailable,
	}}
	client := newTestClient(t, api, nil)

	set, err := client.Search(context.Background(), testCriteria())

	assert.Nil(t, set)
	require.Error(t, err)
	assert.True(t, domain.IsProviderUnavailable(err))
	assert.True(t, domain.IsRetryable(err))
	assert.False(t, retry.IsPermanent(err))
	assert.Equal(t, int32(3), api.searchCalls.Load())
}

func TestClient_Search_BadRequestIsNotRetried(t *testing.T) {
	api := &fakeAPI{searchStatuses: []int{http.StatusBadRequest}}
	client := newTestClient(t, api, nil)

	_, err := client.Search(context.Background(), testCriteria())

	require.Error(t, err)
	assert.True(t, domain.IsInvalidRequest(err))
	assert.False(t, retry.IsPermanent(err), "permanent marker is stripped before returning")
	assert.Contains(t, err.Error(), "departureDate is in the past")
	assert.Equal(t, int32(1), api.searchCalls.Load())
}

func TestClient_Search_UnauthorizedRefreshesToken(t *testing.T) {
	api := &fakeAPI{searchStatuses: []int{http.StatusUnauthorized}}
	client := newTestClient(t, api, nil)

	_, err := client.Search(context.Background(), testCriteria())
	require.NoError(t, err)

	assert.Equal(t, int32(2), api.tokenCalls.Load())
	assert.Equal(t, int32(2), api.searchCalls.Load())
	assert.Equal(t, "Bearer token-2", api.lastBearer.Load())
}

func TestClient_Search_RejectedCredentials(t *testing.T) {
	api := &fakeAPI{tokenStatus: http.StatusUnauthorized}
	client := newTestClient(t, api, nil)

	_, err := client.Search(context.Background(), testCriteria())

	require.Error(t, err)
	assert.True(t, domain.IsProviderUnavailable(err))
	assert.Equal(t, int32(1), api.tokenCalls.Load())
	assert.Equal(t, int32(0), api.searchCalls.Load())
}

func TestClient_Search_MissingCredentials(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1"})

	_, err := client.Search(context.Background(), testCriteria())

	require.Error(t, err)
	assert.True(t, domain.IsProviderUnavailable(err))
	assert.False(t, domain.IsRetryable(err))
}

func TestClient_Search_ContextCancelled(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, testCriteria())

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, int32(0), api.searchCalls.Load())
}

func TestClient_Search_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == tokenPath {
			_, _ = w.Write([]byte(`{"access_token":"t","expires_in":1799}`))
			return
		}
		_, _ = w.Write([]byte(`{"data": [`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "key", APISecret: "secret"})

	_, err := client.Search(context.Background(), testCriteria())

	require.Error(t, err)
	assert.False(t, domain.IsRetryable(err))
	assert.Contains(t, err.Error(), "failed to decode flight offers")
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantRetryable bool
		wantPermanent bool
		wantInvalid   bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, wantRetryable: true},
		{name: "server error", status: http.StatusBadGateway, wantRetryable: true},
		{name: "bad request", status: http.StatusBadRequest, wantPermanent: true, wantInvalid: true},
		{name: "forbidden", status: http.StatusForbidden, wantPermanent: true},
		{name: "not found", status: http.StatusNotFound, wantPermanent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rec.WriteHeader(tt.status)
			_, _ = rec.WriteString("upstream says no")

			err := classifyStatus(rec.Result())

			assert.Equal(t, tt.wantRetryable, isRetryable(err))
			assert.Equal(t, tt.wantPermanent, retry.IsPermanent(err))
			assert.Equal(t, tt.wantInvalid, domain.IsInvalidRequest(err))
			assert.Contains(t, err.Error(), "upstream says no")
		})
	}
}

func TestStatusError_EmptyBody(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.WriteHeader(http.StatusBadGateway)

	err := statusError(rec.Result())

	assert.EqualError(t, err, "status 502: Bad Gateway")
}
