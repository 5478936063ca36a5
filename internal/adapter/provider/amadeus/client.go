// Package amadeus implements the flight offer provider backed by the Amadeus
// Self-Service Flight Offers Search API.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tripwise/flight-offers/internal/domain"
	"github.com/tripwise/flight-offers/internal/infrastructure/logger"
	"github.com/tripwise/flight-offers/internal/infrastructure/retry"
	"github.com/tripwise/flight-offers/internal/infrastructure/timeutil"
)

// API paths.
const (
	tokenPath        = "/v1/security/oauth2/token"
	flightOffersPath = "/v2/shopping/flight-offers"
)

// Default client settings.
const (
	DefaultBaseURL    = "https://test.api.amadeus.com"
	DefaultMaxResults = 50
	DefaultCurrency   = "USD"
	DefaultTimeout    = 4 * time.Second

	// tokenExpiryMargin is subtracted from the token lifetime so a token is
	// refreshed shortly before the API would reject it.
	tokenExpiryMargin = 30 * time.Second

	// maxErrorBody caps how much of an error response is read.
	maxErrorBody = 4 << 10
)

// Config contains the client settings.
type Config struct {
	BaseURL    string
	APIKey     string
	APISecret  string
	MaxResults int
	Currency   string

	// Timeout bounds a single HTTP attempt
	Timeout time.Duration

	// Retry controls backoff between attempts; zero value uses retry.ProviderConfig
	Retry retry.Config

	HTTPClient *http.Client
	Clock      timeutil.Clock
	Logger     *logger.Logger
}

// Client is a flight offer provider for the Amadeus API.
// It caches the OAuth2 access token until shortly before it expires.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	maxResults int
	currency   string
	httpClient *http.Client
	retryCfg   retry.Config
	clock      timeutil.Clock
	log        *logger.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a new Amadeus client. Missing settings take their defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = retry.ProviderConfig
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		maxResults: cfg.MaxResults,
		currency:   strings.ToUpper(cfg.Currency),
		httpClient: cfg.HTTPClient,
		clock:      cfg.Clock,
		log:        cfg.Logger.WithProvider(ProviderName),
	}

	c.retryCfg = cfg.Retry.
		WithRetryIf(isRetryable).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			c.log.RetryScheduled(attempt, err, delay)
		})

	return c
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// Search queries the Flight Offers Search API and normalizes the result.
func (c *Client) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.OfferSet, error) {
	if c.apiKey == "" || c.apiSecret == "" {
		return nil, domain.NewProviderError(ProviderName,
			fmt.Errorf("%w: credentials not configured", domain.ErrProviderUnavailable))
	}

	query := c.buildQuery(criteria)

	resp, err := retry.DoWithResult(ctx, func() (*FlightOffersResponse, error) {
		return c.searchOnce(ctx, query)
	}, c.retryCfg)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, retry.Unwrap(err)
	}

	set := Normalize(*resp)
	c.log.WithSearch(criteria.Origin, criteria.Destination, criteria.DepartureDate).
		OffersReceived(len(resp.Data), len(set.Offers))

	return set, nil
}

// buildQuery encodes the search criteria as flight-offers query parameters.
func (c *Client) buildQuery(criteria domain.SearchCriteria) url.Values {
	adults := criteria.Adults
	if adults <= 0 {
		adults = 1
	}

	q := url.Values{}
	q.Set("originLocationCode", strings.ToUpper(criteria.Origin))
	q.Set("destinationLocationCode", strings.ToUpper(criteria.Destination))
	q.Set("departureDate", criteria.DepartureDate)
	q.Set("adults", strconv.Itoa(adults))
	q.Set("max", strconv.Itoa(c.maxResults))
	q.Set("currencyCode", c.currency)
	if criteria.ReturnDate != "" {
		q.Set("returnDate", criteria.ReturnDate)
	}
	if criteria.TravelClass != "" {
		q.Set("travelClass", strings.ToUpper(criteria.TravelClass))
	}
	return q
}

// searchOnce performs a single authenticated flight-offers request.
func (c *Client) searchOnce(ctx context.Context, query url.Values) (*FlightOffersResponse, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+flightOffersPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, retry.NewPermanent(domain.NewProviderError(ProviderName, err))
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.amadeus+json, application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		// The token was revoked or expired early; fetch a new one on the next attempt.
		c.invalidateToken()
		return nil, domain.NewRetryableProviderError(ProviderName, statusError(res))
	}
	if res.StatusCode != http.StatusOK {
		return nil, classifyStatus(res)
	}

	var body FlightOffersResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, retry.NewPermanent(domain.NewProviderError(ProviderName,
			fmt.Errorf("failed to decode flight offers: %w", err)))
	}
	return &body, nil
}

// accessToken returns a cached token or requests a new one.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.clock.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", retry.NewPermanent(domain.NewProviderError(ProviderName, err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", transportError(ctx, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusBadRequest {
			// Credentials were rejected; retrying cannot help.
			return "", retry.NewPermanent(domain.NewProviderError(ProviderName,
				fmt.Errorf("%w: authentication failed: %v", domain.ErrProviderUnavailable, statusError(res))))
		}
		return "", classifyStatus(res)
	}

	var tok tokenResponse
	if err := json.NewDecoder(res.Body).Decode(&tok); err != nil {
		return "", retry.NewPermanent(domain.NewProviderError(ProviderName,
			fmt.Errorf("failed to decode token: %w", err)))
	}
	if tok.AccessToken == "" {
		return "", retry.NewPermanent(domain.NewProviderError(ProviderName,
			errors.New("token response has no access_token")))
	}

	lifetime := time.Duration(tok.ExpiresIn)*time.Second - tokenExpiryMargin
	if lifetime < 0 {
		lifetime = 0
	}
	c.token = tok.AccessToken
	c.tokenExpiry = c.clock.Now().Add(lifetime)

	c.log.Debug().Dur("lifetime", lifetime).Msg("amadeus access token refreshed")
	return c.token, nil
}

// invalidateToken drops the cached token.
func (c *Client) invalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.tokenExpiry = time.Time{}
}

// isRetryable retries transient provider errors only.
func isRetryable(err error) bool {
	return retry.SkipPermanent(err) && domain.IsRetryable(err)
}

// transportError classifies an error returned by http.Client.Do.
func transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return retry.NewPermanent(ctxErr)
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewProviderTimeoutError(ProviderName)
	}
	return domain.NewRetryableProviderError(ProviderName,
		fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err))
}

// classifyStatus maps a non-OK response to a provider error.
// Rate limiting and server errors are retried; other client errors are not.
func classifyStatus(res *http.Response) error {
	err := statusError(res)

	switch {
	case res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= http.StatusInternalServerError:
		return domain.NewRetryableProviderError(ProviderName,
			fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err))
	case res.StatusCode == http.StatusBadRequest:
		return retry.NewPermanent(fmt.Errorf("%w: amadeus rejected the search: %v", domain.ErrInvalidRequest, err))
	default:
		return retry.NewPermanent(domain.NewProviderError(ProviderName, err))
	}
}

// statusError reads the API error body into a descriptive error.
func statusError(res *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))

	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Errors) > 0 {
		e := body.Errors[0]
		msg := e.Title
		if e.Detail != "" {
			msg += ": " + e.Detail
		}
		return fmt.Errorf("status %d: %s", res.StatusCode, msg)
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		text = http.StatusText(res.StatusCode)
	}
	return fmt.Errorf("status %d: %s", res.StatusCode, text)
}

// Ensure Client implements domain.FlightOfferProvider at compile time.
var _ domain.FlightOfferProvider = (*Client)(nil)
