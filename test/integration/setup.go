// Package integration provides helpers and integration tests for the flight offer service.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, the use case, and providers.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/tripwise/flight-offers/internal/adapter/http"
	"github.com/tripwise/flight-offers/internal/adapter/http/middleware"
	"github.com/tripwise/flight-offers/internal/adapter/http/response"
	"github.com/tripwise/flight-offers/internal/domain"
	"github.com/tripwise/flight-offers/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.OfferHandler
}

// NewTestServer creates a test server backed by uc with the production middleware stack.
// Hours are read in UTC so results do not depend on the machine timezone.
func NewTestServer(uc usecase.OfferSearchUseCase, providerName string) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, zerolog.Nop())

	handler := httpAdapter.NewOfferHandler(uc, usecase.NewEngine(time.UTC), providerName)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// NewProviderServer creates a use case for provider and a test server in front of it.
func NewProviderServer(provider domain.FlightOfferProvider) *TestServer {
	return NewTestServer(CreateUseCase(provider), provider.Name())
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch b := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(b))
	default:
		bodyBytes, _ := json.Marshal(b)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts body to the search endpoint.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/offers/search", Body: body})
}

// FilterRequest posts body to the filter endpoint.
func (ts *TestServer) FilterRequest(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/offers/filter", Body: body})
}

// DefaultsRequest posts body to the defaults endpoint.
func (ts *TestServer) DefaultsRequest(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/offers/defaults", Body: body})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/health"})
}

// ParseSearchResponse parses the response body as a SearchResponse.
func (r *Response) ParseSearchResponse() (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseFilterResponse parses the response body as a FilterOffersResponse.
func (r *Response) ParseFilterResponse() (*httpAdapter.FilterOffersResponse, error) {
	var resp httpAdapter.FilterOffersResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an error detail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var errResp response.ErrorDetail
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return &errResp, nil
}

// DefaultSearchRequest returns a valid JFK to LHR search on the date the fixture covers.
func DefaultSearchRequest() httpAdapter.SearchOffersRequest {
	return httpAdapter.SearchOffersRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2025-12-15",
	}
}

// DefaultSearchCriteria returns valid search criteria for testing the use case directly.
func DefaultSearchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2025-12-15",
		Adults:        1,
	}
}

// CreateUseCase creates a use case for provider that reads hours in UTC.
func CreateUseCase(provider domain.FlightOfferProvider) usecase.OfferSearchUseCase {
	return CreateUseCaseWithConfig(provider, &usecase.Config{Location: time.UTC})
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(provider domain.FlightOfferProvider, config *usecase.Config) usecase.OfferSearchUseCase {
	return usecase.NewOfferSearchUseCase(provider, config)
}
