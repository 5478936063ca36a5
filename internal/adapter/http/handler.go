package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tripwise/flight-offers/internal/adapter/http/response"
	"github.com/tripwise/flight-offers/internal/domain"
	"github.com/tripwise/flight-offers/internal/usecase"
)

// OfferHandler handles HTTP requests for flight offer endpoints.
type OfferHandler struct {
	useCase  usecase.OfferSearchUseCase
	engine   *usecase.Engine
	provider string
}

// NewOfferHandler creates a new OfferHandler.
// engine filters client-supplied offers; nil uses the local timezone.
// provider is reported by the health endpoint.
func NewOfferHandler(uc usecase.OfferSearchUseCase, engine *usecase.Engine, provider string) *OfferHandler {
	if engine == nil {
		engine = usecase.NewEngine(nil)
	}
	return &OfferHandler{
		useCase:  uc,
		engine:   engine,
		provider: provider,
	}
}

// SearchOffers handles POST /api/v1/offers/search
//
// @Summary Search flight offers
// @Description Searches the flight offer provider, then filters and sorts the offers found
// @Tags offers
// @Accept json
// @Produce json
// @Param request body SearchOffersRequest true "Search criteria, filters and sort key"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /offers/search [post]
func (h *OfferHandler) SearchOffers(c echo.Context) error {
	var req SearchOffersRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), ToDomainCriteria(&req), ToSearchOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// FilterOffers handles POST /api/v1/offers/filter
//
// @Summary Filter and sort offers
// @Description Applies filters and a sort key to offers the client already holds
// @Tags offers
// @Accept json
// @Produce json
// @Param request body FilterOffersRequest true "Offers, filters and sort key"
// @Success 200 {object} FilterOffersResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /offers/filter [post]
func (h *OfferHandler) FilterOffers(c echo.Context) error {
	var req FilterOffersRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	filters, err := req.Filters.Overlay(usecase.ComputeDefaultFilters(req.Offers))
	if err != nil {
		return h.handleError(c, err)
	}

	sortBy := domain.ParseSortKey(req.SortBy)
	filtered := h.engine.ApplyFiltersAndSort(req.Offers, filters, sortBy)

	return response.OK(c, ToFilterOffersResponse(req.Offers, filtered, filters, sortBy))
}

// ComputeDefaults handles POST /api/v1/offers/defaults
//
// @Summary Compute default filters
// @Description Returns the filter configuration that excludes nothing and the available filter choices
// @Tags offers
// @Accept json
// @Produce json
// @Param request body DefaultsRequest true "Offers"
// @Success 200 {object} DefaultsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /offers/defaults [post]
func (h *OfferHandler) ComputeDefaults(c echo.Context) error {
	var req DefaultsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	return response.OK(c, ToDefaultsResponse(req.Offers))
}

// Health handles GET /health
func (h *OfferHandler) Health(c echo.Context) error {
	return response.Health(c, h.provider)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *OfferHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *OfferHandler) handleError(c echo.Context, err error) error {
	zerolog.Ctx(c.Request().Context()).Warn().Err(err).Str("route", c.Path()).Msg("request failed")

	if errors.Is(err, domain.ErrInvalidRequest) {
		var fieldErr *domain.ValidationError
		if errors.As(err, &fieldErr) {
			return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
		}
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if domain.IsProviderTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if domain.IsSearchFailed(err) || domain.IsProviderUnavailable(err) {
		return response.ServiceUnavailable(c)
	}

	return response.InternalServerError(c)
}
