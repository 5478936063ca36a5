package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tripwise/flight-offers/internal/adapter/http/response"
)

// Setup installs the error handler and registers all middleware on the Echo
// instance in the correct order:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - Second, logs all requests with request ID
//  3. Recover - Third, catches panics and returns 500 (wraps handlers)
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryConfig RecoveryConfig) {
	e.HTTPErrorHandler = ErrorHandler(log)
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}

// ErrorHandler renders errors that reach Echo, such as unknown routes, with
// the same error body the handlers use.
func ErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var writeErr error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &he) && he.Code == http.StatusNotFound:
			writeErr = response.NotFound(c)
		case errors.As(err, &he) && he.Code < http.StatusInternalServerError:
			writeErr = c.JSON(he.Code, &response.ErrorDetail{
				Code:    response.CodeInvalidRequest,
				Message: http.StatusText(he.Code),
			})
		default:
			log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("Unhandled error")
			writeErr = response.InternalServerError(c)
		}

		if writeErr != nil {
			log.Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
}
