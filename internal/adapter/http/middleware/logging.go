package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger returns middleware that logs HTTP requests on completion.
//
// Before calling the next handler it stores a request-scoped logger carrying
// the request ID in the request context, so handlers can log through
// zerolog.Ctx. Completed requests are logged at info, 4xx at warn and 5xx at error.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			reqID := GetRequestID(c)

			scoped := log.With().Str("request_id", reqID).Logger()
			req := c.Request()
			c.SetRequest(req.WithContext(scoped.WithContext(req.Context())))

			if err := next(c); err != nil {
				// Let Echo's error handler write the response so the status is known.
				c.Error(err)
			}

			duration := time.Since(start)
			res := c.Response()
			status := res.Status

			var event *zerolog.Event
			switch {
			case status >= 500:
				event = scoped.Error()
			case status >= 400:
				event = scoped.Warn()
			default:
				event = scoped.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
