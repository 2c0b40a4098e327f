// Package swishecho attaches a swish.Hook to an echo server.
package swishecho

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/flosswash/swish"
)

// ContextKey is the echo context key holding the *swish.RequestContext.
const ContextKey = "swishTimer"

// Middleware logs the arrival and departure of every request.
func Middleware(h *swish.Hook) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			method, path := req.Method, req.URL.Path

			rc := h.OnRequestStart(method, path)
			c.Set(ContextKey, rc)
			c.SetRequest(req.WithContext(swish.NewContext(req.Context(), rc)))

			err := next(c)
			if err != nil {
				// Commit the error response so the logged status is final.
				c.Error(err)
			}

			if endErr := h.OnResponseEnd(rc, method, path, c.Response().Status); endErr != nil {
				log.Error().Err(endErr).Str("method", method).Str("path", path).Msg("Departure not logged")
			}
			return err
		}
	}
}

// RequestContext returns the request context stored by Middleware.
func RequestContext(c echo.Context) (*swish.RequestContext, bool) {
	rc, ok := c.Get(ContextKey).(*swish.RequestContext)
	return rc, ok && rc != nil
}
