// Package swishgin attaches a swish.Hook to a gin engine.
package swishgin

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/flosswash/swish"
)

// ContextKey is the gin context key holding the *swish.RequestContext.
const ContextKey = "swishTimer"

// Middleware logs the arrival and departure of every request. Failures to
// log the departure are attached to the gin context with c.Error.
func Middleware(h *swish.Hook) gin.HandlerFunc {
	return func(c *gin.Context) {
		method, path := c.Request.Method, c.Request.URL.Path

		rc := h.OnRequestStart(method, path)
		c.Set(ContextKey, rc)
		c.Request = c.Request.WithContext(swish.NewContext(c.Request.Context(), rc))

		c.Next()

		if err := h.OnResponseEnd(rc, method, path, c.Writer.Status()); err != nil {
			_ = c.Error(err)
			log.Error().Err(err).Str("method", method).Str("path", path).Msg("Departure not logged")
		}
	}
}

// RequestContext returns the request context stored by Middleware.
func RequestContext(c *gin.Context) (*swish.RequestContext, bool) {
	v, ok := c.Get(ContextKey)
	if !ok {
		return nil, false
	}
	rc, ok := v.(*swish.RequestContext)
	return rc, ok && rc != nil
}
