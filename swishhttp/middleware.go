// Package swishhttp attaches a swish.Hook to net/http handlers.
package swishhttp

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/rs/zerolog/log"

	"github.com/flosswash/swish"
)

// Middleware logs the arrival and departure of every request. It works with
// http.ServeMux as well as chi's Use. Handlers can read the request timer
// with swish.FromContext.
func Middleware(h *swish.Hook) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method, path := r.Method, r.URL.Path

			rc := h.OnRequestStart(method, path)
			r = r.WithContext(swish.NewContext(r.Context(), rc))

			m := httpsnoop.CaptureMetrics(next, w, r)

			if err := h.OnResponseEnd(rc, method, path, m.Code); err != nil {
				log.Error().Err(err).
					Str("method", method).
					Str("path", path).
					Msg("Departure not logged")
			}
		})
	}
}
