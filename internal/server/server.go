// Package server provides HTTP server setup, routing, and middleware.
package server

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/flosswash/swish"
	"github.com/flosswash/swish/internal/config"
	"github.com/flosswash/swish/internal/demo"
	"github.com/flosswash/swish/swishhttp"
)

// Server holds the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	hook   *swish.Hook
	router *chi.Mux
}

// New creates a new Server with all routes configured. A nil hook
// disables the access log.
func New(cfg *config.Config, hook *swish.Hook) *Server {
	s := &Server{
		cfg:    cfg,
		hook:   hook,
		router: chi.NewRouter(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures middleware and all HTTP routes.
func (s *Server) setupRoutes() {
	r := s.router

	// Access log first: preflight and recovered requests must be logged too.
	if s.cfg.HttpLogging && s.hook != nil {
		cfg := s.hook.Config()
		log.Info().
			Str("swish_level", string(cfg.Level)).
			Bool("timestamp", cfg.Timestamp).
			Bool("colors", cfg.Colors).
			Msg("HTTP logging enabled")
		r.Use(swishhttp.Middleware(s.hook))
	}
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	if len(s.cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.Get("/", demo.HandleGet)
	r.Post("/", demo.HandlePost)
	r.Delete("/", demo.HandleDelete)
	r.Put("/", demo.HandlePut)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.cfg.EnablePprof {
		log.Info().Msg("Pprof enabled")
		r.HandleFunc("/debug/pprof/", pprof.Index)
		r.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		r.HandleFunc("/debug/pprof/profile", pprof.Profile)
		r.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		r.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
}

// Handler returns the HTTP handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.router
}

// HTTPServer returns an http.Server bound to the configured address.
func (s *Server) HTTPServer() *http.Server {
	log.Info().Str("listen_addr", s.cfg.ListenAddr).Msg("Starting server")

	return &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.Handler(),
	}
}
