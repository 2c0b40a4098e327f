// Swish demo server
//
// This is a small HTTP server that logs every request with swish. It serves
// GET, POST, PUT and DELETE on "/" and a /health endpoint.
//
// Usage:
//
//	SWISH_LEVEL=verbose go run ./cmd/api
//
// Environment Variables:
//   - SWISH_CONFIG_PATH: YAML config file (default: "swish.yaml", optional)
//   - LISTEN_ADDR: Address to listen on (default: ":3000")
//   - HTTP_LOGGING: Enable the access log (default: true)
//   - ENABLE_PPROF: Mount /debug/pprof (default: false)
//   - CORS_ORIGINS: Comma separated allowed origins (default: none)
//   - SWISH_LEVEL: "default" or "verbose" (default: "default")
//   - SWISH_TIMESTAMP: Include elapsed milliseconds (default: from level)
//   - SWISH_COLORS: Color lines by method (default: true on a terminal)
//   - SWISH_SINK: "stdout" or "zerolog" (default: "stdout")
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/flosswash/swish"
	"github.com/flosswash/swish/internal/config"
	"github.com/flosswash/swish/internal/server"
)

func main() {
	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}
	config.ApplyTerminal(cfg, isTerminal(os.Stdout))

	hook := swish.New(cfg.Swish, newSink(cfg.LogSink))
	srv := server.New(cfg, hook).HTTPServer()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	<-done
	log.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}
	log.Info().Msg("Server stopped")
}

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: colorable.NewColorableStdout()})
}

func newSink(name string) swish.Sink {
	if name == config.SinkZerolog {
		return swish.ZerologSink(log.Logger)
	}
	return swish.Stdout()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
