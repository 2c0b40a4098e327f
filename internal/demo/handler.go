// Package demo handles the example endpoints served by the demo server.
package demo

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// MaxDelay caps the simulated handler latency.
const MaxDelay = 5 * time.Second

// HandleGet handles GET /.
func HandleGet(w http.ResponseWriter, r *http.Request) {
	respond(w, r, map[string]string{"yo": "world"})
}

// HandlePost handles POST /. The request body is drained and discarded.
func HandlePost(w http.ResponseWriter, r *http.Request) {
	if r.Body != nil {
		_, _ = io.Copy(io.Discard, r.Body)
		r.Body.Close()
	}
	respond(w, r, map[string]string{"yo": "post"})
}

// HandleDelete handles DELETE /.
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	respond(w, r, map[string]string{"na": "delete"})
}

// HandlePut handles PUT /.
func HandlePut(w http.ResponseWriter, r *http.Request) {
	respond(w, r, map[string]string{"bruh": "put"})
}

// respond waits for the optional ?delay= duration and writes body as JSON.
func respond(w http.ResponseWriter, r *http.Request, body any) {
	delay, err := parseDelay(r.URL.Query().Get("delay"))
	if err != nil {
		http.Error(w, "Invalid delay. Expected a duration up to "+MaxDelay.String(), http.StatusBadRequest)
		return
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	data, err := sonic.Marshal(body)
	if err != nil {
		log.Error().Err(err).Msg("Encoding response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func parseDelay(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 || d > MaxDelay {
		return 0, fmt.Errorf("delay %s out of range", d)
	}
	return d, nil
}
