package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter registers the status routes. The metrics handler is mounted when
// telemetry is enabled; CORS is open because the admin console is served
// from a different origin on the local network.
func NewRouter(handler *Handler, metricsHandler http.Handler) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", handler.Health).Methods(http.MethodGet)
	r.HandleFunc("/readyz", handler.Ready).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/status", handler.BoardStatus).Methods(http.MethodGet)
	api.HandleFunc("/settings/reload", handler.ReloadSettings).Methods(http.MethodPost)

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler).Methods(http.MethodGet)
	}

	return cors.AllowAll().Handler(r)
}
