package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shayshai/uprocfs/log"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

// EventsResponse is the body of GET /events.
type EventsResponse struct {
	Events []string `json:"events"`
}

// NewRouter builds the chi router with middleware and routes.
func NewRouter(source Source, gatherer prometheus.Gatherer, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Discard()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Entries: source.Entries()})
	})

	r.Get("/events", func(w http.ResponseWriter, r *http.Request) {
		events := source.Events()
		if events == nil {
			events = []string{}
		}

		writeJSON(w, http.StatusOK, EventsResponse{Events: events})
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/health", http.StatusTemporaryRedirect)
	})

	return r
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("%s %s %d %dB %s [%s]", r.Method, r.URL.Path, ww.Status(),
				ww.BytesWritten(), time.Since(start), middleware.GetReqID(r.Context()))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
