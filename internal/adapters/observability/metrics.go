package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "orion", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "orion", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	DispatchedActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "orion", Name: "dispatched_actions_total", Help: "Dispatched envelope actions."},
		[]string{"action"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "orion", Name: "external_requests_total", Help: "Outbound vendor requests."},
		[]string{"service", "endpoint", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "orion", Name: "external_request_duration_seconds",
			Help:    "Outbound vendor request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	StoreEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "orion", Name: "store_events_total", Help: "Row store scans/appends/overwrites."},
		[]string{"table", "op"}, // op: scan|append|overwrite
	)
	SecretsEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "orion", Name: "secrets_events_total", Help: "Secrets bag reads/writes."},
		[]string{"backend", "event"}, // event: hit|miss|set
	)
)

// Serve starts the standalone metrics listener when addr is non-empty.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, DispatchedActions, ExternalRequests, ExternalLatency, StoreEvents, SecretsEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveAction(action string) {
	DispatchedActions.WithLabelValues(action).Inc()
}

func ObserveExternal(service, endpoint string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

func ObserveStore(table, op string) { // op: scan|append|overwrite
	StoreEvents.WithLabelValues(table, op).Inc()
}

func ObserveSecrets(backend, event string) { // event: hit|miss|set
	SecretsEvents.WithLabelValues(backend, event).Inc()
}
