package httpserver

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"orion_concierge/internal/adapters/observability"
)

func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return http.TimeoutHandler(next, d, "timeout") }
}

// statusWriter records the first status code written. The dispatch endpoint
// always answers 200, so this mostly distinguishes middleware short-circuits
// (timeouts, panics) from normal traffic.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// observe runs next and reports the matched chi route, the final status and
// the elapsed time. Both the metrics and the logging middleware are thin
// consumers of this one walk.
func observe(next http.Handler, w http.ResponseWriter, r *http.Request, report func(route string, status int, dur time.Duration)) {
	start := time.Now()
	sw := &statusWriter{ResponseWriter: w}
	next.ServeHTTP(sw, r)

	route := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			route = pattern
		}
	}
	status := sw.status
	if status == 0 {
		status = http.StatusOK
	}
	report(route, status, time.Since(start))
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observe(next, w, r, func(route string, status int, dur time.Duration) {
			observability.ObserveHTTP(route, r.Method, status, dur)
		})
	})
}

func Logger(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			observe(next, w, r, func(route string, status int, dur time.Duration) {
				l.Info().
					Str("route", route).
					Str("method", r.Method).
					Int("status", status).
					Dur("duration", dur).
					Str("remote", remoteIP(r)).
					Str("ua", r.UserAgent()).
					Msg("http_request")
			})
		})
	}
}

// Picks first X-Forwarded-For IP, else X-Real-IP, else RemoteAddr host.
func remoteIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
