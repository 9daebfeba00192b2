package httpserver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"orion_concierge/internal/app"
)

// maxBodyBytes bounds the inbound envelope; chat messages are short.
const maxBodyBytes = 1 << 20

type Handlers struct{ D *app.Dispatcher }

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/api", h.dispatch)
}

// dispatch is the single concierge entry point. Logical failures are carried
// in the success field of the JSON body; the HTTP status stays 200 so callers
// only ever check success.
func (h *Handlers) dispatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, app.ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, h.D.Dispatch(r.Context(), body))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}
