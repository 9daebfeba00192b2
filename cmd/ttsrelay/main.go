package main

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"orion_concierge/internal/adapters/elevenlabs"
	server "orion_concierge/internal/adapters/http_server"
	"orion_concierge/internal/adapters/observability"
	"orion_concierge/internal/shared"
)

type ttsRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId"`
}

type ttsError struct {
	Error string `json:"error"`
}

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv, "ttsrelay")

	// The relay is useless without a vendor credential; exit immediately.
	if cfg.ElevenAPIKey == "" {
		log.Fatal().Msg("ELEVENLABS_API_KEY not set")
	}

	voices, err := elevenlabs.New(cfg.ElevenBase, cfg.ElevenAPIKey, cfg.ElevenRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize ElevenLabs client")
	}

	m := chi.NewRouter()
	m.Use(chimw.RealIP)
	m.Use(chimw.Recoverer)
	m.Use(server.Logger(log.Logger))

	m.Post("/api/tts", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ttsError{Error: "Text required"})
			return
		}
		var req ttsRequest
		if err := json.Unmarshal(body, &req); err != nil || req.Text == "" {
			writeJSON(w, http.StatusBadRequest, ttsError{Error: "Text required"})
			return
		}

		audio, err := voices.Synthesize(r.Context(), req.Text, req.VoiceID)
		if err != nil {
			log.Error().Err(err).Msg("synthesis failed")
			writeJSON(w, http.StatusInternalServerError, ttsError{Error: "TTS failed"})
			return
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		if _, err := w.Write(audio); err != nil {
			log.Error().Err(err).Msg("failed to write audio body")
		}
	})

	log.Info().Str("addr", cfg.TTSAddr).Msg("TTS relay listening")
	srv := &http.Server{Addr: cfg.TTSAddr, Handler: m, ReadHeaderTimeout: 5 * time.Second}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("tts relay failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}
