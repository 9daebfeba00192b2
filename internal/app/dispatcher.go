package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"orion_concierge/internal/adapters/observability"
	"orion_concierge/internal/domain"
)

// Action tags accepted in the request envelope.
const (
	ActionSetKeys          = "setKeys"
	ActionSendMessage      = "sendMessage"
	ActionTextToSpeech     = "textToSpeech"
	ActionSpeechToText     = "speechToText"
	ActionGetGuestProfile  = "getGuestProfile"
	ActionSaveGuestProfile = "saveGuestProfile"
	ActionGetChatHistory   = "getChatHistory"
	ActionUpdateSettings   = "updateSettings"
	ActionGetSettings      = "getSettings"
)

// ---- request envelopes ----

type envelope struct {
	Action string `json:"action"`
}

type SetKeysRequest struct {
	Keys map[string]string `json:"keys"`
}

type SendMessageRequest struct {
	GuestID             string               `json:"guestId"`
	RoomNumber          string               `json:"roomNumber"`
	GuestName           string               `json:"guestName"`
	Message             string               `json:"message"`
	Language            string               `json:"language"`
	ConversationHistory []domain.ChatMessage `json:"conversationHistory"`
}

type TextToSpeechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Voice    string `json:"voice"`
}

type SpeechToTextRequest struct {
	AudioData string `json:"audioData"`
	Language  string `json:"language"`
}

type GuestLookupRequest struct {
	GuestID string `json:"guestId"`
}

type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings"`
}

// ---- responses ----

// ErrorResponse is the uniform logical-failure shape. Success is always
// false; it is still serialized so callers can check it.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func fail(msg string) ErrorResponse { return ErrorResponse{Error: msg} }

type AckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SendMessageResponse struct {
	Success             bool                       `json:"success"`
	Response            string                     `json:"response"`
	Intent              string                     `json:"intent"`
	Language            string                     `json:"language"`
	UpsellOpportunities []domain.UpsellOpportunity `json:"upsellOpportunities"`
	Timestamp           string                     `json:"timestamp"`
	GuestContext        GuestContext               `json:"guestContext"`
	RequiresTTS         bool                       `json:"requiresTTS"`
}

type GuestContext struct {
	Name        string         `json:"name"`
	Room        string         `json:"room"`
	Preferences map[string]any `json:"preferences"`
}

// SendMessageError carries the upstream detail alongside the fixed error text.
type SendMessageError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details"`
}

type TextToSpeechResponse struct {
	Success      bool   `json:"success"`
	Text         string `json:"text"`
	Language     string `json:"language"`
	TTSEndpoint  string `json:"ttsEndpoint"`
	Instructions string `json:"instructions"`
}

type SpeechToTextResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Note    string `json:"note"`
}

type ProfileResponse struct {
	Success bool                 `json:"success"`
	Profile *domain.GuestProfile `json:"profile"`
}

type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Role      string `json:"role"`
	Message   string `json:"message"`
	Language  string `json:"language"`
	Intent    string `json:"intent"`
}

type HistoryResponse struct {
	Success bool           `json:"success"`
	History []HistoryEntry `json:"history"`
	Count   int            `json:"count"`
}

type historyError struct {
	Success bool           `json:"success"`
	History []HistoryEntry `json:"history"`
	Error   string         `json:"error,omitempty"`
}

type UpdateSettingsResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Settings map[string]string `json:"settings"`
}

type GetSettingsResponse struct {
	Success  bool              `json:"success"`
	Settings map[string]string `json:"settings"`
	Error    string            `json:"error,omitempty"`
}

// Dispatcher is the single request entry point. All dependencies are
// injected; the secrets bag is re-read on every request and is the only
// cross-request state.
type Dispatcher struct {
	secrets  domain.Secrets
	guests   domain.GuestStore
	chatlog  domain.ChatLog
	settings domain.SettingsStore
	llm      domain.CompletionClient

	ttsEndpoint string
	now         func() time.Time
}

type Option func(*Dispatcher)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithTTSEndpoint overrides the endpoint advertised by textToSpeech.
func WithTTSEndpoint(url string) Option {
	return func(d *Dispatcher) { d.ttsEndpoint = url }
}

func New(secrets domain.Secrets, guests domain.GuestStore, chatlog domain.ChatLog, settings domain.SettingsStore, llm domain.CompletionClient, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		secrets:     secrets,
		guests:      guests,
		chatlog:     chatlog,
		settings:    settings,
		llm:         llm,
		ttsEndpoint: "https://api.cohere.com/v1/generate",
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch parses the inbound envelope, routes by action and returns the
// response value to serialize. Panics in handlers are converted to the error
// shape here; this is the system's sole failure-isolation boundary.
func (d *Dispatcher) Dispatch(ctx context.Context, body []byte) (out any) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("request handler panicked")
			out = fail(fmt.Sprint(r))
		}
	}()

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fail(err.Error())
	}
	observability.ObserveAction(env.Action)

	switch env.Action {
	case ActionSetKeys:
		var req SetKeysRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return fail(err.Error())
		}
		return d.setKeys(ctx, req)
	case ActionSendMessage:
		var req SendMessageRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return fail(err.Error())
		}
		return d.sendMessage(ctx, req)
	case ActionTextToSpeech:
		var req TextToSpeechRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return fail(err.Error())
		}
		return d.textToSpeech(ctx, req)
	case ActionSpeechToText:
		var req SpeechToTextRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return fail(err.Error())
		}
		return d.speechToText(ctx, req)
	case ActionGetGuestProfile:
		var req GuestLookupRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return fail(err.Error())
		}
		return d.getGuestProfile(ctx, req)
	case ActionSaveGuestProfile:
		var req domain.GuestProfile
		if err := json.Unmarshal(body, &req); err != nil {
			return fail(err.Error())
		}
		return d.saveGuestProfile(ctx, req)
	case ActionGetChatHistory:
		var req GuestLookupRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return fail(err.Error())
		}
		return d.getChatHistory(ctx, req)
	case ActionUpdateSettings:
		var req UpdateSettingsRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return fail(err.Error())
		}
		return d.updateSettings(ctx, req)
	case ActionGetSettings:
		return d.getSettings(ctx)
	default:
		return fail("Unknown action")
	}
}

// secret reads one name from the bag, treating lookup errors as unset.
func (d *Dispatcher) secret(ctx context.Context, name string) string {
	v, err := d.secrets.Get(ctx, name)
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("secrets read failed")
		return ""
	}
	return v
}

func (d *Dispatcher) setKeys(ctx context.Context, req SetKeysRequest) any {
	for name, value := range req.Keys {
		if value == "" {
			continue
		}
		if err := d.secrets.Set(ctx, name, value); err != nil {
			return fail(err.Error())
		}
	}
	return AckResponse{Success: true, Message: "Keys updated securely"}
}

func (d *Dispatcher) textToSpeech(ctx context.Context, req TextToSpeechRequest) any {
	if d.secret(ctx, domain.SecretCohereAPIKey) == "" {
		return fail("Cohere API key not configured")
	}
	lang := req.Language
	if lang == "" {
		lang = domain.DefaultLanguage
	}
	// This handler never performs synthesis itself; the caller takes the
	// payload to the voice relay.
	return TextToSpeechResponse{
		Success:      true,
		Text:         req.Text,
		Language:     lang,
		TTSEndpoint:  d.ttsEndpoint,
		Instructions: "Use external TTS service (Google Cloud, ElevenLabs, or custom) with this text",
	}
}

func (d *Dispatcher) speechToText(ctx context.Context, _ SpeechToTextRequest) any {
	if d.secret(ctx, domain.SecretCohereAPIKey) == "" {
		return fail("Speech-to-text service not configured")
	}
	return SpeechToTextResponse{
		Success: true,
		Message: "Speech processing ready",
		Note:    "Frontend handles voice recording and transcription",
	}
}
