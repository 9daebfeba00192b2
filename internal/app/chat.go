package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"orion_concierge/internal/domain"
)

// sendMessage runs the full chat exchange: credential guard, profile lookup,
// intent detection, prompt assembly, completion call, best-effort chat-log
// append and upsell extraction.
func (d *Dispatcher) sendMessage(ctx context.Context, req SendMessageRequest) any {
	apiKey := d.secret(ctx, domain.SecretCohereAPIKey)
	if apiKey == "" {
		return fail("Cohere API key not configured. Set in Project Settings.")
	}

	lang := req.Language
	if lang == "" {
		lang = domain.DefaultLanguage
	}

	profile := d.lookupProfile(ctx, req.GuestID)
	intent := DetectIntent(req.Message)
	system := BuildSystemPrompt(lang, BuildConversationContext(profile, intent))

	reply, err := d.llm.Chat(ctx, apiKey, domain.CompletionRequest{
		System:  system,
		History: req.ConversationHistory,
		Message: req.Message,
	})
	if err != nil {
		return SendMessageError{Error: "Failed to get AI response", Details: err.Error()}
	}

	d.logExchange(ctx, req, lang, intent, reply)

	prefs := map[string]any{}
	if profile != nil && profile.Preferences != nil {
		prefs = profile.Preferences
	}

	return SendMessageResponse{
		Success:             true,
		Response:            reply,
		Intent:              intent,
		Language:            lang,
		UpsellOpportunities: ExtractUpsellOpportunities(reply),
		Timestamp:           d.now().UTC().Format(time.RFC3339),
		GuestContext: GuestContext{
			Name:        req.GuestName,
			Room:        req.RoomNumber,
			Preferences: prefs,
		},
		RequiresTTS: true,
	}
}

// logExchange appends the guest/concierge pair to the chat log. The append is
// best-effort: an unreachable log never fails the exchange, and the concierge
// row is only written after the guest row so the pair order holds.
func (d *Dispatcher) logExchange(ctx context.Context, req SendMessageRequest, lang, intent, reply string) {
	if d.secret(ctx, domain.SecretSheetID) == "" {
		return
	}
	guestTurn := domain.ChatTurn{
		Timestamp:  d.now().UTC().Format(time.RFC3339),
		GuestID:    req.GuestID,
		RoomNumber: req.RoomNumber,
		Role:       domain.RoleGuest,
		Text:       req.Message,
		Language:   lang,
		Intent:     intent,
	}
	if err := d.chatlog.Append(ctx, guestTurn); err != nil {
		log.Warn().Err(err).Str("guest_id", req.GuestID).Msg("chat log append failed")
		return
	}
	conciergeTurn := domain.ChatTurn{
		Timestamp:  d.now().UTC().Format(time.RFC3339),
		GuestID:    req.GuestID,
		RoomNumber: req.RoomNumber,
		Role:       domain.RoleConcierge,
		Text:       reply,
		Language:   lang,
		Intent:     domain.IntentResponse,
	}
	if err := d.chatlog.Append(ctx, conciergeTurn); err != nil {
		log.Warn().Err(err).Str("guest_id", req.GuestID).Msg("chat log append failed")
	}
}
