package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"orion_concierge/internal/domain"
)

// BuildConversationContext renders the short guest-context block injected
// into the system prompt: four fixed lines plus an optional preferences line.
// An unknown guest (nil profile) still gets the four lines, zero-valued, so
// the detected intent always reaches the model.
func BuildConversationContext(g *domain.GuestProfile, intent string) string {
	if g == nil {
		g = &domain.GuestProfile{}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Guest: %s\n", g.GuestName)
	fmt.Fprintf(&b, "Room: %s\n", g.RoomNumber)
	fmt.Fprintf(&b, "Status: %s\n", g.LoyaltyStatus)
	fmt.Fprintf(&b, "Intent: %s\n", intent)
	if len(g.Preferences) > 0 {
		prefs, err := json.Marshal(g.Preferences)
		if err == nil {
			fmt.Fprintf(&b, "Known preferences: %s\n", prefs)
		}
	}
	return b.String()
}

var languageNames = map[string]string{
	"en": "English",
	"zu": "Zulu",
	"xh": "Xhosa",
	"af": "Afrikaans",
	"st": "Sotho",
	"yo": "Yoruba",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "English"
}

// BuildSystemPrompt composes the fixed concierge persona, the resolved reply
// language and the guest-context block into the completion system prompt.
func BuildSystemPrompt(language, context string) string {
	return fmt.Sprintf(`You are ORION, a luxury hotel concierge AI powered by Cohere AYA.

Your role:
- Assist guests with requests (room service, bookings, recommendations)
- Personalize responses based on guest preferences
- Suggest high-value experiences and upgrades naturally
- Maintain warmth and professionalism
- Respond in %s

Guest Context:
%s

Important:
- Every suggestion should feel like a recommendation, not a sales pitch
- Include specific details (wine names, room numbers, times)
- Keep responses concise (2-3 sentences max)
- For voice output, use clear, natural language`, languageName(language), context)
}
