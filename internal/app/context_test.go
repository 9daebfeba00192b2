package app_test

import (
	"strings"
	"testing"

	"orion_concierge/internal/app"
	"orion_concierge/internal/domain"
)

func TestBuildConversationContext(t *testing.T) {
	g := &domain.GuestProfile{
		GuestID:       "g-1",
		RoomNumber:    "204",
		GuestName:     "Thandi M",
		LoyaltyStatus: "Gold",
		Preferences:   map[string]any{"pillow": "firm"},
	}
	ctx := app.BuildConversationContext(g, "housekeeping")

	for _, line := range []string{"Guest: Thandi M", "Room: 204", "Status: Gold", "Intent: housekeeping", "Known preferences:"} {
		if !strings.Contains(ctx, line) {
			t.Fatalf("context missing %q:\n%s", line, ctx)
		}
	}
}

func TestBuildConversationContext_NoPreferencesLine(t *testing.T) {
	g := &domain.GuestProfile{GuestName: "A", RoomNumber: "1", LoyaltyStatus: "Standard"}
	ctx := app.BuildConversationContext(g, "general")
	if strings.Contains(ctx, "Known preferences") {
		t.Fatalf("empty preferences must not emit the fifth line:\n%s", ctx)
	}
	if got := strings.Count(ctx, "\n"); got != 4 {
		t.Fatalf("expected four lines, got %d:\n%s", got, ctx)
	}
}

func TestBuildConversationContext_NilProfile(t *testing.T) {
	// An unknown guest still gets the four fixed lines, zero-valued.
	ctx := app.BuildConversationContext(nil, "housekeeping")
	for _, line := range []string{"Guest: \n", "Room: \n", "Status: \n", "Intent: housekeeping\n"} {
		if !strings.Contains(ctx, line) {
			t.Fatalf("context missing %q:\n%s", line, ctx)
		}
	}
	if strings.Contains(ctx, "Known preferences") {
		t.Fatalf("nil profile must not emit the preferences line:\n%s", ctx)
	}
	if got := strings.Count(ctx, "\n"); got != 4 {
		t.Fatalf("expected four lines, got %d:\n%s", got, ctx)
	}
}

func TestBuildSystemPrompt_Language(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"en", "Respond in English"},
		{"zu", "Respond in Zulu"},
		{"xh", "Respond in Xhosa"},
		{"af", "Respond in Afrikaans"},
		{"st", "Respond in Sotho"},
		{"yo", "Respond in Yoruba"},
		{"fr", "Respond in English"}, // unknown code falls back
		{"", "Respond in English"},
	}
	for _, tc := range cases {
		prompt := app.BuildSystemPrompt(tc.code, "")
		if !strings.Contains(prompt, tc.want) {
			t.Fatalf("prompt for %q missing %q", tc.code, tc.want)
		}
	}
}

func TestBuildSystemPrompt_IncludesContext(t *testing.T) {
	prompt := app.BuildSystemPrompt("en", "Guest: X\n")
	if !strings.Contains(prompt, "Guest Context:\nGuest: X") {
		t.Fatalf("prompt missing context block:\n%s", prompt)
	}
}
