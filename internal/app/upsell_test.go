package app_test

import (
	"testing"

	"orion_concierge/internal/app"
)

func TestExtractUpsellOpportunities(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		types []string
	}{
		{"dining only", "Try the dinner and a wine pairing on the terrace", []string{"dining"}},
		{"wine alone", "A glass of WINE awaits", []string{"dining"}},
		{"activity only", "The morning tour leaves at nine", []string{"activity"}},
		{"both, dining first", "Book the sunset tour, then dinner at eight", []string{"dining", "activity"}},
		{"none", "Your towels are on the way", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := app.ExtractUpsellOpportunities(tc.reply)
			if len(got) != len(tc.types) {
				t.Fatalf("got %d opportunities, want %d: %+v", len(got), len(tc.types), got)
			}
			for i, want := range tc.types {
				if got[i].Type != want {
					t.Fatalf("opportunity %d type = %q, want %q", i, got[i].Type, want)
				}
			}
		})
	}
}

func TestExtractUpsellOpportunities_FixedValues(t *testing.T) {
	got := app.ExtractUpsellOpportunities("wine and a guided tour")
	if len(got) != 2 {
		t.Fatalf("expected both records, got %+v", got)
	}
	if got[0].Suggestion != "Premium dining experience" || got[0].Value != "+R1,200" {
		t.Fatalf("unexpected dining record: %+v", got[0])
	}
	if got[1].Suggestion != "Guided experience" || got[1].Value != "+R800" {
		t.Fatalf("unexpected activity record: %+v", got[1])
	}
}

func TestExtractUpsellOpportunities_EmptyIsNotNil(t *testing.T) {
	// The response field serializes as [] rather than null.
	if got := app.ExtractUpsellOpportunities("plain reply"); got == nil {
		t.Fatal("expected empty slice, got nil")
	}
}
