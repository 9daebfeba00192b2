package app

import (
	"strings"

	"orion_concierge/internal/domain"
)

// ExtractUpsellOpportunities scans a concierge reply for trigger substrings
// and emits fixed-value suggestion records, dining before activity. Both may
// fire; each fires at most once per reply.
func ExtractUpsellOpportunities(reply string) []domain.UpsellOpportunity {
	lower := strings.ToLower(reply)
	out := []domain.UpsellOpportunity{}

	if strings.Contains(lower, "wine") || strings.Contains(lower, "dinner") {
		out = append(out, domain.UpsellOpportunity{
			Type:       "dining",
			Suggestion: "Premium dining experience",
			Value:      "+R1,200",
		})
	}
	if strings.Contains(lower, "tour") || strings.Contains(lower, "activity") {
		out = append(out, domain.UpsellOpportunity{
			Type:       "activity",
			Suggestion: "Guided experience",
			Value:      "+R800",
		})
	}
	return out
}
