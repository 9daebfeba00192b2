package domain

// UpsellOpportunity is a fixed-value suggestion derived from keyword presence
// in a concierge reply. Purely informational.
type UpsellOpportunity struct {
	Type       string `json:"type"`
	Suggestion string `json:"suggestion"`
	Value      string `json:"value"`
}
