package app

import "strings"

// intentGroups is checked in order; the first group containing a matched
// keyword wins, so "need towels and a booking" still lands on housekeeping.
var intentGroups = []struct {
	intent   string
	keywords []string
}{
	{"housekeeping", []string{"clean", "towel", "housekeep"}},
	{"room_service", []string{"food", "drink", "order"}},
	{"maintenance", []string{"broken", "fix", "problem"}},
	{"recommendation", []string{"recommend", "suggest", "what"}},
	{"booking", []string{"book", "reserve"}},
}

// DetectIntent maps a free-text guest message to a coarse category by
// case-insensitive substring match. Unmatched messages are "general".
func DetectIntent(message string) string {
	lower := strings.ToLower(message)
	for _, g := range intentGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.intent
			}
		}
	}
	return "general"
}
