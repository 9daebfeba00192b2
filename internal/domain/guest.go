package domain

// GuestProfile is one row of the guest table. Preferences are persisted as
// serialized JSON text; a row with unparseable text yields an empty map.
type GuestProfile struct {
	GuestID       string         `json:"guestId"`
	RoomNumber    string         `json:"roomNumber"`
	GuestName     string         `json:"guestName"`
	LoyaltyStatus string         `json:"loyaltyStatus"`
	Preferences   map[string]any `json:"preferences"`
	Language      string         `json:"language"`
	CheckIn       string         `json:"checkIn"`
	CheckOut      string         `json:"checkOut"`
}

const (
	DefaultLoyaltyStatus = "Standard"
	DefaultLanguage      = "en"
)

// Normalize fills the defaulted columns before a save.
func (g *GuestProfile) Normalize() {
	if g.LoyaltyStatus == "" {
		g.LoyaltyStatus = DefaultLoyaltyStatus
	}
	if g.Language == "" {
		g.Language = DefaultLanguage
	}
	if g.Preferences == nil {
		g.Preferences = map[string]any{}
	}
}
