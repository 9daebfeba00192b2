package domain

// Turn roles as stored in the chat log.
const (
	RoleGuest     = "guest"
	RoleConcierge = "concierge"
)

// IntentResponse is the intent column value for concierge rows.
const IntentResponse = "response"

// ChatTurn is one appended row of the chat log. A single exchange appends
// exactly two turns: guest message first, concierge reply second.
type ChatTurn struct {
	Timestamp  string `json:"timestamp"`
	GuestID    string `json:"guestId"`
	RoomNumber string `json:"roomNumber"`
	Role       string `json:"role"`
	Text       string `json:"text"`
	Language   string `json:"language"`
	Intent     string `json:"intent"`
}

// ChatMessage is a caller-supplied prior turn, as sent by the widget. Roles
// use the stored labels ("guest"/"concierge"); the completion adapter remaps
// them to the vendor's labels on the wire.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// CompletionRequest carries everything the completion vendor needs for one
// synchronous chat call.
type CompletionRequest struct {
	System  string
	History []ChatMessage
	Message string
}
