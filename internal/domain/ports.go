package domain

import "context"

// GuestStore reads and upserts guest profile rows. Get returns (nil, nil) on
// a miss. Upsert overwrites the first row with a matching guest id, else
// appends; no uniqueness is enforced beyond first-match-wins on a linear scan.
type GuestStore interface {
	Get(ctx context.Context, guestID string) (*GuestProfile, error)
	Upsert(ctx context.Context, g GuestProfile) error
}

// ChatLog is the append-only conversation log.
type ChatLog interface {
	Append(ctx context.Context, turn ChatTurn) error
	History(ctx context.Context, guestID string) ([]ChatTurn, error)
}

// SettingsStore upserts key/value rows by the same scan-then-append-or-
// overwrite policy as the guest store.
type SettingsStore interface {
	All(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}

// Secrets is the process-wide credential/identifier bag. Get returns "" for
// an unset name.
type Secrets interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
}

// CompletionClient performs the single synchronous chat-completion call. The
// key is passed per call because the bag is re-read on every request.
type CompletionClient interface {
	Chat(ctx context.Context, apiKey string, req CompletionRequest) (string, error)
}
