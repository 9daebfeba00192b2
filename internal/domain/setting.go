package domain

// SettingEntry is one row of the settings table, upserted by key.
type SettingEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Secret names held in the secrets bag. Set once at deployment time via the
// setKeys action; read on every request.
const (
	SecretCohereAPIKey   = "COHERE_API_KEY"
	SecretSheetID        = "SHEET_ID"
	SecretFirebaseConfig = "FIREBASE_CONFIG"
)
