package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"

	"orion_concierge/internal/adapters/observability"
	"orion_concierge/internal/domain"
)

const (
	guestTable    = "guest_profiles"
	chatTable     = "chat_history"
	settingsTable = "settings"
)

// mysqlErrNoSuchTable is server error 1146.
const mysqlErrNoSuchTable = 1146

// Store implements the guest, chat-log and settings ports over MySQL with
// spreadsheet semantics: every read lists all rows and filters in Go, every
// upsert scans for the first key match and overwrites that row or appends.
type Store struct{ db *sql.DB }

func New(db *sql.DB) *Store { return &Store{db: db} }

func tableErr(table string, err error) error {
	var me *gomysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlErrNoSuchTable {
		return fmt.Errorf("%s: %w", table, domain.ErrTableNotFound)
	}
	return err
}

// parsePreferences decodes the serialized preferences cell best-effort:
// malformed text degrades to an empty map, never an error.
func parsePreferences(raw string) map[string]any {
	prefs := map[string]any{}
	if raw == "" {
		return prefs
	}
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return map[string]any{}
	}
	return prefs
}

func marshalPreferences(prefs map[string]any) string {
	if prefs == nil {
		return "{}"
	}
	b, err := json.Marshal(prefs)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ---- guest profiles ----

func (s *Store) Get(ctx context.Context, guestID string) (*domain.GuestProfile, error) {
	observability.ObserveStore(guestTable, "scan")
	rows, err := s.db.QueryContext(ctx, selectGuestRowsSQL)
	if err != nil {
		return nil, tableErr(guestTable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rowID int64
		var g domain.GuestProfile
		var prefs sql.NullString
		if err := rows.Scan(&rowID, &g.GuestID, &g.RoomNumber, &g.GuestName, &g.LoyaltyStatus, &prefs, &g.Language, &g.CheckIn, &g.CheckOut); err != nil {
			return nil, err
		}
		if g.GuestID != guestID {
			continue
		}
		// first match wins; duplicate rows behind it are ignored
		g.Preferences = parsePreferences(prefs.String)
		return &g, nil
	}
	return nil, rows.Err()
}

func (s *Store) Upsert(ctx context.Context, g domain.GuestProfile) error {
	observability.ObserveStore(guestTable, "scan")
	rows, err := s.db.QueryContext(ctx, selectGuestRowsSQL)
	if err != nil {
		return tableErr(guestTable, err)
	}

	target := int64(-1)
	for rows.Next() {
		var rowID int64
		var existing domain.GuestProfile
		var prefs sql.NullString
		if err := rows.Scan(&rowID, &existing.GuestID, &existing.RoomNumber, &existing.GuestName, &existing.LoyaltyStatus, &prefs, &existing.Language, &existing.CheckIn, &existing.CheckOut); err != nil {
			rows.Close()
			return err
		}
		if existing.GuestID == g.GuestID {
			target = rowID
			break
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	prefs := marshalPreferences(g.Preferences)
	if target >= 0 {
		observability.ObserveStore(guestTable, "overwrite")
		_, err = s.db.ExecContext(ctx, updateGuestRowSQL,
			g.GuestID, g.RoomNumber, g.GuestName, g.LoyaltyStatus, prefs, g.Language, g.CheckIn, g.CheckOut, target)
	} else {
		observability.ObserveStore(guestTable, "append")
		_, err = s.db.ExecContext(ctx, insertGuestRowSQL,
			g.GuestID, g.RoomNumber, g.GuestName, g.LoyaltyStatus, prefs, g.Language, g.CheckIn, g.CheckOut)
	}
	return tableErr(guestTable, err)
}

// ---- chat log ----

func (s *Store) Append(ctx context.Context, turn domain.ChatTurn) error {
	observability.ObserveStore(chatTable, "append")
	_, err := s.db.ExecContext(ctx, insertChatRowSQL,
		turn.Timestamp, turn.GuestID, turn.RoomNumber, turn.Role, turn.Text, turn.Language, turn.Intent)
	return tableErr(chatTable, err)
}

func (s *Store) History(ctx context.Context, guestID string) ([]domain.ChatTurn, error) {
	observability.ObserveStore(chatTable, "scan")
	rows, err := s.db.QueryContext(ctx, selectChatRowsSQL)
	if err != nil {
		return nil, tableErr(chatTable, err)
	}
	defer rows.Close()

	var out []domain.ChatTurn
	for rows.Next() {
		var t domain.ChatTurn
		if err := rows.Scan(&t.Timestamp, &t.GuestID, &t.RoomNumber, &t.Role, &t.Text, &t.Language, &t.Intent); err != nil {
			return nil, err
		}
		if t.GuestID == guestID {
			out = append(out, t)
		}
	}
	return out, rows.Err()
}

// ---- settings ----

func (s *Store) All(ctx context.Context) (map[string]string, error) {
	observability.ObserveStore(settingsTable, "scan")
	rows, err := s.db.QueryContext(ctx, selectSettingRowsSQL)
	if err != nil {
		return nil, tableErr(settingsTable, err)
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var rowID int64
		var k, v string
		if err := rows.Scan(&rowID, &k, &v); err != nil {
			return nil, err
		}
		out[k] = v // duplicate keys: later rows shadow earlier ones
	}
	return out, rows.Err()
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	observability.ObserveStore(settingsTable, "scan")
	rows, err := s.db.QueryContext(ctx, selectSettingRowsSQL)
	if err != nil {
		return tableErr(settingsTable, err)
	}

	target := int64(-1)
	for rows.Next() {
		var rowID int64
		var k, v string
		if err := rows.Scan(&rowID, &k, &v); err != nil {
			rows.Close()
			return err
		}
		if k == key {
			target = rowID
			break
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	if target >= 0 {
		observability.ObserveStore(settingsTable, "overwrite")
		_, err = s.db.ExecContext(ctx, updateSettingRowSQL, value, target)
	} else {
		observability.ObserveStore(settingsTable, "append")
		_, err = s.db.ExecContext(ctx, insertSettingRowSQL, key, value)
	}
	return tableErr(settingsTable, err)
}
