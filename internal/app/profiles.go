package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"orion_concierge/internal/domain"
)

// lookupProfile fetches a guest profile for prompt context and for the
// getGuestProfile action. Any failure (bag unset, table missing, scan error)
// degrades to "no profile" rather than surfacing an error.
func (d *Dispatcher) lookupProfile(ctx context.Context, guestID string) *domain.GuestProfile {
	if d.secret(ctx, domain.SecretSheetID) == "" {
		return nil
	}
	g, err := d.guests.Get(ctx, guestID)
	if err != nil {
		log.Warn().Err(err).Str("guest_id", guestID).Msg("guest profile lookup failed")
		return nil
	}
	return g
}

func (d *Dispatcher) getGuestProfile(ctx context.Context, req GuestLookupRequest) any {
	return ProfileResponse{Success: true, Profile: d.lookupProfile(ctx, req.GuestID)}
}

func (d *Dispatcher) saveGuestProfile(ctx context.Context, profile domain.GuestProfile) any {
	if d.secret(ctx, domain.SecretSheetID) == "" {
		return fail("Sheet ID not configured")
	}
	profile.Normalize()
	if err := d.guests.Upsert(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrTableNotFound) {
			return fail("Guest sheet not found")
		}
		return fail(err.Error())
	}
	return AckResponse{Success: true, Message: "Guest profile saved"}
}

func (d *Dispatcher) getChatHistory(ctx context.Context, req GuestLookupRequest) any {
	if d.secret(ctx, domain.SecretSheetID) == "" {
		return historyError{History: []HistoryEntry{}, Error: "Sheet not configured"}
	}
	turns, err := d.chatlog.History(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, domain.ErrTableNotFound) {
			return historyError{History: []HistoryEntry{}, Error: "Chat sheet not found"}
		}
		return historyError{History: []HistoryEntry{}, Error: err.Error()}
	}
	history := make([]HistoryEntry, 0, len(turns))
	for _, t := range turns {
		history = append(history, HistoryEntry{
			Timestamp: t.Timestamp,
			Role:      t.Role,
			Message:   t.Text,
			Language:  t.Language,
			Intent:    t.Intent,
		})
	}
	return HistoryResponse{Success: true, History: history, Count: len(history)}
}

func (d *Dispatcher) updateSettings(ctx context.Context, req UpdateSettingsRequest) any {
	if d.secret(ctx, domain.SecretSheetID) == "" {
		return fail("Sheet not configured")
	}
	for key, value := range req.Settings {
		if err := d.settings.Set(ctx, key, value); err != nil {
			if errors.Is(err, domain.ErrTableNotFound) {
				return fail("Settings sheet not found")
			}
			return fail(err.Error())
		}
	}
	return UpdateSettingsResponse{Success: true, Message: "Settings updated", Settings: req.Settings}
}

func (d *Dispatcher) getSettings(ctx context.Context) any {
	if d.secret(ctx, domain.SecretSheetID) == "" {
		return GetSettingsResponse{Settings: map[string]string{}, Error: "Sheet not configured"}
	}
	all, err := d.settings.All(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrTableNotFound) {
			return GetSettingsResponse{Settings: map[string]string{}}
		}
		return GetSettingsResponse{Settings: map[string]string{}, Error: err.Error()}
	}
	return GetSettingsResponse{Success: true, Settings: all}
}
