package mysql

import (
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"

	"orion_concierge/internal/domain"
)

func TestParsePreferences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{"empty cell", "", map[string]any{}},
		{"valid object", `{"pillow":"firm","floor":"high"}`, map[string]any{"pillow": "firm", "floor": "high"}},
		{"malformed degrades to empty", `{"pillow":`, map[string]any{}},
		{"non-object degrades to empty", `["a","b"]`, map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parsePreferences(tt.raw))
		})
	}
}

func TestMarshalPreferences(t *testing.T) {
	require.Equal(t, "{}", marshalPreferences(nil))
	require.Equal(t, "{}", marshalPreferences(map[string]any{}))
	require.JSONEq(t, `{"pillow":"firm"}`, marshalPreferences(map[string]any{"pillow": "firm"}))
}

func TestTableErr(t *testing.T) {
	missing := &gomysql.MySQLError{Number: 1146, Message: "Table 'orion.guest_profiles' doesn't exist"}
	err := tableErr("guest_profiles", missing)
	require.ErrorIs(t, err, domain.ErrTableNotFound)

	other := &gomysql.MySQLError{Number: 1045, Message: "Access denied"}
	err = tableErr("guest_profiles", other)
	require.NotErrorIs(t, err, domain.ErrTableNotFound)
	require.Equal(t, other, err)

	require.NoError(t, tableErr("guest_profiles", nil))
}
