package redisad

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newTestSecrets(t *testing.T) *Secrets {
	t.Helper()
	mr := miniredis.RunT(t)
	return New(mr.Addr(), "", 0)
}

func TestSecrets_RoundTrip(t *testing.T) {
	s := newTestSecrets(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "COHERE_API_KEY", "co-key"))
	v, err := s.Get(ctx, "COHERE_API_KEY")
	require.NoError(t, err)
	require.Equal(t, "co-key", v)

	// overwrite wins
	require.NoError(t, s.Set(ctx, "COHERE_API_KEY", "co-key-2"))
	v, err = s.Get(ctx, "COHERE_API_KEY")
	require.NoError(t, err)
	require.Equal(t, "co-key-2", v)
}

func TestSecrets_UnsetReadsEmpty(t *testing.T) {
	s := newTestSecrets(t)
	v, err := s.Get(context.Background(), "SHEET_ID")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSecrets_NamesAreIndependent(t *testing.T) {
	s := newTestSecrets(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "SHEET_ID", "sheet-1"))
	v, err := s.Get(ctx, "FIREBASE_CONFIG")
	require.NoError(t, err)
	require.Empty(t, v)
}
