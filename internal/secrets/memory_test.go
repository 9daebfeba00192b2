package secrets

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory_SeedSkipsEmptyValues(t *testing.T) {
	m := NewMemory(map[string]string{
		"COHERE_API_KEY": "co-key",
		"SHEET_ID":       "",
	})

	v, err := m.Get(context.Background(), "COHERE_API_KEY")
	require.NoError(t, err)
	require.Equal(t, "co-key", v)

	v, err = m.Get(context.Background(), "SHEET_ID")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestMemory_SetThenGet(t *testing.T) {
	m := NewMemory(nil)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "SHEET_ID", "sheet-1"))
	v, err := m.Get(ctx, "SHEET_ID")
	require.NoError(t, err)
	require.Equal(t, "sheet-1", v)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m := NewMemory(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = m.Set(ctx, "COHERE_API_KEY", "k")
		}()
		go func() {
			defer wg.Done()
			_, _ = m.Get(ctx, "COHERE_API_KEY")
		}()
	}
	wg.Wait()

	v, err := m.Get(ctx, "COHERE_API_KEY")
	require.NoError(t, err)
	require.Equal(t, "k", v)
}
