package elevenlabs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RequiresKey(t *testing.T) {
	_, err := New("", "", 5)
	require.Error(t, err)
}

func TestSynthesize(t *testing.T) {
	var (
		gotPath string
		gotKey  string
		gotReq  synthesisRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("MP3DATA"))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "xi-key", 5)
	require.NoError(t, err)

	audio, err := c.Synthesize(context.Background(), "Welcome back", "")
	require.NoError(t, err)
	require.Equal(t, []byte("MP3DATA"), audio)

	require.Equal(t, "/text-to-speech/"+DefaultVoice, gotPath)
	require.Equal(t, "xi-key", gotKey)
	require.Equal(t, "Welcome back", gotReq.Text)
	require.Equal(t, "eleven_monolingual_v1", gotReq.ModelID)
	require.InDelta(t, 0.5, gotReq.VoiceSettings.Stability, 1e-9)
	require.InDelta(t, 0.75, gotReq.VoiceSettings.SimilarityBoost, 1e-9)
}

func TestSynthesize_CustomVoice(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "xi-key", 5)
	require.NoError(t, err)
	_, err = c.Synthesize(context.Background(), "hi", "voice-9")
	require.NoError(t, err)
	require.Equal(t, "/text-to-speech/voice-9", gotPath)
}

func TestSynthesize_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid key"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "wrong", 5)
	require.NoError(t, err)
	_, err = c.Synthesize(context.Background(), "hi", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
	require.Contains(t, err.Error(), "invalid key")
}
