package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"orion_concierge/internal/adapters/observability"
	"orion_concierge/internal/domain"
)

const (
	defaultBase = "https://api.cohere.com/v1"
	model       = "command-r-plus"
	maxTokens   = 500
	temperature = 0.7
	topP        = 0.9
)

// Wire role labels. Guest turns become User, everything else Assistant.
const (
	roleUser      = "User"
	roleAssistant = "Assistant"
)

type chatMessage struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	System      string        `json:"system"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Text  string `json:"text"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client is a single-shot chat-completion client: one synchronous call with a
// fixed 30s timeout, no retry, no backoff, no streaming.
type Client struct {
	base string
	hc   *http.Client
}

type Option func(*Client)

func WithBaseURL(base string) Option {
	return func(c *Client) { c.base = strings.TrimRight(strings.TrimSpace(base), "/") }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func New(opts ...Option) *Client {
	c := &Client{
		base: defaultBase,
		hc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chat sends the system prompt, remapped history and the new message to the
// chat endpoint. An error payload or a non-2xx status surfaces the upstream
// message verbatim where one is present.
func (c *Client) Chat(ctx context.Context, apiKey string, in domain.CompletionRequest) (string, error) {
	if apiKey == "" {
		return "", errors.New("cohere: api key is required")
	}

	messages := make([]chatMessage, 0, len(in.History)+1)
	for _, m := range in.History {
		role := roleAssistant
		if m.Role == domain.RoleGuest {
			role = roleUser
		}
		messages = append(messages, chatMessage{Role: role, Message: m.Text})
	}
	messages = append(messages, chatMessage{Role: roleUser, Message: in.Message})

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		System:      in.System,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
	})
	if err != nil {
		return "", fmt.Errorf("cohere: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("cohere: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("cohere", "chat", 0, time.Since(start))
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("cohere: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	observability.ObserveExternal("cohere", "chat", resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("cohere: read response: %w", err)
	}

	var payload chatResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return "", fmt.Errorf("cohere: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		return "", fmt.Errorf("cohere: decode response: %w", err)
	}
	if payload.Error != nil {
		msg := payload.Error.Message
		if msg == "" {
			msg = "API Error"
		}
		return "", errors.New(msg)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("cohere: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return payload.Text, nil
}
