// Package assist is the AI gateway for the lesson player. It wraps an
// llm.Provider with the five domain operations (quiz generation, tutoring,
// summarization, chat, video analysis) and converts every failure into a
// localized, displayable result. Callers never see provider panics or raw
// SDK errors.
package assist

import (
	"github.com/manara-app/manara/internal/llm"
)

// Client executes AI operations against a configured provider.
// A nil provider means AI features are unavailable; every operation then
// returns its localized not-configured message.
type Client struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Client. provider may be nil when no API key is configured.
func New(provider llm.Provider, cfg Config) *Client {
	return &Client{provider: provider, cfg: cfg}
}

// Configured reports whether a provider is available.
func (c *Client) Configured() bool {
	return c.provider != nil
}
