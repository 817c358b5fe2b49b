package clients

import (
	"context"
	"io"
	"net/http"

	"github.com/sleepstars/openai-proxy/internal/models"
)

// Upstream defines the interface for the chat-completion API the proxy relays to
type Upstream interface {
	// Send posts payload using apiKey as the bearer credential. The caller
	// owns the returned body and must close it.
	Send(ctx context.Context, apiKey string, payload models.ChatPayload) (*UpstreamResponse, error)
}

// UpstreamConfig contains configuration for the upstream client
type UpstreamConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

// UpstreamResponse is the raw upstream reply. Nothing in it has been read or parsed.
type UpstreamResponse struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}
