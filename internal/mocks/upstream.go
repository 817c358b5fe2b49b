package mocks

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/sleepstars/openai-proxy/internal/clients"
	"github.com/sleepstars/openai-proxy/internal/models"
)

// MockUpstream implements clients.Upstream for testing
type MockUpstream struct {
	SendFunc func(ctx context.Context, apiKey string, payload models.ChatPayload) (*clients.UpstreamResponse, error)
}

func (m *MockUpstream) Send(ctx context.Context, apiKey string, payload models.ChatPayload) (*clients.UpstreamResponse, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, apiKey, payload)
	}
	return TextResponse(http.StatusOK, "{}"), nil
}

// TextResponse builds an upstream response carrying body
func TextResponse(status int, body string) *clients.UpstreamResponse {
	return &clients.UpstreamResponse{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
