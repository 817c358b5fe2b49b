package relay

import (
	"context"
	"fmt"
	"io"

	"github.com/sleepstars/openai-proxy/internal/clients"
	"github.com/sleepstars/openai-proxy/internal/logger"
	"github.com/sleepstars/openai-proxy/internal/models"
)

// Mode selects how an upstream body reaches the caller
type Mode int

const (
	// Buffered bodies are read in full before they are written out
	Buffered Mode = iota
	// Streamed bodies are copied chunk by chunk as they arrive
	Streamed
)

func (m Mode) String() string {
	if m == Streamed {
		return "streamed"
	}
	return "buffered"
}

// Outcome is the result of a successful dispatch. Body is set for Buffered,
// Stream for Streamed; the receiver must close Stream.
type Outcome struct {
	Mode       Mode
	StatusCode int
	Body       []byte
	Stream     io.ReadCloser
	Payload    models.ChatPayload
}

// Relay normalizes chat requests and sends them upstream
type Relay struct {
	upstream clients.Upstream
	logger   *logger.Logger
}

// New creates a relay sending to upstream
func New(upstream clients.Upstream) *Relay {
	return &Relay{
		upstream: upstream,
		logger:   logger.GetLogger().WithComponent("relay"),
	}
}

// Forward decodes body, fills defaults and makes the single upstream call.
// Any failure before the caller has seen a byte is returned as an error;
// upstream status codes, including errors, are not interpreted.
func (r *Relay) Forward(ctx context.Context, apiKey string, body []byte) (*Outcome, error) {
	req, err := models.ParseChatRequest(body)
	if err != nil {
		return nil, err
	}
	payload := models.Normalize(req)

	model, _ := payload.Model.Get()
	r.logger.Debug("Relaying request: model=%s, stream=%v, max_tokens=%s",
		model, payload.Streaming(), maxTokensLabel(payload))

	resp, err := r.upstream.Send(ctx, apiKey, payload)
	if err != nil {
		return nil, err
	}

	if payload.Streaming() {
		return &Outcome{
			Mode:       Streamed,
			StatusCode: resp.StatusCode,
			Stream:     resp.Body,
			Payload:    payload,
		}, nil
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	r.logger.Debug("Upstream replied %d with %d bytes", resp.StatusCode, len(data))
	return &Outcome{
		Mode:       Buffered,
		StatusCode: resp.StatusCode,
		Body:       data,
		Payload:    payload,
	}, nil
}

func maxTokensLabel(p models.ChatPayload) string {
	if p.MaxTokens == nil {
		return "unset"
	}
	return string(p.MaxTokens)
}
