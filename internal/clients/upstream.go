package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sleepstars/openai-proxy/internal/models"
)

const chatCompletionsSuffix = "/chat/completions"

// Client implements Upstream over plain HTTP so bodies can be relayed untouched
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a new upstream client. An empty BaseURL selects the OpenAI API.
func NewClient(config UpstreamConfig) *Client {
	base := config.BaseURL
	if base == "" {
		base = openai.DefaultConfig("").BaseURL
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		endpoint: strings.TrimRight(base, "/") + chatCompletionsSuffix,
		client:   httpClient,
	}
}

// Endpoint returns the URL requests are posted to
func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Send(ctx context.Context, apiKey string, payload models.ChatPayload) (*UpstreamResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	return &UpstreamResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}, nil
}
