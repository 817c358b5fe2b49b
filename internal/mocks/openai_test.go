package mocks

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newOpenAIClient(baseURL, key string) *openai.Client {
	cfg := openai.DefaultConfig(key)
	cfg.BaseURL = baseURL + "/v1"
	return openai.NewClientWithConfig(cfg)
}

func TestOpenAIServer_Complete(t *testing.T) {
	server := httptest.NewServer((&OpenAIServer{}).Handler())
	defer server.Close()

	resp, err := newOpenAIClient(server.URL, "sk").CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "ping"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "Echo: ping", resp.Choices[0].Message.Content)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
}

func TestOpenAIServer_CompleteStream(t *testing.T) {
	server := httptest.NewServer((&OpenAIServer{}).Handler())
	defer server.Close()

	stream, err := newOpenAIClient(server.URL, "sk").CreateChatCompletionStream(context.Background(), openai.ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "one two"},
		},
		Stream: true,
	})
	require.NoError(t, err)
	defer stream.Close()

	var parts []string
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		parts = append(parts, chunk.Choices[0].Delta.Content)
	}
	assert.Equal(t, []string{"Echo:", " one", " two"}, parts)
}

func TestOpenAIServer_RequiresKey(t *testing.T) {
	server := httptest.NewServer((&OpenAIServer{APIKey: "sk-right"}).Handler())
	defer server.Close()

	_, err := newOpenAIClient(server.URL, "sk-wrong").CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
		Model:    "gpt-4o-mini",
		Messages: []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "hi"}},
	})
	require.Error(t, err)

	var apiErr *openai.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.HTTPStatusCode)
}
