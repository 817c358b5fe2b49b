package models

import (
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultModel is used when the caller does not name a model.
	DefaultModel = openai.GPT4oMini
	// DefaultTemperature is used when the caller does not set a temperature.
	DefaultTemperature = 0.3
	// DefaultPrompt is the content of the single user turn sent when no messages are given.
	DefaultPrompt = "Hello"
)

// InboundChatRequest is the body a caller posts to /chat. Every field is optional.
type InboundChatRequest struct {
	Model       Optional[string]            `json:"model"`
	Messages    Optional[[]json.RawMessage] `json:"messages"`
	Temperature Optional[float64]           `json:"temperature"`
	MaxTokens   json.RawMessage             `json:"max_tokens,omitempty"`
	Stream      Optional[bool]              `json:"stream"`
}

// ChatPayload is the fully populated request body sent upstream.
type ChatPayload struct {
	Model       Optional[string]            `json:"model"`
	Messages    Optional[[]json.RawMessage] `json:"messages"`
	Temperature Optional[float64]           `json:"temperature"`
	MaxTokens   json.RawMessage             `json:"max_tokens,omitempty"`
	Stream      Optional[bool]              `json:"stream"`
}

// Streaming reports whether the caller asked for a streamed response.
func (p ChatPayload) Streaming() bool {
	stream, ok := p.Stream.Get()
	return ok && stream
}

// ParseChatRequest decodes a caller body. Only malformed JSON is an error;
// a body that is valid JSON but not an object is treated as an empty request.
func ParseChatRequest(data []byte) (InboundChatRequest, error) {
	var req InboundChatRequest
	if err := json.Unmarshal(data, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return InboundChatRequest{}, nil
		}
		return InboundChatRequest{}, fmt.Errorf("decode request body: %w", err)
	}
	return req, nil
}

// Normalize fills every absent field of req with its default. Each field is
// defaulted on its own; max_tokens is carried over untouched, including an
// explicit null.
func Normalize(req InboundChatRequest) ChatPayload {
	messages := req.Messages
	if list, ok := messages.Get(); ok && len(list) == 0 {
		messages = Optional[[]json.RawMessage]{}
	}

	var maxTokens json.RawMessage
	if req.MaxTokens != nil {
		maxTokens = append(json.RawMessage(nil), req.MaxTokens...)
	}

	return ChatPayload{
		Model:       req.Model.Or(DefaultModel),
		Messages:    messages.Or(DefaultMessages()),
		Temperature: req.Temperature.Or(DefaultTemperature),
		MaxTokens:   maxTokens,
		Stream:      req.Stream.Or(false),
	}
}

// DefaultMessages returns the single user turn used when a request carries no messages.
func DefaultMessages() []json.RawMessage {
	msg, err := json.Marshal(openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: DefaultPrompt,
	})
	if err != nil {
		// ChatCompletionMessage only fails to marshal when both Content and MultiContent are set.
		panic(fmt.Sprintf("marshal default message: %v", err))
	}
	return []json.RawMessage{msg}
}
