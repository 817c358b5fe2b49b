package mocks

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIServer answers chat completion requests the way the OpenAI API
// does, echoing the last message back. Streamed replies are sent one word
// per event, ChunkDelay apart.
type OpenAIServer struct {
	ChunkDelay time.Duration
	// APIKey, when set, is required as the bearer token.
	APIKey string
}

// Handler returns the gin engine serving POST /v1/chat/completions
func (m *OpenAIServer) Handler() http.Handler {
	r := gin.New()
	r.POST("/v1/chat/completions", m.handleCompletion)
	return r
}

func (m *OpenAIServer) handleCompletion(c *gin.Context) {
	if m.APIKey != "" && c.GetHeader("Authorization") != "Bearer "+m.APIKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
			"message": "Incorrect API key provided",
			"type":    "invalid_request_error",
		}})
		return
	}

	var req openai.ChatCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
		return
	}

	content := "Unknown prompt"
	if n := len(req.Messages); n > 0 {
		content = "Echo: " + req.Messages[n-1].Content
	}

	if req.Stream {
		m.stream(c, req.Model, content)
		return
	}

	c.JSON(http.StatusOK, openai.ChatCompletionResponse{
		ID:      "chatcmpl-mock",
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []openai.ChatCompletionChoice{
			{
				Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: content,
				},
				FinishReason: openai.FinishReasonStop,
			},
		},
	})
}

func (m *OpenAIServer) stream(c *gin.Context, model, content string) {
	c.Header("Content-Type", "text/event-stream")
	c.Status(http.StatusOK)

	words := strings.Fields(content)
	for i, word := range words {
		if i > 0 {
			word = " " + word
		}
		chunk := openai.ChatCompletionStreamResponse{
			ID:      "chatcmpl-mock",
			Object:  "chat.completion.chunk",
			Created: time.Now().Unix(),
			Model:   model,
			Choices: []openai.ChatCompletionStreamChoice{
				{Delta: openai.ChatCompletionStreamChoiceDelta{Content: word}},
			},
		}
		if i == len(words)-1 {
			chunk.Choices[0].FinishReason = openai.FinishReasonStop
		}

		data, err := json.Marshal(chunk)
		if err != nil {
			return
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
			return
		}
		c.Writer.Flush()

		select {
		case <-c.Request.Context().Done():
			return
		case <-time.After(m.ChunkDelay):
		}
	}

	fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	c.Writer.Flush()
}
