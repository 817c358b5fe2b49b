package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sleepstars/openai-proxy/internal/config"
	"github.com/sleepstars/openai-proxy/internal/headers"
	"github.com/sleepstars/openai-proxy/internal/relay"
)

// ChatPath is the only route that reaches upstream.
const ChatPath = "/chat"

func (s *Server) handleChat(c *gin.Context) {
	settings := s.source.Settings()
	if c.Request.Method != http.MethodPost {
		methodNotAllowed(c, settings.AllowOrigin)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.relayFailed(c, settings, fmt.Errorf("read request body: %w", err))
		return
	}

	out, err := s.relay.Forward(c.Request.Context(), settings.APIKey, body)
	if err != nil {
		s.relayFailed(c, settings, err)
		return
	}

	if out.Mode == relay.Streamed {
		s.streamOutcome(c, settings, out)
		return
	}

	headers.Apply(c.Writer.Header(), headers.JSON(settings.AllowOrigin))
	c.Data(out.StatusCode, headers.ContentTypeJSON, out.Body)
}

func (s *Server) streamOutcome(c *gin.Context, settings config.Settings, out *relay.Outcome) {
	defer out.Stream.Close()

	headers.Apply(c.Writer.Header(), headers.Stream(settings.AllowOrigin))
	c.Status(out.StatusCode)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	n, err := relay.Pipe(c.Request.Context(), c.Writer, out.Stream)
	if err != nil {
		// The status line is already sent; all that is left is to stop.
		s.logger.WithError(err).Warn("Stream %s ended early after %d bytes", c.GetString(requestIDKey), n)
		return
	}
	s.logger.Debug("Stream %s finished after %d bytes", c.GetString(requestIDKey), n)
}

func (s *Server) relayFailed(c *gin.Context, settings config.Settings, err error) {
	s.logger.WithError(err).Error("Relay failed for request %s", c.GetString(requestIDKey))
	writeJSON(c, settings.AllowOrigin, http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func methodNotAllowed(c *gin.Context, allowOrigin string) {
	writeJSON(c, allowOrigin, http.StatusMethodNotAllowed, gin.H{"error": "Use POST " + ChatPath})
}
