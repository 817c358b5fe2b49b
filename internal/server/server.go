// Package server exposes the relay over HTTP.
package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sleepstars/openai-proxy/internal/clients"
	"github.com/sleepstars/openai-proxy/internal/config"
	"github.com/sleepstars/openai-proxy/internal/headers"
	"github.com/sleepstars/openai-proxy/internal/logger"
	"github.com/sleepstars/openai-proxy/internal/relay"
)

const requestIDKey = "request_id"

// Server routes requests to the chat relay, status report and index page
type Server struct {
	engine *gin.Engine
	relay  *relay.Relay
	source config.Source
	logger *logger.Logger
}

// New creates a server reading request-time settings from source and
// relaying chat requests to upstream
func New(source config.Source, upstream clients.Upstream) *Server {
	s := &Server{
		relay:  relay.New(upstream),
		source: source,
		logger: logger.GetLogger().WithComponent("server"),
	}

	r := gin.New()
	// Only exact paths match; /chat/ is not /chat.
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.SetHTMLTemplate(indexTemplate)

	r.Use(s.requestLogger(), gin.CustomRecoveryWithWriter(io.Discard, s.handlePanic), s.preflight())

	r.Any(ChatPath, s.handleChat)
	r.GET(StatusPath, s.handleStatus)
	r.GET("/", s.handleIndex)
	r.GET("/index.html", s.handleIndex)
	r.NoRoute(s.handleNoRoute)

	s.engine = r
	return s
}

// Handler returns the HTTP handler for all routes
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr and serves until the listener fails
func (s *Server) Run(addr string) error {
	s.logger.Info("Listening on %s", addr)
	return s.engine.Run(addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := uuid.NewString()
		c.Set(requestIDKey, id)

		c.Next()

		s.logger.Info("%s %s %s -> %d (%s, %d bytes)",
			id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), c.Writer.Size())
	}
}

// preflight answers every OPTIONS request before routing.
func (s *Server) preflight() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		headers.Apply(c.Writer.Header(), headers.CORS(s.source.Settings().AllowOrigin))
		c.AbortWithStatus(http.StatusNoContent)
	}
}

func (s *Server) handlePanic(c *gin.Context, err any) {
	s.logger.Error("Recovered from panic in %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	if c.Writer.Written() {
		c.Abort()
		return
	}
	writeJSON(c, s.source.Settings().AllowOrigin, http.StatusInternalServerError, gin.H{"error": "internal error"})
	c.Abort()
}

func (s *Server) handleNoRoute(c *gin.Context) {
	settings := s.source.Settings()
	// Methods gin has no route for still get a 405 on the chat path.
	if c.Request.URL.Path == ChatPath {
		methodNotAllowed(c, settings.AllowOrigin)
		return
	}
	headers.Apply(c.Writer.Header(), headers.CORS(settings.AllowOrigin))
	c.String(http.StatusNotFound, "Not found")
}

func writeJSON(c *gin.Context, allowOrigin string, status int, obj any) {
	headers.Apply(c.Writer.Header(), headers.JSON(allowOrigin))
	c.JSON(status, obj)
}
