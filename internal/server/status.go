package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sleepstars/openai-proxy/internal/headers"
	"github.com/sleepstars/openai-proxy/internal/models"
)

const (
	StatusPath = "/status"

	// ServiceName identifies the proxy in the status report.
	ServiceName = "openai-proxy"
	// Version is the build identifier shown on /status and the index page.
	Version = "2025-09-02"
)

// Endpoints lists the routes advertised by the status report.
var Endpoints = []string{ChatPath + " (POST)", StatusPath + " (GET)"}

// StatusReport is the body of GET /status
type StatusReport struct {
	OK           bool     `json:"ok"`
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	AllowOrigin  string   `json:"allow_origin"`
	Endpoints    []string `json:"endpoints"`
	DefaultModel string   `json:"default_model"`
}

func (s *Server) handleStatus(c *gin.Context) {
	settings := s.source.Settings()
	writeJSON(c, settings.AllowOrigin, http.StatusOK, StatusReport{
		OK:           settings.Ready(),
		Name:         ServiceName,
		Version:      Version,
		AllowOrigin:  headers.Origin(settings.AllowOrigin),
		Endpoints:    Endpoints,
		DefaultModel: models.DefaultModel,
	})
}
