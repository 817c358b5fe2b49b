package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sleepstars/openai-proxy/internal/headers"
	"github.com/sleepstars/openai-proxy/internal/models"
)

const indexName = "index.html"

// html/template escapes & < > " ' in every interpolated value.
var indexTemplate = template.Must(template.New(indexName).Parse(`<!doctype html>
<html lang="en">
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>OpenAI Proxy</title>
<style>
  body{font-family:system-ui,-apple-system,Segoe UI,Roboto,Inter,Helvetica,Arial,sans-serif;margin:40px;line-height:1.6;color:#0b1220}
  code{background:#f2f4f8;padding:2px 6px;border-radius:6px}
  .badge{display:inline-block;background:#e6f4ff;color:#0958d9;border:1px solid #91caff;padding:2px 8px;border-radius:999px;font-size:12px;margin-left:8px}
  ul{padding-left:1.2em}
</style>
<h1>OpenAI Proxy <span class="badge">ready</span></h1>
<p>This service relays chat completion requests to the OpenAI API.</p>
<ul>
{{- range .Endpoints}}
  <li><code>{{.}}</code></li>
{{- end}}
</ul>
<p>Allowed origin: <code>{{.AllowOrigin}}</code></p>
<p>Default model: <code>{{.DefaultModel}}</code></p>
<p>Version: <code>{{.Version}}</code></p>
`))

type indexData struct {
	AllowOrigin  string
	DefaultModel string
	Version      string
	Endpoints    []string
}

func (s *Server) handleIndex(c *gin.Context) {
	headers.Apply(c.Writer.Header(), headers.HTML())
	c.HTML(http.StatusOK, indexName, indexData{
		AllowOrigin:  headers.Origin(s.source.Settings().AllowOrigin),
		DefaultModel: models.DefaultModel,
		Version:      Version,
		Endpoints:    Endpoints,
	})
}
