package headers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	h := CORS("https://app.example.com")

	assert.Equal(t, "https://app.example.com", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,POST,OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", h.Get("Access-Control-Allow-Headers"))
	assert.Empty(t, h.Get("Content-Type"))
	assert.Len(t, h, 3)
}

func TestCORS_DefaultsToWildcard(t *testing.T) {
	assert.Equal(t, "*", CORS("").Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "*", Origin(""))
	assert.Equal(t, "https://a.test", Origin("https://a.test"))
}

func TestHeaderSets(t *testing.T) {
	testCases := []struct {
		name        string
		header      http.Header
		contentType string
		cors        bool
		cache       string
	}{
		{name: "JSON", header: JSON(""), contentType: "application/json; charset=utf-8", cors: true},
		{name: "Stream", header: Stream(""), contentType: "text/event-stream; charset=utf-8", cors: true, cache: "no-cache"},
		{name: "HTML", header: HTML(), contentType: "text/html; charset=utf-8"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.contentType, tc.header.Get("Content-Type"))
			assert.Equal(t, tc.cache, tc.header.Get("Cache-Control"))
			if tc.cors {
				assert.Equal(t, "*", tc.header.Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, tc.header.Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestApply(t *testing.T) {
	dst := http.Header{}
	dst.Set("Content-Type", "text/plain")
	dst.Set("X-Keep", "1")

	Apply(dst, JSON("*"))

	assert.Equal(t, "application/json; charset=utf-8", dst.Get("Content-Type"))
	assert.Equal(t, "1", dst.Get("X-Keep"))
	assert.Equal(t, "*", dst.Get("Access-Control-Allow-Origin"))
}
