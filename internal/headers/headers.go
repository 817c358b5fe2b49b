// Package headers builds the response header sets shared by every route.
package headers

import "net/http"

const (
	ContentTypeJSON   = "application/json; charset=utf-8"
	ContentTypeStream = "text/event-stream; charset=utf-8"
	ContentTypeHTML   = "text/html; charset=utf-8"

	AllowMethods = "GET,POST,OPTIONS"
	AllowHeaders = "Content-Type, Authorization"

	// AnyOrigin is the allowed origin when none is configured.
	AnyOrigin = "*"
)

// Origin returns the effective allowed origin for a configured value.
func Origin(allowOrigin string) string {
	if allowOrigin == "" {
		return AnyOrigin
	}
	return allowOrigin
}

// CORS returns the cross-origin header set.
func CORS(allowOrigin string) http.Header {
	h := make(http.Header, 3)
	h.Set("Access-Control-Allow-Origin", Origin(allowOrigin))
	h.Set("Access-Control-Allow-Methods", AllowMethods)
	h.Set("Access-Control-Allow-Headers", AllowHeaders)
	return h
}

// JSON returns the CORS set plus a JSON content type.
func JSON(allowOrigin string) http.Header {
	h := CORS(allowOrigin)
	h.Set("Content-Type", ContentTypeJSON)
	return h
}

// Stream returns the CORS set plus event-stream and no-cache headers.
func Stream(allowOrigin string) http.Header {
	h := CORS(allowOrigin)
	h.Set("Content-Type", ContentTypeStream)
	h.Set("Cache-Control", "no-cache")
	return h
}

// HTML returns only the HTML content type. The index page is same-origin.
func HTML() http.Header {
	h := make(http.Header, 1)
	h.Set("Content-Type", ContentTypeHTML)
	return h
}

// Apply copies every header in src onto dst, replacing existing values.
func Apply(dst, src http.Header) {
	for k, v := range src {
		dst[k] = append([]string(nil), v...)
	}
}
