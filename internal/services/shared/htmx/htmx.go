// Package htmx switches between full page and fragment rendering for HTMX
// requests.
package htmx

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the HTMX request header used to detect partial updates.
const RequestHeaderKey = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// RenderPage renders fragment for HTMX requests and full otherwise.
// A nil component falls back to the other one.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component) {
	target := full
	if IsHTMXRequest(r) {
		target = fragment
		w.Header().Add("Vary", RequestHeaderKey)
	}
	if target == nil {
		target = fragment
	}
	if target == nil {
		target = full
	}
	if target == nil {
		return
	}
	templ.Handler(target).ServeHTTP(w, r)
}
