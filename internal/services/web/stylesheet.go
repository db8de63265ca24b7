package web

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"
)

// stylesheet serves a generated CSS document with a content-hash ETag.
type stylesheet struct {
	body string
	etag string
}

func newStylesheet(body string) *stylesheet {
	sum := sha256.Sum256([]byte(body))
	return &stylesheet{
		body: body,
		etag: `"` + hex.EncodeToString(sum[:8]) + `"`,
	}
}

func (s *stylesheet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("ETag", s.etag)
	http.ServeContent(w, r, "platformicon.css", time.Time{}, strings.NewReader(s.body))
}
