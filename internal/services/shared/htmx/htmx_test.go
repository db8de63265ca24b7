package htmx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
)

type testComponent struct {
	body string
}

func (c testComponent) Render(_ context.Context, w io.Writer) error {
	_, err := w.Write([]byte(c.body))
	return err
}

func TestIsHTMXRequest(t *testing.T) {
	t.Run("missing_request_is_not_htmx", func(t *testing.T) {
		t.Parallel()
		if got := IsHTMXRequest(nil); got {
			t.Fatalf("IsHTMXRequest(nil) = true, want false")
		}
	})

	t.Run("true_request_is_htmx", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)
		r.Header.Set(RequestHeaderKey, "TRUE")
		if got := IsHTMXRequest(r); !got {
			t.Fatalf("IsHTMXRequest(request) = false, want true")
		}
	})
}

func TestRenderPage(t *testing.T) {
	fragment := testComponent{body: "<div>fragment</div>"}
	full := testComponent{body: "<html>full</html>"}

	tests := []struct {
		name     string
		htmx     bool
		fragment templ.Component
		full     templ.Component
		want     string
	}{
		{name: "full for browser", fragment: fragment, full: full, want: full.body},
		{name: "fragment for htmx", htmx: true, fragment: fragment, full: full, want: fragment.body},
		{name: "htmx without fragment uses full", htmx: true, full: full, want: full.body},
		{name: "browser without full uses fragment", fragment: fragment, want: fragment.body},
		{name: "nothing to render", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.htmx {
				r.Header.Set(RequestHeaderKey, "true")
			}
			rr := httptest.NewRecorder()
			RenderPage(rr, r, tt.fragment, tt.full)
			if got := rr.Body.String(); got != tt.want {
				t.Fatalf("body = %q, want %q", got, tt.want)
			}
			if tt.htmx && rr.Header().Get("Vary") != RequestHeaderKey {
				t.Fatalf("Vary = %q, want %q", rr.Header().Get("Vary"), RequestHeaderKey)
			}
		})
	}
}
