package web

import (
	"context"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/onboarding/internal/platform/branding"
	"github.com/louisbranch/onboarding/internal/platform/platformicon"
	"github.com/louisbranch/onboarding/internal/services/shared/htmx"
	webi18n "github.com/louisbranch/onboarding/internal/services/web/i18n"
	webtemplates "github.com/louisbranch/onboarding/internal/services/web/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/onboarding/internal/services/web"

type handler struct {
	appName    string
	platforms  []string
	stylesheet *stylesheet
	tracer     trace.Tracer
}

// NewHandler creates the HTTP handler for the onboarding UX.
func NewHandler(config Config) (http.Handler, error) {
	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = branding.AppName
	}
	h := &handler{
		appName:    appName,
		platforms:  platformicon.Platforms(),
		stylesheet: newStylesheet(platformicon.Stylesheet()),
		tracer:     otel.Tracer(tracerName),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleOnboarding)
	mux.HandleFunc("GET /platforms/{platform}", h.handlePlatform)
	mux.HandleFunc("GET /platforms/{platform}/tile", h.handleTile)
	mux.Handle("GET "+webtemplates.StylesheetPath, h.stylesheet)
	mux.HandleFunc("GET /up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux, nil
}

func (h *handler) pageContext(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	printer, tag := webi18n.Localize(w, r)
	return webtemplates.PageContext{
		Lang:         tag.String(),
		Loc:          printer,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
		AppName:      h.appName,
		Languages:    webi18n.LanguageOptions(printer, tag, r),
	}
}

func (h *handler) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	mono := monoToneParam(r)
	ctx, span := h.tracer.Start(r.Context(), "web.onboarding", trace.WithAttributes(
		attribute.Bool("platformicon.mono_tone", mono),
		attribute.Bool("htmx", htmx.IsHTMXRequest(r)),
	))
	defer span.End()
	r = r.WithContext(ctx)

	page := h.pageContext(w, r)
	params := webtemplates.OnboardingParams{
		Platforms: webtemplates.NewPlatformOptions(page.Lang, h.platforms),
		MonoTone:  mono,
	}
	htmx.RenderPage(w, r,
		h.traced(span, webtemplates.PlatformGrid(page, params)),
		h.traced(span, webtemplates.OnboardingPage(page, params)),
	)
}

func (h *handler) handlePlatform(w http.ResponseWriter, r *http.Request) {
	platform := strings.TrimSpace(r.PathValue("platform"))
	ctx, span := h.tracer.Start(r.Context(), "web.platform", trace.WithAttributes(
		attribute.String("platformicon.platform", platform),
	))
	defer span.End()
	r = r.WithContext(ctx)

	page := h.pageContext(w, r)
	option := webtemplates.PlatformOption{ID: platform, Label: webtemplates.PlatformLabel(page.Lang, platform)}
	serveComponent(w, r, h.traced(span, webtemplates.PlatformPage(page, option)))
}

func (h *handler) handleTile(w http.ResponseWriter, r *http.Request) {
	props := platformicon.Props{
		Platform:  strings.TrimSpace(r.PathValue("platform")),
		ClassName: r.URL.Query().Get("class"),
		MonoTone:  monoToneParam(r),
	}
	tile := platformicon.Resolve(props)
	_, span := h.tracer.Start(r.Context(), "web.tile", trace.WithAttributes(
		attribute.String("platformicon.platform", tile.Platform),
		attribute.Bool("platformicon.mono_tone", tile.MonoTone),
		attribute.Bool("platformicon.color_override", tile.ColorOverride),
		attribute.Bool("platformicon.glyph_override", tile.Glyph != ""),
	))
	defer span.End()

	serveComponent(w, r, h.traced(span, webtemplates.PlatformIconTile(props)))
}

// traced records component render failures on span.
func (h *handler) traced(span trace.Span, component templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := component.Render(ctx, w)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "render failed")
		}
		return err
	})
}

func serveComponent(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("render %s: %v", r.URL.Path, err)
			http.Error(w, "render failed", http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}

// monoToneParam reads ?mono=; anything but a true boolean renders colored.
func monoToneParam(r *http.Request) bool {
	mono, err := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get("mono")))
	return err == nil && mono
}
