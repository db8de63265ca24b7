package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestMessagesRegisteredForEveryLocale(t *testing.T) {
	keys := []string{
		"title.onboarding",
		"onboarding.heading",
		"onboarding.subtitle",
		"onboarding.mono_on",
		"onboarding.mono_off",
		"platform.back",
		"nav.lang_en",
		"nav.lang_pt_br",
	}
	for _, tag := range []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese} {
		printer := message.NewPrinter(tag)
		for _, key := range keys {
			if got := printer.Sprintf(key); got == key {
				t.Errorf("%s: message %q not registered", tag, key)
			}
		}
	}
}

func TestLocalizedCount(t *testing.T) {
	printer := message.NewPrinter(language.BrazilianPortuguese)
	if got := printer.Sprintf("onboarding.count", 3); got != "3 plataformas" {
		t.Fatalf("count = %q", got)
	}
}

func TestLocalizeQueryParamWins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=pt-BR", nil)
	req.Header.Set("Accept-Language", "en-US")
	rr := httptest.NewRecorder()

	printer, tag := Localize(rr, req)
	if tag != language.BrazilianPortuguese {
		t.Fatalf("tag = %v, want pt-BR", tag)
	}
	if got := printer.Sprintf("platform.back"); got != "Escolher outra plataforma" {
		t.Fatalf("printer message = %q", got)
	}
}

func TestLanguageOptionsAreLabeled(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/platforms/go?mono=true", nil)
	printer := message.NewPrinter(language.AmericanEnglish)
	options := LanguageOptions(printer, language.AmericanEnglish, req)
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if options[0].Label != "English" || !options[0].Active {
		t.Fatalf("options[0] = %+v", options[0])
	}
	if options[1].URL != "/platforms/go?lang=pt-BR&mono=true" {
		t.Fatalf("options[1].URL = %q", options[1].URL)
	}
}
