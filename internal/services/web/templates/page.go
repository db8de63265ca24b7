package templates

//go:generate templ generate -path .

import (
	"strings"

	"github.com/louisbranch/onboarding/internal/platform/branding"
	"github.com/louisbranch/onboarding/internal/services/shared/i18nhttp"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	AppName      string
	Languages    []i18nhttp.LanguageOption
}

// ComposePageTitle appends the app name unless title already ends with it.
func ComposePageTitle(title string, appName string) string {
	title = strings.TrimSpace(title)
	appName = strings.TrimSpace(appName)
	if appName == "" {
		appName = branding.AppName
	}
	if title == "" {
		return appName
	}
	if strings.HasSuffix(title, "| "+appName) {
		return title
	}
	return title + " | " + appName
}
