package templates

import "net/url"

// StylesheetPath serves platformicon.Stylesheet.
const StylesheetPath = "/static/platformicon.css"

// PlatformPath links to the selection page of platform.
func PlatformPath(platform string) string {
	return "/platforms/" + url.PathEscape(platform)
}

// PlatformOption is one selectable platform on the onboarding page.
type PlatformOption struct {
	ID    string
	Label string
}

// OnboardingParams holds the platform picker state.
type OnboardingParams struct {
	Platforms []PlatformOption
	MonoTone  bool
}

// NewPlatformOptions labels platforms for the page language.
func NewPlatformOptions(lang string, platforms []string) []PlatformOption {
	options := make([]PlatformOption, 0, len(platforms))
	for _, platform := range platforms {
		options = append(options, PlatformOption{ID: platform, Label: PlatformLabel(lang, platform)})
	}
	return options
}

func monoToggleKey(mono bool) string {
	if mono {
		return "onboarding.mono_off"
	}
	return "onboarding.mono_on"
}

func toggleURL(page PageContext, mono bool) string {
	query, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		query = url.Values{}
	}
	if mono {
		query.Set("mono", "true")
	} else {
		query.Del("mono")
	}
	path := page.CurrentPath
	if path == "" {
		path = "/"
	}
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
