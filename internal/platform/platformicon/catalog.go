package platformicon

import (
	"regexp"
	"sort"
	"strings"
)

//go:generate sh -c "go run ../../../cmd/platformicons -markdown > ../../../docs/platform-icons.md"

// ColorEntry pairs a platform identifier with its tile colors. Empty colors
// fall back to the default palette.
type ColorEntry struct {
	Platform   string
	Background string
	Foreground string
}

// GlyphOverride replaces the default icon glyph for a set of platforms.
// Glyph is a CSS escape such as `\e602`.
type GlyphOverride struct {
	Platforms []string
	Glyph     string
}

var colorTable = []ColorEntry{
	{Platform: "python", Background: "#3060b8"},
	{Platform: "python-django", Background: "#57be8c"},
	{Platform: "javascript", Background: "#ecd744", Foreground: "#111"},
	{Platform: "javascript-react", Background: "#2d2d2d", Foreground: "#00d8ff"},
	{Platform: "javascript-ember", Background: "#ed573e", Foreground: "#fff"},
	{Platform: "ruby", Background: "#e03e2f", Foreground: "#fff"},
	{Platform: "rails", Background: "#e03e2f", Foreground: "#fff"},
	{Platform: "javascript-angular", Background: "#e03e2f", Foreground: "#fff"},
	{Platform: "java", Background: "#ec5e44"},
	{Platform: "php", Background: "#6c5fc7"},
	{Platform: "node", Background: "#90c541"},
	{Platform: "app-engine", Background: "#ec5e44"},
	{Platform: "csharp", Background: "#638cd7"},
	{Platform: "go", Background: "#fff", Foreground: "#493e54"},
	{Platform: "elixir", Background: "#4e3fb4"},
}

var glyphTable = []GlyphOverride{
	{
		Platforms: []string{
			"python-pylons",
			"python-celery",
			"python-awslambda",
			"python-pyramid",
			"python-tornado",
			"python-rq",
			"python-sanic",
		},
		Glyph: `\e602`,
	},
	{Platforms: []string{"javascript-backbone", "javascript-vue"}, Glyph: `\e600`},
	{Platforms: []string{"ruby-rack"}, Glyph: `\e604`},
	{Platforms: []string{"java-log4j", "java-log4j2", "java-logback"}, Glyph: `\e608`},
	{Platforms: []string{"php-symfony2", "php-monolog"}, Glyph: `\e601`},
	{Platforms: []string{"node-express", "node-connect", "node-koa"}, Glyph: `\e609`},
	{Platforms: []string{"go-http"}, Glyph: `\e606`},
}

var (
	colorsByPlatform = indexColors(colorTable)
	glyphByPlatform  = indexGlyphs(glyphTable)
)

var identifierPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func indexColors(entries []ColorEntry) map[string]ColorEntry {
	index := make(map[string]ColorEntry, len(entries))
	for _, entry := range entries {
		index[entry.Platform] = entry
	}
	return index
}

func indexGlyphs(overrides []GlyphOverride) map[string]string {
	index := make(map[string]string)
	for _, override := range overrides {
		for _, platform := range override.Platforms {
			index[platform] = override.Glyph
		}
	}
	return index
}

// Family returns the identifier prefix before the first hyphen.
func Family(platform string) string {
	family, _, _ := strings.Cut(platform, "-")
	return family
}

// ValidIdentifier reports whether platform has the {family} or
// {family}-{variant} shape used by the catalog.
func ValidIdentifier(platform string) bool {
	return identifierPattern.MatchString(platform)
}

// Colors returns the color table entry for an exact identifier match.
func Colors(platform string) (ColorEntry, bool) {
	entry, ok := colorsByPlatform[platform]
	return entry, ok
}

// MatchingColors returns, in table order, every color entry whose identifier
// is one of classes. Later entries take precedence when applied.
func MatchingColors(classes []string) []ColorEntry {
	set := make(map[string]struct{}, len(classes))
	for _, class := range classes {
		set[class] = struct{}{}
	}
	var matches []ColorEntry
	for _, entry := range colorTable {
		if _, ok := set[entry.Platform]; ok {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Glyph returns the overriding glyph escape for platform, if any.
func Glyph(platform string) (string, bool) {
	glyph, ok := glyphByPlatform[platform]
	return glyph, ok
}

// ColorCatalog returns a copy of the color table in declaration order.
func ColorCatalog() []ColorEntry {
	result := make([]ColorEntry, len(colorTable))
	copy(result, colorTable)
	return result
}

// GlyphCatalog returns a copy of the glyph override table in declaration order.
func GlyphCatalog() []GlyphOverride {
	result := make([]GlyphOverride, 0, len(glyphTable))
	for _, override := range glyphTable {
		platforms := make([]string, len(override.Platforms))
		copy(platforms, override.Platforms)
		result = append(result, GlyphOverride{Platforms: platforms, Glyph: override.Glyph})
	}
	return result
}

// Platforms returns every identifier known to either table, sorted.
func Platforms() []string {
	seen := make(map[string]struct{}, len(colorsByPlatform)+len(glyphByPlatform))
	for platform := range colorsByPlatform {
		seen[platform] = struct{}{}
	}
	for platform := range glyphByPlatform {
		seen[platform] = struct{}{}
	}
	result := make([]string, 0, len(seen))
	for platform := range seen {
		result = append(result, platform)
	}
	sort.Strings(result)
	return result
}
