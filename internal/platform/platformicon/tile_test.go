package platformicon

import (
	"reflect"
	"slices"
	"testing"
)

func TestResolveClassesForKnownPlatforms(t *testing.T) {
	for _, platform := range Platforms() {
		t.Run(platform, func(t *testing.T) {
			t.Parallel()
			tile := Resolve(Props{Platform: platform})
			for _, want := range []string{BaseClass, platform, Family(platform), BaseClass + "-" + platform} {
				if !slices.Contains(tile.Classes, want) {
					t.Fatalf("classes = %v, missing %q", tile.Classes, want)
				}
			}
		})
	}
}

func TestResolveClassOrder(t *testing.T) {
	tile := Resolve(Props{Platform: "javascript-react", ClassName: "onboarding-tile  selected"})
	want := []string{
		"onboarding-tile",
		"selected",
		"platformicon",
		"platformicon-javascript-react",
		"javascript",
		"javascript-react",
	}
	if !reflect.DeepEqual(tile.Classes, want) {
		t.Fatalf("classes = %v, want %v", tile.Classes, want)
	}
}

func TestResolveDropsDuplicateFamilyClass(t *testing.T) {
	tile := Resolve(Props{Platform: "python"})
	want := []string{"platformicon", "platformicon-python", "python"}
	if !reflect.DeepEqual(tile.Classes, want) {
		t.Fatalf("classes = %v, want %v", tile.Classes, want)
	}
}

func TestResolveColors(t *testing.T) {
	tests := []struct {
		name     string
		props    Props
		bg       string
		fg       string
		override bool
	}{
		{name: "both colors", props: Props{Platform: "javascript-react"}, bg: "#2d2d2d", fg: "#00d8ff", override: true},
		{name: "background only", props: Props{Platform: "python"}, bg: "#3060b8", fg: DefaultForeground, override: true},
		{name: "light background", props: Props{Platform: "go"}, bg: "#fff", fg: "#493e54", override: true},
		{name: "mono tone", props: Props{Platform: "javascript-react", MonoTone: true}},
		{name: "unknown", props: Props{Platform: "foo-bar"}, bg: DefaultBackground, fg: DefaultForeground},
		{name: "unknown mono tone", props: Props{Platform: "foo-bar", MonoTone: true}},
		{name: "variant inherits family", props: Props{Platform: "python-flask"}, bg: "#3060b8", fg: DefaultForeground, override: true},
		{name: "go-http uses go colors", props: Props{Platform: "go-http"}, bg: "#fff", fg: "#493e54", override: true},
		{name: "python-celery uses python background", props: Props{Platform: "python-celery"}, bg: "#3060b8", fg: DefaultForeground, override: true},
		{name: "javascript-vue uses javascript colors", props: Props{Platform: "javascript-vue"}, bg: "#ecd744", fg: "#111", override: true},
		{name: "ruby-rack uses ruby colors", props: Props{Platform: "ruby-rack"}, bg: "#e03e2f", fg: "#fff", override: true},
		{name: "later entry wins over family", props: Props{Platform: "python-django"}, bg: "#57be8c", fg: DefaultForeground, override: true},
		{name: "variant mono tone", props: Props{Platform: "go-http", MonoTone: true}},
		{name: "caller class matches entry", props: Props{Platform: "foo-bar", ClassName: "python"}, bg: "#3060b8", fg: DefaultForeground, override: true},
		{name: "caller class before later entry", props: Props{Platform: "javascript-react", ClassName: "javascript"}, bg: "#2d2d2d", fg: "#00d8ff", override: true},
		{name: "later caller class wins", props: Props{Platform: "javascript", ClassName: "rails"}, bg: "#e03e2f", fg: "#fff", override: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tile := Resolve(tt.props)
			if tile.Background != tt.bg || tile.Foreground != tt.fg {
				t.Fatalf("colors = (%q, %q), want (%q, %q)", tile.Background, tile.Foreground, tt.bg, tt.fg)
			}
			if tile.ColorOverride != tt.override {
				t.Fatalf("ColorOverride = %t, want %t", tile.ColorOverride, tt.override)
			}
		})
	}
}

func TestResolveGlyphOverrides(t *testing.T) {
	tests := map[string]string{
		"python-celery":  `\e602`,
		"python-sanic":   `\e602`,
		"javascript-vue": `\e600`,
		"ruby-rack":      `\e604`,
		"java-log4j2":    `\e608`,
		"php-monolog":    `\e601`,
		"node-koa":       `\e609`,
		"go-http":        `\e606`,
		"python":         "",
		"foo-bar":        "",
	}
	for platform, want := range tests {
		if got := Resolve(Props{Platform: platform}).Glyph; got != want {
			t.Errorf("Resolve(%q).Glyph = %q, want %q", platform, got, want)
		}
	}
}

func TestResolveGlyphIgnoresMonoTone(t *testing.T) {
	tile := Resolve(Props{Platform: "python-celery", MonoTone: true})
	if tile.Glyph != `\e602` {
		t.Fatalf("Glyph = %q, want %q", tile.Glyph, `\e602`)
	}
	r, ok := tile.GlyphRune()
	if !ok || r != '\ue602' {
		t.Fatalf("GlyphRune() = (%U, %t), want (U+E602, true)", r, ok)
	}
}

func TestResolveUnknownPlatform(t *testing.T) {
	tile := Resolve(Props{Platform: "foo-bar"})
	want := []string{"platformicon", "platformicon-foo-bar", "foo", "foo-bar"}
	if !reflect.DeepEqual(tile.Classes, want) {
		t.Fatalf("classes = %v, want %v", tile.Classes, want)
	}
	if tile.ColorOverride {
		t.Fatal("unexpected color override for unknown platform")
	}
	if tile.Glyph != "" {
		t.Fatalf("Glyph = %q, want empty", tile.Glyph)
	}
	if _, ok := tile.GlyphRune(); ok {
		t.Fatal("GlyphRune() ok for default glyph")
	}
}

func TestResolveBlankPlatform(t *testing.T) {
	tile := Resolve(Props{Platform: "   ", ClassName: "extra"})
	want := []string{"extra", "platformicon"}
	if !reflect.DeepEqual(tile.Classes, want) {
		t.Fatalf("classes = %v, want %v", tile.Classes, want)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	for _, mono := range []bool{false, true} {
		for _, platform := range []string{"javascript-react", "python-celery", "foo-bar"} {
			first := Resolve(Props{Platform: platform, MonoTone: mono})
			second := Resolve(Props{Platform: platform, MonoTone: mono})
			if !reflect.DeepEqual(first, second) {
				t.Fatalf("Resolve(%q, mono=%t) not idempotent: %+v vs %+v", platform, mono, first, second)
			}
		}
	}
}

func TestTileStyle(t *testing.T) {
	if got := Resolve(Props{Platform: "javascript-react"}).Style(); got != "background: #2d2d2d; color: #00d8ff;" {
		t.Fatalf("Style() = %q", got)
	}
	if got := (Tile{Background: "#3060b8"}).Style(); got != "background: #3060b8;" {
		t.Fatalf("background only Style() = %q", got)
	}
	if got := Resolve(Props{Platform: "javascript-react", MonoTone: true}).Style(); got != "" {
		t.Fatalf("mono Style() = %q, want empty", got)
	}
}

func TestGlyphRuneRejectsMalformedEscapes(t *testing.T) {
	for _, glyph := range []string{"", "e602", `\`, `\zz`} {
		if _, ok := GlyphRune(glyph); ok {
			t.Errorf("GlyphRune(%q) ok, want false", glyph)
		}
	}
}
