package platformicon

import (
	"strconv"
	"strings"
)

const (
	// BaseClass is carried by every tile.
	BaseClass = "platformicon"
	// DefaultBackground applies to colored tiles without a table background.
	DefaultBackground = "#625471"
	// DefaultForeground applies to colored tiles without a table foreground.
	DefaultForeground = "#fff"
)

// Props are the per-render inputs of a tile.
type Props struct {
	Platform  string
	ClassName string
	MonoTone  bool
}

// Tile is the resolved presentation of one platform.
type Tile struct {
	Platform string
	Family   string
	Classes  []string
	// Background and Foreground are empty for mono tone tiles.
	Background string
	Foreground string
	// ColorOverride reports whether any color table entry was applied. The
	// entry may match the identifier, its family or a caller class.
	ColorOverride bool
	// Glyph is empty when the icon font's default glyph is used.
	Glyph    string
	MonoTone bool
}

// Resolve composes the class list, colors and glyph for props.
func Resolve(props Props) Tile {
	platform := strings.TrimSpace(props.Platform)
	tile := Tile{
		Platform: platform,
		Family:   Family(platform),
		Classes:  classList(props.ClassName, platform),
		MonoTone: props.MonoTone,
	}
	if glyph, ok := Glyph(platform); ok {
		tile.Glyph = glyph
	}
	if props.MonoTone {
		return tile
	}
	tile.Background = DefaultBackground
	tile.Foreground = DefaultForeground
	for _, entry := range MatchingColors(tile.Classes) {
		tile.ColorOverride = true
		if entry.Background != "" {
			tile.Background = entry.Background
		}
		if entry.Foreground != "" {
			tile.Foreground = entry.Foreground
		}
	}
	return tile
}

// Style returns the inline CSS declarations for the tile colors, or an empty
// string for mono tone tiles.
func (t Tile) Style() string {
	var b strings.Builder
	if t.Background != "" {
		b.WriteString("background: " + t.Background + ";")
	}
	if t.Foreground != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("color: " + t.Foreground + ";")
	}
	return b.String()
}

// GlyphRune decodes the tile glyph escape. It reports false when the tile
// uses the default glyph.
func (t Tile) GlyphRune() (rune, bool) {
	return GlyphRune(t.Glyph)
}

// GlyphRune decodes a CSS escape such as `\e602` into its rune.
func GlyphRune(glyph string) (rune, bool) {
	hex, ok := strings.CutPrefix(glyph, `\`)
	if !ok || hex == "" {
		return 0, false
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(value), true
}

func classList(className string, platform string) []string {
	classes := strings.Fields(className)
	classes = append(classes, BaseClass)
	if platform != "" {
		classes = append(classes, BaseClass+"-"+platform, Family(platform), platform)
	}
	return dedupe(classes)
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := values[:0]
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
