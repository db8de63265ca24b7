package platformicon

import "strings"

// CatalogMarkdown renders every known platform as a markdown table.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Platform Icons\n\n")
	builder.WriteString("Generated by `go generate ./internal/platform/platformicon`.\n\n")
	builder.WriteString("| Platform | Family | Background | Foreground | Glyph |\n")
	builder.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, platform := range Platforms() {
		tile := Resolve(Props{Platform: platform})
		glyph := "default"
		if tile.Glyph != "" {
			glyph = "`" + tile.Glyph + "`"
		}
		builder.WriteString("| ")
		builder.WriteString(platform)
		builder.WriteString(" | ")
		builder.WriteString(tile.Family)
		builder.WriteString(" | ")
		builder.WriteString(tile.Background)
		builder.WriteString(" | ")
		builder.WriteString(tile.Foreground)
		builder.WriteString(" | ")
		builder.WriteString(glyph)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
