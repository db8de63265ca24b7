// Package platformicons previews platform icon tiles in a terminal and
// renders the platform icon catalog.
package platformicons

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	platformcmd "github.com/louisbranch/onboarding/internal/platform/cmd"
	"github.com/louisbranch/onboarding/internal/platform/platformicon"
)

// Config holds the platformicons command configuration.
type Config struct {
	MonoTone  bool `env:"PLATFORMICONS_MONO"`
	Markdown  bool
	Platforms []string
}

// ParseConfig loads env defaults, then flags. Positional arguments select
// platforms; none selects the whole catalog.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.BoolVar(&cfg.MonoTone, "mono", cfg.MonoTone, "Render tiles without platform colors")
	fs.BoolVar(&cfg.Markdown, "markdown", false, "Print the catalog as markdown instead of tiles")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Platforms = fs.Args()
	return cfg, nil
}

// Run writes the selected output to out.
func Run(_ context.Context, cfg Config, out io.Writer) error {
	if cfg.Markdown {
		_, err := io.WriteString(out, platformicon.CatalogMarkdown())
		return err
	}
	platforms := cfg.Platforms
	if len(platforms) == 0 {
		platforms = platformicon.Platforms()
	}
	renderer := lipgloss.NewRenderer(out)
	for _, platform := range platforms {
		tile := platformicon.Resolve(platformicon.Props{Platform: platform, MonoTone: cfg.MonoTone})
		if _, err := fmt.Fprintln(out, renderTile(renderer, tile)); err != nil {
			return fmt.Errorf("write %s: %w", platform, err)
		}
	}
	return nil
}

func renderTile(renderer *lipgloss.Renderer, tile platformicon.Tile) string {
	style := renderer.NewStyle().Padding(0, 1).Bold(true)
	if tile.MonoTone {
		style = style.Faint(true)
	} else {
		style = style.
			Background(lipgloss.Color(expandHex(tile.Background))).
			Foreground(lipgloss.Color(expandHex(tile.Foreground)))
	}
	glyph := "·"
	if r, ok := tile.GlyphRune(); ok {
		glyph = string(r)
	}
	detail := tile.Family
	if tile.Glyph != "" {
		detail += " " + tile.Glyph
	}
	if !tile.ColorOverride && !tile.MonoTone {
		detail += " default colors"
	}
	return style.Render(glyph) + " " + tile.Platform + " (" + detail + ")"
}

// expandHex turns CSS shorthand colors such as "#fff" into "#ffffff".
func expandHex(color string) string {
	if len(color) != 4 || !strings.HasPrefix(color, "#") {
		return color
	}
	var b strings.Builder
	b.WriteByte('#')
	for _, c := range color[1:] {
		b.WriteRune(c)
		b.WriteRune(c)
	}
	return b.String()
}
