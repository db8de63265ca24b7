package platformicon

import (
	"fmt"
	"strings"
)

const baseRules = `.platformicon {
	display: inline-block;
	width: 3em;
	height: 3em;
	line-height: 3em;
	border-radius: 0.25em;
	text-align: center;
	font-size: 1em;
}

.platformicon:not([style]) {
	background: var(--platformicon-mono-background, #f2f1f3);
	color: var(--platformicon-mono-foreground, #2f2936);
}
`

// Stylesheet renders the CSS carrying the base tile rules and one rule per
// glyph override group, in table order.
func Stylesheet() string {
	var builder strings.Builder
	builder.WriteString(baseRules)
	for _, override := range glyphTable {
		builder.WriteString("\n")
		for i, platform := range override.Platforms {
			if i > 0 {
				builder.WriteString(",\n")
			}
			fmt.Fprintf(&builder, ".%s.%s:before", BaseClass, platform)
		}
		fmt.Fprintf(&builder, " {\n\tcontent: '%s';\n}\n", override.Glyph)
	}
	return builder.String()
}
