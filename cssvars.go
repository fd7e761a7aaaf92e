package stylesnatcher

import (
	"fmt"
	"strings"
)

// Extract runs both extraction pipelines over the same style text.
func Extract(text string) (colors, fonts []string) {
	return ExtractColors(text), ExtractFonts(text)
}

// GenerateCSSVariables renders ranked colors and fonts as a :root block of
// CSS custom properties. The first three colors become the primary,
// secondary, and accent variables; later colors are numbered by position.
// The first two fonts become primary and secondary; later fonts are
// numbered. Every font value gets a sans-serif fallback appended. The
// output depends only on the inputs and their order.
func GenerateCSSVariables(colors, fonts []string) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")

	if len(colors) > 0 {
		sb.WriteString("  /* Colors */\n")
		for i, color := range colors {
			fmt.Fprintf(&sb, "  --%s-color: %s;\n", colorVarName(i), color)
		}
	}

	if len(fonts) > 0 {
		if len(colors) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  /* Fonts */\n")
		for i, font := range fonts {
			fmt.Fprintf(&sb, "  --font-%s: %s, sans-serif;\n", fontVarName(i), font)
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func colorVarName(index int) string {
	switch index {
	case 0:
		return "primary"
	case 1:
		return "secondary"
	case 2:
		return "accent"
	default:
		return fmt.Sprintf("color-%d", index+1)
	}
}

func fontVarName(index int) string {
	switch index {
	case 0:
		return "primary"
	case 1:
		return "secondary"
	default:
		return fmt.Sprintf("%d", index+1)
	}
}
