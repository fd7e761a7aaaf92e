package stylesnatcher

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxPaletteColors is the maximum number of colors returned by ExtractColors.
const MaxPaletteColors = 7

// DefaultColors returns the fallback palette used when no qualifying color
// is found in the input text.
func DefaultColors() []string {
	return []string{"#2563eb", "#0891b2", "#059669"}
}

var (
	// Matches a # followed by a run of hex digits. Runs are length-checked
	// afterwards so that only exactly-3 and exactly-6 digit literals count.
	hexColorRe = regexp.MustCompile(`#[0-9a-fA-F]+`)

	// Functional rgb()/rgba() with integer channels. Channels are lexically
	// limited to three digits; range validation happens after parsing.
	rgbColorRe = regexp.MustCompile(`rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[0-9.]+\s*)?\)`)

	// Functional hsl()/hsla() with a degree hue and percent saturation and
	// lightness. All three may be fractional.
	hslColorRe = regexp.MustCompile(`hsla?\(\s*([0-9.]+)\s*,\s*([0-9.]+)%\s*,\s*([0-9.]+)%\s*(?:,\s*[0-9.]+\s*)?\)`)
)

// colorDenylist holds near-white, near-black, and transparent-equivalent
// values excluded from palettes. The short forms and the "transparent"
// entry can never match a canonical #rrggbb value; they are kept for
// compatibility with the historical filter list.
var colorDenylist = map[string]bool{
	"#ffffff":      true,
	"#fff":         true,
	"#000000":      true,
	"#000":         true,
	"#transparent": true,
	"#fefefe":      true,
	"#010101":      true,
}

// ExtractColors scans text for color literals in hex, rgb()/rgba(), and
// hsl()/hsla() notation and returns up to MaxPaletteColors canonical
// #rrggbb values ordered by descending frequency. Literals in different
// notations that resolve to the same canonical value are counted together.
// Ties keep the order in which values were first encountered (hex matches
// first, then rgb, then hsl). Near-white and near-black values are
// filtered out. When nothing qualifies the fixed default palette is
// returned, so the result is never empty.
func ExtractColors(text string) []string {
	counter := newOrderedCounter()

	for _, match := range hexColorRe.FindAllString(text, -1) {
		digits := match[1:]
		if len(digits) != 3 && len(digits) != 6 {
			continue
		}
		counter.add(normalizeHex(digits))
	}

	for _, match := range rgbColorRe.FindAllStringSubmatch(text, -1) {
		if hex, ok := rgbToHex(match[1], match[2], match[3]); ok {
			counter.add(hex)
		}
	}

	for _, match := range hslColorRe.FindAllStringSubmatch(text, -1) {
		if hex, ok := hslToHex(match[1], match[2], match[3]); ok {
			counter.add(hex)
		}
	}

	var colors []string
	for _, hex := range counter.ranked() {
		if colorDenylist[strings.ToLower(hex)] {
			continue
		}
		colors = append(colors, hex)
		if len(colors) == MaxPaletteColors {
			break
		}
	}

	if len(colors) == 0 {
		return DefaultColors()
	}

	return colors
}

// normalizeHex converts a 3- or 6-digit hex run to canonical lowercase
// #rrggbb form. 3-digit forms expand by duplicating each digit.
func normalizeHex(digits string) string {
	digits = strings.ToLower(digits)

	if len(digits) == 3 {
		var sb strings.Builder
		sb.WriteByte('#')
		for i := 0; i < 3; i++ {
			sb.WriteByte(digits[i])
			sb.WriteByte(digits[i])
		}
		return sb.String()
	}

	return "#" + digits
}

// rgbToHex converts three decimal channel strings to canonical form.
// Returns false if any channel falls outside [0,255].
func rgbToHex(rs, gs, bs string) (string, bool) {
	r, err := strconv.Atoi(rs)
	if err != nil || r > 255 {
		return "", false
	}
	g, err := strconv.Atoi(gs)
	if err != nil || g > 255 {
		return "", false
	}
	b, err := strconv.Atoi(bs)
	if err != nil || b > 255 {
		return "", false
	}

	return fmt.Sprintf("#%02x%02x%02x", r, g, b), true
}

// hslToHex converts hue/saturation/lightness strings to canonical form.
// Hue is in degrees, saturation and lightness in percent; all three may be
// fractional. Returns false if any component is out of range.
func hslToHex(hs, ss, ls string) (string, bool) {
	h, err := strconv.ParseFloat(hs, 64)
	if err != nil || h > 360 {
		return "", false
	}
	s, err := strconv.ParseFloat(ss, 64)
	if err != nil || s > 100 {
		return "", false
	}
	l, err := strconv.ParseFloat(ls, 64)
	if err != nil || l > 100 {
		return "", false
	}

	r, g, b := colorful.Hsl(h, s/100, l/100).RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), true
}
