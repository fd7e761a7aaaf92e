package stylesnatcher

import (
	"regexp"
	"strings"
)

// MaxPaletteFonts is the maximum number of font families returned by
// ExtractFonts.
const MaxPaletteFonts = 5

// DefaultFonts returns the fallback font list used when no qualifying
// family name is found in the input text.
func DefaultFonts() []string {
	return []string{"Inter", "Roboto", "Arial"}
}

// Matches a font-family declaration up to the end of its value run. The
// value stops at the characters that can terminate a declaration in flat
// CSS text.
var fontFamilyRe = regexp.MustCompile(`(?i)font-family\s*:\s*([^;{}]+)`)

// genericFontKeywords are the CSS generic fallback families excluded from
// ranking. Matching is case-insensitive.
var genericFontKeywords = map[string]bool{
	"serif":      true,
	"sans-serif": true,
	"monospace":  true,
	"cursive":    true,
	"fantasy":    true,
	"system-ui":  true,
}

// fontQuoteCutset covers straight and curly quote characters that may
// surround a family name in a font stack.
const fontQuoteCutset = "\"'“”‘’"

// ExtractFonts scans text for font-family declarations and returns up to
// MaxPaletteFonts family names ordered by descending frequency. Each
// declaration's stack is split on commas, entries are trimmed and
// unquoted, and generic CSS keywords (serif, sans-serif, monospace,
// cursive, fantasy, system-ui) are discarded. Names keep their original
// casing and are counted case-sensitively, so the same family written in
// two casings ranks as two entries. Ties keep first-encountered order.
// When nothing qualifies the fixed default list is returned, so the
// result is never empty.
func ExtractFonts(text string) []string {
	counter := newOrderedCounter()

	for _, match := range fontFamilyRe.FindAllStringSubmatch(text, -1) {
		for _, name := range SplitFontStack(match[1]) {
			if genericFontKeywords[strings.ToLower(name)] {
				continue
			}
			counter.add(name)
		}
	}

	fonts := counter.ranked()
	if len(fonts) == 0 {
		return DefaultFonts()
	}
	if len(fonts) > MaxPaletteFonts {
		fonts = fonts[:MaxPaletteFonts]
	}

	return fonts
}

// SplitFontStack splits a font-family value into individual family names.
// Entries are trimmed of surrounding whitespace and quote characters;
// empty entries are dropped.
func SplitFontStack(stack string) []string {
	var names []string
	for _, entry := range strings.Split(stack, ",") {
		name := strings.TrimSpace(entry)
		name = strings.Trim(name, fontQuoteCutset)
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
