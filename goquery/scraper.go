// Package goquery provides DOM-based discovery of style sources in HTML
// documents: inline style blocks, linked stylesheets, and element style
// attributes.
package goquery

import (
	"net/url"
	"strings"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
	"github.com/PuerkitoBio/goquery"
)

// Ensure Scraper implements stylesnatcher.StyleScraper at compile time.
var _ stylesnatcher.StyleScraper = (*Scraper)(nil)

// Scraper finds style sources in HTML using CSS selectors.
type Scraper struct{}

// NewScraper creates a new Scraper.
func NewScraper() *Scraper {
	return &Scraper{}
}

// Scrape parses HTML and returns the style sources it references, each
// group in document order. Stylesheet link targets are resolved against
// pageURL; only http and https targets are returned, and duplicates are
// dropped.
func (s *Scraper) Scrape(html string, pageURL string) (*stylesnatcher.StyleSources, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, stylesnatcher.Errorf(stylesnatcher.EINVALID, "invalid page URL %q", pageURL)
	}

	sources := &stylesnatcher.StyleSources{}

	doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		if text := sel.Text(); strings.TrimSpace(text) != "" {
			sources.InlineBlocks = append(sources.InlineBlocks, text)
		}
	})

	seen := make(map[string]bool)
	doc.Find("link[rel~='stylesheet']").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || strings.TrimSpace(href) == "" {
			return
		}

		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}

		resolved := base.ResolveReference(ref)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}

		target := resolved.String()
		if seen[target] {
			return
		}
		seen[target] = true
		sources.SheetURLs = append(sources.SheetURLs, target)
	})

	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		style, exists := sel.Attr("style")
		if !exists || strings.TrimSpace(style) == "" {
			return
		}
		sources.AttrStyles = append(sources.AttrStyles, style)
	})

	return sources, nil
}
