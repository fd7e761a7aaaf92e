package stylesnatcher

import "context"

// StyleSources holds the raw style material scraped from a page, before
// any linked stylesheet has been fetched.
type StyleSources struct {
	// InlineBlocks are the bodies of <style> elements in document order.
	InlineBlocks []string

	// SheetURLs are stylesheet link targets resolved against the page
	// URL, in document order.
	SheetURLs []string

	// AttrStyles are the values of element style attributes in document
	// order.
	AttrStyles []string
}

// StyleScraper finds style sources in an HTML document.
type StyleScraper interface {
	// Scrape parses HTML and returns the style sources it references.
	// pageURL is used to resolve relative stylesheet links.
	Scrape(html string, pageURL string) (*StyleSources, error)
}

// Collector gathers the complete style text for a page: inline style
// blocks, linked stylesheet bodies, and element style attributes,
// concatenated into a single blob ready for extraction.
type Collector interface {
	// Collect fetches the page, resolves its style sources, and returns
	// the concatenated style text. Stylesheets that cannot be fetched are
	// skipped rather than failing the collection.
	Collect(ctx context.Context, pageURL string) (string, error)
}

// SheetLimiter rate-limits stylesheet fetches per domain.
type SheetLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}
