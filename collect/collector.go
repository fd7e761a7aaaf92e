// Package collect gathers the complete style text for a page: it fetches
// the page HTML, scrapes its style sources, fetches linked stylesheet
// bodies concurrently, and concatenates everything into a single blob for
// the extraction pipelines.
package collect

import (
	"context"
	"net/url"
	"strings"
	"time"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of concurrent stylesheet
// fetches.
const DefaultConcurrency = 3

// Ensure Collector implements stylesnatcher.Collector at compile time.
var _ stylesnatcher.Collector = (*Collector)(nil)

// Collector assembles the style text of a page. The page itself is
// retrieved through PageFetcher (which may be a browser-backed fetcher for
// JavaScript-heavy sites); linked stylesheets are retrieved through
// SheetFetcher with retry and optional per-domain rate limiting.
type Collector struct {
	PageFetcher  stylesnatcher.Fetcher
	SheetFetcher stylesnatcher.Fetcher
	Scraper      stylesnatcher.StyleScraper

	// RateLimiter, if set, throttles stylesheet fetches per domain.
	RateLimiter stylesnatcher.SheetLimiter

	// Concurrency limits concurrent stylesheet fetches.
	// Defaults to DefaultConcurrency when zero or negative.
	Concurrency int

	// RetryDelays overrides the backoff schedule for stylesheet fetches.
	// Defaults to DefaultRetryDelays when nil.
	RetryDelays []time.Duration

	// OnSheetError, if set, is called for each stylesheet that could not
	// be fetched after retries. Failed sheets are skipped, not fatal.
	OnSheetError func(sheetURL string, err error)
}

// Collect fetches the page, resolves its style sources, and returns the
// concatenated style text: inline style blocks first (document order),
// then linked sheet bodies (link order, regardless of fetch completion
// order), then element style attributes.
func (c *Collector) Collect(ctx context.Context, pageURL string) (string, error) {
	html, err := c.PageFetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	sources, err := c.Scraper.Scrape(html, pageURL)
	if err != nil {
		return "", err
	}

	bodies := c.fetchSheets(ctx, sources.SheetURLs)

	var sb strings.Builder
	appendBlock := func(text string) {
		if text == "" {
			return
		}
		sb.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			sb.WriteString("\n")
		}
	}

	for _, block := range sources.InlineBlocks {
		appendBlock(block)
	}
	for _, body := range bodies {
		appendBlock(body)
	}
	for _, attr := range sources.AttrStyles {
		appendBlock(attr)
	}

	return sb.String(), nil
}

// fetchSheets retrieves stylesheet bodies concurrently. The result slice
// is positional, so concatenation order matches link order. Failed
// fetches leave an empty slot.
func (c *Collector) fetchSheets(ctx context.Context, sheetURLs []string) []string {
	if len(sheetURLs) == 0 {
		return nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	bodies := make([]string, len(sheetURLs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, sheetURL := range sheetURLs {
		i, sheetURL := i, sheetURL
		g.Go(func() error {
			if c.RateLimiter != nil {
				if err := c.RateLimiter.Wait(gctx, domainOf(sheetURL)); err != nil {
					return nil
				}
			}

			body, err := FetchWithRetry(gctx, sheetURL, c.SheetFetcher.Fetch, delays)
			if err != nil {
				if c.OnSheetError != nil {
					c.OnSheetError(sheetURL, err)
				}
				return nil
			}

			bodies[i] = body
			return nil
		})
	}
	_ = g.Wait()

	return bodies
}

// domainOf extracts the host for rate limiting. Unparseable URLs share a
// single bucket.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
