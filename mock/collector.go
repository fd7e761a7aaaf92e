package mock

import (
	"context"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
)

var _ stylesnatcher.Collector = (*Collector)(nil)

// Collector is a mock implementation of stylesnatcher.Collector.
type Collector struct {
	CollectFn func(ctx context.Context, pageURL string) (string, error)
}

func (c *Collector) Collect(ctx context.Context, pageURL string) (string, error) {
	return c.CollectFn(ctx, pageURL)
}

var _ stylesnatcher.StyleScraper = (*StyleScraper)(nil)

// StyleScraper is a mock implementation of stylesnatcher.StyleScraper.
type StyleScraper struct {
	ScrapeFn func(html string, pageURL string) (*stylesnatcher.StyleSources, error)
}

func (s *StyleScraper) Scrape(html string, pageURL string) (*stylesnatcher.StyleSources, error) {
	return s.ScrapeFn(html, pageURL)
}

var _ stylesnatcher.SheetLimiter = (*SheetLimiter)(nil)

// SheetLimiter is a mock implementation of stylesnatcher.SheetLimiter.
type SheetLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *SheetLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
