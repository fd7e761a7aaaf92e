// Package slog provides logging decorators for stylesnatcher interfaces
// using the standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
)

// Ensure LoggingFetcher implements stylesnatcher.Fetcher.
var _ stylesnatcher.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   stylesnatcher.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next stylesnatcher.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()

	content, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch", "url", url, "err", err.Error(), "duration", time.Since(begin))
		return "", err
	}

	f.logger.Info("fetch", "url", url, "bytes", len(content), "duration", time.Since(begin))
	return content, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
