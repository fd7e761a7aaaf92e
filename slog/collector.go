package slog

import (
	"context"
	"log/slog"
	"time"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
)

// Ensure LoggingCollector implements stylesnatcher.Collector.
var _ stylesnatcher.Collector = (*LoggingCollector)(nil)

// LoggingCollector wraps a Collector with collection logging.
type LoggingCollector struct {
	next   stylesnatcher.Collector
	logger *slog.Logger
}

// NewLoggingCollector creates a new LoggingCollector.
func NewLoggingCollector(next stylesnatcher.Collector, logger *slog.Logger) *LoggingCollector {
	return &LoggingCollector{next: next, logger: logger}
}

// Collect delegates to the wrapped collector and logs the outcome.
func (c *LoggingCollector) Collect(ctx context.Context, pageURL string) (string, error) {
	begin := time.Now()

	text, err := c.next.Collect(ctx, pageURL)
	if err != nil {
		c.logger.Error("collect", "url", pageURL, "err", err.Error(), "duration", time.Since(begin))
		return "", err
	}

	c.logger.Info("collect", "url", pageURL, "bytes", len(text), "duration", time.Since(begin))
	return text, nil
}
