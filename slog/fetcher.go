// Package slog provides logging decorators for pipeline collaborators.
package slog

import (
	"context"
	"log/slog"
	"time"

	"rmguide"
)

// Ensure Fetcher implements rmguide.Fetcher at compile time.
var _ rmguide.Fetcher = (*Fetcher)(nil)

// Fetcher wraps an rmguide.Fetcher with structured request logging.
type Fetcher struct {
	next   rmguide.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a logging Fetcher decorator.
func NewFetcher(next rmguide.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Debug("fetched",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}
