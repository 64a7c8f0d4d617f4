package mock

import (
	"context"

	"rmguide"
)

var _ rmguide.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of rmguide.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
