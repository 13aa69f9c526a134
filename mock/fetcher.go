package mock

import (
	"context"

	litcontest "github.com/kytalli/lit-contest"
)

var _ litcontest.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of litcontest.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, page int) (string, error)
	CloseFn     func() error
}

func (f *PageFetcher) FetchPage(ctx context.Context, page int) (string, error) {
	return f.FetchPageFn(ctx, page)
}

func (f *PageFetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
