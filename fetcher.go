package litcontest

import "context"

// PageFetcher retrieves raw listing pages by zero-based page index.
// Implementations own transport concerns: timeouts, politeness delays, and
// request headers are fetcher configuration, not crawler configuration.
type PageFetcher interface {
	// FetchPage retrieves the listing page at the given index and
	// returns its HTML. A non-success HTTP status yields an EUNAVAILABLE
	// error whose message carries the status code and page index.
	FetchPage(ctx context.Context, page int) (html string, err error)

	// Close releases transport resources.
	// Must be called when the PageFetcher is no longer needed.
	Close() error
}
