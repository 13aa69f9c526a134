package main

import (
	"fmt"
	"net/url"

	litcontest "github.com/kytalli/lit-contest"
	"github.com/kytalli/lit-contest/crawl"
	litgoquery "github.com/kytalli/lit-contest/goquery"
	lithttp "github.com/kytalli/lit-contest/http"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	base, err := url.Parse(c.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return fmt.Errorf("invalid base URL %q", c.BaseURL)
	}

	opts := []lithttp.Option{
		lithttp.WithTimeout(c.Timeout),
		lithttp.WithRateLimit(c.RPS),
	}
	if c.UserAgent != "" {
		opts = append(opts, lithttp.WithUserAgent(c.UserAgent))
	}
	fetcher := lithttp.NewFetcher(c.BaseURL, opts...)
	defer fetcher.Close()

	crawler := &crawl.Crawler{
		Fetcher:    fetcher,
		Extractor:  litgoquery.NewExtractor(),
		Grants:     deps.Grants,
		BaseOrigin: base.Scheme + "://" + base.Host,
		MaxPages:   c.MaxPages,
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressPageExtracted:
			fmt.Fprintf(deps.Stdout, "page %d: %d grants\n", event.Page, event.Records)
		case crawl.ProgressRecordMalformed:
			fmt.Fprintf(deps.Stderr, "  skip malformed record on page %d (title %q): %s\n",
				event.Page, event.Title, litcontest.ErrorMessage(event.Err))
		case crawl.ProgressFetchFailed:
			fmt.Fprintf(deps.Stderr, "fetch failed at page %d: %v\n", event.Page, event.Err)
		}
	}

	result, err := crawler.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: crawl aborted: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "run %s: fetched %d records from %d pages: %d inserted, %d duplicates skipped, %d malformed skipped\n",
		result.RunID, result.Extracted, result.Pages, result.Inserted, result.Duplicates, result.Malformed)
	if result.HitPageBound {
		fmt.Fprintf(deps.Stdout, "stopped at the --max-pages bound (%d); the listing may have more pages\n", crawler.MaxPages)
	}

	return nil
}
