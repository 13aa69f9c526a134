// Package crawl provides the grant ingest orchestration: it drives
// page-by-page iteration over the listing, canonicalizes extracted records,
// and feeds them to grant storage, deciding when the crawl is done.
package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"
	litcontest "github.com/kytalli/lit-contest"
)

// DefaultMaxPages bounds a crawl whose fetcher never signals termination.
// The listing is expected to end with an empty page long before this; the
// bound only guards against a pathological server response.
const DefaultMaxPages = 1000

// Crawler orchestrates the ingest of grant listings.
// Crawling is strictly sequential: one page at a time, one record at a
// time. Termination is driven by the fetcher and extractor — an empty page
// is the normal end of the result set, a failed fetch stops the crawl
// without discarding what was already persisted — with MaxPages as the
// final safety bound.
type Crawler struct {
	Fetcher   litcontest.PageFetcher
	Extractor litcontest.RecordExtractor
	Grants    litcontest.GrantService

	// BaseOrigin is prefixed onto relative read-more links,
	// e.g. "https://www.pw.org".
	BaseOrigin string

	// MaxPages caps the number of pages fetched in one run.
	// Zero means DefaultMaxPages.
	MaxPages int
}

// Result holds the outcome of a crawl run.
type Result struct {
	// RunID identifies this run in logs and summaries.
	RunID string

	Pages      int // pages that yielded at least one record
	Extracted  int // raw records extracted
	Inserted   int // grants persisted
	Duplicates int // records skipped on natural-key collision
	Malformed  int // records skipped for missing required fields

	// FetchErr is the failure that terminated the crawl, nil when the
	// crawl ended normally on an empty page.
	FetchErr error

	// HitPageBound reports that MaxPages stopped the crawl before the
	// fetcher or extractor signaled termination.
	HitPageBound bool
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressPageExtracted ProgressType = iota
	ProgressRecordInserted
	ProgressRecordDuplicate
	ProgressRecordMalformed
	ProgressFetchFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl run.
type ProgressEvent struct {
	Type    ProgressType
	Page    int
	Records int    // records on the page, for ProgressPageExtracted
	Title   string // partial record context, when known
	Err     error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run executes the crawl from page 0 until termination. The progress
// callback, if provided, receives events as the crawl proceeds.
//
// Per-record failures (malformed field-sets, duplicate keys) are counted
// and reported, never fatal. Only a storage fault other than a duplicate
// key aborts the run with an error; the returned Result still reflects
// everything persisted before the fault.
func (c *Crawler) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	result := &Result{RunID: uuid.New().String()}

	for page := 0; ; page++ {
		if page >= maxPages {
			result.HitPageBound = true
			break
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		html, err := c.Fetcher.FetchPage(ctx, page)
		if err != nil {
			result.FetchErr = err
			c.emit(progress, ProgressEvent{Type: ProgressFetchFailed, Page: page, Err: err})
			break
		}

		records, err := c.Extractor.Extract(html)
		if err != nil {
			// An unparseable page document terminates the crawl the
			// same way a failed fetch does.
			result.FetchErr = err
			c.emit(progress, ProgressEvent{Type: ProgressFetchFailed, Page: page, Err: err})
			break
		}

		// An empty page is the expected end of the result set.
		if len(records) == 0 {
			break
		}

		result.Pages++
		result.Extracted += len(records)
		c.emit(progress, ProgressEvent{Type: ProgressPageExtracted, Page: page, Records: len(records)})

		for _, raw := range records {
			grant, err := Canonicalize(raw, c.BaseOrigin)
			if err != nil {
				result.Malformed++
				c.emit(progress, ProgressEvent{
					Type:  ProgressRecordMalformed,
					Page:  page,
					Title: raw[litcontest.FieldTitle],
					Err:   err,
				})
				continue
			}

			if err := c.Grants.CreateGrant(ctx, grant); err != nil {
				if litcontest.ErrorCode(err) == litcontest.ECONFLICT {
					result.Duplicates++
					c.emit(progress, ProgressEvent{
						Type:  ProgressRecordDuplicate,
						Page:  page,
						Title: grant.Title,
						Err:   err,
					})
					continue
				}
				// Storage fault: fatal, propagate.
				return result, err
			}

			result.Inserted++
			c.emit(progress, ProgressEvent{
				Type:  ProgressRecordInserted,
				Page:  page,
				Title: grant.Title,
			})
		}
	}

	c.emit(progress, ProgressEvent{Type: ProgressFinished})
	return result, nil
}

func (c *Crawler) emit(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

// requiredFields must be present on a raw record for it to canonicalize.
// The read-more link and extra info are optional per record.
var requiredFields = []string{
	litcontest.FieldIssuer,
	litcontest.FieldTitle,
	litcontest.FieldCashPrize,
	litcontest.FieldEntryFee,
	litcontest.FieldDeadline,
	litcontest.FieldGenres,
	litcontest.FieldDescription,
}

// Canonicalize builds a canonical Grant from a raw extracted field-set.
// Every required field must be present; the read-more link is resolved
// against baseOrigin when relative. Returns EINVALID naming the first
// missing field otherwise.
func Canonicalize(raw litcontest.RawRecord, baseOrigin string) (*litcontest.Grant, error) {
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return nil, litcontest.Errorf(litcontest.EINVALID, "record missing required field %q", field)
		}
	}

	grant := &litcontest.Grant{
		Issuer:       raw[litcontest.FieldIssuer],
		Title:        raw[litcontest.FieldTitle],
		CashPrize:    raw[litcontest.FieldCashPrize],
		EntryFee:     raw[litcontest.FieldEntryFee],
		Deadline:     raw[litcontest.FieldDeadline],
		Genres:       raw[litcontest.FieldGenres],
		Description:  raw[litcontest.FieldDescription],
		ReadMoreLink: normalizeLink(raw[litcontest.FieldReadMoreLink], baseOrigin),
	}

	if extra, ok := raw[litcontest.FieldExtraInfo]; ok {
		grant.ExtraInfo = &extra
	}

	if err := grant.Validate(); err != nil {
		return nil, err
	}

	return grant, nil
}

// normalizeLink resolves a read-more link against the site's base origin.
// Absolute links pass through unchanged; relative links get the origin
// prefixed. An empty link stays empty.
func normalizeLink(link, baseOrigin string) string {
	if link == "" {
		return ""
	}
	if u, err := url.Parse(link); err == nil && u.IsAbs() {
		return link
	}
	origin := strings.TrimRight(baseOrigin, "/")
	if !strings.HasPrefix(link, "/") {
		return origin + "/" + link
	}
	return origin + link
}
