// Package goquery provides a CSS-selector based implementation of
// litcontest.RecordExtractor for the listing site's server-rendered markup.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	litcontest "github.com/kytalli/lit-contest"
)

// Selectors for the listing's Drupal views markup. Each grant entry is a
// views-row; field text lives in per-field wrapper divs.
const (
	rowSelector       = "div.views-row"
	issuerSelector    = "div.views-field-field-award-issuer h2"
	titleSelector     = "div.views-field-title h2"
	cashPrizeSelector = "div.views-field-field-cash-prize span.field-content"
	entryFeeSelector  = "div.views-field-field-entry-amount-int span.field-content"
	deadlineSelector  = "div.views-field-field-deadline span.field-content"
	genresSelector    = "div.views-field-taxonomy-vocabulary-3 span.field-content"
	bodySelector      = "div.views-field-body div.field-content"
	moreLinkSelector  = "a.views-more-link"
	extraInfoSelector = "div.views-field-field-extra-info span.field-content"
)

// Compile-time interface verification.
var _ litcontest.RecordExtractor = (*Extractor)(nil)

// Extractor extracts grant field-sets from listing pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns one RawRecord per grant entry found in the HTML, in
// document order. A field whose element is missing from a row is absent
// from that record's map; the crawl layer reports the omission.
func (e *Extractor) Extract(html string) ([]litcontest.RawRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, litcontest.Errorf(litcontest.EINVALID, "failed to parse HTML: %v", err)
	}

	var records []litcontest.RawRecord
	doc.Find(rowSelector).Each(func(_ int, row *goquery.Selection) {
		record := litcontest.RawRecord{}

		setText(record, litcontest.FieldIssuer, row.Find(issuerSelector))
		setText(record, litcontest.FieldTitle, row.Find(titleSelector))
		setText(record, litcontest.FieldCashPrize, row.Find(cashPrizeSelector))
		setText(record, litcontest.FieldEntryFee, row.Find(entryFeeSelector))
		setText(record, litcontest.FieldDeadline, row.Find(deadlineSelector))
		setText(record, litcontest.FieldGenres, row.Find(genresSelector))

		body := row.Find(bodySelector)
		setText(record, litcontest.FieldDescription, body.Find("p"))
		if href, ok := body.Find(moreLinkSelector).First().Attr("href"); ok {
			record[litcontest.FieldReadMoreLink] = strings.TrimSpace(href)
		}

		setText(record, litcontest.FieldExtraInfo, row.Find(extraInfoSelector))

		records = append(records, record)
	})

	return records, nil
}

// setText stores the trimmed text of the first matched element, leaving the
// field absent when the selector matches nothing.
func setText(record litcontest.RawRecord, field string, sel *goquery.Selection) {
	if sel.Length() == 0 {
		return
	}
	record[field] = strings.TrimSpace(sel.First().Text())
}
