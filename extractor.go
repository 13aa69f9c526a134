package litcontest

// Field names used in raw extracted records.
const (
	FieldIssuer       = "issuer"
	FieldTitle        = "title"
	FieldCashPrize    = "cash_prize"
	FieldEntryFee     = "entry_fee"
	FieldDeadline     = "deadline"
	FieldGenres       = "genres"
	FieldDescription  = "description"
	FieldReadMoreLink = "read_more_link"
	FieldExtraInfo    = "extra_info"
)

// RawRecord is a loosely-structured field-set extracted from a listing row:
// a mapping from field name to text. Fields the extractor could not locate
// are simply absent; the crawl layer decides whether an absence is fatal
// for the record when it builds the canonical Grant.
type RawRecord map[string]string

// RecordExtractor locates grant entries in a listing page and extracts
// their field text. Implementations hide the structural details of the
// site's markup.
type RecordExtractor interface {
	// Extract returns one RawRecord per grant entry found in the HTML,
	// in document order. An empty result means the page holds no
	// entries, which the crawler treats as the end of the result set.
	Extract(html string) ([]RawRecord, error)
}
