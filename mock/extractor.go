package mock

import litcontest "github.com/kytalli/lit-contest"

var _ litcontest.RecordExtractor = (*RecordExtractor)(nil)

// RecordExtractor is a mock implementation of litcontest.RecordExtractor.
type RecordExtractor struct {
	ExtractFn func(html string) ([]litcontest.RawRecord, error)
}

func (e *RecordExtractor) Extract(html string) ([]litcontest.RawRecord, error) {
	return e.ExtractFn(html)
}
