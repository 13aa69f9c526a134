package litcontest

import (
	"context"
	"strings"
)

// Grant represents a single grant or contest opportunity extracted from the
// listing site. A Grant is a value record: once canonicalized it is never
// mutated, only inserted or skipped.
//
// Grants are identified by the (Issuer, Title, Deadline) natural key; no two
// stored grants share that triple. Monetary and date fields are retained as
// free-form text exactly as published on the listing.
type Grant struct {
	ID        int64  `json:"id"`
	Issuer    string `json:"issuer"`
	Title     string `json:"title"`
	CashPrize string `json:"cashPrize"`
	EntryFee  string `json:"entryFee"`
	Deadline  string `json:"deadline"`

	// Genres holds the raw comma-separated genre text as published,
	// retained for display. The normalized form lives in the genre
	// vocabulary tables; see GenreNames.
	Genres string `json:"genres"`

	Description  string `json:"description"`
	ReadMoreLink string `json:"readMoreLink"`

	// ExtraInfo is present only for some listings (e.g. sponsor notes).
	ExtraInfo *string `json:"extraInfo,omitempty"`
}

// Validate returns an error if the grant is missing required fields.
func (g *Grant) Validate() error {
	if g.Issuer == "" {
		return Errorf(EINVALID, "grant issuer required")
	}
	if g.Title == "" {
		return Errorf(EINVALID, "grant title required")
	}
	if g.Deadline == "" {
		return Errorf(EINVALID, "grant deadline required")
	}
	return nil
}

// GenreNames splits the raw Genres text into normalized genre names: split
// on commas, trim whitespace, drop empties, collapse duplicates preserving
// first-occurrence order.
func (g *Grant) GenreNames() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(g.Genres, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// GrantWithGenres pairs a stored grant with its resolved genre names.
type GrantWithGenres struct {
	Grant  *Grant   `json:"grant"`
	Genres []string `json:"genres"`
}

// GrantService represents a service for managing stored grants.
type GrantService interface {
	// CreateGrant persists a canonical grant and assigns its ID.
	// Returns ECONFLICT if a grant with the same (issuer, title,
	// deadline) natural key already exists; the store is left unchanged.
	// On success the grant's genre names are registered in the
	// vocabulary and linked to the new grant.
	CreateGrant(ctx context.Context, grant *Grant) error

	// FindGrantByID retrieves a grant and its genres by ID.
	// Returns ENOTFOUND if the grant does not exist.
	FindGrantByID(ctx context.Context, id int64) (*GrantWithGenres, error)

	// FindGrants retrieves grants matching the filter, in insertion
	// order. A zero filter returns every stored grant.
	FindGrants(ctx context.Context, filter GrantFilter) ([]*GrantWithGenres, error)
}

// GrantFilter represents a filter for FindGrants.
type GrantFilter struct {
	ID     *int64  `json:"id"`
	Issuer *string `json:"issuer"`

	// Genre restricts results to grants linked to the named genre.
	Genre *string `json:"genre"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
