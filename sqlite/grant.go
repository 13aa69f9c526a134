package sqlite

import (
	"context"
	"database/sql"
	"strings"

	litcontest "github.com/kytalli/lit-contest"
)

// Compile-time interface verification.
var _ litcontest.GrantService = (*GrantService)(nil)

// GrantService implements litcontest.GrantService using SQLite.
// It depends on a GenreService for vocabulary registration and linkage on
// insert; the vocabulary side never depends back on grant storage.
type GrantService struct {
	db     *DB
	genres litcontest.GenreService
}

// NewGrantService creates a new GrantService backed by db, using genres for
// vocabulary linkage on insert.
func NewGrantService(db *DB, genres litcontest.GenreService) *GrantService {
	return &GrantService{db: db, genres: genres}
}

// CreateGrant persists a canonical grant and assigns its ID.
// Returns ECONFLICT if a grant with the same natural key already exists.
// On success each of the grant's genre names is registered in the
// vocabulary and linked to the new grant; no linkage happens for a grant
// whose insert failed.
func (s *GrantService) CreateGrant(ctx context.Context, grant *litcontest.Grant) error {
	if err := grant.Validate(); err != nil {
		return err
	}

	// Detect natural-key collisions up front so they surface as
	// ECONFLICT rather than a driver constraint error. Safe under the
	// single-writer model: the connection pool is capped at one
	// connection and nothing else writes to the store.
	var existingID int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM grants WHERE issuer = ? AND title = ? AND deadline = ?
	`, grant.Issuer, grant.Title, grant.Deadline).Scan(&existingID)
	if err == nil {
		return litcontest.Errorf(litcontest.ECONFLICT,
			"grant already exists: %s by %s with deadline %s",
			grant.Title, grant.Issuer, grant.Deadline)
	}
	if err != sql.ErrNoRows {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO grants (issuer, title, cash_prize, entry_fee, deadline, genres, description, read_more_link, extra_info)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, grant.Issuer, grant.Title, grant.CashPrize, grant.EntryFee, grant.Deadline,
		grant.Genres, grant.Description, grant.ReadMoreLink, grant.ExtraInfo)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	grant.ID = id

	// Register and link each genre name. Runs after the insert committed,
	// not in the same transaction; both operations are idempotent, so a
	// re-run of the crawl never double-registers or double-links.
	for _, name := range grant.GenreNames() {
		if err := s.genres.EnsureGenre(ctx, name); err != nil {
			return err
		}
		genreID, err := s.genres.FindGenreID(ctx, name)
		if err != nil {
			return err
		}
		if err := s.genres.LinkGrantGenre(ctx, id, genreID); err != nil {
			return err
		}
	}

	return nil
}

// FindGrantByID retrieves a grant and its genres by ID.
func (s *GrantService) FindGrantByID(ctx context.Context, id int64) (*litcontest.GrantWithGenres, error) {
	var grant litcontest.Grant

	err := s.db.QueryRowContext(ctx, `
		SELECT id, issuer, title, cash_prize, entry_fee, deadline, genres, description, read_more_link, extra_info
		FROM grants
		WHERE id = ?
	`, id).Scan(&grant.ID, &grant.Issuer, &grant.Title, &grant.CashPrize, &grant.EntryFee,
		&grant.Deadline, &grant.Genres, &grant.Description, &grant.ReadMoreLink, &grant.ExtraInfo)

	if err == sql.ErrNoRows {
		return nil, litcontest.Errorf(litcontest.ENOTFOUND, "grant not found")
	}
	if err != nil {
		return nil, err
	}

	names, err := s.genres.GenresForGrant(ctx, grant.ID)
	if err != nil {
		return nil, err
	}

	return &litcontest.GrantWithGenres{Grant: &grant, Genres: names}, nil
}

// FindGrants retrieves grants matching the filter, in insertion order.
func (s *GrantService) FindGrants(ctx context.Context, filter litcontest.GrantFilter) ([]*litcontest.GrantWithGenres, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT g.id, g.issuer, g.title, g.cash_prize, g.entry_fee, g.deadline, g.genres, g.description, g.read_more_link, g.extra_info FROM grants g WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND g.id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Issuer != nil {
		query.WriteString(" AND g.issuer = ?")
		args = append(args, *filter.Issuer)
	}
	if filter.Genre != nil {
		query.WriteString(` AND g.id IN (
			SELECT gg.grant_id FROM grant_genre gg
			JOIN genres ge ON ge.id = gg.genre_id
			WHERE ge.name = ?
		)`)
		args = append(args, *filter.Genre)
	}

	query.WriteString(" ORDER BY g.id ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []*litcontest.GrantWithGenres
	for rows.Next() {
		var grant litcontest.Grant
		if err := rows.Scan(&grant.ID, &grant.Issuer, &grant.Title, &grant.CashPrize, &grant.EntryFee,
			&grant.Deadline, &grant.Genres, &grant.Description, &grant.ReadMoreLink, &grant.ExtraInfo); err != nil {
			return nil, err
		}
		grants = append(grants, &litcontest.GrantWithGenres{Grant: &grant})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Close the cursor before resolving genres: the pool is capped at a
	// single connection, so nested queries must not overlap an open rows.
	if err := rows.Close(); err != nil {
		return nil, err
	}

	for _, g := range grants {
		names, err := s.genres.GenresForGrant(ctx, g.Grant.ID)
		if err != nil {
			return nil, err
		}
		g.Genres = names
	}

	return grants, nil
}
