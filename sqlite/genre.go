package sqlite

import (
	"context"
	"database/sql"

	litcontest "github.com/kytalli/lit-contest"
)

// Compile-time interface verification.
var _ litcontest.GenreService = (*GenreService)(nil)

// GenreService implements litcontest.GenreService using SQLite.
// It owns the genres table and the grant_genre association table.
type GenreService struct {
	db *DB
}

// NewGenreService creates a new GenreService.
func NewGenreService(db *DB) *GenreService {
	return &GenreService{db: db}
}

// EnsureGenre idempotently registers a genre name.
func (s *GenreService) EnsureGenre(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO genres (name) VALUES (?)
	`, name)
	return err
}

// FindGenreID returns the surrogate ID for a genre name.
func (s *GenreService) FindGenreID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM genres WHERE name = ?
	`, name).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, litcontest.Errorf(litcontest.ENOTFOUND, "genre %q not found", name)
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}

// LinkGrantGenre idempotently associates a grant with a genre.
func (s *GenreService) LinkGrantGenre(ctx context.Context, grantID, genreID int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO grant_genre (grant_id, genre_id) VALUES (?, ?)
	`, grantID, genreID)
	return err
}

// GenresForGrant returns all genre names linked to a grant.
func (s *GenreService) GenresForGrant(ctx context.Context, grantID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.name FROM genres g
		JOIN grant_genre gg ON g.id = gg.genre_id
		WHERE gg.grant_id = ?
		ORDER BY g.name ASC
	`, grantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// FindGenres returns the full vocabulary ordered by name.
func (s *GenreService) FindGenres(ctx context.Context) ([]*litcontest.Genre, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name FROM genres ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []*litcontest.Genre
	for rows.Next() {
		var genre litcontest.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, err
		}
		genres = append(genres, &genre)
	}

	return genres, rows.Err()
}
