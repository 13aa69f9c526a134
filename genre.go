package litcontest

import "context"

// Genre represents a normalized genre tag in the controlled vocabulary.
// Names are unique, case-sensitive, and stored trimmed. The surrogate ID is
// stable once assigned.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GenreService represents the vocabulary store: it owns genre identity and
// the grant↔genre association table. Grant storage depends on this service
// for linkage; the reverse dependency does not exist.
type GenreService interface {
	// EnsureGenre idempotently registers a genre name.
	// Re-adding an existing name is a no-op, not an error.
	EnsureGenre(ctx context.Context, name string) error

	// FindGenreID returns the surrogate ID for a genre name.
	// Returns ENOTFOUND if the name was never registered.
	FindGenreID(ctx context.Context, name string) (int64, error)

	// LinkGrantGenre idempotently associates a grant with a genre.
	// Linking an already-linked pair is a no-op. Both IDs must reference
	// existing rows; callers register the genre before linking.
	LinkGrantGenre(ctx context.Context, grantID, genreID int64) error

	// GenresForGrant returns all genre names linked to a grant.
	GenresForGrant(ctx context.Context, grantID int64) ([]string, error)

	// FindGenres returns the full vocabulary ordered by name.
	FindGenres(ctx context.Context) ([]*Genre, error)
}
