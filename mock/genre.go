package mock

import (
	"context"

	litcontest "github.com/kytalli/lit-contest"
)

var _ litcontest.GenreService = (*GenreService)(nil)

// GenreService is a mock implementation of litcontest.GenreService.
type GenreService struct {
	EnsureGenreFn    func(ctx context.Context, name string) error
	FindGenreIDFn    func(ctx context.Context, name string) (int64, error)
	LinkGrantGenreFn func(ctx context.Context, grantID, genreID int64) error
	GenresForGrantFn func(ctx context.Context, grantID int64) ([]string, error)
	FindGenresFn     func(ctx context.Context) ([]*litcontest.Genre, error)
}

func (s *GenreService) EnsureGenre(ctx context.Context, name string) error {
	return s.EnsureGenreFn(ctx, name)
}

func (s *GenreService) FindGenreID(ctx context.Context, name string) (int64, error) {
	return s.FindGenreIDFn(ctx, name)
}

func (s *GenreService) LinkGrantGenre(ctx context.Context, grantID, genreID int64) error {
	return s.LinkGrantGenreFn(ctx, grantID, genreID)
}

func (s *GenreService) GenresForGrant(ctx context.Context, grantID int64) ([]string, error) {
	return s.GenresForGrantFn(ctx, grantID)
}

func (s *GenreService) FindGenres(ctx context.Context) ([]*litcontest.Genre, error) {
	return s.FindGenresFn(ctx)
}
